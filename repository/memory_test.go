package repository

import (
	"context"
	"testing"

	"roomspace-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoom(name string) *models.RoomScan {
	return &models.RoomScan{
		Name:       name,
		RoomType:   models.RoomTypeLivingRoom,
		Dimensions: models.Dimensions{Width: 12, Length: 15, Height: 9},
		ScanData:   "scan-payload",
		Budget:     models.BudgetRange{Min: 100, Max: 1000},
		Style:      models.StyleModern,
	}
}

func TestMemoryStore_UserDuplicateEmail(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Create(ctx, &models.User{Email: "alice@example.com", PasswordHash: "x"})
	require.NoError(t, err)

	// Same email with different casing still counts as a duplicate
	err = store.Create(ctx, &models.User{Email: "Alice@Example.com", PasswordHash: "y"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestMemoryStore_UserLookup(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	user := &models.User{Email: "bob@example.com", PasswordHash: "h", FirstName: "Bob", LastName: "Jones"}
	require.NoError(t, store.Create(ctx, user))
	require.NotEqual(t, uuid.Nil, user.ID)

	byEmail, err := store.GetByEmail(ctx, "BOB@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := store.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", byID.Email)

	_, err = store.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_RoomOwnerScoping(t *testing.T) {
	store := NewMemoryStore()
	rooms := store.Rooms()
	ctx := context.Background()

	alice := uuid.New()
	mallory := uuid.New()

	room := newTestRoom("Living Room")
	require.NoError(t, rooms.Create(ctx, alice, room))

	// The owner can read it
	got, err := rooms.GetByID(ctx, alice, room.ID)
	require.NoError(t, err)
	assert.Equal(t, "Living Room", got.Name)

	// Another user sees not-found, never forbidden
	_, err = rooms.GetByID(ctx, mallory, room.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	err = rooms.Delete(ctx, mallory, room.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	room.Name = "Updated"
	err = rooms.Update(ctx, mallory, room)
	assert.ErrorIs(t, err, ErrNotFound)

	// The room is untouched by the cross-tenant attempts
	got, err = rooms.GetByID(ctx, alice, room.ID)
	require.NoError(t, err)
	assert.Equal(t, "Living Room", got.Name)
}

func TestMemoryStore_RoomListNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	rooms := store.Rooms()
	ctx := context.Background()
	owner := uuid.New()

	first := newTestRoom("first")
	second := newTestRoom("second")
	third := newTestRoom("third")
	require.NoError(t, rooms.Create(ctx, owner, first))
	require.NoError(t, rooms.Create(ctx, owner, second))
	require.NoError(t, rooms.Create(ctx, owner, third))

	listed, err := rooms.ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "third", listed[0].Name)
	assert.Equal(t, "second", listed[1].Name)
	assert.Equal(t, "first", listed[2].Name)
}

func TestMemoryStore_RoomScanArchivePath(t *testing.T) {
	store := NewMemoryStore()
	rooms := store.Rooms()
	ctx := context.Background()
	owner := uuid.New()

	room := newTestRoom("scanned")
	require.NoError(t, rooms.Create(ctx, owner, room))
	require.Nil(t, room.ScanArchivePath)

	err := rooms.SetScanArchivePath(ctx, owner, room.ID, "scans/ab/archive.usdz")
	require.NoError(t, err)

	got, err := rooms.GetByID(ctx, owner, room.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ScanArchivePath)
	assert.Equal(t, "scans/ab/archive.usdz", *got.ScanArchivePath)

	// Updating other fields must not clear the archive path
	got.Name = "renamed"
	require.NoError(t, rooms.Update(ctx, owner, got))
	reread, err := rooms.GetByID(ctx, owner, room.ID)
	require.NoError(t, err)
	require.NotNil(t, reread.ScanArchivePath)
	assert.Equal(t, "renamed", reread.Name)
}

func TestMemoryStore_DesignSurvivesRoomDelete(t *testing.T) {
	store := NewMemoryStore()
	rooms := store.Rooms()
	designs := store.Designs()
	ctx := context.Background()
	owner := uuid.New()

	room := newTestRoom("doomed")
	require.NoError(t, rooms.Create(ctx, owner, room))

	design := &models.Design{
		RoomID:    room.ID,
		Style:     models.StyleModern,
		Budget:    models.BudgetRange{Min: 100, Max: 1000},
		TotalCost: 550,
	}
	require.NoError(t, designs.Create(ctx, owner, design))

	// While the room exists the design carries its summary
	got, err := designs.GetByID(ctx, owner, design.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Room)
	assert.Equal(t, "doomed", got.Room.Name)

	require.NoError(t, rooms.Delete(ctx, owner, room.ID))

	// The design is still readable, with no room summary attached
	got, err = designs.GetByID(ctx, owner, design.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Room)
	assert.Equal(t, room.ID, got.RoomID)
}

func TestMemoryStore_DesignOwnerScoping(t *testing.T) {
	store := NewMemoryStore()
	designs := store.Designs()
	ctx := context.Background()

	alice := uuid.New()
	mallory := uuid.New()

	design := &models.Design{RoomID: uuid.New(), Style: models.StyleBohemian}
	require.NoError(t, designs.Create(ctx, alice, design))

	_, err := designs.GetByID(ctx, mallory, design.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, designs.Delete(ctx, mallory, design.ID), ErrNotFound)

	listed, err := designs.ListByOwner(ctx, mallory)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestMemoryStore_FavoriteRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	favorites := store.Favorites()
	ctx := context.Background()
	owner := uuid.New()

	price := 349.0
	fav := &models.FavoriteProduct{
		ProductASIN:  "B08RSP001",
		ProductTitle: "Modern Sofa",
		ProductPrice: &price,
	}
	require.NoError(t, favorites.Create(ctx, owner, fav))

	listed, err := favorites.ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "B08RSP001", listed[0].ProductASIN)

	require.NoError(t, favorites.DeleteByASIN(ctx, owner, "B08RSP001"))
	assert.ErrorIs(t, favorites.DeleteByASIN(ctx, owner, "B08RSP001"), ErrNotFound)

	listed, err = favorites.ListByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestMemoryStore_FavoriteDuplicate(t *testing.T) {
	store := NewMemoryStore()
	favorites := store.Favorites()
	ctx := context.Background()
	owner := uuid.New()

	fav := &models.FavoriteProduct{ProductASIN: "B08RSP001", ProductTitle: "Modern Sofa"}
	require.NoError(t, favorites.Create(ctx, owner, fav))

	again := &models.FavoriteProduct{ProductASIN: "B08RSP001", ProductTitle: "Modern Sofa"}
	assert.ErrorIs(t, favorites.Create(ctx, owner, again), ErrDuplicateFavorite)

	listed, err := favorites.ListByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	// A different owner can still save the same product.
	other := uuid.New()
	require.NoError(t, favorites.Create(ctx, other, &models.FavoriteProduct{ProductASIN: "B08RSP001", ProductTitle: "Modern Sofa"}))
}
