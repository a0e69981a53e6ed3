package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"roomspace-backend/models"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory implementation of every store interface, used
// when no database is configured and by tests. It holds one insertion-ordered
// slice per resource type and answers queries by linear scan with equality
// filters, which is the full extent of its query planning.
//
// Instances are independent; construct one per test case.
type MemoryStore struct {
	mu        sync.Mutex
	users     []*models.User
	rooms     []*models.RoomScan
	designs   []*models.Design
	favorites []*models.FavoriteProduct
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// --- UserStore ---

// Create creates a new user
func (s *MemoryStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrDuplicateEmail
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt

	stored := *user
	s.users = append(s.users, &stored)
	return nil
}

// GetByEmail retrieves a user by email
func (s *MemoryStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// GetByID retrieves a user by ID
func (s *MemoryStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// --- RoomStore ---

// CreateRoom creates a new room scan owned by ownerID
func (s *MemoryStore) CreateRoom(ctx context.Context, ownerID uuid.UUID, room *models.RoomScan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room.ID = uuid.New()
	room.UserID = ownerID
	room.CreatedAt = time.Now().UTC()
	room.UpdatedAt = room.CreatedAt

	stored := *room
	s.rooms = append(s.rooms, &stored)
	return nil
}

// ListRoomsByOwner retrieves all room scans for a user, newest first
func (s *MemoryStore) ListRoomsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.RoomScan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rooms []*models.RoomScan
	for i := len(s.rooms) - 1; i >= 0; i-- {
		if s.rooms[i].UserID == ownerID {
			copied := *s.rooms[i]
			rooms = append(rooms, &copied)
		}
	}
	return rooms, nil
}

// GetRoomByID retrieves a room scan by ID, scoped to its owner
func (s *MemoryStore) GetRoomByID(ctx context.Context, ownerID, id uuid.UUID) (*models.RoomScan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room := s.findRoom(ownerID, id)
	if room == nil {
		return nil, ErrNotFound
	}
	copied := *room
	return &copied, nil
}

// UpdateRoom replaces a room scan's mutable fields, scoped to its owner
func (s *MemoryStore) UpdateRoom(ctx context.Context, ownerID uuid.UUID, room *models.RoomScan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.findRoom(ownerID, room.ID)
	if stored == nil {
		return ErrNotFound
	}

	stored.Name = room.Name
	stored.RoomType = room.RoomType
	stored.Dimensions = room.Dimensions
	stored.ScanData = room.ScanData
	stored.Budget = room.Budget
	stored.Style = room.Style
	stored.UpdatedAt = time.Now().UTC()

	room.UserID = stored.UserID
	room.CreatedAt = stored.CreatedAt
	room.UpdatedAt = stored.UpdatedAt
	room.ScanArchivePath = stored.ScanArchivePath
	return nil
}

// SetRoomScanArchivePath records where a room's raw scan archive is stored
func (s *MemoryStore) SetRoomScanArchivePath(ctx context.Context, ownerID, id uuid.UUID, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.findRoom(ownerID, id)
	if stored == nil {
		return ErrNotFound
	}
	stored.ScanArchivePath = &path
	stored.UpdatedAt = time.Now().UTC()
	return nil
}

// DeleteRoom deletes a room scan, scoped to its owner. Designs referencing
// the room are left in place.
func (s *MemoryStore) DeleteRoom(ctx context.Context, ownerID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, room := range s.rooms {
		if room.ID == id && room.UserID == ownerID {
			s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) findRoom(ownerID, id uuid.UUID) *models.RoomScan {
	for _, room := range s.rooms {
		if room.ID == id && room.UserID == ownerID {
			return room
		}
	}
	return nil
}

// --- DesignStore ---

// CreateDesign creates a new saved design owned by ownerID
func (s *MemoryStore) CreateDesign(ctx context.Context, ownerID uuid.UUID, design *models.Design) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	design.ID = uuid.New()
	design.UserID = ownerID
	design.CreatedAt = time.Now().UTC()
	design.UpdatedAt = design.CreatedAt

	stored := *design
	stored.Room = nil
	s.designs = append(s.designs, &stored)
	return nil
}

// ListDesignsByOwner retrieves all designs for a user, newest first, each
// with a summary of its room when the room still exists.
func (s *MemoryStore) ListDesignsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Design, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var designs []*models.Design
	for i := len(s.designs) - 1; i >= 0; i-- {
		if s.designs[i].UserID == ownerID {
			copied := *s.designs[i]
			copied.Room = s.roomSummary(copied.RoomID, false)
			designs = append(designs, &copied)
		}
	}
	return designs, nil
}

// GetDesignByID retrieves a design by ID, scoped to its owner
func (s *MemoryStore) GetDesignByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Design, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	design := s.findDesign(ownerID, id)
	if design == nil {
		return nil, ErrNotFound
	}
	copied := *design
	copied.Room = s.roomSummary(copied.RoomID, true)
	return &copied, nil
}

// UpdateDesign replaces a design's mutable fields, scoped to its owner
func (s *MemoryStore) UpdateDesign(ctx context.Context, ownerID uuid.UUID, design *models.Design) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.findDesign(ownerID, design.ID)
	if stored == nil {
		return ErrNotFound
	}

	stored.DesignData = design.DesignData
	stored.FurnitureItems = design.FurnitureItems
	stored.TotalCost = design.TotalCost
	stored.IsFavorite = design.IsFavorite
	stored.Notes = design.Notes
	stored.CustomLayout = design.CustomLayout
	stored.UpdatedAt = time.Now().UTC()

	design.UserID = stored.UserID
	design.CreatedAt = stored.CreatedAt
	design.UpdatedAt = stored.UpdatedAt
	return nil
}

// DeleteDesign deletes a design, scoped to its owner
func (s *MemoryStore) DeleteDesign(ctx context.Context, ownerID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, design := range s.designs {
		if design.ID == id && design.UserID == ownerID {
			s.designs = append(s.designs[:i], s.designs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) findDesign(ownerID, id uuid.UUID) *models.Design {
	for _, design := range s.designs {
		if design.ID == id && design.UserID == ownerID {
			return design
		}
	}
	return nil
}

func (s *MemoryStore) roomSummary(roomID uuid.UUID, withScanData bool) *models.RoomSummary {
	for _, room := range s.rooms {
		if room.ID == roomID {
			summary := &models.RoomSummary{
				ID:         room.ID,
				Name:       room.Name,
				RoomType:   room.RoomType,
				Dimensions: room.Dimensions,
			}
			if withScanData {
				summary.ScanData = room.ScanData
			}
			return summary
		}
	}
	return nil
}

// --- FavoriteStore ---

// CreateFavorite creates a new favorite owned by ownerID
func (s *MemoryStore) CreateFavorite(ctx context.Context, ownerID uuid.UUID, favorite *models.FavoriteProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.favorites {
		if existing.UserID == ownerID && existing.ProductASIN == favorite.ProductASIN {
			return ErrDuplicateFavorite
		}
	}

	favorite.ID = uuid.New()
	favorite.UserID = ownerID
	favorite.CreatedAt = time.Now().UTC()

	stored := *favorite
	s.favorites = append(s.favorites, &stored)
	return nil
}

// ListFavoritesByOwner retrieves all favorites for a user, newest first
func (s *MemoryStore) ListFavoritesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.FavoriteProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var favorites []*models.FavoriteProduct
	for i := len(s.favorites) - 1; i >= 0; i-- {
		if s.favorites[i].UserID == ownerID {
			copied := *s.favorites[i]
			favorites = append(favorites, &copied)
		}
	}
	return favorites, nil
}

// DeleteFavoriteByASIN removes a favorite by product identifier, scoped to its owner
func (s *MemoryStore) DeleteFavoriteByASIN(ctx context.Context, ownerID uuid.UUID, asin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, favorite := range s.favorites {
		if favorite.UserID == ownerID && favorite.ProductASIN == asin {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Typed views so one MemoryStore can be injected wherever a specific store
// interface is expected without method-name collisions between resources.

// Users returns the store's UserStore view
func (s *MemoryStore) Users() UserStore { return s }

// Rooms returns the store's RoomStore view
func (s *MemoryStore) Rooms() RoomStore { return memoryRooms{s} }

// Designs returns the store's DesignStore view
func (s *MemoryStore) Designs() DesignStore { return memoryDesigns{s} }

// Favorites returns the store's FavoriteStore view
func (s *MemoryStore) Favorites() FavoriteStore { return memoryFavorites{s} }

type memoryRooms struct{ s *MemoryStore }

func (m memoryRooms) Create(ctx context.Context, ownerID uuid.UUID, room *models.RoomScan) error {
	return m.s.CreateRoom(ctx, ownerID, room)
}

func (m memoryRooms) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.RoomScan, error) {
	return m.s.ListRoomsByOwner(ctx, ownerID)
}

func (m memoryRooms) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.RoomScan, error) {
	return m.s.GetRoomByID(ctx, ownerID, id)
}

func (m memoryRooms) Update(ctx context.Context, ownerID uuid.UUID, room *models.RoomScan) error {
	return m.s.UpdateRoom(ctx, ownerID, room)
}

func (m memoryRooms) SetScanArchivePath(ctx context.Context, ownerID, id uuid.UUID, path string) error {
	return m.s.SetRoomScanArchivePath(ctx, ownerID, id, path)
}

func (m memoryRooms) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return m.s.DeleteRoom(ctx, ownerID, id)
}

type memoryDesigns struct{ s *MemoryStore }

func (m memoryDesigns) Create(ctx context.Context, ownerID uuid.UUID, design *models.Design) error {
	return m.s.CreateDesign(ctx, ownerID, design)
}

func (m memoryDesigns) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Design, error) {
	return m.s.ListDesignsByOwner(ctx, ownerID)
}

func (m memoryDesigns) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Design, error) {
	return m.s.GetDesignByID(ctx, ownerID, id)
}

func (m memoryDesigns) Update(ctx context.Context, ownerID uuid.UUID, design *models.Design) error {
	return m.s.UpdateDesign(ctx, ownerID, design)
}

func (m memoryDesigns) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return m.s.DeleteDesign(ctx, ownerID, id)
}

type memoryFavorites struct{ s *MemoryStore }

func (m memoryFavorites) Create(ctx context.Context, ownerID uuid.UUID, favorite *models.FavoriteProduct) error {
	return m.s.CreateFavorite(ctx, ownerID, favorite)
}

func (m memoryFavorites) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.FavoriteProduct, error) {
	return m.s.ListFavoritesByOwner(ctx, ownerID)
}

func (m memoryFavorites) DeleteByASIN(ctx context.Context, ownerID uuid.UUID, asin string) error {
	return m.s.DeleteFavoriteByASIN(ctx, ownerID, asin)
}
