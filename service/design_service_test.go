package service

import (
	"context"
	"errors"
	"testing"

	"roomspace-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text string
	err  error
}

func (g stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return g.text, g.err
}

func testRoom() *models.RoomScan {
	return &models.RoomScan{
		ID:         uuid.New(),
		Name:       "Living Room",
		RoomType:   models.RoomTypeLivingRoom,
		Dimensions: models.Dimensions{Width: 12, Length: 15, Height: 9},
		Budget:     models.BudgetRange{Min: 100, Max: 1000},
		Style:      models.StyleModern,
	}
}

func TestFallbackDesign_Deterministic(t *testing.T) {
	room := testRoom()
	budget := models.BudgetRange{Min: 100, Max: 1000}

	first := FallbackDesign(room, models.StyleModern, budget)
	second := FallbackDesign(room, models.StyleModern, budget)
	assert.Equal(t, first, second)

	assert.Equal(t, 550.0, first.TotalCost)
	require.Len(t, first.FurnitureItems, 1)

	sofa := first.FurnitureItems[0]
	assert.Equal(t, "Modern Sofa", sofa.Name)
	assert.Equal(t, "Seating", sofa.Category)
	assert.Equal(t, 400.0, sofa.EstimatedPrice)
	assert.Equal(t, models.ItemDimensions{Width: 72, Depth: 36, Height: 32}, sofa.Dimensions)
	assert.Equal(t, []string{"modern", "sofa", "living_room"}, sofa.SearchTerms)

	// The single item always fits the budget ceiling
	assert.LessOrEqual(t, sofa.EstimatedPrice, budget.Max)
}

func TestFallbackDesign_Palettes(t *testing.T) {
	room := testRoom()
	budget := models.BudgetRange{Min: 0, Max: 500}

	cases := []struct {
		style   models.Style
		primary string
	}{
		{models.StyleModern, "#2C3E50"},
		{models.StyleMinimalist, "#FFFFFF"},
		{models.StyleScandinavian, "#FFFFFF"},
		{models.StyleIndustrial, "#34495E"},
		{models.StyleBohemian, "#8B4513"},
	}
	for _, tc := range cases {
		payload := FallbackDesign(room, tc.style, budget)
		assert.Equal(t, tc.primary, payload.ColorScheme.Primary, "style %s", tc.style)
		assert.Equal(t, StyleColors(tc.style), payload.ColorScheme)
	}

	// Unknown styles fall back to the modern palette
	assert.Equal(t, StyleColors(models.StyleModern), StyleColors(models.Style("artdeco")))
}

func TestGenerateDesign_NoGeneratorUsesFallback(t *testing.T) {
	svc := NewDesignService()
	room := testRoom()

	payload := svc.GenerateDesign(context.Background(), GenerateDesignRequest{
		Room:   room,
		Style:  models.StyleModern,
		Budget: room.Budget,
	})
	require.NotNil(t, payload)
	assert.Equal(t, FallbackDesign(room, models.StyleModern, room.Budget), payload)
}

func TestGenerateDesign_CallFailureUsesFallback(t *testing.T) {
	svc := NewDesignService(
		DesignWithGenerationClient(stubGenerator{err: errors.New("upstream unavailable")}),
	)
	room := testRoom()

	payload := svc.GenerateDesign(context.Background(), GenerateDesignRequest{
		Room:   room,
		Style:  models.StyleBohemian,
		Budget: room.Budget,
	})
	require.NotNil(t, payload)
	assert.Equal(t, 550.0, payload.TotalCost)
	assert.Equal(t, StyleColors(models.StyleBohemian), payload.ColorScheme)
}

func TestGenerateDesign_UnparseableResponseUsesFallback(t *testing.T) {
	svc := NewDesignService(
		DesignWithGenerationClient(stubGenerator{text: "I cannot produce JSON today."}),
	)
	room := testRoom()

	payload := svc.GenerateDesign(context.Background(), GenerateDesignRequest{
		Room:   room,
		Style:  models.StyleModern,
		Budget: room.Budget,
	})
	require.NotNil(t, payload)
	assert.Equal(t, FallbackDesign(room, models.StyleModern, room.Budget), payload)
}

func TestGenerateDesign_ParsesFencedResponse(t *testing.T) {
	response := "```json\n" + `{
		"layout": {"description": "Open plan", "zones": []},
		"furnitureItems": [
			{"name": "Oak Table", "category": "Tables", "estimatedPrice": 250,
			 "position": {"x": 1, "y": 2, "z": 0},
			 "dimensions": {"width": 60, "depth": 30, "height": 29},
			 "searchTerms": ["oak", "table"]}
		],
		"colorScheme": {"primary": "#111111", "secondary": "#222222", "accent": "#333333"},
		"lighting": ["Pendant light"],
		"accessories": ["Rug"],
		"totalCost": 250
	}` + "\n```"

	svc := NewDesignService(DesignWithGenerationClient(stubGenerator{text: response}))
	room := testRoom()

	payload := svc.GenerateDesign(context.Background(), GenerateDesignRequest{
		Room:   room,
		Style:  models.StyleModern,
		Budget: room.Budget,
	})
	require.NotNil(t, payload)
	assert.Equal(t, "Open plan", payload.Layout.Description)
	require.Len(t, payload.FurnitureItems, 1)
	assert.Equal(t, "Oak Table", payload.FurnitureItems[0].Name)
	assert.Equal(t, 250.0, payload.TotalCost)
	assert.Equal(t, "#111111", payload.ColorScheme.Primary)
}

func TestParseDesignPayload_ProseAroundJSON(t *testing.T) {
	payload, err := parseDesignPayload(`Here is your design: {"totalCost": 42, "lighting": ["lamp"]} Enjoy!`)
	require.NoError(t, err)
	assert.Equal(t, 42.0, payload.TotalCost)
	assert.NotNil(t, payload.FurnitureItems)

	_, err = parseDesignPayload("no json here")
	assert.Error(t, err)
}
