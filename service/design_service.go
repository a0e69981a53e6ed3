package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"roomspace-backend/models"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

// GenerationClient is the outbound text-generation call behind design
// generation. The narrow interface keeps the fallback path testable without
// any network involvement.
type GenerationClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerationClient implements GenerationClient on the Gemini API
type GeminiGenerationClient struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerationClient creates a Gemini-backed generation client
func NewGeminiGenerationClient(client *genai.Client, model string) *GeminiGenerationClient {
	return &GeminiGenerationClient{client: client, model: model}
}

// GenerateText issues a single generation call and concatenates the text parts
func (g *GeminiGenerationClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.7)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	var text strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}

	if text.Len() == 0 {
		return "", errors.New("API returned empty content")
	}

	return text.String(), nil
}

const defaultGenerationTimeout = 30 * time.Second

// DesignService generates furniture designs for scanned rooms. Generation is
// best-effort: the outbound call gets one attempt, and any failure yields a
// deterministic fallback derived purely from the request.
type DesignService struct {
	generator GenerationClient
	timeout   time.Duration
	logger    *zap.Logger
}

// DesignServiceOption is a functional option for DesignService
type DesignServiceOption func(*DesignService)

// DesignWithGenerationClient sets the outbound generation client
func DesignWithGenerationClient(client GenerationClient) DesignServiceOption {
	return func(s *DesignService) {
		s.generator = client
	}
}

// DesignWithTimeout bounds the outbound generation call
func DesignWithTimeout(timeout time.Duration) DesignServiceOption {
	return func(s *DesignService) {
		s.timeout = timeout
	}
}

// DesignWithLogger sets the logger
func DesignWithLogger(logger *zap.Logger) DesignServiceOption {
	return func(s *DesignService) {
		s.logger = logger
	}
}

// NewDesignService creates a new design service
func NewDesignService(opts ...DesignServiceOption) *DesignService {
	s := &DesignService{
		timeout: defaultGenerationTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DesignPreferences are optional user hints passed into the prompt
type DesignPreferences struct {
	Colors    []string `json:"colors,omitempty"`
	Furniture []string `json:"furniture,omitempty"`
	Avoid     []string `json:"avoid,omitempty"`
}

// GenerateDesignRequest represents a request to generate a design
type GenerateDesignRequest struct {
	Room        *models.RoomScan
	Style       models.Style
	Budget      models.BudgetRange
	Preferences *DesignPreferences
}

// GenerateDesign produces a design payload for the room. It never fails:
// when the generation call errors, times out, or returns unparseable text,
// the result is FallbackDesign for the same inputs.
func (s *DesignService) GenerateDesign(ctx context.Context, req GenerateDesignRequest) *models.DesignPayload {
	if s.generator == nil {
		return FallbackDesign(req.Room, req.Style, req.Budget)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := buildDesignPrompt(req)

	text, err := s.generator.GenerateText(callCtx, prompt)
	if err != nil {
		s.logger.Warn("generation call failed, using fallback design",
			zap.String("room_id", req.Room.ID.String()),
			zap.Error(err))
		return FallbackDesign(req.Room, req.Style, req.Budget)
	}

	payload, err := parseDesignPayload(text)
	if err != nil {
		s.logger.Warn("generation response unparseable, using fallback design",
			zap.String("room_id", req.Room.ID.String()),
			zap.Error(err))
		return FallbackDesign(req.Room, req.Style, req.Budget)
	}

	return payload
}

func buildDesignPrompt(req GenerateDesignRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create an interior design layout for a %s with the following specifications:\n\n", req.Room.RoomType)
	fmt.Fprintf(&b, "Room Dimensions: %gft x %gft x %gft\n",
		req.Room.Dimensions.Width, req.Room.Dimensions.Length, req.Room.Dimensions.Height)
	fmt.Fprintf(&b, "Style: %s\n", req.Style)
	fmt.Fprintf(&b, "Budget: $%g - $%g\n", req.Budget.Min, req.Budget.Max)

	if p := req.Preferences; p != nil {
		if len(p.Colors) > 0 {
			fmt.Fprintf(&b, "Preferred Colors: %s\n", strings.Join(p.Colors, ", "))
		}
		if len(p.Furniture) > 0 {
			fmt.Fprintf(&b, "Preferred Furniture: %s\n", strings.Join(p.Furniture, ", "))
		}
		if len(p.Avoid) > 0 {
			fmt.Fprintf(&b, "Avoid: %s\n", strings.Join(p.Avoid, ", "))
		}
	}

	b.WriteString(`
Please provide:
1. A furniture layout with specific item placements
2. A list of recommended furniture items with estimated prices
3. Color scheme recommendations
4. Lighting suggestions
5. Accessory recommendations

Format the response as JSON with the following structure:
{
  "layout": {
    "description": "Overall layout description",
    "zones": [
      {"name": "Zone name", "furniture": ["furniture items"], "position": {"x": 0, "y": 0, "rotation": 0}}
    ]
  },
  "furnitureItems": [
    {
      "name": "Item name",
      "category": "Category",
      "estimatedPrice": 0,
      "position": {"x": 0, "y": 0, "z": 0},
      "dimensions": {"width": 0, "depth": 0, "height": 0},
      "searchTerms": ["search", "terms"]
    }
  ],
  "colorScheme": {"primary": "#color", "secondary": "#color", "accent": "#color"},
  "lighting": ["lighting suggestions"],
  "accessories": ["accessory suggestions"],
  "totalCost": 0
}

Respond with the JSON object only, no prose before or after it.`)

	return b.String()
}

// parseDesignPayload extracts the JSON object from a model response, which
// may arrive wrapped in markdown code fences or surrounding prose.
func parseDesignPayload(text string) (*models.DesignPayload, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil, errors.New("no JSON object in response")
	}

	payload := &models.DesignPayload{}
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), payload); err != nil {
		return nil, fmt.Errorf("failed to parse design payload: %w", err)
	}

	if payload.FurnitureItems == nil {
		payload.FurnitureItems = models.FurnitureItems{}
	}

	return payload, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var styleColorSchemes = map[models.Style]models.ColorScheme{
	models.StyleModern:       {Primary: "#2C3E50", Secondary: "#ECF0F1", Accent: "#E74C3C"},
	models.StyleMinimalist:   {Primary: "#FFFFFF", Secondary: "#F8F9FA", Accent: "#6C757D"},
	models.StyleScandinavian: {Primary: "#FFFFFF", Secondary: "#F5F5DC", Accent: "#4A90E2"},
	models.StyleIndustrial:   {Primary: "#34495E", Secondary: "#95A5A6", Accent: "#E67E22"},
	models.StyleBohemian:     {Primary: "#8B4513", Secondary: "#DEB887", Accent: "#CD853F"},
}

// StyleColors returns the palette for a style, defaulting to modern
func StyleColors(style models.Style) models.ColorScheme {
	if scheme, ok := styleColorSchemes[style]; ok {
		return scheme
	}
	return styleColorSchemes[models.StyleModern]
}

// FallbackDesign builds a design payload from the inputs alone. It performs
// no I/O and is fully reproducible: the same room, style and budget always
// produce the same payload.
func FallbackDesign(room *models.RoomScan, style models.Style, budget models.BudgetRange) *models.DesignPayload {
	sofa := models.FurnitureItem{
		Name:           fmt.Sprintf("%s Sofa", capitalize(string(style))),
		Category:       "Seating",
		EstimatedPrice: math.Floor(budget.Max * 0.4),
		Position:       models.Position{X: 0, Y: 0, Z: 0},
		Dimensions:     models.ItemDimensions{Width: 72, Depth: 36, Height: 32},
		SearchTerms:    []string{string(style), "sofa", string(room.RoomType)},
	}

	return &models.DesignPayload{
		Layout: models.Layout{
			Description: fmt.Sprintf("%s design for your %s", style, room.RoomType),
			Zones: []models.LayoutZone{
				{
					Name:      "Main seating area",
					Furniture: []string{"Sofa", "Coffee table"},
					Position:  models.Position{X: 0, Y: 0, Rotation: 0},
				},
			},
		},
		FurnitureItems: models.FurnitureItems{sofa},
		ColorScheme:    StyleColors(style),
		Lighting:       []string{"Natural light", "Floor lamps"},
		Accessories:    []string{"Throw pillows", "Wall art"},
		TotalCost:      math.Floor((budget.Min + budget.Max) / 2),
	}
}
