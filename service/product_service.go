package service

import (
	"context"
	"fmt"
	"sort"

	"roomspace-backend/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Sort orders accepted by product search
const (
	SortRelevance = "relevance"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortRating    = "rating"
)

// ProductService searches furniture products. With Amazon credentials it
// issues a single outbound call; without them, or when the call fails, it
// serves a deterministic synthetic catalog so development and tests behave
// identically run to run. Filtering and sorting always happen locally.
type ProductService struct {
	http       *resty.Client
	endpoint   string
	accessKey  string
	secretKey  string
	partnerTag string
	logger     *zap.Logger
}

// ProductServiceOption is a functional option for ProductService
type ProductServiceOption func(*ProductService)

// ProductWithHTTPClient sets the outbound HTTP client
func ProductWithHTTPClient(client *resty.Client) ProductServiceOption {
	return func(s *ProductService) {
		s.http = client
	}
}

// ProductWithAmazonCredentials enables the live product API
func ProductWithAmazonCredentials(accessKey, secretKey, partnerTag, endpoint string) ProductServiceOption {
	return func(s *ProductService) {
		s.accessKey = accessKey
		s.secretKey = secretKey
		s.partnerTag = partnerTag
		s.endpoint = endpoint
	}
}

// ProductWithLogger sets the logger
func ProductWithLogger(logger *zap.Logger) ProductServiceOption {
	return func(s *ProductService) {
		s.logger = logger
	}
}

// NewProductService creates a new product service
func NewProductService(opts ...ProductServiceOption) *ProductService {
	s := &ProductService{
		partnerTag: "roomspace-20",
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.http == nil {
		s.http = resty.New()
	}
	return s
}

// SearchQuery represents a product search
type SearchQuery struct {
	Keywords string
	Category string
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
}

// SearchProducts runs one search, then filters by price bounds and sorts
// locally. Sorting is stable; "relevance" preserves catalog order.
func (s *ProductService) SearchProducts(ctx context.Context, query SearchQuery) []models.Product {
	products := s.fetchProducts(ctx, query)
	products = filterByPrice(products, query.MinPrice, query.MaxPrice)
	sortProducts(products, query.SortBy)
	return products
}

func (s *ProductService) remoteEnabled() bool {
	return s.accessKey != "" && s.secretKey != ""
}

func (s *ProductService) fetchProducts(ctx context.Context, query SearchQuery) []models.Product {
	if !s.remoteEnabled() {
		return s.syntheticCatalog(query.Keywords)
	}

	var result struct {
		Products []models.Product `json:"products"`
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("X-Access-Key", s.accessKey).
		SetHeader("X-Secret-Key", s.secretKey).
		SetBody(map[string]interface{}{
			"Keywords":    query.Keywords,
			"SearchIndex": query.Category,
			"PartnerTag":  s.partnerTag,
		}).
		SetResult(&result).
		Post(s.endpoint)

	if err != nil || resp.IsError() {
		s.logger.Warn("product search call failed, using synthetic catalog",
			zap.String("keywords", query.Keywords),
			zap.Error(err))
		return s.syntheticCatalog(query.Keywords)
	}

	return result.Products
}

// syntheticCatalog builds the stand-in result set used without a live
// integration. Prices and ratings are fixed so results are reproducible.
func (s *ProductService) syntheticCatalog(keywords string) []models.Product {
	return []models.Product{
		{
			ASIN:  "B08RSP001",
			Title: fmt.Sprintf("%s - Modern Style", keywords),
			Price: models.ProductPrice{Amount: 349, Currency: "USD"},
			Images: models.ProductImages{
				Primary:    "https://via.placeholder.com/300x300?text=Product+1",
				Thumbnails: []string{"https://via.placeholder.com/150x150?text=Thumb+1"},
			},
			Rating:      4.5,
			ReviewCount: 412,
			Features: []string{
				"High-quality materials",
				"Easy assembly",
				"Modern design",
			},
			AffiliateURL: fmt.Sprintf("https://amazon.com/dp/B08RSP001?tag=%s", s.partnerTag),
			Availability: "In Stock",
		},
		{
			ASIN:  "B08RSP002",
			Title: fmt.Sprintf("%s - Premium Collection", keywords),
			Price: models.ProductPrice{Amount: 749, Currency: "USD"},
			Images: models.ProductImages{
				Primary:    "https://via.placeholder.com/300x300?text=Product+2",
				Thumbnails: []string{"https://via.placeholder.com/150x150?text=Thumb+2"},
			},
			Rating:      4.7,
			ReviewCount: 1288,
			Features: []string{
				"Premium materials",
				"Professional assembly available",
				"Designer approved",
			},
			AffiliateURL: fmt.Sprintf("https://amazon.com/dp/B08RSP002?tag=%s", s.partnerTag),
			Availability: "In Stock",
		},
		{
			ASIN:  "B08RSP003",
			Title: fmt.Sprintf("%s - Budget Friendly", keywords),
			Price: models.ProductPrice{Amount: 129, Currency: "USD"},
			Images: models.ProductImages{
				Primary:    "https://via.placeholder.com/300x300?text=Product+3",
				Thumbnails: []string{"https://via.placeholder.com/150x150?text=Thumb+3"},
			},
			Rating:      4.1,
			ReviewCount: 157,
			Features: []string{
				"Affordable option",
				"Good value for money",
				"Basic assembly required",
			},
			AffiliateURL: fmt.Sprintf("https://amazon.com/dp/B08RSP003?tag=%s", s.partnerTag),
			Availability: "Limited Stock",
		},
	}
}

func filterByPrice(products []models.Product, minPrice, maxPrice *float64) []models.Product {
	if minPrice == nil && maxPrice == nil {
		return products
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if minPrice != nil && p.Price.Amount < *minPrice {
			continue
		}
		if maxPrice != nil && p.Price.Amount > *maxPrice {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func sortProducts(products []models.Product, sortBy string) {
	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.Amount < products[j].Price.Amount
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.Amount > products[j].Price.Amount
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	}
	// relevance keeps catalog order
}
