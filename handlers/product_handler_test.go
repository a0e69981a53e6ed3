package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductSearch(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "search@example.com")

	code, body := ts.do(t, http.MethodGet, "/api/products/search?keywords=modern+sofa", token, nil)
	require.Equal(t, http.StatusOK, code)
	products, ok := body["products"].([]interface{})
	require.True(t, ok)
	require.Len(t, products, 3)
	assert.Equal(t, 3.0, body["total"])

	first := products[0].(map[string]interface{})
	assert.Equal(t, "modern sofa - Modern Style", first["title"])
	assert.Equal(t, "B08RSP001", first["asin"])
}

func TestProductSearch_Validation(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "search-v@example.com")

	// Keywords are mandatory
	code, body := ts.do(t, http.MethodGet, "/api/products/search", token, nil)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Validation error", body["message"])
	assert.Equal(t, "keywords is required", body["details"])

	// Unknown sort order
	code, body = ts.do(t, http.MethodGet, "/api/products/search?keywords=sofa&sortBy=cheapest", token, nil)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["details"], "sortBy must be one of")
}

func TestProductSearch_PriceFilterAndSort(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "search-f@example.com")

	code, body := ts.do(t, http.MethodGet,
		"/api/products/search?keywords=sofa&maxPrice=400&sortBy=price_high", token, nil)
	require.Equal(t, http.StatusOK, code)
	products := body["products"].([]interface{})
	require.Len(t, products, 2)

	first := products[0].(map[string]interface{})["price"].(map[string]interface{})
	second := products[1].(map[string]interface{})["price"].(map[string]interface{})
	assert.Equal(t, 349.0, first["amount"])
	assert.Equal(t, 129.0, second["amount"])
}

func TestProductDetailsPlaceholder(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "details@example.com")

	code, body := ts.do(t, http.MethodGet, "/api/products/details/B08RSP001", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "B08RSP001", body["asin"])
	assert.Equal(t, true, body["placeholder"])
}

func TestRecommendations_FromItems(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "recs@example.com")

	code, body := ts.do(t, http.MethodPost, "/api/products/recommendations", token, gin.H{
		"furnitureItems": []gin.H{
			{"name": "Modern Sofa", "category": "Seating", "estimatedPrice": 400,
				"searchTerms": []string{"modern", "sofa"}},
			{"name": "Floor Lamp", "category": "Lighting", "estimatedPrice": 80,
				"searchTerms": []string{"floor", "lamp"}},
		},
	})
	require.Equal(t, http.StatusOK, code, "recommendations response: %v", body)
	recs, ok := body["recommendations"].([]interface{})
	require.True(t, ok)
	require.Len(t, recs, 2)
	assert.Equal(t, 2.0, body["total"])

	sofa := recs[0].(map[string]interface{})
	assert.Equal(t, "Modern Sofa", sofa["item"])
	assert.Equal(t, "Seating", sofa["category"])
	sofaProducts := sofa["products"].([]interface{})
	assert.LessOrEqual(t, len(sofaProducts), 5)
	// Price cap at 1.5x the estimate: 400 -> 600 excludes the 749 item
	for _, p := range sofaProducts {
		price := p.(map[string]interface{})["price"].(map[string]interface{})
		assert.LessOrEqual(t, price["amount"].(float64), 600.0)
	}

	// A low estimate filters the catalog hard: 80 -> 120 leaves nothing
	lamp := recs[1].(map[string]interface{})
	lampProducts, _ := lamp["products"].([]interface{})
	assert.Empty(t, lampProducts)
}

func TestRecommendations_FromDesign(t *testing.T) {
	ts := newTestServer(t, withGenerator(failingGenerator{}))
	token := ts.registerUser(t, "recs-design@example.com")
	roomID := ts.createRoom(t, token, "Rec Room")

	design := ts.generateDesign(t, token, roomID)
	designID := design["id"].(string)

	code, body := ts.do(t, http.MethodPost, "/api/products/recommendations", token, gin.H{
		"designId": designID,
	})
	require.Equal(t, http.StatusOK, code, "recommendations response: %v", body)
	recs := body["recommendations"].([]interface{})
	require.Len(t, recs, 1)
	assert.Equal(t, "Modern Sofa", recs[0].(map[string]interface{})["item"])
}

func TestRecommendations_RequiresInput(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "recs-bad@example.com")

	code, body := ts.do(t, http.MethodPost, "/api/products/recommendations", token, gin.H{})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Either designId or furnitureItems array is required", body["message"])

	// An unknown design id resolves to not-found
	code, body = ts.do(t, http.MethodPost, "/api/products/recommendations", token, gin.H{
		"designId": "00000000-0000-0000-0000-000000000001",
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Design not found", body["message"])
}

func TestFavoritesRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "favs@example.com")

	code, body := ts.do(t, http.MethodPost, "/api/products/favorites", token, gin.H{
		"asin":     "B08RSP001",
		"title":    "Modern Sofa",
		"price":    349.0,
		"imageUrl": "https://example.com/sofa.jpg",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Product saved to favorites", body["message"])
	favorite := body["favorite"].(map[string]interface{})
	assert.Equal(t, "B08RSP001", favorite["product_asin"])
	assert.Equal(t, 349.0, favorite["product_price"])

	code, body = ts.do(t, http.MethodGet, "/api/products/favorites", token, nil)
	require.Equal(t, http.StatusOK, code)
	favorites := body["favorites"].([]interface{})
	require.Len(t, favorites, 1)

	code, body = ts.do(t, http.MethodDelete, "/api/products/favorites/B08RSP001", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Product removed from favorites", body["message"])

	code, body = ts.do(t, http.MethodDelete, "/api/products/favorites/B08RSP001", token, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Favorite not found", body["message"])

	code, body = ts.do(t, http.MethodGet, "/api/products/favorites", token, nil)
	require.Equal(t, http.StatusOK, code)
	favorites, ok := body["favorites"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, favorites)
}

func TestFavorites_DuplicateRejected(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "favs-dup@example.com")

	code, _ := ts.do(t, http.MethodPost, "/api/products/favorites", token, gin.H{
		"asin":  "B08RSP001",
		"title": "Modern Sofa",
	})
	require.Equal(t, http.StatusCreated, code)

	code, body := ts.do(t, http.MethodPost, "/api/products/favorites", token, gin.H{
		"asin":  "B08RSP001",
		"title": "Modern Sofa",
	})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Product is already in favorites", body["message"])

	code, body = ts.do(t, http.MethodGet, "/api/products/favorites", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["favorites"].([]interface{}), 1)
}

func TestFavorites_Validation(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "favs-v@example.com")

	code, body := ts.do(t, http.MethodPost, "/api/products/favorites", token, gin.H{
		"title": "No ASIN",
	})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Validation error", body["message"])
	assert.Equal(t, "asin is required", body["details"])
}

func TestFavorites_OwnerScoped(t *testing.T) {
	ts := newTestServer(t)
	aliceToken := ts.registerUser(t, "alice-favs@example.com")
	bobToken := ts.registerUser(t, "bob-favs@example.com")

	code, _ := ts.do(t, http.MethodPost, "/api/products/favorites", aliceToken, gin.H{
		"asin":  "B08RSP002",
		"title": "Premium Sofa",
	})
	require.Equal(t, http.StatusCreated, code)

	// Bob sees no favorites and cannot remove Alice's
	code, body := ts.do(t, http.MethodGet, "/api/products/favorites", bobToken, nil)
	require.Equal(t, http.StatusOK, code)
	favorites, _ := body["favorites"].([]interface{})
	assert.Empty(t, favorites)

	code, _ = ts.do(t, http.MethodDelete, "/api/products/favorites/B08RSP002", bobToken, nil)
	assert.Equal(t, http.StatusNotFound, code)
}
