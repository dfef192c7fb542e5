package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"adaptly/internal/adaptation"
	"adaptly/internal/currency"
	"adaptly/internal/logger"
	"adaptly/internal/models"
)

type fakeProducts map[string]*models.Product

func (f fakeProducts) Get(id string) (*models.Product, error) {
	if p, ok := f[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func testProduct(id string) *models.Product {
	sku := "SKU-" + id
	return &models.Product{
		ID:          id,
		SKU:         &sku,
		Title:       "Ceramic Mug",
		Description: "A mug.",
		Price:       decimal.RequireFromString("12.50"),
		Currency:    "EUR",
		Category:    "home",
		Images:      []models.ProductImage{{URL: "https://cdn.example.com/mug.jpg"}},
	}
}

func newTestRouter(products fakeProducts) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.New("error")
	engine := adaptation.NewEngine(adaptation.NewRegistry(), currency.Default(), log)

	adaptHandler := NewAdaptHandler(engine, products, log)
	channelHandler := NewChannelHandler(engine.Registry(), log)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/products/:id/adapt/:channel", adaptHandler.AdaptStored)
	v1.POST("/adapt/:channel", adaptHandler.Preview)
	v1.POST("/adapt/:channel/bulk", adaptHandler.Bulk)
	v1.GET("/channels", channelHandler.List)
	v1.GET("/channels/:id", channelHandler.Get)
	return router
}

func TestAdaptStored(t *testing.T) {
	router := newTestRouter(fakeProducts{"p1": testProduct("p1")})

	t.Run("adapts an existing product", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/products/p1/adapt/ebay", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data adaptation.Result `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Data.Valid)
		require.NotNil(t, body.Data.Adapted)
		assert.Equal(t, "Home & Garden", body.Data.Adapted.Category)
	})

	t.Run("unknown channel still returns a result", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/products/p1/adapt/myspace", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data adaptation.Result `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Data.Valid)
		require.Len(t, body.Data.Errors, 1)
		assert.Equal(t, adaptation.CodeSchemaNotFound, body.Data.Errors[0].Code)
	})

	t.Run("unknown product is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/products/ghost/adapt/ebay", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPreview(t *testing.T) {
	router := newTestRouter(fakeProducts{})

	t.Run("adapts an inline product", func(t *testing.T) {
		payload, err := json.Marshal(testProduct("draft"))
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/adapt/shopify", strings.NewReader(string(payload)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data adaptation.Result `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Data.Valid)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/adapt/shopify", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBulk(t *testing.T) {
	router := newTestRouter(fakeProducts{
		"p1": testProduct("p1"),
		"p2": testProduct("p2"),
	})

	t.Run("returns per-product results in request order", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/adapt/ebay/bulk",
			strings.NewReader(`{"product_ids":["p2","ghost","p1"]}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data []bulkAdaptItem `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Data, 3)

		assert.Equal(t, "p2", body.Data[0].ProductID)
		assert.True(t, body.Data[0].Result.Valid)

		assert.Equal(t, "ghost", body.Data[1].ProductID)
		assert.Nil(t, body.Data[1].Result)
		assert.Equal(t, "product not found", body.Data[1].Error)

		assert.Equal(t, "p1", body.Data[2].ProductID)
		assert.True(t, body.Data[2].Result.Valid)
	})

	t.Run("missing product_ids is 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/adapt/ebay/bulk", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestChannelEndpoints(t *testing.T) {
	router := newTestRouter(fakeProducts{})

	t.Run("lists all schemas", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/channels", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data []adaptation.ChannelSchema `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Data)
	})

	t.Run("fetches one schema", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/channels/tiktok", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data adaptation.ChannelSchema `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "TikTok Shop", body.Data.Name)
		require.NotNil(t, body.Data.AspectRatio)
		assert.True(t, body.Data.AspectRatio.Fatal)
	})

	t.Run("unknown schema is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/channels/myspace", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
