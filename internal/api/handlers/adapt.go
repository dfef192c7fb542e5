package handlers

import (
	"net/http"

	"adaptly/internal/adaptation"
	"adaptly/internal/logger"
	"adaptly/internal/models"
	"adaptly/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdaptHandler struct {
	engine   *adaptation.Engine
	products store.ProductReader
	logger   *logger.Logger
}

func NewAdaptHandler(engine *adaptation.Engine, products store.ProductReader, logger *logger.Logger) *AdaptHandler {
	return &AdaptHandler{
		engine:   engine,
		products: products,
		logger:   logger,
	}
}

// AdaptStored adapts a stored product for one channel. The result is always
// 200 once the product exists; validity and findings live in the body so
// publish dialogs can render errors and warnings field by field.
func (h *AdaptHandler) AdaptStored(c *gin.Context) {
	id := c.Param("id")

	product, err := h.products.Get(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	result, err := h.engine.Adapt(product, c.Param("channel"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

// Preview adapts an inline canonical product that may not be saved yet.
func (h *AdaptHandler) Preview(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.engine.Adapt(&product, c.Param("channel"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

type bulkAdaptRequest struct {
	ProductIDs []string `json:"product_ids" binding:"required"`
}

type bulkAdaptItem struct {
	ProductID string             `json:"product_id"`
	Result    *adaptation.Result `json:"result,omitempty"`
	Error     string             `json:"error,omitempty"`
}

// Bulk adapts a batch of stored products for one channel. Items come back in
// request order; an unknown id gets its own error entry and the rest of the
// batch still runs.
func (h *AdaptHandler) Bulk(c *gin.Context) {
	var req bulkAdaptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	channel := c.Param("channel")
	items := make([]bulkAdaptItem, 0, len(req.ProductIDs))

	for _, id := range req.ProductIDs {
		product, err := h.products.Get(id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				items = append(items, bulkAdaptItem{ProductID: id, Error: "product not found"})
				continue
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		result, err := h.engine.Adapt(product, channel)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		items = append(items, bulkAdaptItem{ProductID: id, Result: result})
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}
