package handlers

import (
	"net/http"

	"adaptly/internal/adaptation"
	"adaptly/internal/logger"

	"github.com/gin-gonic/gin"
)

type ChannelHandler struct {
	registry *adaptation.Registry
	logger   *logger.Logger
}

func NewChannelHandler(registry *adaptation.Registry, logger *logger.Logger) *ChannelHandler {
	return &ChannelHandler{
		registry: registry,
		logger:   logger,
	}
}

func (h *ChannelHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.registry.All()})
}

func (h *ChannelHandler) Get(c *gin.Context) {
	id := c.Param("id")

	schema, ok := h.registry.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Channel not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": schema})
}
