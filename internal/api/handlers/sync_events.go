package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"sheetsync/internal/logger"
	"sheetsync/internal/syncer"

	"github.com/gin-gonic/gin"
)

type SyncEventHandler struct {
	events *syncer.EventLog
	logger *logger.Logger
}

func NewSyncEventHandler(events *syncer.EventLog, logger *logger.Logger) *SyncEventHandler {
	return &SyncEventHandler{
		events: events,
		logger: logger,
	}
}

func (h *SyncEventHandler) List(c *gin.Context) {
	// Pagination
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	// Filters
	filter := syncer.EventFilter{
		Page:      page,
		Limit:     limit,
		Direction: c.Query("direction"),
		Status:    c.Query("status"),
	}
	if raw := c.Query("product_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id filter"})
			return
		}
		filter.ProductID = id
	}

	events, total, err := h.events.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list sync events: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sync events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": events,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

func (h *SyncEventHandler) Get(c *gin.Context) {
	event, err := h.events.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, syncer.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sync event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sync event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": event})
}
