package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"sheetsync/internal/logger"
	"sheetsync/internal/mapper"
	"sheetsync/internal/syncer"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	syncer *syncer.Orchestrator
	logger *logger.Logger
}

func NewWebhookHandler(syncer *syncer.Orchestrator, logger *logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		syncer: syncer,
		logger: logger,
	}
}

type sheetEditRequest struct {
	ProductID   interface{}   `json:"product_id"`
	ProductData []interface{} `json:"product_data"`
}

// SyncFromSheet applies an edited sheet row to its product.
func (h *WebhookHandler) SyncFromSheet(c *gin.Context) {
	var req sheetEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body."})
		return
	}

	productID, ok := parseProductID(req.ProductID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product ID is required."})
		return
	}

	res, err := h.syncer.ApplySheetEdit(c.Request.Context(), productID, mapper.RowFromValues(req.ProductData))
	if err != nil {
		switch {
		case errors.Is(err, syncer.ErrProductNotFound):
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"code":    "product_not_found",
				"message": "Product not found.",
			})
		case errors.Is(err, syncer.ErrRowMismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"code":    "row_mismatch",
				"message": "Row does not belong to this product.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update product."})
		}
		return
	}

	skipped := make([]string, 0, len(res.Skipped))
	for _, s := range res.Skipped {
		skipped = append(skipped, s.Column)
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product updated successfully.",
		"applied": res.Applied,
		"skipped": skipped,
	})
}

// parseProductID accepts a positive integral number or numeric string.
func parseProductID(v interface{}) (int64, bool) {
	switch t := v.(type) {
	case float64:
		if t <= 0 || t != math.Trunc(t) || t >= math.MaxInt64 {
			return 0, false
		}
		return int64(t), true
	case json.Number:
		id, err := t.Int64()
		return id, err == nil && id > 0
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		return id, err == nil && id > 0
	default:
		return 0, false
	}
}
