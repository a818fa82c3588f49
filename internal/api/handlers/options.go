package handlers

import (
	"net/http"

	"sheetsync/internal/logger"
	"sheetsync/internal/settings"

	"github.com/gin-gonic/gin"
)

type OptionsHandler struct {
	settings *settings.Service
	logger   *logger.Logger
}

func NewOptionsHandler(settings *settings.Service, logger *logger.Logger) *OptionsHandler {
	return &OptionsHandler{
		settings: settings,
		logger:   logger,
	}
}

// Update stores the allow-listed keys of the request body and echoes what
// was stored. Unknown keys are dropped silently.
func (h *OptionsHandler) Update(c *gin.Context) {
	var params map[string]interface{}
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body."})
		return
	}

	updated, err := h.settings.Update(c.Request.Context(), params)
	if err != nil {
		h.logger.Error("Failed to update options: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update options."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

func (h *OptionsHandler) Get(c *gin.Context) {
	cfg, err := h.settings.Load(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load options: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load options."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"hasJsonFile":      cfg.CredentialsPresent,
			"setupComplete":    cfg.SetupComplete,
			"spreadsheetId":    cfg.SpreadsheetID,
			"initialSetupDone": cfg.HeaderWritten,
			"clientId":         cfg.ClientID,
		},
	})
}
