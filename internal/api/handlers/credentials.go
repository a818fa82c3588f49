package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"sheetsync/internal/credentials"
	"sheetsync/internal/logger"

	"github.com/gin-gonic/gin"
)

// CredentialsFormField is the multipart field carrying the key file.
const CredentialsFormField = "jsonFile"

type CredentialsHandler struct {
	store  *credentials.Store
	logger *logger.Logger
}

func NewCredentialsHandler(store *credentials.Store, logger *logger.Logger) *CredentialsHandler {
	return &CredentialsHandler{
		store:  store,
		logger: logger,
	}
}

func (h *CredentialsHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile(CredentialsFormField)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file uploaded."})
		return
	}
	defer file.Close()

	if strings.ToLower(filepath.Ext(header.Filename)) != ".json" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid file type. Please upload a JSON file."})
		return
	}

	if err := h.store.Save(file); err != nil {
		h.logger.Error("Failed to store credentials file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to move uploaded file."})
		return
	}

	h.logger.Info("Stored Google credentials file %s", header.Filename)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Credentials file uploaded successfully."})
}

func (h *CredentialsHandler) Get(c *gin.Context) {
	data, err := h.store.Data()
	switch {
	case errors.Is(err, credentials.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Credentials file not found."})
		return
	case errors.Is(err, credentials.ErrInvalidJSON):
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Invalid JSON data."})
		return
	case err != nil:
		h.logger.Error("Failed to read credentials file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to read credentials file."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}
