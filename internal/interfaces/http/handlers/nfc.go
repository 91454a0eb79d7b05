// internal/interfaces/http/handlers/nfc.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/nfc"
	"gorm.io/gorm"
)

// NFCHandler handles NFC tag content and media upload endpoints
type NFCHandler struct {
	nfcService *nfc.Service
	config     *config.Config
}

// NewNFCHandler creates a new NFC handler
func NewNFCHandler(db *gorm.DB, cfg *config.Config) *NFCHandler {
	return &NFCHandler{
		nfcService: nfc.NewService(db, cfg),
		config:     cfg,
	}
}

// GetContent handles GET /nfc-content/:tagId
func (h *NFCHandler) GetContent(c *gin.Context) {
	content, err := h.nfcService.GetContent(c.Param("tagId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, content)
}

// UploadMedia handles POST /upload/:tagId with photo and video parts
func (h *NFCHandler) UploadMedia(c *gin.Context) {
	photo, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No photo provided",
		})
		return
	}

	video, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No video provided",
		})
		return
	}

	result, err := h.nfcService.SaveMedia(&nfc.MediaUploadRequest{
		TagID: c.Param("tagId"),
		Photo: photo,
		Video: video,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Media uploaded successfully",
		"upload":  result,
	})
}
