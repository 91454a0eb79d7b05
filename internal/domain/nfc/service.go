// internal/domain/nfc/service.go
package nfc

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/config"
	"gorm.io/gorm"
)

// DefaultTagID is the fallback content row served for tags that have no
// dedicated entry.
const DefaultTagID = "default"

// Service handles NFC tag content and media uploads
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new NFC service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// MediaUploadRequest represents the photo+video pair uploaded for a tag.
// Both parts are required.
type MediaUploadRequest struct {
	TagID string
	Photo *multipart.FileHeader
	Video *multipart.FileHeader
}

// MediaUploadResult reports where the uploaded files landed.
type MediaUploadResult struct {
	TagID    string `json:"tag_id"`
	PhotoURL string `json:"photo_url"`
	VideoURL string `json:"video_url"`
}

// GetContent returns the content for a tag, falling back to the default
// content row when the tag has no dedicated entry.
func (s *Service) GetContent(tagID string) (*ContentResponse, error) {
	var content TagContent
	err := s.db.Where("tag_id = ?", tagID).First(&content).Error
	if err == gorm.ErrRecordNotFound {
		err = s.db.Where("tag_id = ?", DefaultTagID).First(&content).Error
	}
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("no content for tag")
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve tag content: %w", err)
	}

	response := content.ToResponse()
	return &response, nil
}

// SaveMedia stores the uploaded photo and video for a tag and records them.
func (s *Service) SaveMedia(req *MediaUploadRequest) (*MediaUploadResult, error) {
	if req.Photo == nil || req.Video == nil {
		return nil, fmt.Errorf("both photo and video are required")
	}

	photo, err := s.saveFile(req.TagID, "photo", req.Photo, s.config.Upload.AllowedImageExts)
	if err != nil {
		return nil, err
	}
	video, err := s.saveFile(req.TagID, "video", req.Video, s.config.Upload.AllowedVideoExts)
	if err != nil {
		// Keep the pair atomic on disk
		os.Remove(filepath.Join(s.config.Storage.LocalPath, photo.Path))
		return nil, err
	}

	if err := s.db.Create(photo).Error; err != nil {
		return nil, fmt.Errorf("failed to record photo: %w", err)
	}
	if err := s.db.Create(video).Error; err != nil {
		return nil, fmt.Errorf("failed to record video: %w", err)
	}

	return &MediaUploadResult{
		TagID:    req.TagID,
		PhotoURL: photo.URL,
		VideoURL: video.URL,
	}, nil
}

func (s *Service) saveFile(tagID, kind string, header *multipart.FileHeader, allowedExts []string) (*TagMedia, error) {
	if header.Size > s.config.Upload.MaxSize {
		return nil, fmt.Errorf("%s exceeds maximum size of %d bytes", kind, s.config.Upload.MaxSize)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if !extAllowed(ext, allowedExts) {
		return nil, fmt.Errorf("%s file type .%s is not allowed", kind, ext)
	}

	filename := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(header.Filename))
	relativePath := filepath.Join("nfc", tagID, filename)
	fullPath := filepath.Join(s.config.Storage.LocalPath, relativePath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded %s: %w", kind, err)
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", kind, err)
	}

	return &TagMedia{
		TagID:        tagID,
		Kind:         kind,
		OriginalName: header.Filename,
		Filename:     filename,
		Path:         relativePath,
		URL:          s.config.Storage.PublicBaseURL + "/" + filepath.ToSlash(relativePath),
		Size:         header.Size,
	}, nil
}

func extAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(a, ext) {
			return true
		}
	}
	return false
}
