// internal/domain/catalog/upload.go
package catalog

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SaveImage stores an uploaded product image under the local storage path and
// returns its public URL.
func (s *Service) SaveImage(header *multipart.FileHeader) (string, error) {
	if header.Size > s.config.Upload.MaxSize {
		return "", fmt.Errorf("image exceeds maximum size of %d bytes", s.config.Upload.MaxSize)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if !imageExtAllowed(ext, s.config.Upload.AllowedImageExts) {
		return "", fmt.Errorf("image file type .%s is not allowed", ext)
	}

	filename := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(header.Filename))
	relativePath := filepath.Join("products", filename)
	fullPath := filepath.Join(s.config.Storage.LocalPath, relativePath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded image: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return s.config.Storage.PublicBaseURL + "/" + filepath.ToSlash(relativePath), nil
}

func imageExtAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(a, ext) {
			return true
		}
	}
	return false
}
