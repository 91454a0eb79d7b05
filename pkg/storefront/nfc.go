// pkg/storefront/nfc.go
package storefront

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// TagContent is the content shown after scanning a tag.
type TagContent struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Facts       []string `json:"facts"`
}

// MediaFile is a named file to upload.
type MediaFile struct {
	Name   string
	Reader io.Reader
}

// NFCClient fetches tag content and uploads scan media.
type NFCClient struct {
	client *Client
}

// NewNFCClient creates an NFC client.
func NewNFCClient(client *Client) *NFCClient {
	return &NFCClient{client: client}
}

// TagContent returns the content for a scanned tag. Unknown tags resolve to
// the backend's default content.
func (c *NFCClient) TagContent(ctx context.Context, tagID string) (*TagContent, error) {
	var content TagContent
	path := "/api/nfc-content/" + url.PathEscape(tagID)
	if err := c.client.doJSON(ctx, "GET", path, "", nil, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// UploadTagMedia uploads the photo and video captured for a tag. Both are
// required by the backend.
func (c *NFCClient) UploadTagMedia(ctx context.Context, tagID string, photo, video MediaFile) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, part := range []struct {
		field string
		file  MediaFile
	}{
		{"photo", photo},
		{"video", video},
	} {
		fw, err := writer.CreateFormFile(part.field, part.file.Name)
		if err != nil {
			return fmt.Errorf("build %s part: %w", part.field, err)
		}
		if _, err := io.Copy(fw, part.file.Reader); err != nil {
			return fmt.Errorf("read %s: %w", part.field, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finish upload form: %w", err)
	}

	path := "/api/upload/" + url.PathEscape(tagID)
	req, err := http.NewRequestWithContext(ctx, "POST", c.client.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.client.send(req, nil)
}
