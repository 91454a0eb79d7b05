// pkg/storefront/admin.go
package storefront

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"
)

// ProductWrite is the payload for creating or updating a product. Either a
// single ImageURL or a full Images gallery may be submitted; the gallery
// wins when both are set.
type ProductWrite struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Price       string      `json:"price"`
	Category    string      `json:"category,omitempty"`
	Details     string      `json:"details,omitempty"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	Images      []string    `json:"images,omitempty"`
	Variations  *Variations `json:"variations,omitempty"`
}

// AdminClient drives the admin endpoints. It holds a single bearer token
// slot backed by a TokenStore so the session survives restarts. Any
// 401/403 from the backend clears the slot and surfaces ErrUnauthorized.
type AdminClient struct {
	client *Client
	tokens TokenStore

	mu    sync.Mutex
	token string
}

// NewAdminClient creates an admin client. The slot starts from whatever
// token the store already holds; a store error just leaves it empty.
func NewAdminClient(client *Client, tokens TokenStore) *AdminClient {
	a := &AdminClient{
		client: client,
		tokens: tokens,
	}
	if tokens != nil {
		if token, err := tokens.Load(); err == nil {
			a.token = token
		}
	}
	return a
}

// Login authenticates and fills the token slot. The token itself is
// opaque; nothing here inspects or refreshes it.
func (a *AdminClient) Login(ctx context.Context, username, password string) error {
	req := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}

	var resp struct {
		Token string `json:"token"`
	}
	if err := a.client.doJSON(ctx, "POST", "/api/auth/login", "", req, &resp); err != nil {
		return err
	}
	if resp.Token == "" {
		return fmt.Errorf("login response carried no token")
	}

	a.setToken(resp.Token)
	return nil
}

// HasSession reports whether the token slot is filled. It says nothing
// about whether the backend still accepts the token.
func (a *AdminClient) HasSession() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token != ""
}

// Logout clears the token slot.
func (a *AdminClient) Logout() {
	a.setToken("")
}

// ListProducts returns the full catalog through the admin surface.
func (a *AdminClient) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := a.do(ctx, "GET", "/api/admin/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct creates a product.
func (a *AdminClient) CreateProduct(ctx context.Context, product ProductWrite) (*Product, error) {
	var created Product
	if err := a.do(ctx, "POST", "/api/admin/products", product, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct replaces a product's fields.
func (a *AdminClient) UpdateProduct(ctx context.Context, id int, product ProductWrite) (*Product, error) {
	var updated Product
	if err := a.do(ctx, "PUT", fmt.Sprintf("/api/admin/products/%d", id), product, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct deletes a product.
func (a *AdminClient) DeleteProduct(ctx context.Context, id int) error {
	return a.do(ctx, "DELETE", fmt.Sprintf("/api/admin/products/%d", id), nil, nil)
}

// UploadProductImage uploads a product image and returns its public URL.
func (a *AdminClient) UploadProductImage(ctx context.Context, image MediaFile) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fw, err := writer.CreateFormFile("productImage", image.Name)
	if err != nil {
		return "", fmt.Errorf("build image part: %w", err)
	}
	if _, err := io.Copy(fw, image.Reader); err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finish upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", a.client.baseURL+"/api/admin/upload-product-image", &buf)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token := a.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	var resp struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := a.client.send(req, &resp); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			a.setToken("")
		}
		return "", err
	}
	return resp.ImageURL, nil
}

// do performs an authenticated JSON request, clearing the token slot on a
// 401/403 so the caller can re-authenticate.
func (a *AdminClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	err := a.client.doJSON(ctx, method, path, a.currentToken(), body, out)
	if errors.Is(err, ErrUnauthorized) {
		a.setToken("")
	}
	return err
}

func (a *AdminClient) currentToken() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token
}

func (a *AdminClient) setToken(token string) {
	a.mu.Lock()
	a.token = token
	a.mu.Unlock()

	if a.tokens == nil {
		return
	}
	if token == "" {
		_ = a.tokens.Clear()
		return
	}
	_ = a.tokens.Save(token)
}
