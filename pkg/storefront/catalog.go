// pkg/storefront/catalog.go
package storefront

import (
	"context"
	"fmt"
	"net/url"
)

// Product is a catalog product as served by the backend. The price is a
// display string such as "$25.00"; it is never parsed here.
type Product struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       string     `json:"price"`
	Category    string     `json:"category"`
	Images      []string   `json:"images"`
	Details     string     `json:"details"`
	Variations  Variations `json:"variations"`
}

// Variations describes the selectable options of a product.
type Variations struct {
	Sizes        []string `json:"sizes"`
	Colors       []string `json:"colors"`
	HasNfcOption bool     `json:"hasNfcOption"`
}

// CatalogClient reads the public product catalog. Plain request/parse
// wrappers: no retries, no caching.
type CatalogClient struct {
	client *Client
}

// NewCatalogClient creates a catalog client.
func NewCatalogClient(client *Client) *CatalogClient {
	return &CatalogClient{client: client}
}

// ListProducts returns all products, optionally filtered by category.
// Category "" means no filter.
func (c *CatalogClient) ListProducts(ctx context.Context, category string) ([]Product, error) {
	path := "/api/products"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	var products []Product
	if err := c.client.doJSON(ctx, "GET", path, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns a single product by id.
func (c *CatalogClient) GetProduct(ctx context.Context, id int) (*Product, error) {
	var product Product
	if err := c.client.doJSON(ctx, "GET", fmt.Sprintf("/api/products/%d", id), "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
