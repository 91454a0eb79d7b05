// pkg/storefront/checkout.go
package storefront

import (
	"context"
	"fmt"
)

// CheckoutItem is one cart line submitted for checkout. Price is the
// catalog's display string; the backend does the parsing.
type CheckoutItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// CheckoutInitiator starts hosted checkout sessions. The returned URL
// points at the external payment page; what happens there is not observed
// by this client.
type CheckoutInitiator struct {
	client *Client
}

// NewCheckoutInitiator creates a checkout initiator.
func NewCheckoutInitiator(client *Client) *CheckoutInitiator {
	return &CheckoutInitiator{client: client}
}

// StartCheckout submits the items and returns the payment page URL to
// redirect the shopper to. An empty item list is allowed.
func (c *CheckoutInitiator) StartCheckout(ctx context.Context, items []CheckoutItem) (string, error) {
	req := struct {
		Items []CheckoutItem `json:"items"`
	}{Items: items}
	if req.Items == nil {
		req.Items = []CheckoutItem{}
	}

	var resp struct {
		URL string `json:"url"`
	}
	if err := c.client.doJSON(ctx, "POST", "/api/checkout", "", req, &resp); err != nil {
		return "", err
	}
	if resp.URL == "" {
		return "", fmt.Errorf("checkout response carried no url")
	}
	return resp.URL, nil
}
