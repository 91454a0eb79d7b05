// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"math"

	"github.com/sirupsen/logrus"
)

// Service binds the cart reducer to a snapshot store. Every mutation loads
// the session's cart, applies the state transition, saves the result and
// returns it. Persistence failures are logged and returned alongside the
// updated cart; callers that only care about current behavior may ignore
// them, but the failure path stays inspectable.
type Service struct {
	store Store
	log   *logrus.Logger
}

// NewService creates a new cart service.
func NewService(store Store, log *logrus.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
	}
}

// CartResponse represents a cart with its derived totals.
type CartResponse struct {
	Items     Cart    `json:"items"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

// Get returns the session's cart. An unreadable or corrupt snapshot is
// swallowed: the session starts over with an empty cart and a log line.
func (s *Service) Get(ctx context.Context, sessionID string) Cart {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		s.log.WithError(err).WithField("session_id", sessionID).
			Warn("Failed to restore cart, starting empty")
		return Cart{}
	}
	return c
}

// Add merges a candidate into the session's cart.
func (s *Service) Add(ctx context.Context, sessionID string, candidate Candidate) (Cart, error) {
	return s.mutate(ctx, sessionID, func(c Cart) Cart {
		return c.Add(candidate)
	})
}

// RemoveProduct removes every slot with the given product id.
func (s *Service) RemoveProduct(ctx context.Context, sessionID string, productID int) (Cart, error) {
	return s.mutate(ctx, sessionID, func(c Cart) Cart {
		return c.RemoveProduct(productID)
	})
}

// SetQuantity sets the quantity on every slot with the given product id;
// zero or negative removes them.
func (s *Service) SetQuantity(ctx context.Context, sessionID string, productID, quantity int) (Cart, error) {
	return s.mutate(ctx, sessionID, func(c Cart) Cart {
		return c.SetQuantity(productID, quantity)
	})
}

// Clear empties the session's cart.
func (s *Service) Clear(ctx context.Context, sessionID string) (Cart, error) {
	return s.mutate(ctx, sessionID, func(c Cart) Cart {
		return c.Clear()
	})
}

// Respond builds the wire representation of a cart.
func Respond(c Cart) CartResponse {
	return CartResponse{
		Items:     c,
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
}

// MarshalJSON encodes a poisoned (NaN) total as null. encoding/json refuses
// NaN outright, and JSON.stringify serialized it as null before.
func (r CartResponse) MarshalJSON() ([]byte, error) {
	type alias CartResponse
	out := struct {
		alias
		Total *float64 `json:"total"`
	}{alias: alias(r)}
	if !math.IsNaN(r.Total) {
		out.Total = &r.Total
	}
	return json.Marshal(out)
}

func (s *Service) mutate(ctx context.Context, sessionID string, apply func(Cart) Cart) (Cart, error) {
	next := apply(s.Get(ctx, sessionID))

	if err := s.store.Save(ctx, sessionID, next); err != nil {
		s.log.WithError(err).WithField("session_id", sessionID).
			Warn("Failed to persist cart")
		return next, err
	}
	return next, nil
}
