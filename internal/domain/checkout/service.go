// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/config"
)

// Service creates hosted checkout sessions. Payment itself happens on an
// external page; this service prices the submitted items, stores the
// session and returns the redirect URL. Completion is never observed here:
// the payment provider redirects the shopper to the configured success or
// cancel URL and that is the end of our involvement.
type Service struct {
	redisClient *redis.Client
	config      *config.Config
}

// NewService creates a new checkout service
func NewService(redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		redisClient: redisClient,
		config:      cfg,
	}
}

// ItemRequest represents one line submitted for checkout. The price is the
// catalog's display string.
type ItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
	ImageURL    string `json:"imageUrl"`
}

// SessionItem represents a priced line inside a stored session.
type SessionItem struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitAmount int64  `json:"unit_amount"` // cents
	LineTotal  int64  `json:"line_total"`  // cents
	ImageURL   string `json:"image_url,omitempty"`
}

// Session represents a hosted checkout session
type Session struct {
	ID          string        `json:"id"`
	Items       []SessionItem `json:"items"`
	AmountTotal int64         `json:"amount_total"` // cents
	Currency    string        `json:"currency"`
	SuccessURL  string        `json:"success_url"`
	CancelURL   string        `json:"cancel_url"`
	CreatedAt   time.Time     `json:"created_at"`
	ExpiresAt   time.Time     `json:"expires_at"`
}

// URL returns the hosted payment page address for the session.
func (s *Session) URL(cfg *config.Config) string {
	return strings.TrimRight(cfg.Checkout.HostedPageBaseURL, "/") + "/" + s.ID
}

// CreateSession prices the submitted items and stores a new session. An
// empty item list is allowed and produces a zero-amount session. A display
// price that does not parse fails the whole request: garbage amounts must
// not reach the payment page.
func (s *Service) CreateSession(ctx context.Context, items []ItemRequest) (*Session, error) {
	now := time.Now().UTC()
	session := &Session{
		ID:         uuid.New().String(),
		Items:      make([]SessionItem, 0, len(items)),
		Currency:   s.config.Checkout.Currency,
		SuccessURL: s.config.Checkout.SuccessURL,
		CancelURL:  s.config.Checkout.CancelURL,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.config.Checkout.SessionTTL),
	}

	for _, item := range items {
		unitAmount, err := DisplayPriceToCents(item.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q for item %q: %w", item.Price, item.Name, err)
		}

		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}

		line := SessionItem{
			Name:       item.Name,
			Quantity:   quantity,
			UnitAmount: unitAmount,
			LineTotal:  unitAmount * int64(quantity),
			ImageURL:   item.ImageURL,
		}
		session.Items = append(session.Items, line)
		session.AmountTotal += line.LineTotal
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession retrieves a stored session by id.
func (s *Service) GetSession(ctx context.Context, id string) (*Session, error) {
	data, err := s.redisClient.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("checkout session not found or expired")
	} else if err != nil {
		return nil, fmt.Errorf("failed to load checkout session: %w", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to decode checkout session: %w", err)
	}
	return &session, nil
}

func (s *Service) saveSession(ctx context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode checkout session: %w", err)
	}
	if err := s.redisClient.Set(ctx, sessionKey(session.ID), data, s.config.Checkout.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save checkout session: %w", err)
	}
	return nil
}

func sessionKey(id string) string {
	return fmt.Sprintf("checkout:session:%s", id)
}

// DisplayPriceToCents converts a display price such as "$25.00" into an
// integer amount of cents. One leading currency symbol is stripped. Unlike
// the cart total, this path refuses unparseable prices.
func DisplayPriceToCents(price string) (int64, error) {
	trimmed := strings.TrimSpace(price)
	if r, size := utf8.DecodeRuneInString(trimmed); r != utf8.RuneError && unicode.Is(unicode.Sc, r) {
		trimmed = strings.TrimSpace(trimmed[size:])
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, fmt.Errorf("not a decimal amount")
	}
	if value.IsNegative() {
		return 0, fmt.Errorf("amount cannot be negative")
	}
	return value.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
