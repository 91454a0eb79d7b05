// internal/domain/cart/entity.go
package cart

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LineItem represents one cart slot. A slot is identified by the product id
// plus the three optional variation fields; the same product in two sizes
// occupies two slots. The JSON field names match the snapshot format the
// storefront has always persisted.
type LineItem struct {
	ProductID         int     `json:"id"`
	Name              string  `json:"name"`
	DisplayPrice      string  `json:"price"`
	ImageURL          string  `json:"imageUrl"`
	Quantity          int     `json:"quantity"`
	SelectedSize      *string `json:"selectedSize,omitempty"`
	SelectedColor     *string `json:"selectedColor,omitempty"`
	SelectedNfcOption *bool   `json:"selectedNfcOption,omitempty"`
}

// Candidate is a product being added to the cart. It carries no quantity;
// adding always contributes exactly one unit.
type Candidate struct {
	ProductID         int     `json:"id" binding:"required"`
	Name              string  `json:"name"`
	DisplayPrice      string  `json:"price"`
	ImageURL          string  `json:"imageUrl"`
	SelectedSize      *string `json:"selectedSize,omitempty"`
	SelectedColor     *string `json:"selectedColor,omitempty"`
	SelectedNfcOption *bool   `json:"selectedNfcOption,omitempty"`
}

// Cart is an ordered sequence of slots, unique by identity tuple, in
// first-seen order.
type Cart []LineItem

// SameSlot reports whether the candidate and the item share an identity
// tuple: product id plus size, color and NFC option, where an unset field
// only matches another unset field.
func (c Candidate) SameSlot(item LineItem) bool {
	return c.ProductID == item.ProductID &&
		eqStrPtr(c.SelectedSize, item.SelectedSize) &&
		eqStrPtr(c.SelectedColor, item.SelectedColor) &&
		eqBoolPtr(c.SelectedNfcOption, item.SelectedNfcOption)
}

func eqStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqBoolPtr(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Add merges the candidate into its slot, incrementing the quantity by one,
// or appends a new slot with quantity one. Existing slots keep their
// position; the cart is never reordered by repeat additions.
func (c Cart) Add(candidate Candidate) Cart {
	next := make(Cart, len(c))
	copy(next, c)

	for i := range next {
		if candidate.SameSlot(next[i]) {
			next[i].Quantity++
			return next
		}
	}

	return append(next, LineItem{
		ProductID:         candidate.ProductID,
		Name:              candidate.Name,
		DisplayPrice:      candidate.DisplayPrice,
		ImageURL:          candidate.ImageURL,
		Quantity:          1,
		SelectedSize:      candidate.SelectedSize,
		SelectedColor:     candidate.SelectedColor,
		SelectedNfcOption: candidate.SelectedNfcOption,
	})
}

// RemoveProduct drops every slot with the given product id, regardless of
// variation. Removing an absent id is a no-op.
func (c Cart) RemoveProduct(productID int) Cart {
	next := make(Cart, 0, len(c))
	for _, item := range c {
		if item.ProductID != productID {
			next = append(next, item)
		}
	}
	return next
}

// SetQuantity sets the quantity of every slot with the given product id.
// A quantity of zero or less removes those slots instead. No upper bound.
func (c Cart) SetQuantity(productID, quantity int) Cart {
	if quantity <= 0 {
		return c.RemoveProduct(productID)
	}
	next := make(Cart, len(c))
	copy(next, c)
	for i := range next {
		if next[i].ProductID == productID {
			next[i].Quantity = quantity
		}
	}
	return next
}

// Clear returns an empty cart.
func (c Cart) Clear() Cart {
	return Cart{}
}

// Total sums quantity times parsed display price over all slots. A display
// price that does not parse contributes NaN, which propagates through the
// sum.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c {
		total += ParseDisplayPrice(item.DisplayPrice) * float64(item.Quantity)
	}
	return total
}

// ItemCount sums the quantities over all slots.
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c {
		count += item.Quantity
	}
	return count
}

// ParseDisplayPrice parses a currency-formatted display price such as
// "$25.00". One leading currency symbol is stripped; the remainder must be
// a decimal number. Anything else yields NaN.
func ParseDisplayPrice(price string) float64 {
	s := strings.TrimSpace(price)
	if r, size := utf8.DecodeRuneInString(s); r != utf8.RuneError && unicode.Is(unicode.Sc, r) {
		s = strings.TrimSpace(s[size:])
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(value, 0) {
		return math.NaN()
	}
	return value
}
