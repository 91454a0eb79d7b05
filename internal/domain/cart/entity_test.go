package cart

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func candidate(id int, price string) Candidate {
	return Candidate{ProductID: id, Name: "Talavera Mug", DisplayPrice: price, ImageURL: "/uploads/mug.jpg"}
}

func TestAddMergesIdenticalTuples(t *testing.T) {
	c := Cart{}
	p := candidate(1, "$25.00")
	p.SelectedSize = strPtr("M")

	for i := 0; i < 5; i++ {
		c = c.Add(p)
	}

	require.Len(t, c, 1)
	assert.Equal(t, 5, c[0].Quantity)
}

func TestAddAppendsDistinctTuplesInFirstSeenOrder(t *testing.T) {
	variants := []Candidate{
		candidate(1, "$25.00"),
		{ProductID: 1, DisplayPrice: "$25.00", SelectedSize: strPtr("M")},
		{ProductID: 1, DisplayPrice: "$25.00", SelectedSize: strPtr("L")},
		{ProductID: 1, DisplayPrice: "$25.00", SelectedSize: strPtr("M"), SelectedColor: strPtr("azul")},
		{ProductID: 1, DisplayPrice: "$25.00", SelectedSize: strPtr("M"), SelectedNfcOption: boolPtr(true)},
		{ProductID: 2, DisplayPrice: "$10.00"},
	}

	c := Cart{}
	for _, v := range variants {
		c = c.Add(v)
	}

	require.Len(t, c, len(variants))
	for i, v := range variants {
		assert.True(t, v.SameSlot(c[i]), "slot %d out of order", i)
		assert.Equal(t, 1, c[i].Quantity)
	}
}

func TestAddDistinguishesUnsetFromConcreteValues(t *testing.T) {
	c := Cart{}
	c = c.Add(Candidate{ProductID: 1, DisplayPrice: "$5.00"})
	c = c.Add(Candidate{ProductID: 1, DisplayPrice: "$5.00", SelectedNfcOption: boolPtr(false)})

	// nil and false render the same but are different slots
	require.Len(t, c, 2)
}

func TestAddDoesNotReorderOnRepeat(t *testing.T) {
	c := Cart{}
	first := Candidate{ProductID: 1, DisplayPrice: "$1.00", SelectedSize: strPtr("M")}
	second := Candidate{ProductID: 2, DisplayPrice: "$2.00"}

	c = c.Add(first)
	c = c.Add(second)
	c = c.Add(first)

	require.Len(t, c, 2)
	assert.Equal(t, 1, c[0].ProductID)
	assert.Equal(t, 2, c[0].Quantity)
	assert.Equal(t, 2, c[1].ProductID)
}

func TestRemoveProductDropsEverySlotForThatID(t *testing.T) {
	c := Cart{}
	c = c.Add(Candidate{ProductID: 1, DisplayPrice: "$25.00", SelectedSize: strPtr("M")})
	c = c.Add(Candidate{ProductID: 1, DisplayPrice: "$25.00", SelectedSize: strPtr("L")})
	require.Len(t, c, 2)

	c = c.RemoveProduct(1)

	assert.Empty(t, c)
}

func TestRemoveAbsentProductIsNoOp(t *testing.T) {
	c := Cart{}.Add(candidate(1, "$25.00"))

	assert.Equal(t, c, c.RemoveProduct(99))
}

func TestSetQuantityZeroMatchesRemove(t *testing.T) {
	build := func() Cart {
		c := Cart{}
		c = c.Add(Candidate{ProductID: 1, DisplayPrice: "$25.00", SelectedSize: strPtr("M")})
		c = c.Add(Candidate{ProductID: 1, DisplayPrice: "$25.00", SelectedSize: strPtr("L")})
		c = c.Add(candidate(2, "$10.00"))
		return c
	}

	assert.Equal(t, build().RemoveProduct(1), build().SetQuantity(1, 0))
	assert.Equal(t, build().RemoveProduct(1), build().SetQuantity(1, -1))
}

func TestSetQuantityAppliesToEverySlotForThatID(t *testing.T) {
	c := Cart{}
	c = c.Add(Candidate{ProductID: 1, DisplayPrice: "$25.00", SelectedSize: strPtr("M")})
	c = c.Add(Candidate{ProductID: 1, DisplayPrice: "$25.00", SelectedSize: strPtr("L")})
	c = c.Add(candidate(2, "$10.00"))

	c = c.SetQuantity(1, 7)

	require.Len(t, c, 3)
	assert.Equal(t, 7, c[0].Quantity)
	assert.Equal(t, 7, c[1].Quantity)
	assert.Equal(t, 1, c[2].Quantity)
}

func TestItemCountTracksQuantities(t *testing.T) {
	c := Cart{}
	assert.Equal(t, 0, c.ItemCount())

	c = c.Add(candidate(1, "$25.00"))
	c = c.Add(candidate(1, "$25.00"))
	c = c.Add(candidate(2, "$10.00"))
	assert.Equal(t, 3, c.ItemCount())

	c = c.SetQuantity(2, 4)
	assert.Equal(t, 6, c.ItemCount())

	c = c.RemoveProduct(1)
	assert.Equal(t, 4, c.ItemCount())

	assert.Equal(t, 0, c.Clear().ItemCount())
}

func TestTotal(t *testing.T) {
	c := Cart{}
	c = c.Add(candidate(1, "$25.00"))
	c = c.SetQuantity(1, 3)

	assert.InDelta(t, 75.00, c.Total(), 1e-9)
}

func TestTotalPoisonedByUnparseablePrice(t *testing.T) {
	c := Cart{}
	c = c.Add(candidate(1, "$25.00"))
	c = c.Add(candidate(2, "gratis"))

	assert.True(t, math.IsNaN(c.Total()))
}

func TestParseDisplayPrice(t *testing.T) {
	tests := []struct {
		name  string
		price string
		want  float64
	}{
		{"dollar prefix", "$25.00", 25},
		{"euro prefix", "€9.50", 9.5},
		{"peso prefix", "$1299.99", 1299.99},
		{"bare number", "25", 25},
		{"padded", " $ 3.50 ", 3.5},
		{"zero", "$0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseDisplayPrice(tt.price), 1e-9)
		})
	}

	for _, bad := range []string{"", "$", "gratis", "25,00 MXN", "USD 25"} {
		assert.True(t, math.IsNaN(ParseDisplayPrice(bad)), "expected NaN for %q", bad)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := Cart{}
	c = c.Add(Candidate{ProductID: 1, Name: "Sarape", DisplayPrice: "$45.00", ImageURL: "/uploads/sarape.jpg", SelectedSize: strPtr("M"), SelectedColor: strPtr("rojo"), SelectedNfcOption: boolPtr(true)})
	c = c.Add(candidate(2, "$10.00"))
	c = c.Add(candidate(2, "$10.00"))

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var restored Cart
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, c, restored)
}

func TestResponseEncodesNaNTotalAsNull(t *testing.T) {
	c := Cart{}.Add(candidate(1, "invalid"))

	data, err := json.Marshal(Respond(c))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total":null`)
}
