package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToResponseKeepsImageOrder(t *testing.T) {
	p := Product{
		ID:       3,
		Name:     "Sarape",
		Price:    "$45.00",
		Category: "textiles",
		Images: []ProductImage{
			{URL: "/uploads/products/front.jpg", SortOrder: 0},
			{URL: "/uploads/products/back.jpg", SortOrder: 1},
			{URL: "/uploads/products/detail.jpg", SortOrder: 2},
		},
	}
	p.SetVariations(Variations{Sizes: []string{"S", "M", "L"}, Colors: []string{"rojo"}, HasNfcOption: true})

	resp := p.ToResponse()

	assert.Equal(t, []string{"/uploads/products/front.jpg", "/uploads/products/back.jpg", "/uploads/products/detail.jpg"}, resp.Images)
	assert.Equal(t, []string{"S", "M", "L"}, resp.Variations.Sizes)
	assert.Equal(t, []string{"rojo"}, resp.Variations.Colors)
	assert.True(t, resp.Variations.HasNfcOption)
}

func TestToResponseWithEmptyVariations(t *testing.T) {
	p := Product{ID: 1, Name: "Mug", Price: "$25.00"}

	resp := p.ToResponse()

	// Decodes to empty lists, never nil, so the wire shape always carries
	// sizes/colors arrays.
	assert.NotNil(t, resp.Variations.Sizes)
	assert.Empty(t, resp.Variations.Sizes)
	assert.NotNil(t, resp.Variations.Colors)
	assert.Empty(t, resp.Variations.Colors)
	assert.Empty(t, resp.Images)
}

func TestVariationListCorruptColumnDecodesEmpty(t *testing.T) {
	p := Product{Sizes: "{not json"}

	assert.Empty(t, p.ToResponse().Variations.Sizes)
}

func TestWriteRequestImageList(t *testing.T) {
	req := ProductWriteRequest{ImageURL: "/uploads/products/a.jpg"}
	assert.Equal(t, []string{"/uploads/products/a.jpg"}, req.imageList())

	req.Images = []string{"/uploads/products/b.jpg", "/uploads/products/c.jpg"}
	assert.Equal(t, req.Images, req.imageList())

	assert.Nil(t, (&ProductWriteRequest{}).imageList())
}
