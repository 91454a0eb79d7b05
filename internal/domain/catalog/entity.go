// internal/domain/catalog/entity.go
package catalog

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Product represents a catalog product. The price is the display string of
// record ("$25.00"); numeric amounts are derived from it only where a
// consumer needs them.
type Product struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null;size:255" json:"name"`
	Description  string         `gorm:"type:text" json:"description"`
	Price        string         `gorm:"not null;size:50" json:"price"`
	Category     string         `gorm:"size:100;index" json:"category"`
	Details      string         `gorm:"type:text" json:"details"`
	Sizes        string         `gorm:"size:500" json:"-"` // JSON-encoded string list
	Colors       string         `gorm:"size:500" json:"-"` // JSON-encoded string list
	HasNfcOption bool           `gorm:"default:false" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Images []ProductImage `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images,omitempty"`
}

// ProductImage represents one entry of a product's ordered image gallery.
type ProductImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	URL       string    `gorm:"not null;size:500" json:"url"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides
func (Product) TableName() string      { return "products" }
func (ProductImage) TableName() string { return "product_images" }

// Variations describes the selectable options of a product.
type Variations struct {
	Sizes        []string `json:"sizes"`
	Colors       []string `json:"colors"`
	HasNfcOption bool     `json:"hasNfcOption"`
}

// ProductResponse is the wire shape of a product.
type ProductResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       string     `json:"price"`
	Category    string     `json:"category"`
	Images      []string   `json:"images"`
	Details     string     `json:"details"`
	Variations  Variations `json:"variations"`
}

// ToResponse converts a product entity to its wire shape. Image order is
// the gallery's sort order.
func (p *Product) ToResponse() ProductResponse {
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img.URL)
	}

	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Images:      images,
		Details:     p.Details,
		Variations: Variations{
			Sizes:        decodeStringList(p.Sizes),
			Colors:       decodeStringList(p.Colors),
			HasNfcOption: p.HasNfcOption,
		},
	}
}

// SetVariations stores the variation lists on the entity.
func (p *Product) SetVariations(v Variations) {
	p.Sizes = encodeStringList(v.Sizes)
	p.Colors = encodeStringList(v.Colors)
	p.HasNfcOption = v.HasNfcOption
}

func encodeStringList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeStringList(data string) []string {
	if data == "" {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return []string{}
	}
	return values
}
