// internal/domain/nfc/entity.go
package nfc

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// TagContent represents the editorial content served for an NFC tag.
type TagContent struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	TagID       string         `gorm:"uniqueIndex;not null;size:100" json:"tag_id"`
	Title       string         `gorm:"not null;size:255" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Facts       string         `gorm:"type:text" json:"-"` // JSON-encoded string list
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TagMedia represents a visitor-uploaded file bound to a tag.
type TagMedia struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TagID        string    `gorm:"not null;index;size:100" json:"tag_id"`
	Kind         string    `gorm:"not null;size:20" json:"kind"` // photo or video
	OriginalName string    `gorm:"size:255" json:"original_name"`
	Filename     string    `gorm:"not null;size:255" json:"filename"`
	Path         string    `gorm:"not null;size:500" json:"-"`
	URL          string    `gorm:"not null;size:500" json:"url"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName overrides
func (TagContent) TableName() string { return "nfc_tag_contents" }
func (TagMedia) TableName() string   { return "nfc_tag_media" }

// ContentResponse is the wire shape of tag content.
type ContentResponse struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Facts       []string `json:"facts"`
}

// ToResponse converts tag content to its wire shape.
func (t *TagContent) ToResponse() ContentResponse {
	facts := []string{}
	if t.Facts != "" {
		if err := json.Unmarshal([]byte(t.Facts), &facts); err != nil {
			facts = []string{}
		}
	}
	return ContentResponse{
		Title:       t.Title,
		Description: t.Description,
		Facts:       facts,
	}
}

// SetFacts stores the fact list on the entity.
func (t *TagContent) SetFacts(facts []string) {
	if len(facts) == 0 {
		t.Facts = "[]"
		return
	}
	data, err := json.Marshal(facts)
	if err != nil {
		t.Facts = "[]"
		return
	}
	t.Facts = string(data)
}
