// internal/domain/user/entity.go
package user

import (
	"time"

	"gorm.io/gorm"
)

// AdminUser represents an administrator account. The storefront has no
// shopper accounts; the only authenticated principal is the admin panel.
type AdminUser struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Username    string         `gorm:"uniqueIndex;not null;size:100" json:"username"`
	Password    string         `gorm:"not null;size:255" json:"-"` // bcrypt hash
	IsAdmin     bool           `gorm:"default:true" json:"is_admin"`
	LastLoginAt *time.Time     `json:"last_login_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (AdminUser) TableName() string {
	return "admin_users"
}
