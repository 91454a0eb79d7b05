// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/nfc"
	"github.com/your-org/storefront-backend/internal/domain/user"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Define all models that need migration in dependency order
	models := []interface{}{
		// User domain
		&user.AdminUser{},

		// Catalog domain
		&catalog.Product{},
		&catalog.ProductImage{},

		// NFC domain
		&nfc.TagContent{},
		&nfc.TagMedia{},
	}

	// Run auto-migration for each model
	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",

		// Product image indexes
		"CREATE INDEX IF NOT EXISTS idx_product_images_sort_order ON product_images(product_id, sort_order)",

		// NFC indexes
		"CREATE INDEX IF NOT EXISTS idx_nfc_tag_contents_tag_id ON nfc_tag_contents(tag_id)",
		"CREATE INDEX IF NOT EXISTS idx_nfc_tag_media_tag_kind ON nfc_tag_media(tag_id, kind)",
	}

	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	log.Println("✅ Database indexes created successfully")
	return nil
}

// SeedInitialData seeds the default NFC tag content and sample products in
// development
func (m *Migration) SeedInitialData() error {
	log.Println("🔄 Seeding initial data...")

	if err := m.seedDefaultTagContent(); err != nil {
		return err
	}
	if err := m.seedSampleProducts(); err != nil {
		return err
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

func (m *Migration) seedDefaultTagContent() error {
	var count int64
	if err := m.db.Model(&nfc.TagContent{}).Where("tag_id = ?", nfc.DefaultTagID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check tag content: %w", err)
	}
	if count > 0 {
		return nil
	}

	content := nfc.TagContent{
		TagID:       nfc.DefaultTagID,
		Title:       "Tlaxcala",
		Description: "Tlaxcala es el estado más pequeño de México, conocido como la cuna de la nación por su papel en la historia del país.",
	}
	content.SetFacts([]string{
		"Tlaxcala es el estado más pequeño de México.",
		"Su nombre significa 'lugar de tortillas de maíz' en náhuatl.",
		"La alianza tlaxcalteca fue decisiva en la historia de la conquista.",
	})

	if err := m.db.Create(&content).Error; err != nil {
		return fmt.Errorf("failed to seed tag content: %w", err)
	}
	return nil
}

func (m *Migration) seedSampleProducts() error {
	var count int64
	if err := m.db.Model(&catalog.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check products: %w", err)
	}
	if count > 0 {
		return nil
	}

	samples := []catalog.Product{
		{
			Name:        "Playera Tlaxcala",
			Description: "Playera de algodón con bordado tradicional tlaxcalteca.",
			Price:       "$25.00",
			Category:    "ropa",
			Details:     "100% algodón, bordado a mano.",
			Images: []catalog.ProductImage{
				{URL: "/uploads/products/playera-frente.jpg", SortOrder: 0},
				{URL: "/uploads/products/playera-espalda.jpg", SortOrder: 1},
			},
		},
		{
			Name:        "Taza de Talavera",
			Description: "Taza artesanal de talavera pintada a mano.",
			Price:       "$15.00",
			Category:    "artesania",
			Details:     "Pieza única, apta para lavavajillas.",
			Images: []catalog.ProductImage{
				{URL: "/uploads/products/taza.jpg", SortOrder: 0},
			},
		},
	}
	samples[0].SetVariations(catalog.Variations{
		Sizes:        []string{"S", "M", "L", "XL"},
		Colors:       []string{"blanco", "negro"},
		HasNfcOption: true,
	})
	samples[1].SetVariations(catalog.Variations{})

	for i := range samples {
		if err := m.db.Create(&samples[i]).Error; err != nil {
			return fmt.Errorf("failed to seed product %q: %w", samples[i].Name, err)
		}
	}
	return nil
}
