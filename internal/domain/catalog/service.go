// internal/domain/catalog/service.go
package catalog

import (
	"fmt"

	"github.com/your-org/storefront-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles catalog business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ProductWriteRequest represents a product create or update payload. The
// admin panel historically submits a single imageUrl; a full gallery may be
// submitted as images instead, and wins when both are present.
type ProductWriteRequest struct {
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description"`
	Price       string      `json:"price" binding:"required"`
	Category    string      `json:"category"`
	Details     string      `json:"details"`
	ImageURL    string      `json:"imageUrl"`
	Images      []string    `json:"images"`
	Variations  *Variations `json:"variations"`
}

func (r *ProductWriteRequest) imageList() []string {
	if len(r.Images) > 0 {
		return r.Images
	}
	if r.ImageURL != "" {
		return []string{r.ImageURL}
	}
	return nil
}

// GetProducts returns products in insertion order, optionally filtered by
// category.
func (s *Service) GetProducts(category string) ([]ProductResponse, error) {
	query := s.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, id ASC")
	}).Order("id ASC")

	if category != "" {
		query = query.Where("category = ?", category)
	}

	var products []Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = products[i].ToResponse()
	}
	return responses, nil
}

// GetProduct returns a single product by id.
func (s *Service) GetProduct(id uint) (*ProductResponse, error) {
	var product Product
	err := s.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, id ASC")
	}).First(&product, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("product not found")
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}

	response := product.ToResponse()
	return &response, nil
}

// CreateProduct creates a new product with its image gallery.
func (s *Service) CreateProduct(req *ProductWriteRequest) (*ProductResponse, error) {
	product := Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Details:     req.Details,
	}
	if req.Variations != nil {
		product.SetVariations(*req.Variations)
	} else {
		product.SetVariations(Variations{})
	}
	for i, url := range req.imageList() {
		product.Images = append(product.Images, ProductImage{URL: url, SortOrder: i})
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	response := product.ToResponse()
	return &response, nil
}

// UpdateProduct replaces the submitted fields of an existing product. The
// image gallery is replaced whenever the payload carries any image.
func (s *Service) UpdateProduct(id uint, req *ProductWriteRequest) (*ProductResponse, error) {
	var product Product
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, fmt.Errorf("product not found")
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Category = req.Category
	product.Details = req.Details
	if req.Variations != nil {
		product.SetVariations(*req.Variations)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&product).Error; err != nil {
			return err
		}

		if images := req.imageList(); images != nil {
			if err := tx.Where("product_id = ?", product.ID).Delete(&ProductImage{}).Error; err != nil {
				return err
			}
			for i, url := range images {
				img := ProductImage{ProductID: product.ID, URL: url, SortOrder: i}
				if err := tx.Create(&img).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return s.GetProduct(id)
}

// DeleteProduct soft-deletes a product.
func (s *Service) DeleteProduct(id uint) error {
	result := s.db.Delete(&Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}
