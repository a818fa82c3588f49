// Package store is the product repository that sheet edits are applied to.
package store

import (
	"context"
	"errors"
	"fmt"

	"sheetsync/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("product not found")

type ListOptions struct {
	Page   int
	Limit  int
	Status string
	Search string
}

type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) Get(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch product %d: %w", id, err)
	}
	return &product, nil
}

// Save inserts or fully updates the product.
func (s *ProductStore) Save(ctx context.Context, product *models.Product) error {
	if err := s.db.WithContext(ctx).Save(product).Error; err != nil {
		return fmt.Errorf("failed to save product %d: %w", product.ID, err)
	}
	return nil
}

// Upsert inserts a product keyed by its upstream ID, or replaces every
// column but created_at when it already exists.
func (s *ProductStore) Upsert(ctx context.Context, product *models.Product) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(product).Error
	if err != nil {
		return fmt.Errorf("failed to upsert product %d: %w", product.ID, err)
	}
	return nil
}

func (s *ProductStore) Create(ctx context.Context, product *models.Product) error {
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (s *ProductStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ProductStore) List(ctx context.Context, opts ListOptions) ([]models.Product, int64, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 || opts.Limit > 100 {
		opts.Limit = 20
	}

	query := s.db.WithContext(ctx).Model(&models.Product{})
	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}
	if opts.Search != "" {
		like := "%" + opts.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(sku) LIKE LOWER(?)", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	err := query.Order("id").Offset((opts.Page - 1) * opts.Limit).Limit(opts.Limit).Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, total, nil
}
