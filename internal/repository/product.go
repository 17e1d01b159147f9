// internal/repository/product.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldworks/territory/internal/domain"
	"github.com/fieldworks/territory/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepositoryIface interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.Product, error)
	FindAll(ctx context.Context, companyID uuid.UUID) ([]*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("creating product: %w", err)
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).Scopes(companyScope(companyID)).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("finding product: %w", err)
	}
	return &product, nil
}

func (r *ProductRepository) FindAll(ctx context.Context, companyID uuid.UUID) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).Scopes(companyScope(companyID)).Order("name").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("finding products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *model.Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return fmt.Errorf("updating product: %w", err)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Scopes(companyScope(companyID)).Delete(&model.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
