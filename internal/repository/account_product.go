// internal/repository/account_product.go
package repository

import (
	"context"
	"fmt"

	"github.com/fieldworks/territory/internal/domain"
	"github.com/fieldworks/territory/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountProductRepositoryIface interface {
	Create(ctx context.Context, link *model.AccountProduct) error
	FindByAccount(ctx context.Context, companyID, accountID uuid.UUID) ([]*model.AccountProduct, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

type AccountProductRepository struct {
	db *gorm.DB
}

func NewAccountProductRepository(db *gorm.DB) *AccountProductRepository {
	return &AccountProductRepository{db: db}
}

func (r *AccountProductRepository) Create(ctx context.Context, link *model.AccountProduct) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return fmt.Errorf("creating account product link: %w", err)
	}
	return nil
}

func (r *AccountProductRepository) FindByAccount(ctx context.Context, companyID, accountID uuid.UUID) ([]*model.AccountProduct, error) {
	var links []*model.AccountProduct
	err := r.db.WithContext(ctx).Scopes(companyScope(companyID)).
		Where("account_id = ?", accountID).
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("finding account products: %w", err)
	}
	return links, nil
}

func (r *AccountProductRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Scopes(companyScope(companyID)).Delete(&model.AccountProduct{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting account product link: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: account product link", domain.ErrNotFound)
	}
	return nil
}
