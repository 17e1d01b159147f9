// internal/repository/shipping_location.go
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

type ShippingLocationRepositoryIface interface {
	Create(ctx context.Context, location *model.ShippingLocation) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.ShippingLocation, error)
	FindByAccount(ctx context.Context, companyID, accountID uuid.UUID) ([]*model.ShippingLocation, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

type ShippingLocationRepository struct {
	db *gorm.DB
}

func NewShippingLocationRepository(db *gorm.DB) *ShippingLocationRepository {
	return &ShippingLocationRepository{db: db}
}

func (r *ShippingLocationRepository) Create(ctx context.Context, location *model.ShippingLocation) error {
	if err := r.db.WithContext(ctx).Create(location).Error; err != nil {
		return fmt.Errorf("creating shipping location: %w", err)
	}
	return nil
}

func (r *ShippingLocationRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.ShippingLocation, error) {
	var location model.ShippingLocation
	err := r.db.WithContext(ctx).Scopes(companyScope(companyID)).First(&location, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShippingLocationNotFound
		}
		return nil, fmt.Errorf("finding shipping location: %w", err)
	}
	return &location, nil
}

// FindByAccount returns locations where the account is either endpoint.
func (r *ShippingLocationRepository) FindByAccount(ctx context.Context, companyID, accountID uuid.UUID) ([]*model.ShippingLocation, error) {
	var locations []*model.ShippingLocation
	err := r.db.WithContext(ctx).Scopes(companyScope(companyID)).
		Where("original_account_id = ? OR related_account_id = ?", accountID, accountID).
		Find(&locations).Error
	if err != nil {
		return nil, fmt.Errorf("finding shipping locations: %w", err)
	}
	return locations, nil
}

func (r *ShippingLocationRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Scopes(companyScope(companyID)).Delete(&model.ShippingLocation{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting shipping location: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrShippingLocationNotFound
	}
	return nil
}
