// internal/repository/tenant.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldworks/territory/internal/domain"
	"github.com/fieldworks/territory/internal/model"
	"github.com/fieldworks/territory/internal/seed"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TenantRepositoryIface interface {
	FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error)
	FindCompanyByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	CreateTenant(ctx context.Context, plan *seed.ClonePlan) (bool, error)
}

type TenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

func (r *TenantRepository) FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("finding user profile: %w", err)
	}
	return &profile, nil
}

func (r *TenantRepository) FindCompanyByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("finding company: %w", err)
	}
	return &company, nil
}

// CreateTenant writes the whole clone plan in one transaction. The profile
// existence check runs inside the same transaction, so two concurrent
// bootstraps for one user race on the profile's primary key and at most one
// commit creates the tenant. Returns false when the profile already existed
// and nothing was written.
func (r *TenantRepository) CreateTenant(ctx context.Context, plan *seed.ClonePlan) (bool, error) {
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.UserProfile
		err := tx.First(&existing, "id = ?", plan.Profile.ID).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("checking existing profile: %w", err)
		}

		if err := tx.Create(&plan.Company).Error; err != nil {
			return fmt.Errorf("creating company: %w", err)
		}
		if err := tx.Create(&plan.Profile).Error; err != nil {
			return fmt.Errorf("creating user profile: %w", err)
		}
		if len(plan.Accounts) > 0 {
			if err := tx.Create(&plan.Accounts).Error; err != nil {
				return fmt.Errorf("cloning accounts: %w", err)
			}
		}
		if len(plan.Contacts) > 0 {
			if err := tx.Create(&plan.Contacts).Error; err != nil {
				return fmt.Errorf("cloning contacts: %w", err)
			}
		}
		if len(plan.Products) > 0 {
			if err := tx.Create(&plan.Products).Error; err != nil {
				return fmt.Errorf("cloning products: %w", err)
			}
		}
		if len(plan.AccountProducts) > 0 {
			if err := tx.Create(&plan.AccountProducts).Error; err != nil {
				return fmt.Errorf("cloning account products: %w", err)
			}
		}
		if len(plan.ShippingLocations) > 0 {
			if err := tx.Create(&plan.ShippingLocations).Error; err != nil {
				return fmt.Errorf("cloning shipping locations: %w", err)
			}
		}
		if len(plan.CallNotes) > 0 {
			if err := tx.Create(&plan.CallNotes).Error; err != nil {
				return fmt.Errorf("cloning call notes: %w", err)
			}
		}

		created = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("bootstrap transaction failed: %w", err)
	}

	return created, nil
}
