// internal/repository/account.go
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

type AccountRepositoryIface interface {
	Create(ctx context.Context, account *model.Account) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.Account, error)
	FindAll(ctx context.Context, companyID uuid.UUID) ([]*model.Account, error)
	Update(ctx context.Context, account *model.Account) error
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account *model.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return fmt.Errorf("creating account: %w", err)
	}
	return nil
}

func (r *AccountRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).Scopes(companyScope(companyID)).First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("finding account: %w", err)
	}
	return &account, nil
}

func (r *AccountRepository) FindAll(ctx context.Context, companyID uuid.UUID) ([]*model.Account, error) {
	var accounts []*model.Account
	err := r.db.WithContext(ctx).Scopes(companyScope(companyID)).Order("name").Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("finding accounts: %w", err)
	}
	return accounts, nil
}

func (r *AccountRepository) Update(ctx context.Context, account *model.Account) error {
	if err := r.db.WithContext(ctx).Save(account).Error; err != nil {
		return fmt.Errorf("updating account: %w", err)
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Scopes(companyScope(companyID)).Delete(&model.Account{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
