// internal/repository/contact.go
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

type ContactRepositoryIface interface {
	Create(ctx context.Context, contact *model.Contact) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.Contact, error)
	FindAll(ctx context.Context, companyID uuid.UUID) ([]*model.Contact, error)
	FindByAccountNumber(ctx context.Context, companyID uuid.UUID, accountNumber string) ([]*model.Contact, error)
	Update(ctx context.Context, contact *model.Contact) error
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	if err := r.db.WithContext(ctx).Create(contact).Error; err != nil {
		return fmt.Errorf("creating contact: %w", err)
	}
	return nil
}

func (r *ContactRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.Contact, error) {
	var contact model.Contact
	err := r.db.WithContext(ctx).Scopes(companyScope(companyID)).First(&contact, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("finding contact: %w", err)
	}
	return &contact, nil
}

func (r *ContactRepository) FindAll(ctx context.Context, companyID uuid.UUID) ([]*model.Contact, error) {
	var contacts []*model.Contact
	err := r.db.WithContext(ctx).Scopes(companyScope(companyID)).Order("name").Find(&contacts).Error
	if err != nil {
		return nil, fmt.Errorf("finding contacts: %w", err)
	}
	return contacts, nil
}

// FindByAccountNumber looks contacts up by their business reference; contacts
// are keyed to accounts by account number, not by account id.
func (r *ContactRepository) FindByAccountNumber(ctx context.Context, companyID uuid.UUID, accountNumber string) ([]*model.Contact, error) {
	var contacts []*model.Contact
	err := r.db.WithContext(ctx).Scopes(companyScope(companyID)).
		Where("account_number = ?", accountNumber).
		Find(&contacts).Error
	if err != nil {
		return nil, fmt.Errorf("finding contacts by account number: %w", err)
	}
	return contacts, nil
}

func (r *ContactRepository) Update(ctx context.Context, contact *model.Contact) error {
	if err := r.db.WithContext(ctx).Save(contact).Error; err != nil {
		return fmt.Errorf("updating contact: %w", err)
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Scopes(companyScope(companyID)).Delete(&model.Contact{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}
