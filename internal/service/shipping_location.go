// internal/service/shipping_location.go
package service

import (
	"context"
	"fmt"

	"github.com/fieldworks/territory/internal/domain"
	"github.com/fieldworks/territory/internal/model"
	"github.com/fieldworks/territory/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ShippingLocationService struct {
	repo     repository.ShippingLocationRepositoryIface
	accounts repository.AccountRepositoryIface
	validate *validator.Validate
}

func NewShippingLocationService(
	repo repository.ShippingLocationRepositoryIface,
	accounts repository.AccountRepositoryIface,
) *ShippingLocationService {
	return &ShippingLocationService{
		repo:     repo,
		accounts: accounts,
		validate: validator.New(),
	}
}

type ShippingLocationInput struct {
	OriginalAccountID uuid.UUID `json:"original_account_id" validate:"required"`
	RelatedAccountID  uuid.UUID `json:"related_account_id" validate:"required"`
}

// Create links two accounts as a shipping relation. Both endpoints must
// exist in the caller's company; a location never carries a dangling
// account reference.
func (s *ShippingLocationService) Create(ctx context.Context, companyID uuid.UUID, input ShippingLocationInput) (*model.ShippingLocation, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if _, err := s.accounts.FindByID(ctx, companyID, input.OriginalAccountID); err != nil {
		return nil, err
	}
	if _, err := s.accounts.FindByID(ctx, companyID, input.RelatedAccountID); err != nil {
		return nil, err
	}

	location := &model.ShippingLocation{
		OriginalAccountID: input.OriginalAccountID,
		RelatedAccountID:  input.RelatedAccountID,
		CompanyID:         &companyID,
	}
	if err := s.repo.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *ShippingLocationService) Get(ctx context.Context, companyID, id uuid.UUID) (*model.ShippingLocation, error) {
	return s.repo.FindByID(ctx, companyID, id)
}

func (s *ShippingLocationService) ListByAccount(ctx context.Context, companyID, accountID uuid.UUID) ([]*model.ShippingLocation, error) {
	return s.repo.FindByAccount(ctx, companyID, accountID)
}

func (s *ShippingLocationService) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	return s.repo.Delete(ctx, companyID, id)
}
