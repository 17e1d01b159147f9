// internal/service/account.go
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

type AccountService struct {
	repo     repository.AccountRepositoryIface
	links    repository.AccountProductRepositoryIface
	validate *validator.Validate
}

func NewAccountService(repo repository.AccountRepositoryIface, links repository.AccountProductRepositoryIface) *AccountService {
	return &AccountService{
		repo:     repo,
		links:    links,
		validate: validator.New(),
	}
}

type AccountInput struct {
	AccountNumber string `json:"account_number" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Industry      string `json:"industry"`
	Status        string `json:"status" validate:"omitempty,oneof=lead customer key-account supplier"`
	Details       string `json:"details"`
	Address       string `json:"address"`
}

func (s *AccountService) Create(ctx context.Context, companyID uuid.UUID, input AccountInput) (*model.Account, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	status := model.AccountStatus(input.Status)
	if status == "" {
		status = model.AccountStatusLead
	}

	account := &model.Account{
		AccountNumber: input.AccountNumber,
		Name:          input.Name,
		Industry:      input.Industry,
		Status:        status,
		Details:       input.Details,
		Address:       input.Address,
		CompanyID:     &companyID,
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountService) Get(ctx context.Context, companyID, id uuid.UUID) (*model.Account, error) {
	return s.repo.FindByID(ctx, companyID, id)
}

func (s *AccountService) List(ctx context.Context, companyID uuid.UUID) ([]*model.Account, error) {
	return s.repo.FindAll(ctx, companyID)
}

func (s *AccountService) Update(ctx context.Context, companyID, id uuid.UUID, input AccountInput) (*model.Account, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	account, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	account.AccountNumber = input.AccountNumber
	account.Name = input.Name
	account.Industry = input.Industry
	if input.Status != "" {
		account.Status = model.AccountStatus(input.Status)
	}
	account.Details = input.Details
	account.Address = input.Address

	if err := s.repo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountService) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	return s.repo.Delete(ctx, companyID, id)
}

type AccountProductInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Notes     string    `json:"notes"`
	Type      string    `json:"type"`
	Price     float64   `json:"price" validate:"gte=0"`
}

// LinkProduct attaches a product to an account. The account must belong to
// the caller's company.
func (s *AccountService) LinkProduct(ctx context.Context, companyID, accountID uuid.UUID, input AccountProductInput) (*model.AccountProduct, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if _, err := s.repo.FindByID(ctx, companyID, accountID); err != nil {
		return nil, err
	}

	link := &model.AccountProduct{
		AccountID: accountID,
		ProductID: input.ProductID,
		Notes:     input.Notes,
		Type:      input.Type,
		Price:     input.Price,
		CompanyID: &companyID,
	}
	if err := s.links.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *AccountService) ListProducts(ctx context.Context, companyID, accountID uuid.UUID) ([]*model.AccountProduct, error) {
	return s.links.FindByAccount(ctx, companyID, accountID)
}

func (s *AccountService) UnlinkProduct(ctx context.Context, companyID, linkID uuid.UUID) error {
	return s.links.Delete(ctx, companyID, linkID)
}
