// internal/service/contact.go
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

type ContactService struct {
	repo     repository.ContactRepositoryIface
	validate *validator.Validate
}

func NewContactService(repo repository.ContactRepositoryIface) *ContactService {
	return &ContactService{repo: repo, validate: validator.New()}
}

type ContactInput struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone"`
	Email         string `json:"email" validate:"omitempty,email"`
	Location      string `json:"location"`
	IsMainContact bool   `json:"is_main_contact"`
	AvatarURL     string `json:"avatar_url" validate:"omitempty,url"`
	AccountNumber string `json:"account_number"`
}

func (s *ContactService) Create(ctx context.Context, companyID uuid.UUID, input ContactInput) (*model.Contact, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	contact := &model.Contact{
		Name:          input.Name,
		Phone:         input.Phone,
		Email:         input.Email,
		Location:      input.Location,
		IsMainContact: input.IsMainContact,
		AvatarURL:     input.AvatarURL,
		AccountNumber: input.AccountNumber,
		CompanyID:     &companyID,
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) Get(ctx context.Context, companyID, id uuid.UUID) (*model.Contact, error) {
	return s.repo.FindByID(ctx, companyID, id)
}

func (s *ContactService) List(ctx context.Context, companyID uuid.UUID) ([]*model.Contact, error) {
	return s.repo.FindAll(ctx, companyID)
}

func (s *ContactService) ListByAccountNumber(ctx context.Context, companyID uuid.UUID, accountNumber string) ([]*model.Contact, error) {
	return s.repo.FindByAccountNumber(ctx, companyID, accountNumber)
}

func (s *ContactService) Update(ctx context.Context, companyID, id uuid.UUID, input ContactInput) (*model.Contact, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	contact, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	contact.Name = input.Name
	contact.Phone = input.Phone
	contact.Email = input.Email
	contact.Location = input.Location
	contact.IsMainContact = input.IsMainContact
	contact.AvatarURL = input.AvatarURL
	contact.AccountNumber = input.AccountNumber

	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	return s.repo.Delete(ctx, companyID, id)
}
