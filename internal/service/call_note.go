// internal/service/call_note.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldworks/territory/internal/domain"
	"github.com/fieldworks/territory/internal/model"
	"github.com/fieldworks/territory/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CallNoteService struct {
	repo     repository.CallNoteRepositoryIface
	accounts repository.AccountRepositoryIface
	validate *validator.Validate
}

func NewCallNoteService(repo repository.CallNoteRepositoryIface, accounts repository.AccountRepositoryIface) *CallNoteService {
	return &CallNoteService{
		repo:     repo,
		accounts: accounts,
		validate: validator.New(),
	}
}

type CallNoteInput struct {
	AccountID uuid.UUID `json:"account_id" validate:"required"`
	CallDate  time.Time `json:"call_date"`
	Note      string    `json:"note" validate:"required"`
	Type      string    `json:"type" validate:"omitempty,oneof=call visit email general"`
}

func (s *CallNoteService) Create(ctx context.Context, companyID uuid.UUID, input CallNoteInput) (*model.CallNote, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	// The referenced account must live in the caller's company.
	if _, err := s.accounts.FindByID(ctx, companyID, input.AccountID); err != nil {
		return nil, err
	}

	callDate := input.CallDate
	if callDate.IsZero() {
		callDate = time.Now().UTC()
	}

	noteType := model.CallNoteType(input.Type)
	if noteType == "" {
		noteType = model.CallNoteTypeGeneral
	}

	note := &model.CallNote{
		AccountID: input.AccountID,
		CallDate:  callDate,
		Note:      input.Note,
		Type:      noteType,
		CompanyID: &companyID,
	}
	if err := s.repo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *CallNoteService) Get(ctx context.Context, companyID, id uuid.UUID) (*model.CallNote, error) {
	return s.repo.FindByID(ctx, companyID, id)
}

func (s *CallNoteService) ListByAccount(ctx context.Context, companyID, accountID uuid.UUID) ([]*model.CallNote, error) {
	return s.repo.FindByAccount(ctx, companyID, accountID)
}

func (s *CallNoteService) Update(ctx context.Context, companyID, id uuid.UUID, input CallNoteInput) (*model.CallNote, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	note, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	note.Note = input.Note
	if !input.CallDate.IsZero() {
		note.CallDate = input.CallDate
	}
	if input.Type != "" {
		note.Type = model.CallNoteType(input.Type)
	}

	if err := s.repo.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *CallNoteService) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	return s.repo.Delete(ctx, companyID, id)
}
