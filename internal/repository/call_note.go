// internal/repository/call_note.go
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

type CallNoteRepositoryIface interface {
	Create(ctx context.Context, note *model.CallNote) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.CallNote, error)
	FindByAccount(ctx context.Context, companyID, accountID uuid.UUID) ([]*model.CallNote, error)
	Update(ctx context.Context, note *model.CallNote) error
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

type CallNoteRepository struct {
	db *gorm.DB
}

func NewCallNoteRepository(db *gorm.DB) *CallNoteRepository {
	return &CallNoteRepository{db: db}
}

func (r *CallNoteRepository) Create(ctx context.Context, note *model.CallNote) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return fmt.Errorf("creating call note: %w", err)
	}
	return nil
}

func (r *CallNoteRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.CallNote, error) {
	var note model.CallNote
	err := r.db.WithContext(ctx).Scopes(companyScope(companyID)).First(&note, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCallNoteNotFound
		}
		return nil, fmt.Errorf("finding call note: %w", err)
	}
	return &note, nil
}

func (r *CallNoteRepository) FindByAccount(ctx context.Context, companyID, accountID uuid.UUID) ([]*model.CallNote, error) {
	var notes []*model.CallNote
	err := r.db.WithContext(ctx).Scopes(companyScope(companyID)).
		Where("account_id = ?", accountID).
		Order("call_date DESC").
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("finding call notes: %w", err)
	}
	return notes, nil
}

func (r *CallNoteRepository) Update(ctx context.Context, note *model.CallNote) error {
	if err := r.db.WithContext(ctx).Save(note).Error; err != nil {
		return fmt.Errorf("updating call note: %w", err)
	}
	return nil
}

func (r *CallNoteRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Scopes(companyScope(companyID)).Delete(&model.CallNote{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting call note: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCallNoteNotFound
	}
	return nil
}
