// internal/identity/provider.go
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldworks/territory/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Provider is the identity lookup surface consumed by the tenant bootstrap
// and backfill routines. Implementations must report a distinguishable
// not-found condition via domain.ErrPrincipalNotFound.
type Provider interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Principal, error)
	FindByEmail(ctx context.Context, email string) (*Principal, error)
}

// Store is the gorm-backed identity provider.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, principal *Principal) error {
	if err := s.db.WithContext(ctx).Create(principal).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("creating principal: %w", err)
	}
	return nil
}

func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*Principal, error) {
	var principal Principal
	if err := s.db.WithContext(ctx).First(&principal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("finding principal: %w", err)
	}
	return &principal, nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*Principal, error) {
	var principal Principal
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&principal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("finding principal by email: %w", err)
	}
	return &principal, nil
}
