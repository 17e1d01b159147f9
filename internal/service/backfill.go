// internal/service/backfill.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fieldworks/territory/internal/domain"
	"github.com/fieldworks/territory/internal/identity"
	"github.com/fieldworks/territory/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// backfillBatchLimit bounds the single batched update issued per collection.
// A collection holding more unassigned records than this is refused rather
// than split into multiple batches.
const backfillBatchLimit = 500

// BackfillService retrofits a company id onto legacy records that predate
// tenant scoping, and links a user's profile to that company. Unlike
// bootstrap this is not atomic across collections: each collection's update
// commits independently, and a failure partway leaves earlier collections
// migrated. Re-running is safe because only records without a company id are
// ever selected.
type BackfillService struct {
	identity identity.Provider
	repo     repository.BackfillRepositoryIface
	validate *validator.Validate
}

func NewBackfillService(identityProvider identity.Provider, repo repository.BackfillRepositoryIface) *BackfillService {
	return &BackfillService{
		identity: identityProvider,
		repo:     repo,
		validate: validator.New(),
	}
}

type BackfillInput struct {
	UserEmail string    `json:"user_email" validate:"required,email"`
	CompanyID uuid.UUID `json:"company_id" validate:"required"`
}

type BackfillResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Updated int64  `json:"updated"`
}

// Backfill runs the one-time migration. Intended to run once against legacy
// data, but convergent: a second run selects nothing.
func (s *BackfillService) Backfill(ctx context.Context, input BackfillInput) BackfillResult {
	if err := s.validate.Struct(input); err != nil {
		return BackfillResult{Success: false, Message: fmt.Sprintf("invalid backfill input: %v", err)}
	}

	principal, err := s.identity.FindByEmail(ctx, input.UserEmail)
	if err != nil {
		return BackfillResult{Success: false, Message: fmt.Sprintf("identity lookup failed: %v", err)}
	}

	if err := s.repo.UpsertProfileCompany(ctx, principal, input.CompanyID); err != nil {
		return BackfillResult{Success: false, Message: fmt.Sprintf("linking user profile: %v", err)}
	}

	var total int64
	for _, collection := range repository.BackfillCollections {
		count, err := s.repo.CountUnassigned(ctx, collection)
		if err != nil {
			return BackfillResult{
				Success: false,
				Message: fmt.Sprintf("counting %s: %v", collection.Name, err),
				Updated: total,
			}
		}
		if count > backfillBatchLimit {
			return BackfillResult{
				Success: false,
				Message: fmt.Sprintf("%s: %v (%d records, limit %d)", collection.Name, domain.ErrBatchLimitExceeded, count, backfillBatchLimit),
				Updated: total,
			}
		}

		updated, err := s.repo.AssignCompany(ctx, collection, input.CompanyID)
		if err != nil {
			return BackfillResult{
				Success: false,
				Message: fmt.Sprintf("migrating %s: %v", collection.Name, err),
				Updated: total,
			}
		}

		slog.InfoContext(ctx, "collection migrated", "collection", collection.Name, "updated", updated)
		total += updated
	}

	return BackfillResult{
		Success: true,
		Message: fmt.Sprintf("assigned company to %d records across %d collections", total, len(repository.BackfillCollections)),
		Updated: total,
	}
}
