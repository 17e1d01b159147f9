// internal/service/backfill_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fieldworks/territory/internal/domain"
	"github.com/fieldworks/territory/internal/identity"
	"github.com/fieldworks/territory/internal/mocks"
	"github.com/fieldworks/territory/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBackfill_MigratesAllCollections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identityProvider := mocks.NewMockProvider(ctrl)
	repo := mocks.NewMockBackfillRepositoryIface(ctrl)

	companyID := uuid.New()
	principal := &identity.Principal{ID: uuid.New(), Email: "legacy@example.com"}

	identityProvider.EXPECT().FindByEmail(gomock.Any(), "legacy@example.com").Return(principal, nil)
	repo.EXPECT().UpsertProfileCompany(gomock.Any(), principal, companyID).Return(nil)

	for _, collection := range repository.BackfillCollections {
		repo.EXPECT().CountUnassigned(gomock.Any(), collection).Return(int64(10), nil)
		repo.EXPECT().AssignCompany(gomock.Any(), collection, companyID).Return(int64(10), nil)
	}

	svc := NewBackfillService(identityProvider, repo)

	result := svc.Backfill(context.Background(), BackfillInput{
		UserEmail: "legacy@example.com",
		CompanyID: companyID,
	})

	assert.True(t, result.Success)
	assert.Equal(t, int64(10*len(repository.BackfillCollections)), result.Updated)
}

func TestBackfill_UnknownUserWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identityProvider := mocks.NewMockProvider(ctrl)
	repo := mocks.NewMockBackfillRepositoryIface(ctrl)

	identityProvider.EXPECT().
		FindByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, domain.ErrPrincipalNotFound)
	// No repository expectations: the migration must not start.

	svc := NewBackfillService(identityProvider, repo)

	result := svc.Backfill(context.Background(), BackfillInput{
		UserEmail: "ghost@example.com",
		CompanyID: uuid.New(),
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "identity lookup failed")
	assert.Zero(t, result.Updated)
}

func TestBackfill_RefusesOversizedCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identityProvider := mocks.NewMockProvider(ctrl)
	repo := mocks.NewMockBackfillRepositoryIface(ctrl)

	companyID := uuid.New()
	principal := &identity.Principal{ID: uuid.New(), Email: "legacy@example.com"}

	identityProvider.EXPECT().FindByEmail(gomock.Any(), "legacy@example.com").Return(principal, nil)
	repo.EXPECT().UpsertProfileCompany(gomock.Any(), principal, companyID).Return(nil)

	first := repository.BackfillCollections[0]
	repo.EXPECT().CountUnassigned(gomock.Any(), first).Return(int64(backfillBatchLimit+1), nil)
	// The oversized collection stops the run before any update is issued.

	svc := NewBackfillService(identityProvider, repo)

	result := svc.Backfill(context.Background(), BackfillInput{
		UserEmail: "legacy@example.com",
		CompanyID: companyID,
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, domain.ErrBatchLimitExceeded.Error())
	assert.Zero(t, result.Updated)
}

func TestBackfill_PartialFailureKeepsEarlierCollections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identityProvider := mocks.NewMockProvider(ctrl)
	repo := mocks.NewMockBackfillRepositoryIface(ctrl)

	companyID := uuid.New()
	principal := &identity.Principal{ID: uuid.New(), Email: "legacy@example.com"}

	identityProvider.EXPECT().FindByEmail(gomock.Any(), "legacy@example.com").Return(principal, nil)
	repo.EXPECT().UpsertProfileCompany(gomock.Any(), principal, companyID).Return(nil)

	first := repository.BackfillCollections[0]
	second := repository.BackfillCollections[1]

	repo.EXPECT().CountUnassigned(gomock.Any(), first).Return(int64(3), nil)
	repo.EXPECT().AssignCompany(gomock.Any(), first, companyID).Return(int64(3), nil)

	repo.EXPECT().CountUnassigned(gomock.Any(), second).Return(int64(2), nil)
	repo.EXPECT().AssignCompany(gomock.Any(), second, companyID).Return(int64(0), errors.New("connection reset"))

	svc := NewBackfillService(identityProvider, repo)

	result := svc.Backfill(context.Background(), BackfillInput{
		UserEmail: "legacy@example.com",
		CompanyID: companyID,
	})

	// The failure surfaces, but the first collection's updates stand; the
	// result reports how far the migration got.
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, second.Name)
	assert.Equal(t, int64(3), result.Updated)
}
