// internal/repository/account_test.go
package repository

import (
	"context"
	"testing"

	"github.com/fieldworks/territory/internal/domain"
	"github.com/fieldworks/territory/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_ScopesByCompany(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	companyA := uuid.New()
	companyB := uuid.New()

	mine := model.Account{AccountNumber: "A-1", Name: "Mine", Status: model.AccountStatusCustomer, CompanyID: &companyA}
	theirs := model.Account{AccountNumber: "B-1", Name: "Theirs", Status: model.AccountStatusLead, CompanyID: &companyB}
	require.NoError(t, repo.Create(ctx, &mine))
	require.NoError(t, repo.Create(ctx, &theirs))

	found, err := repo.FindByID(ctx, companyA, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mine", found.Name)

	// The other tenant's record is invisible, not forbidden.
	_, err = repo.FindByID(ctx, companyA, theirs.ID)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	all, err := repo.FindAll(ctx, companyA)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, mine.ID, all[0].ID)
}

func TestAccountRepository_DeleteMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	err := repo.Delete(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
