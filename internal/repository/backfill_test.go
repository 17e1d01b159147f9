// internal/repository/backfill_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"github.com/fieldworks/territory/internal/identity"
	"github.com/fieldworks/territory/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignCompany_TouchesOnlyUnassignedRecords(t *testing.T) {
	db := newTestDB(t)
	repo := NewBackfillRepository(db)
	ctx := context.Background()

	targetCompany := uuid.New()
	otherCompany := uuid.New()

	// Two legacy accounts without a company, one already owned elsewhere.
	legacy1 := model.Account{AccountNumber: "L-1", Name: "Legacy One", Status: model.AccountStatusLead}
	legacy2 := model.Account{AccountNumber: "L-2", Name: "Legacy Two", Status: model.AccountStatusLead}
	owned := model.Account{AccountNumber: "O-1", Name: "Owned", Status: model.AccountStatusCustomer, CompanyID: &otherCompany}
	require.NoError(t, db.Create(&legacy1).Error)
	require.NoError(t, db.Create(&legacy2).Error)
	require.NoError(t, db.Create(&owned).Error)

	collection := BackfillCollection{Name: "accounts", Model: &model.Account{}}

	count, err := repo.CountUnassigned(ctx, collection)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	updated, err := repo.AssignCompany(ctx, collection, targetCompany)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	var reloaded model.Account
	require.NoError(t, db.First(&reloaded, "id = ?", owned.ID).Error)
	require.NotNil(t, reloaded.CompanyID)
	assert.Equal(t, otherCompany, *reloaded.CompanyID, "assigned record must not be touched")

	reloaded = model.Account{}
	require.NoError(t, db.First(&reloaded, "id = ?", legacy1.ID).Error)
	require.NotNil(t, reloaded.CompanyID)
	assert.Equal(t, targetCompany, *reloaded.CompanyID)
}

func TestAssignCompany_SecondRunSelectsNothing(t *testing.T) {
	db := newTestDB(t)
	repo := NewBackfillRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	note := model.CallNote{AccountID: uuid.New(), CallDate: time.Now().UTC(), Note: "legacy", Type: model.CallNoteTypeGeneral}
	require.NoError(t, db.Create(&note).Error)

	collection := BackfillCollection{Name: "call_notes", Model: &model.CallNote{}}

	updated, err := repo.AssignCompany(ctx, collection, companyID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	updated, err = repo.AssignCompany(ctx, collection, companyID)
	require.NoError(t, err)
	assert.Zero(t, updated)

	count, err := repo.CountUnassigned(ctx, collection)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUpsertProfileCompany(t *testing.T) {
	db := newTestDB(t)
	repo := NewBackfillRepository(db)
	ctx := context.Background()

	principal := &identity.Principal{
		ID:           uuid.New(),
		Email:        "legacy@example.com",
		DisplayName:  "Legacy User",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(principal).Error)

	firstCompany := uuid.New()
	require.NoError(t, repo.UpsertProfileCompany(ctx, principal, firstCompany))

	var profile model.UserProfile
	require.NoError(t, db.First(&profile, "id = ?", principal.ID).Error)
	require.NotNil(t, profile.CompanyID)
	assert.Equal(t, firstCompany, *profile.CompanyID)
	assert.Equal(t, principal.Email, profile.Email)

	// Re-linking to a different company overwrites the previous assignment.
	secondCompany := uuid.New()
	require.NoError(t, repo.UpsertProfileCompany(ctx, principal, secondCompany))

	var profileCount int64
	db.Model(&model.UserProfile{}).Count(&profileCount)
	assert.Equal(t, int64(1), profileCount)

	require.NoError(t, db.First(&profile, "id = ?", principal.ID).Error)
	require.NotNil(t, profile.CompanyID)
	assert.Equal(t, secondCompany, *profile.CompanyID)
}
