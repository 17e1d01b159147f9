// internal/repository/tenant_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"github.com/fieldworks/territory/internal/model"
	"github.com/fieldworks/territory/internal/seed"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPlan(ownerID uuid.UUID) *seed.ClonePlan {
	return seed.BuildClonePlan(seed.DefaultBundle(), seed.PlanInput{
		CompanyID:   uuid.New(),
		CompanyName: "Plan Company",
		OwnerID:     ownerID,
		Email:       "owner@example.com",
		DisplayName: "Owner",
		Now:         time.Now().UTC(),
	})
}

func TestCreateTenant_WritesFullPlan(t *testing.T) {
	db := newTestDB(t)
	repo := NewTenantRepository(db)
	ctx := context.Background()

	plan := buildPlan(uuid.New())

	created, err := repo.CreateTenant(ctx, plan)
	require.NoError(t, err)
	assert.True(t, created)

	var accountCount, contactCount, productCount, linkCount, locationCount, noteCount int64
	db.Model(&model.Account{}).Count(&accountCount)
	db.Model(&model.Contact{}).Count(&contactCount)
	db.Model(&model.Product{}).Count(&productCount)
	db.Model(&model.AccountProduct{}).Count(&linkCount)
	db.Model(&model.ShippingLocation{}).Count(&locationCount)
	db.Model(&model.CallNote{}).Count(&noteCount)

	assert.Equal(t, int64(len(plan.Accounts)), accountCount)
	assert.Equal(t, int64(len(plan.Contacts)), contactCount)
	assert.Equal(t, int64(len(plan.Products)), productCount)
	assert.Equal(t, int64(len(plan.AccountProducts)), linkCount)
	assert.Equal(t, int64(len(plan.ShippingLocations)), locationCount)
	assert.Equal(t, int64(len(plan.CallNotes)), noteCount)

	profile, err := repo.FindProfileByUserID(ctx, plan.Profile.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.CompanyID)
	assert.Equal(t, plan.Company.ID, *profile.CompanyID)

	company, err := repo.FindCompanyByID(ctx, plan.Company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Plan Company", company.Name)
}

func TestCreateTenant_SecondRunIsNoOp(t *testing.T) {
	db := newTestDB(t)
	repo := NewTenantRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()

	first := buildPlan(ownerID)
	created, err := repo.CreateTenant(ctx, first)
	require.NoError(t, err)
	require.True(t, created)

	// A retry builds a fresh plan with a different company id, but the
	// profile existence check makes the whole thing a no-op.
	second := buildPlan(ownerID)
	created, err = repo.CreateTenant(ctx, second)
	require.NoError(t, err)
	assert.False(t, created)

	var companyCount, profileCount, accountCount int64
	db.Model(&model.Company{}).Count(&companyCount)
	db.Model(&model.UserProfile{}).Count(&profileCount)
	db.Model(&model.Account{}).Count(&accountCount)

	assert.Equal(t, int64(1), companyCount)
	assert.Equal(t, int64(1), profileCount)
	assert.Equal(t, int64(len(first.Accounts)), accountCount)

	profile, err := repo.FindProfileByUserID(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, first.Company.ID, *profile.CompanyID)
}

func TestCreateTenant_MinimalBundleEndToEnd(t *testing.T) {
	db := newTestDB(t)
	repo := NewTenantRepository(db)
	ctx := context.Background()

	templateAccount := uuid.New()
	bundle := seed.Bundle{
		Accounts: []seed.TemplateAccount{
			{ID: templateAccount, AccountNumber: "ACC-1", Name: "Template A", Status: model.AccountStatusLead},
		},
		Contacts: []seed.TemplateContact{
			{ID: uuid.New(), Name: "Solo Contact", AccountNumber: "ACC-1"},
		},
		CallNotes: []seed.TemplateCallNote{
			{ID: uuid.New(), AccountID: templateAccount, Note: "first call", Type: model.CallNoteTypeCall, CallDate: time.Now().UTC()},
		},
	}

	ownerID := uuid.New()
	plan := seed.BuildClonePlan(bundle, seed.PlanInput{
		CompanyID:   uuid.New(),
		CompanyName: "u1's Company",
		OwnerID:     ownerID,
		Email:       "u1@x.com",
		DisplayName: "u1",
		Now:         time.Now().UTC(),
	})

	created, err := repo.CreateTenant(ctx, plan)
	require.NoError(t, err)
	require.True(t, created)

	company, err := repo.FindCompanyByID(ctx, plan.Company.ID)
	require.NoError(t, err)
	assert.Equal(t, ownerID, company.OwnerID)

	profile, err := repo.FindProfileByUserID(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, company.ID, *profile.CompanyID)

	var account model.Account
	require.NoError(t, db.First(&account, "company_id = ?", company.ID).Error)
	assert.NotEqual(t, templateAccount, account.ID)
	assert.Equal(t, "ACC-1", account.AccountNumber)

	var contact model.Contact
	require.NoError(t, db.First(&contact, "company_id = ?", company.ID).Error)
	assert.Equal(t, "ACC-1", contact.AccountNumber)

	var note model.CallNote
	require.NoError(t, db.First(&note, "company_id = ?", company.ID).Error)
	assert.Equal(t, account.ID, note.AccountID)
}

func TestCreateTenant_RollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	repo := NewTenantRepository(db)
	ctx := context.Background()

	plan := buildPlan(uuid.New())
	require.NotEmpty(t, plan.CallNotes)

	// Force a primary key collision on the last collection written so every
	// earlier insert must be rolled back.
	dup := plan.CallNotes[0]
	dup.Note = "duplicate id"
	plan.CallNotes = append(plan.CallNotes, dup)

	created, err := repo.CreateTenant(ctx, plan)
	require.Error(t, err)
	assert.False(t, created)

	var companyCount, profileCount, accountCount, contactCount, productCount, noteCount int64
	db.Model(&model.Company{}).Count(&companyCount)
	db.Model(&model.UserProfile{}).Count(&profileCount)
	db.Model(&model.Account{}).Count(&accountCount)
	db.Model(&model.Contact{}).Count(&contactCount)
	db.Model(&model.Product{}).Count(&productCount)
	db.Model(&model.CallNote{}).Count(&noteCount)

	assert.Zero(t, companyCount)
	assert.Zero(t, profileCount)
	assert.Zero(t, accountCount)
	assert.Zero(t, contactCount)
	assert.Zero(t, productCount)
	assert.Zero(t, noteCount)
}
