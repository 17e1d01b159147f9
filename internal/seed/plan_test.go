// internal/seed/plan_test.go
package seed

import (
	"testing"
	"time"

	"github.com/fieldworks/territory/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planInput() PlanInput {
	return PlanInput{
		CompanyID:   uuid.New(),
		CompanyName: "Test Company",
		OwnerID:     uuid.New(),
		Email:       "owner@example.com",
		DisplayName: "Owner",
		Now:         time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestBuildClonePlan_RemapsAccountIDs(t *testing.T) {
	bundle := DefaultBundle()
	in := planInput()

	plan := BuildClonePlan(bundle, in)

	require.Len(t, plan.Accounts, len(bundle.Accounts))

	templateIDs := make(map[uuid.UUID]bool)
	for _, tpl := range bundle.Accounts {
		templateIDs[tpl.ID] = true
	}

	planned := make(map[uuid.UUID]bool)
	for _, a := range plan.Accounts {
		assert.False(t, templateIDs[a.ID], "cloned account kept a template id")
		assert.False(t, planned[a.ID], "duplicate account id in plan")
		planned[a.ID] = true
		require.NotNil(t, a.CompanyID)
		assert.Equal(t, in.CompanyID, *a.CompanyID)
	}

	// Every dependent record must point at a planned account, never at a
	// template account.
	for _, ap := range plan.AccountProducts {
		assert.True(t, planned[ap.AccountID], "account product references an unplanned account")
	}
	for _, sl := range plan.ShippingLocations {
		assert.True(t, planned[sl.OriginalAccountID])
		assert.True(t, planned[sl.RelatedAccountID])
	}
	for _, cn := range plan.CallNotes {
		assert.True(t, planned[cn.AccountID], "call note references an unplanned account")
	}
}

func TestBuildClonePlan_StampsCompanyEverywhere(t *testing.T) {
	in := planInput()
	plan := BuildClonePlan(DefaultBundle(), in)

	assert.Equal(t, in.CompanyID, plan.Company.ID)
	assert.Equal(t, in.OwnerID, plan.Company.OwnerID)
	assert.Equal(t, in.OwnerID, plan.Profile.ID)
	require.NotNil(t, plan.Profile.CompanyID)
	assert.Equal(t, in.CompanyID, *plan.Profile.CompanyID)

	for _, c := range plan.Contacts {
		require.NotNil(t, c.CompanyID)
		assert.Equal(t, in.CompanyID, *c.CompanyID)
	}
	for _, p := range plan.Products {
		require.NotNil(t, p.CompanyID)
		assert.Equal(t, in.CompanyID, *p.CompanyID)
	}
	for _, ap := range plan.AccountProducts {
		require.NotNil(t, ap.CompanyID)
		assert.Equal(t, in.CompanyID, *ap.CompanyID)
	}
	for _, sl := range plan.ShippingLocations {
		require.NotNil(t, sl.CompanyID)
		assert.Equal(t, in.CompanyID, *sl.CompanyID)
	}
	for _, cn := range plan.CallNotes {
		require.NotNil(t, cn.CompanyID)
		assert.Equal(t, in.CompanyID, *cn.CompanyID)
	}
}

func TestBuildClonePlan_DropsUnresolvableReferences(t *testing.T) {
	known := uuid.New()
	unknown := uuid.New()

	bundle := Bundle{
		Accounts: []TemplateAccount{
			{ID: known, AccountNumber: "ACC-1", Name: "Known", Status: model.AccountStatusLead},
		},
		AccountProducts: []TemplateAccountProduct{
			{ID: uuid.New(), AccountID: known, ProductID: uuid.New()},
			{ID: uuid.New(), AccountID: unknown, ProductID: uuid.New()},
		},
		ShippingLocations: []TemplateShippingLocation{
			{ID: uuid.New(), OriginalAccountID: known, RelatedAccountID: known},
			{ID: uuid.New(), OriginalAccountID: known, RelatedAccountID: unknown},
			{ID: uuid.New(), OriginalAccountID: unknown, RelatedAccountID: known},
		},
		CallNotes: []TemplateCallNote{
			{ID: uuid.New(), AccountID: known, Note: "kept"},
			{ID: uuid.New(), AccountID: unknown, Note: "dropped"},
		},
	}

	plan := BuildClonePlan(bundle, planInput())

	assert.Len(t, plan.AccountProducts, 1)
	assert.Equal(t, 1, plan.SkippedAccountProducts)

	assert.Len(t, plan.ShippingLocations, 1)
	assert.Equal(t, 2, plan.SkippedShippingLocations)

	assert.Len(t, plan.CallNotes, 1)
	assert.Equal(t, 1, plan.SkippedCallNotes)
	assert.Equal(t, "kept", plan.CallNotes[0].Note)
}

func TestBuildClonePlan_LinksKeepTemplateProductID(t *testing.T) {
	bundle := DefaultBundle()
	plan := BuildClonePlan(bundle, planInput())

	templateProductIDs := make(map[uuid.UUID]bool)
	for _, p := range bundle.Products {
		templateProductIDs[p.ID] = true
	}

	// Products are cloned with fresh ids, but the links carry the template
	// product id forward unchanged.
	for _, p := range plan.Products {
		assert.False(t, templateProductIDs[p.ID])
	}
	require.NotEmpty(t, plan.AccountProducts)
	for _, ap := range plan.AccountProducts {
		assert.True(t, templateProductIDs[ap.ProductID])
	}
}

func TestBuildClonePlan_ContactsKeepAccountNumber(t *testing.T) {
	bundle := DefaultBundle()
	plan := BuildClonePlan(bundle, planInput())

	require.Len(t, plan.Contacts, len(bundle.Contacts))
	for i, c := range plan.Contacts {
		assert.Equal(t, bundle.Contacts[i].AccountNumber, c.AccountNumber)
	}
}

func TestBuildClonePlan_NormalizesZeroCallDates(t *testing.T) {
	in := planInput()
	plan := BuildClonePlan(DefaultBundle(), in)

	var sawZeroTemplate bool
	for _, tpl := range DefaultBundle().CallNotes {
		if tpl.CallDate.IsZero() {
			sawZeroTemplate = true
		}
	}
	require.True(t, sawZeroTemplate, "template bundle should contain a note without a call date")

	for _, cn := range plan.CallNotes {
		assert.False(t, cn.CallDate.IsZero(), "plan contains a call note with no call date")
	}

	// The one template note without a date picks up the plan time.
	var normalized bool
	for _, cn := range plan.CallNotes {
		if cn.CallDate.Equal(in.Now) {
			normalized = true
		}
	}
	assert.True(t, normalized)
}

func TestClonePlan_TotalRecords(t *testing.T) {
	plan := BuildClonePlan(DefaultBundle(), planInput())

	expected := 2 + len(plan.Accounts) + len(plan.Contacts) + len(plan.Products) +
		len(plan.AccountProducts) + len(plan.ShippingLocations) + len(plan.CallNotes)
	assert.Equal(t, expected, plan.TotalRecords())
}
