// internal/seed/plan.go
package seed

import (
	"time"

	"github.com/fieldworks/territory/internal/model"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PlanInput carries everything BuildClonePlan needs. Ids are generated by the
// caller so a plan is fully determined before any write happens.
type PlanInput struct {
	CompanyID   uuid.UUID
	CompanyName string
	OwnerID     uuid.UUID
	Email       string
	DisplayName string
	Now         time.Time
}

// ClonePlan is the complete set of records a single bootstrap transaction
// writes. Skipped counters record template records dropped by best-effort
// reference resolution.
type ClonePlan struct {
	Company           model.Company
	Profile           model.UserProfile
	Accounts          []model.Account
	Contacts          []model.Contact
	Products          []model.Product
	AccountProducts   []model.AccountProduct
	ShippingLocations []model.ShippingLocation
	CallNotes         []model.CallNote

	SkippedAccountProducts   int
	SkippedShippingLocations int
	SkippedCallNotes         int
}

// BuildClonePlan clones the template bundle into the new company's namespace.
//
// Accounts get fresh ids and the template-id to new-id mapping lives only in
// the remap table local to this call. Dependent records resolve their account
// references through that table; a record whose reference does not resolve is
// dropped from the plan (best-effort reference resolution), never written
// with a dangling reference. Contacts keep their AccountNumber reference
// unchanged, and cloned account-product links keep the template product id;
// only account ids are remapped.
func BuildClonePlan(bundle Bundle, in PlanInput) *ClonePlan {
	companyID := in.CompanyID

	plan := &ClonePlan{
		Company: model.Company{
			ID:      companyID,
			Name:    in.CompanyName,
			OwnerID: in.OwnerID,
		},
		Profile: model.UserProfile{
			ID:          in.OwnerID,
			Email:       in.Email,
			DisplayName: in.DisplayName,
			CompanyID:   &companyID,
		},
	}

	remap := make(map[uuid.UUID]uuid.UUID, len(bundle.Accounts))

	for _, tpl := range bundle.Accounts {
		newID := uuid.New()
		remap[tpl.ID] = newID
		plan.Accounts = append(plan.Accounts, model.Account{
			ID:            newID,
			AccountNumber: tpl.AccountNumber,
			Name:          tpl.Name,
			Industry:      tpl.Industry,
			Status:        tpl.Status,
			Details:       tpl.Details,
			Address:       tpl.Address,
			CompanyID:     &companyID,
		})
	}

	for _, tpl := range bundle.Contacts {
		plan.Contacts = append(plan.Contacts, model.Contact{
			ID:            uuid.New(),
			Name:          tpl.Name,
			Phone:         tpl.Phone,
			Email:         tpl.Email,
			Location:      tpl.Location,
			IsMainContact: tpl.IsMainContact,
			AvatarURL:     tpl.AvatarURL,
			AccountNumber: tpl.AccountNumber,
			CompanyID:     &companyID,
		})
	}

	for _, tpl := range bundle.Products {
		plan.Products = append(plan.Products, model.Product{
			ID:            uuid.New(),
			Name:          tpl.Name,
			ProductNumber: tpl.ProductNumber,
			Attributes:    datatypes.JSON(tpl.Attributes),
			CompanyID:     &companyID,
		})
	}

	for _, tpl := range bundle.AccountProducts {
		accountID, ok := remap[tpl.AccountID]
		if !ok {
			plan.SkippedAccountProducts++
			continue
		}
		plan.AccountProducts = append(plan.AccountProducts, model.AccountProduct{
			ID:        uuid.New(),
			AccountID: accountID,
			ProductID: tpl.ProductID,
			Notes:     tpl.Notes,
			Type:      tpl.Type,
			Price:     tpl.Price,
			CompanyID: &companyID,
		})
	}

	for _, tpl := range bundle.ShippingLocations {
		originalID, okOriginal := remap[tpl.OriginalAccountID]
		relatedID, okRelated := remap[tpl.RelatedAccountID]
		if !okOriginal || !okRelated {
			plan.SkippedShippingLocations++
			continue
		}
		plan.ShippingLocations = append(plan.ShippingLocations, model.ShippingLocation{
			ID:                uuid.New(),
			OriginalAccountID: originalID,
			RelatedAccountID:  relatedID,
			CompanyID:         &companyID,
		})
	}

	for _, tpl := range bundle.CallNotes {
		accountID, ok := remap[tpl.AccountID]
		if !ok {
			plan.SkippedCallNotes++
			continue
		}
		// Template call dates without a concrete value get the plan's current
		// time; a server-time sentinel is not available inside the transaction.
		callDate := tpl.CallDate
		if callDate.IsZero() {
			callDate = in.Now
		}
		plan.CallNotes = append(plan.CallNotes, model.CallNote{
			ID:        uuid.New(),
			AccountID: accountID,
			CallDate:  callDate,
			Note:      tpl.Note,
			Type:      tpl.Type,
			CompanyID: &companyID,
		})
	}

	return plan
}

// TotalRecords returns the number of records the plan writes, the company
// and profile included.
func (p *ClonePlan) TotalRecords() int {
	return 2 + len(p.Accounts) + len(p.Contacts) + len(p.Products) +
		len(p.AccountProducts) + len(p.ShippingLocations) + len(p.CallNotes)
}
