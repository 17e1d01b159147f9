// internal/seed/templates.go
package seed

import (
	"time"

	"github.com/fieldworks/territory/internal/model"
	"github.com/google/uuid"
)

// Template record shapes. Template ids are fixed, process-wide constants and
// only ever valid inside a bundle; cloning replaces them with freshly
// generated ids scoped to the new company.
type TemplateAccount struct {
	ID            uuid.UUID
	AccountNumber string
	Name          string
	Industry      string
	Status        model.AccountStatus
	Details       string
	Address       string
}

type TemplateContact struct {
	ID            uuid.UUID
	Name          string
	Phone         string
	Email         string
	Location      string
	IsMainContact bool
	AvatarURL     string
	AccountNumber string
}

type TemplateProduct struct {
	ID            uuid.UUID
	Name          string
	ProductNumber string
	Attributes    string
}

type TemplateAccountProduct struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	ProductID uuid.UUID
	Notes     string
	Type      string
	Price     float64
}

type TemplateShippingLocation struct {
	ID                uuid.UUID
	OriginalAccountID uuid.UUID
	RelatedAccountID  uuid.UUID
}

type TemplateCallNote struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	CallDate  time.Time
	Note      string
	Type      model.CallNoteType
}

// Bundle is the immutable seed dataset cloned into every newly bootstrapped
// company. It is read-only configuration and safe for concurrent reads.
type Bundle struct {
	Accounts          []TemplateAccount
	Contacts          []TemplateContact
	Products          []TemplateProduct
	AccountProducts   []TemplateAccountProduct
	ShippingLocations []TemplateShippingLocation
	CallNotes         []TemplateCallNote
}

var (
	tplAccountNorth  = uuid.MustParse("0b0f7a52-1c3d-4e5f-8a6b-7c8d9e0f1a2b")
	tplAccountHarbor = uuid.MustParse("1c1e8b63-2d4e-5f60-9b7c-8d9e0f1a2b3c")
	tplAccountMill   = uuid.MustParse("2d2f9c74-3e5f-6071-ac8d-9e0f1a2b3c4d")
	tplProductValve  = uuid.MustParse("3e30ad85-4f60-7182-bd9e-0f1a2b3c4d5e")
	tplProductGasket = uuid.MustParse("4f41be96-5071-8293-ceaf-1a2b3c4d5e6f")
)

// DefaultBundle returns the built-in template dataset.
func DefaultBundle() Bundle {
	return Bundle{
		Accounts: []TemplateAccount{
			{
				ID:            tplAccountNorth,
				AccountNumber: "ACC-1001",
				Name:          "Northfield Dairy Cooperative",
				Industry:      "Food Processing",
				Status:        model.AccountStatusCustomer,
				Details:       "Regional dairy processor, orders quarterly.",
				Address:       "14 Creamery Rd, Northfield",
			},
			{
				ID:            tplAccountHarbor,
				AccountNumber: "ACC-1002",
				Name:          "Harborview Logistics",
				Industry:      "Transportation",
				Status:        model.AccountStatusLead,
				Details:       "Introduced at the spring trade fair.",
				Address:       "220 Quay St, Harborview",
			},
			{
				ID:            tplAccountMill,
				AccountNumber: "ACC-1003",
				Name:          "Millbrook Fabrication",
				Industry:      "Manufacturing",
				Status:        model.AccountStatusKeyAccount,
				Details:       "Largest template account; custom pricing in place.",
				Address:       "8 Foundry Ln, Millbrook",
			},
		},
		Contacts: []TemplateContact{
			{
				ID:            uuid.MustParse("5052cfa7-6182-93a4-dfb0-2b3c4d5e6f70"),
				Name:          "Greta Lindqvist",
				Phone:         "+1 555 0141",
				Email:         "greta@northfielddairy.example",
				Location:      "Northfield",
				IsMainContact: true,
				AccountNumber: "ACC-1001",
			},
			{
				ID:            uuid.MustParse("6163d0b8-7293-a4b5-e0c1-3c4d5e6f7081"),
				Name:          "Omar Haddad",
				Phone:         "+1 555 0178",
				Email:         "omar@harborviewlog.example",
				Location:      "Harborview",
				AccountNumber: "ACC-1002",
			},
			{
				ID:            uuid.MustParse("7274e1c9-83a4-b5c6-f1d2-4d5e6f708192"),
				Name:          "Priya Raman",
				Phone:         "+1 555 0192",
				Email:         "priya@millbrookfab.example",
				Location:      "Millbrook",
				IsMainContact: true,
				AccountNumber: "ACC-1003",
			},
		},
		Products: []TemplateProduct{
			{
				ID:            tplProductValve,
				Name:          "Series 40 Control Valve",
				ProductNumber: "PRD-040",
				Attributes:    `{"material":"stainless","sizes":["DN25","DN40","DN50"]}`,
			},
			{
				ID:            tplProductGasket,
				Name:          "HT Gasket Kit",
				ProductNumber: "PRD-155",
				Attributes:    `{"temp_rating_c":250,"pack_size":12}`,
			},
		},
		AccountProducts: []TemplateAccountProduct{
			{
				ID:        uuid.MustParse("8385f2da-94b5-c6d7-02e3-5e6f70819213"),
				AccountID: tplAccountNorth,
				ProductID: tplProductValve,
				Notes:     "Standing order, 20 units per quarter.",
				Type:      "recurring",
				Price:     489.00,
			},
			{
				ID:        uuid.MustParse("949603eb-a5c6-d7e8-13f4-6f7081921324"),
				AccountID: tplAccountMill,
				ProductID: tplProductGasket,
				Notes:     "Negotiated key-account pricing.",
				Type:      "contract",
				Price:     74.50,
			},
		},
		ShippingLocations: []TemplateShippingLocation{
			{
				ID:                uuid.MustParse("a5a714fc-b6d7-e8f9-2405-708192132435"),
				OriginalAccountID: tplAccountMill,
				RelatedAccountID:  tplAccountHarbor,
			},
		},
		CallNotes: []TemplateCallNote{
			{
				ID:        uuid.MustParse("b6b8250d-c7e8-f90a-3516-819213243546"),
				AccountID: tplAccountNorth,
				CallDate:  time.Date(2024, 11, 4, 9, 30, 0, 0, time.UTC),
				Note:      "Reviewed Q4 order volumes; renewal expected in January.",
				Type:      model.CallNoteTypeCall,
			},
			{
				ID:        uuid.MustParse("c7c9361e-d8f9-0a1b-4627-921324354657"),
				AccountID: tplAccountMill,
				Note:      "Site visit scheduled, confirm gate access with Priya.",
				Type:      model.CallNoteTypeVisit,
			},
		},
	}
}
