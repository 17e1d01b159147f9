// internal/model/shipping_location.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShippingLocation connects two accounts, e.g. an account and the related
// account goods are shipped to. Both endpoints are account ids.
type ShippingLocation struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OriginalAccountID uuid.UUID  `gorm:"type:uuid;not null;index" json:"original_account_id"`
	RelatedAccountID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"related_account_id"`
	CompanyID         *uuid.UUID `gorm:"type:uuid;index" json:"company_id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (sl *ShippingLocation) BeforeCreate(tx *gorm.DB) error {
	if sl.ID == uuid.Nil {
		sl.ID = uuid.New()
	}
	return nil
}
