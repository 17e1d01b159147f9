// internal/model/account_product.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountProduct links an account to a product it buys or supplies.
type AccountProduct struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID uuid.UUID  `gorm:"type:uuid;not null;index" json:"account_id"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null;index" json:"product_id"`
	Notes     string     `gorm:"type:text" json:"notes"`
	Type      string     `gorm:"type:text" json:"type"`
	Price     float64    `json:"price"`
	CompanyID *uuid.UUID `gorm:"type:uuid;index" json:"company_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (ap *AccountProduct) BeforeCreate(tx *gorm.DB) error {
	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	return nil
}
