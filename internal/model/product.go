// internal/model/product.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product is global per company; accounts link to products through
// AccountProduct rather than directly.
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string         `gorm:"type:text;not null" json:"name"`
	ProductNumber string         `gorm:"type:text;not null;index" json:"product_number"`
	Attributes    datatypes.JSON `gorm:"type:json" json:"attributes"`
	CompanyID     *uuid.UUID     `gorm:"type:uuid;index" json:"company_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
