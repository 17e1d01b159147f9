// internal/model/company.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company is the multi-tenancy boundary. Every tenant-scoped record carries
// exactly one company id, assigned at creation time and never changed by
// ordinary CRUD flows.
type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
