// internal/model/contact.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact references its account by business identifier (AccountNumber)
// rather than by account id. The reference scheme intentionally differs from
// AccountProduct/ShippingLocation/CallNote, which reference accounts by id.
type Contact struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string     `gorm:"type:text;not null" json:"name"`
	Phone         string     `gorm:"type:text" json:"phone"`
	Email         string     `gorm:"type:text" json:"email"`
	Location      string     `gorm:"type:text" json:"location"`
	IsMainContact bool       `gorm:"not null;default:false" json:"is_main_contact"`
	AvatarURL     string     `gorm:"type:text" json:"avatar_url"`
	AccountNumber string     `gorm:"type:text;index" json:"account_number"`
	CompanyID     *uuid.UUID `gorm:"type:uuid;index" json:"company_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
