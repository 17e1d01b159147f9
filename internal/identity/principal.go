// internal/identity/principal.go
package identity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Principal is an identity-provider record. It is deliberately separate from
// model.UserProfile: a principal can exist before the tenant bootstrap has
// run, and credentials never live on the profile.
type Principal struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	DisplayName  string    `gorm:"type:text" json:"display_name"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *Principal) TableName() string { return "principals" }

func (p *Principal) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
