// internal/model/user_profile.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile links a principal from the identity store to exactly one
// company. Its primary key is the principal id, so a profile exists at most
// once per user. CompanyID is set once by tenant bootstrap; the backfill
// migration may overwrite it as an administrative override.
type UserProfile struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string     `gorm:"type:text;not null" json:"email"`
	DisplayName string     `gorm:"type:text" json:"display_name"`
	CompanyID   *uuid.UUID `gorm:"type:uuid;index" json:"company_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
