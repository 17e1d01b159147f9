// internal/model/call_note.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CallNoteType string

const (
	CallNoteTypeCall    CallNoteType = "call"
	CallNoteTypeVisit   CallNoteType = "visit"
	CallNoteTypeEmail   CallNoteType = "email"
	CallNoteTypeGeneral CallNoteType = "general"
)

type CallNote struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID uuid.UUID    `gorm:"type:uuid;not null;index" json:"account_id"`
	CallDate  time.Time    `gorm:"not null" json:"call_date"`
	Note      string       `gorm:"type:text" json:"note"`
	Type      CallNoteType `gorm:"type:text;not null;default:'general'" json:"type"`
	CompanyID *uuid.UUID   `gorm:"type:uuid;index" json:"company_id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (cn *CallNote) BeforeCreate(tx *gorm.DB) error {
	if cn.ID == uuid.Nil {
		cn.ID = uuid.New()
	}
	return nil
}
