// internal/model/account.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountStatus string

const (
	AccountStatusLead       AccountStatus = "lead"
	AccountStatusCustomer   AccountStatus = "customer"
	AccountStatusKeyAccount AccountStatus = "key-account"
	AccountStatusSupplier   AccountStatus = "supplier"
)

type Account struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	AccountNumber string        `gorm:"type:text;not null;index" json:"account_number"`
	Name          string        `gorm:"type:text;not null" json:"name"`
	Industry      string        `gorm:"type:text" json:"industry"`
	Status        AccountStatus `gorm:"type:text;not null;default:'lead'" json:"status"`
	Details       string        `gorm:"type:text" json:"details"`
	Address       string        `gorm:"type:text" json:"address"`
	CompanyID     *uuid.UUID    `gorm:"type:uuid;index" json:"company_id"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
