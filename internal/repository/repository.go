// internal/repository/repository.go
package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// companyScope restricts a query to a single company's records. Every CRM
// read and write goes through it; only the backfill migration touches rows
// outside a company scope.
func companyScope(companyID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}
