// internal/repository/testdb_test.go
package repository

import (
	"fmt"
	"testing"

	"github.com/fieldworks/territory/internal/identity"
	"github.com/fieldworks/territory/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test and migrates the
// full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&identity.Principal{},
		&model.Company{},
		&model.UserProfile{},
		&model.Account{},
		&model.Contact{},
		&model.Product{},
		&model.AccountProduct{},
		&model.ShippingLocation{},
		&model.CallNote{},
	))

	return db
}
