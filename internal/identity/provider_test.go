// internal/identity/provider_test.go
package identity

import (
	"context"
	"fmt"
	"testing"

	"github.com/fieldworks/territory/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Principal{}))

	return NewStore(db)
}

func TestStore_CreateAndFind(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	principal := &Principal{
		Email:        "ada@example.com",
		DisplayName:  "Ada",
		PasswordHash: "hash",
	}
	require.NoError(t, store.Create(ctx, principal))

	byID, err := store.FindByID(ctx, principal.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", byID.Email)

	byEmail, err := store.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, principal.ID, byEmail.ID)
}

func TestStore_CreateDuplicateEmail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &Principal{
		Email:        "ada@example.com",
		PasswordHash: "hash",
	}))

	err := store.Create(ctx, &Principal{
		Email:        "ada@example.com",
		PasswordHash: "other-hash",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestStore_FindMissing(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrPrincipalNotFound)
}
