// internal/middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fieldworks/territory/internal/auth"
	"github.com/fieldworks/territory/internal/domain"
	"github.com/fieldworks/territory/internal/mocks"
	"github.com/fieldworks/territory/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func authRequest(t *testing.T, token string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuthMiddleware_UsesCompanyClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tm := auth.NewTokenManager("test-secret", time.Hour)
	userID := uuid.New()
	companyID := uuid.New()

	token, err := tm.Generate(userID, "ada@example.com", &companyID)
	require.NoError(t, err)

	// No expectation on FindProfileByUserID: a token carrying the company
	// claim must not trigger a database lookup.
	tenants := mocks.NewMockTenantRepositoryIface(ctrl)

	var gotUser, gotCompany uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = UserIDFromContext(r.Context())
		gotCompany, _ = CompanyIDFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	AuthMiddleware(tm, tenants)(next).ServeHTTP(rec, authRequest(t, token))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotUser)
	assert.Equal(t, companyID, gotCompany)
}

func TestAuthMiddleware_FallsBackToProfileLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tm := auth.NewTokenManager("test-secret", time.Hour)
	userID := uuid.New()
	companyID := uuid.New()

	token, err := tm.Generate(userID, "ada@example.com", nil)
	require.NoError(t, err)

	tenants := mocks.NewMockTenantRepositoryIface(ctrl)
	tenants.EXPECT().
		FindProfileByUserID(gomock.Any(), userID).
		Return(&model.UserProfile{ID: userID, CompanyID: &companyID}, nil)

	var gotCompany uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCompany, _ = CompanyIDFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	AuthMiddleware(tm, tenants)(next).ServeHTTP(rec, authRequest(t, token))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, companyID, gotCompany)
}

func TestAuthMiddleware_RejectsUserWithoutWorkspace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tm := auth.NewTokenManager("test-secret", time.Hour)
	userID := uuid.New()

	token, err := tm.Generate(userID, "new@example.com", nil)
	require.NoError(t, err)

	tenants := mocks.NewMockTenantRepositoryIface(ctrl)
	tenants.EXPECT().
		FindProfileByUserID(gomock.Any(), userID).
		Return(nil, domain.ErrProfileNotFound)

	rec := httptest.NewRecorder()
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not be reached")
	})
	AuthMiddleware(tm, tenants)(next).ServeHTTP(rec, authRequest(t, token))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RejectsBadToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tm := auth.NewTokenManager("test-secret", time.Hour)
	tenants := mocks.NewMockTenantRepositoryIface(ctrl)

	rec := httptest.NewRecorder()
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not be reached")
	})
	AuthMiddleware(tm, tenants)(next).ServeHTTP(rec, authRequest(t, "not-a-token"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
