// internal/service/bootstrap.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fieldworks/territory/internal/authz"
	"github.com/fieldworks/territory/internal/identity"
	"github.com/fieldworks/territory/internal/repository"
	"github.com/fieldworks/territory/internal/seed"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// BootstrapService provisions a company for a newly signed-up user: it
// creates the company and user profile and clones the template dataset into
// the company's namespace, all in one transaction. Invoking it again for the
// same user is a no-op.
type BootstrapService struct {
	identity  identity.Provider
	tenants   repository.TenantRepositoryIface
	templates seed.Bundle
	authz     *authz.Service
	validate  *validator.Validate
}

func NewBootstrapService(
	identityProvider identity.Provider,
	tenants repository.TenantRepositoryIface,
	templates seed.Bundle,
	authzService *authz.Service,
) *BootstrapService {
	return &BootstrapService{
		identity:  identityProvider,
		tenants:   tenants,
		templates: templates,
		authz:     authzService,
		validate:  validator.New(),
	}
}

type BootstrapInput struct {
	UserID      uuid.UUID `json:"user_id" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	DisplayName string    `json:"display_name"`
}

// BootstrapResult is the discriminated outcome object; nothing is thrown
// across the service boundary.
type BootstrapResult struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message,omitempty"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
}

func failure(format string, args ...interface{}) BootstrapResult {
	return BootstrapResult{Success: false, Message: fmt.Sprintf(format, args...)}
}

// Bootstrap ensures a company exists for the given user, exactly once.
func (s *BootstrapService) Bootstrap(ctx context.Context, input BootstrapInput) BootstrapResult {
	if err := s.validate.Struct(input); err != nil {
		return failure("invalid bootstrap input: %v", err)
	}

	// Confirm the principal exists and take its canonical display name.
	principal, err := s.identity.FindByID(ctx, input.UserID)
	if err != nil {
		return failure("identity lookup failed: %v", err)
	}

	displayName := principal.DisplayName
	if displayName == "" {
		displayName = input.DisplayName
	}
	if displayName == "" {
		displayName = nameFromEmail(principal.Email)
	}

	plan := seed.BuildClonePlan(s.templates, seed.PlanInput{
		CompanyID:   uuid.New(),
		CompanyName: fmt.Sprintf("%s's Company", displayName),
		OwnerID:     principal.ID,
		Email:       principal.Email,
		DisplayName: displayName,
		Now:         time.Now().UTC(),
	})

	created, err := s.tenants.CreateTenant(ctx, plan)
	if err != nil {
		return failure("bootstrap failed: %v", err)
	}
	if !created {
		slog.InfoContext(ctx, "profile already exists, skipping bootstrap", "userID", principal.ID)
		return BootstrapResult{Success: true, Message: "workspace already provisioned"}
	}

	companyID := plan.Company.ID

	// Ownership sync to the permission system is advisory; a failed sync is
	// recoverable through reconciliation and must not undo the bootstrap.
	if s.authz != nil {
		if err := s.authz.EstablishCompanyOwner(ctx, companyID, principal.ID); err != nil {
			slog.WarnContext(ctx, "failed to sync company owner relationship", "error", err, "companyID", companyID)
		}
	}

	slog.InfoContext(ctx, "tenant bootstrapped",
		"userID", principal.ID,
		"companyID", companyID,
		"records", plan.TotalRecords(),
		"skipped", plan.SkippedAccountProducts+plan.SkippedShippingLocations+plan.SkippedCallNotes,
	)

	return BootstrapResult{Success: true, CompanyID: &companyID}
}

func nameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return email
	}
	return local
}
