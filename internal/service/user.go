// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fieldworks/territory/internal/auth"
	"github.com/fieldworks/territory/internal/config"
	"github.com/fieldworks/territory/internal/domain"
	"github.com/fieldworks/territory/internal/email"
	"github.com/fieldworks/territory/internal/identity"
	"github.com/fieldworks/territory/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserService handles the signup and login surface. Signup completion
// triggers the tenant bootstrap, so a new user lands in a provisioned
// workspace.
type UserService struct {
	identity       *identity.Store
	tenants        repository.TenantRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	bootstrap      *BootstrapService
	emailService   *email.Service
	config         *config.Config
	validate       *validator.Validate
}

func NewUserService(
	identityStore *identity.Store,
	tenants repository.TenantRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	bootstrap *BootstrapService,
	emailService *email.Service,
	cfg *config.Config,
) *UserService {
	return &UserService{
		identity:       identityStore,
		tenants:        tenants,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		bootstrap:      bootstrap,
		emailService:   emailService,
		config:         cfg,
		validate:       validator.New(),
	}
}

type SignupInput struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name" validate:"required"`
	Password    string `json:"password" validate:"required,min=8"`
}

type SignupOutput struct {
	Principal *identity.Principal `json:"user"`
	Token     string              `json:"token"`
	Bootstrap BootstrapResult     `json:"bootstrap"`
}

// Signup registers a principal, provisions its workspace and issues a token.
func (s *UserService) Signup(ctx context.Context, input SignupInput) (*SignupOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if _, err := s.identity.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrPrincipalNotFound) {
		return nil, err
	}

	hashedPassword, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	principal := &identity.Principal{
		Email:        input.Email,
		DisplayName:  input.DisplayName,
		PasswordHash: hashedPassword,
	}
	if err := s.identity.Create(ctx, principal); err != nil {
		return nil, fmt.Errorf("creating principal: %w", err)
	}

	result := s.bootstrap.Bootstrap(ctx, BootstrapInput{
		UserID:      principal.ID,
		Email:       principal.Email,
		DisplayName: principal.DisplayName,
	})
	if !result.Success {
		// The principal exists either way; the bootstrap can be retried
		// safely because it is idempotent per user.
		slog.ErrorContext(ctx, "bootstrap failed during signup", "error", result.Message, "userID", principal.ID)
	}

	if s.emailService != nil {
		if err := email.SendWelcomeEmail(s.emailService, principal.Email, principal.DisplayName, s.config.BaseURL); err != nil {
			slog.WarnContext(ctx, "failed to send welcome email", "error", err, "userID", principal.ID)
		}
	}

	// The token carries the workspace's company id when the bootstrap
	// produced one; otherwise the auth middleware resolves it per request.
	token, err := s.tokenManager.Generate(principal.ID, principal.Email, result.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &SignupOutput{
		Principal: principal,
		Token:     token,
		Bootstrap: result,
	}, nil
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	Principal *identity.Principal `json:"user"`
	Token     string              `json:"token"`
}

// Login verifies credentials and returns a token.
func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	principal, err := s.identity.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrPrincipalNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, principal.PasswordHash)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	var companyID *uuid.UUID
	profile, err := s.tenants.FindProfileByUserID(ctx, principal.ID)
	switch {
	case err == nil:
		companyID = profile.CompanyID
	case errors.Is(err, domain.ErrProfileNotFound):
		// Bootstrap has not run yet; the token simply carries no company.
	default:
		return nil, err
	}

	token, err := s.tokenManager.Generate(principal.ID, principal.Email, companyID)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{Principal: principal, Token: token}, nil
}
