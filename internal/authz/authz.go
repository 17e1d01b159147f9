// internal/authz/authz.go
package authz

import (
	"context"
	"fmt"

	pbase "buf.build/gen/go/permifyco/permify/protocolbuffers/go/base/v1"
	permify_grpc "github.com/Permify/permify-go/grpc"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Service mirrors company membership into Permify so permission checks can
// run against the relationship graph. All writes here are advisory from the
// caller's point of view; the database is the source of truth.
type Service struct {
	client        *permify_grpc.Client
	tenant        string
	schemaVersion string
	depth         int32
}

func WithTenant(tenant string) func(*Service) {
	return func(s *Service) {
		s.tenant = tenant
	}
}

func WithSchemaVersion(schemaVersion string) func(*Service) {
	return func(s *Service) {
		s.schemaVersion = schemaVersion
	}
}

func NewService(host string, options ...func(*Service)) (*Service, error) {
	client, err := permify_grpc.NewClient(
		permify_grpc.Config{
			Endpoint: host,
		},
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to permify: %w", err)
	}

	service := &Service{client: client, schemaVersion: "v1", depth: 50}
	for _, o := range options {
		o(service)
	}

	if service.tenant == "" {
		service.tenant = "t1"
	}

	return service, nil
}

// EstablishCompanyOwner records the company's owner relationship.
func (s *Service) EstablishCompanyOwner(ctx context.Context, companyID, userID uuid.UUID) error {
	return s.writeRelationship(ctx, "company", companyID.String(), "owner", "user", userID.String())
}

// EstablishCompanyMember records plain membership for invited users.
func (s *Service) EstablishCompanyMember(ctx context.Context, companyID, userID uuid.UUID) error {
	return s.writeRelationship(ctx, "company", companyID.String(), "member", "user", userID.String())
}

// CheckCompanyAccess asks Permify whether the user holds the given
// permission on the company.
func (s *Service) CheckCompanyAccess(ctx context.Context, companyID, userID uuid.UUID, permission string) (bool, error) {
	cr, err := s.client.Permission.Check(ctx, &pbase.PermissionCheckRequest{
		TenantId: s.tenant,
		Metadata: &pbase.PermissionCheckRequestMetadata{
			SchemaVersion: s.schemaVersion,
			Depth:         s.depth,
		},
		Entity: &pbase.Entity{
			Type: "company",
			Id:   companyID.String(),
		},
		Permission: permission,
		Subject: &pbase.Subject{
			Type: "user",
			Id:   userID.String(),
		},
	})
	if err != nil {
		return false, fmt.Errorf("permission check: %w", err)
	}

	return cr.Can == pbase.CheckResult_CHECK_RESULT_ALLOWED, nil
}

func (s *Service) writeRelationship(ctx context.Context, entityType, entityID, relation, subjectType, subjectID string) error {
	_, err := s.client.Data.WriteRelationships(ctx, &pbase.RelationshipWriteRequest{
		TenantId: s.tenant,
		Metadata: &pbase.RelationshipWriteRequestMetadata{
			SchemaVersion: s.schemaVersion,
		},
		Tuples: []*pbase.Tuple{
			{
				Entity: &pbase.Entity{
					Type: entityType,
					Id:   entityID,
				},
				Relation: relation,
				Subject: &pbase.Subject{
					Type: subjectType,
					Id:   subjectID,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("writing relationship: %w", err)
	}
	return nil
}
