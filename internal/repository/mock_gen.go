// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./tenant.go -destination=../mocks/mock_tenant_repository.go -package=mocks TenantRepositoryIface
//go:generate mockgen -source=./backfill.go -destination=../mocks/mock_backfill_repository.go -package=mocks BackfillRepositoryIface
//go:generate mockgen -source=../identity/provider.go -destination=../mocks/mock_identity_provider.go -package=mocks Provider
//go:generate mockgen -source=../assist/assist.go -destination=../mocks/mock_assist_generator.go -package=mocks Generator
