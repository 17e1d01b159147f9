// internal/repository/backfill.go
package repository

import (
	"context"
	"fmt"

	"github.com/fieldworks/territory/internal/identity"
	"github.com/fieldworks/territory/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BackfillCollection names one record collection the migration walks.
type BackfillCollection struct {
	Name  string
	Model interface{}
}

// BackfillCollections is the fixed, ordered set of collections the backfill
// migration processes. Each collection's update is an independent unit;
// there is no atomicity across them.
var BackfillCollections = []BackfillCollection{
	{Name: "accounts", Model: &model.Account{}},
	{Name: "contacts", Model: &model.Contact{}},
	{Name: "products", Model: &model.Product{}},
	{Name: "account_products", Model: &model.AccountProduct{}},
	{Name: "shipping_locations", Model: &model.ShippingLocation{}},
	{Name: "call_notes", Model: &model.CallNote{}},
}

type BackfillRepositoryIface interface {
	UpsertProfileCompany(ctx context.Context, principal *identity.Principal, companyID uuid.UUID) error
	CountUnassigned(ctx context.Context, collection BackfillCollection) (int64, error)
	AssignCompany(ctx context.Context, collection BackfillCollection, companyID uuid.UUID) (int64, error)
}

type BackfillRepository struct {
	db *gorm.DB
}

func NewBackfillRepository(db *gorm.DB) *BackfillRepository {
	return &BackfillRepository{db: db}
}

// UpsertProfileCompany links the principal's profile to the given company,
// overwriting any previous assignment. This is the administrative override;
// ordinary flows never mutate a profile's company id after bootstrap.
func (r *BackfillRepository) UpsertProfileCompany(ctx context.Context, principal *identity.Principal, companyID uuid.UUID) error {
	profile := model.UserProfile{
		ID:          principal.ID,
		Email:       principal.Email,
		DisplayName: principal.DisplayName,
		CompanyID:   &companyID,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"company_id": companyID}),
	}).Create(&profile).Error
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}

// CountUnassigned returns how many records in the collection still lack a
// company id.
func (r *BackfillRepository) CountUnassigned(ctx context.Context, collection BackfillCollection) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(collection.Model).
		Where("company_id IS NULL").
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting unassigned %s: %w", collection.Name, err)
	}
	return count, nil
}

// AssignCompany stamps the company id onto every record in the collection
// whose company id is currently unset, as one batched update. Records that
// already belong to a company are never touched.
func (r *BackfillRepository) AssignCompany(ctx context.Context, collection BackfillCollection, companyID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(collection.Model).
		Where("company_id IS NULL").
		Update("company_id", companyID)
	if result.Error != nil {
		return 0, fmt.Errorf("assigning company on %s: %w", collection.Name, result.Error)
	}
	return result.RowsAffected, nil
}
