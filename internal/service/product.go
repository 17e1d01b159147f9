// internal/service/product.go
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fieldworks/territory/internal/domain"
	"github.com/fieldworks/territory/internal/model"
	"github.com/fieldworks/territory/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProductService struct {
	repo     repository.ProductRepositoryIface
	validate *validator.Validate
}

func NewProductService(repo repository.ProductRepositoryIface) *ProductService {
	return &ProductService{repo: repo, validate: validator.New()}
}

type ProductInput struct {
	Name          string          `json:"name" validate:"required"`
	ProductNumber string          `json:"product_number" validate:"required"`
	Attributes    json.RawMessage `json:"attributes"`
}

func (s *ProductService) Create(ctx context.Context, companyID uuid.UUID, input ProductInput) (*model.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	product := &model.Product{
		Name:          input.Name,
		ProductNumber: input.ProductNumber,
		Attributes:    datatypes.JSON(input.Attributes),
		CompanyID:     &companyID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Get(ctx context.Context, companyID, id uuid.UUID) (*model.Product, error) {
	return s.repo.FindByID(ctx, companyID, id)
}

func (s *ProductService) List(ctx context.Context, companyID uuid.UUID) ([]*model.Product, error) {
	return s.repo.FindAll(ctx, companyID)
}

func (s *ProductService) Update(ctx context.Context, companyID, id uuid.UUID, input ProductInput) (*model.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	product, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.ProductNumber = input.ProductNumber
	if input.Attributes != nil {
		product.Attributes = datatypes.JSON(input.Attributes)
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	return s.repo.Delete(ctx, companyID, id)
}
