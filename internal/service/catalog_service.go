package service

import (
	"context"
	"fmt"

	"greenfood-api/internal/model"
	"greenfood-api/internal/repository"
	"greenfood-api/pkg/validator"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CatalogService interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) (primitive.ObjectID, error)
	ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (primitive.ObjectID, error)
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	log          zerolog.Logger
}

func NewCatalogService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, log zerolog.Logger) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		log:          log,
	}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return categories, nil
}

func (s *catalogService) CreateCategory(ctx context.Context, category *model.Category) (primitive.ObjectID, error) {
	if errs := validator.ValidateStruct(category); len(errs) > 0 {
		first := errs[0]
		return primitive.NilObjectID, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	return s.categoryRepo.Create(ctx, category)
}

func (s *catalogService) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	products, err := s.productRepo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, product *model.Product) (primitive.ObjectID, error) {
	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		first := errs[0]
		return primitive.NilObjectID, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	id, err := s.productRepo.Create(ctx, product)
	if err != nil {
		return primitive.NilObjectID, err
	}

	s.log.Info().Str("title", product.Title).Str("category", product.Category).Msg("product created")
	return id, nil
}
