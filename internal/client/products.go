package client

import (
	"context"
	"net/http"
	"strconv"

	"catalog/admin/internal/domain"
)

type ProductService interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, payload domain.ProductPayload) (*domain.Product, error)
	Update(ctx context.Context, id int64, payload domain.ProductPayload) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	api *apiClient
}

func (s *productService) GetAll(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.api.do(ctx, "list products", http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *productService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	if err := s.api.do(ctx, "get product", http.MethodGet, productPath(id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *productService) Create(ctx context.Context, payload domain.ProductPayload) (*domain.Product, error) {
	var product domain.Product
	if err := s.api.do(ctx, "create product", http.MethodPost, "/products", payload, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *productService) Update(ctx context.Context, id int64, payload domain.ProductPayload) (*domain.Product, error) {
	var product domain.Product
	if err := s.api.do(ctx, "update product", http.MethodPut, productPath(id), payload, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	return s.api.do(ctx, "delete product", http.MethodDelete, productPath(id), nil, nil)
}

func productPath(id int64) string {
	return "/products/" + strconv.FormatInt(id, 10)
}
