package client

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"catalog/admin/internal/domain"
)

type CategoryService interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, payload domain.CategoryPayload) (*domain.Category, error)
	Update(ctx context.Context, id int64, payload domain.CategoryPayload) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	api *apiClient
}

func (s *categoryService) GetAll(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := s.api.do(ctx, "list categories", http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var category domain.Category
	if err := s.api.do(ctx, "get category", http.MethodGet, categoryPath(id), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *categoryService) Create(ctx context.Context, payload domain.CategoryPayload) (*domain.Category, error) {
	var category domain.Category
	if err := s.api.do(ctx, "create category", http.MethodPost, "/categories", payload, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *categoryService) Update(ctx context.Context, id int64, payload domain.CategoryPayload) (*domain.Category, error) {
	var category domain.Category
	if err := s.api.do(ctx, "update category", http.MethodPut, categoryPath(id), payload, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes a category. The API answers 400 while products still
// reference it; that case is reported as KindConflict.
func (s *categoryService) Delete(ctx context.Context, id int64) error {
	err := s.api.do(ctx, "delete category", http.MethodDelete, categoryPath(id), nil, nil)
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest {
		apiErr.Kind = KindConflict
	}
	return err
}

func categoryPath(id int64) string {
	return "/categories/" + strconv.FormatInt(id, 10)
}
