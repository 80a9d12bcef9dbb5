package upstream

import (
	"context"
	"net/http"

	"github.com/yu-shop/storefront-api/internal/api/envelope"
	"github.com/yu-shop/storefront-api/internal/core/ports"
)

type CategoryStore struct {
	gw *Gateway
}

func NewCategoryStore(gw *Gateway) *CategoryStore {
	return &CategoryStore{gw: gw}
}

func (s *CategoryStore) List(ctx context.Context) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodGet, "/user/categories", nil, nil)
}

func (s *CategoryStore) Create(ctx context.Context, in ports.CategoryInput) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodPost, "/user/categories", nil, in)
}

func (s *CategoryStore) Update(ctx context.Context, in ports.CategoryInput) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodPut, "/user/categories", nil, in)
}

func (s *CategoryStore) Delete(ctx context.Context, categoryID int) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodDelete, "/user/categories", nil, map[string]int{"category_id": categoryID})
}
