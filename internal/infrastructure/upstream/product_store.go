package upstream

import (
	"context"
	"net/http"
	"strconv"

	"github.com/yu-shop/storefront-api/internal/api/envelope"
	"github.com/yu-shop/storefront-api/internal/core/ports"
)

type ProductStore struct {
	gw *Gateway
}

func NewProductStore(gw *Gateway) *ProductStore {
	return &ProductStore{gw: gw}
}

func (s *ProductStore) List(ctx context.Context) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodGet, "/product", nil, nil)
}

func (s *ProductStore) Get(ctx context.Context, productID int) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodGet, "/product/"+strconv.Itoa(productID), nil, nil)
}

func (s *ProductStore) AdminList(ctx context.Context) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodGet, "/user/products", nil, nil)
}

func (s *ProductStore) Create(ctx context.Context, in ports.ProductInput) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodPost, "/user/products", nil, in)
}

func (s *ProductStore) Update(ctx context.Context, in ports.ProductInput) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodPut, "/user/products", nil, in)
}

func (s *ProductStore) Delete(ctx context.Context, productID int) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodDelete, "/user/products", nil, map[string]int{"product_id": productID})
}
