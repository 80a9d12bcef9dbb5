package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/yu-shop/storefront-api/internal/api/envelope"
	"github.com/yu-shop/storefront-api/internal/core/ports"
)

type CartStore struct {
	gw *Gateway
}

func NewCartStore(gw *Gateway) *CartStore {
	return &CartStore{gw: gw}
}

func (s *CartStore) Get(ctx context.Context, memberID string) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodGet, "/cart", url.Values{"member_id": {memberID}}, nil)
}

func (s *CartStore) Add(ctx context.Context, in ports.CartInput) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodPost, "/cart", nil, in)
}

func (s *CartStore) Update(ctx context.Context, in ports.CartInput) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodPut, "/cart", nil, in)
}

func (s *CartStore) Remove(ctx context.Context, memberID, productID string) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodDelete, "/cart", url.Values{
		"member_id":  {memberID},
		"product_id": {productID},
	}, nil)
}
