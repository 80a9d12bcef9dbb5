package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/yu-shop/storefront-api/internal/api/envelope"
)

type OrderStore struct {
	gw *Gateway
}

func NewOrderStore(gw *Gateway) *OrderStore {
	return &OrderStore{gw: gw}
}

func (s *OrderStore) Create(ctx context.Context, memberID int) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodPost, "/order", nil, map[string]int{"member_id": memberID})
}

func (s *OrderStore) List(ctx context.Context, memberID string) (*envelope.Envelope, error) {
	var query url.Values
	if memberID != "" {
		query = url.Values{"member_id": {memberID}}
	}
	return s.gw.Do(ctx, http.MethodGet, "/user/orders", query, nil)
}
