package upstream

import (
	"context"
	"net/http"

	"github.com/yu-shop/storefront-api/internal/api/envelope"
	"github.com/yu-shop/storefront-api/internal/core/ports"
)

type AdminUserStore struct {
	gw *Gateway
}

func NewAdminUserStore(gw *Gateway) *AdminUserStore {
	return &AdminUserStore{gw: gw}
}

func (s *AdminUserStore) List(ctx context.Context) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodGet, "/user/users", nil, nil)
}

func (s *AdminUserStore) Create(ctx context.Context, in ports.AdminUserInput) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodPost, "/user/users", nil, in)
}

func (s *AdminUserStore) Update(ctx context.Context, in ports.AdminUserInput) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodPut, "/user/users", nil, in)
}

func (s *AdminUserStore) Delete(ctx context.Context, userID int) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodDelete, "/user/users", nil, map[string]int{"userId": userID})
}

func (s *AdminUserStore) Login(ctx context.Context, account, password string) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodPost, "/user/users/login", nil, map[string]string{
		"account":  account,
		"password": password,
	})
}
