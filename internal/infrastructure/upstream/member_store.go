package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/yu-shop/storefront-api/internal/api/envelope"
	"github.com/yu-shop/storefront-api/internal/core/ports"
)

type MemberStore struct {
	gw *Gateway
}

func NewMemberStore(gw *Gateway) *MemberStore {
	return &MemberStore{gw: gw}
}

func (s *MemberStore) Register(ctx context.Context, in ports.RegisterMemberInput) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodPost, "/member", nil, in)
}

func (s *MemberStore) Get(ctx context.Context, memberID string) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodGet, "/member", url.Values{"member_id": {memberID}}, nil)
}

func (s *MemberStore) Update(ctx context.Context, in ports.UpdateMemberInput) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodPut, "/member", nil, in)
}

func (s *MemberStore) Delete(ctx context.Context, memberID int) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodDelete, "/member", nil, map[string]int{"member_id": memberID})
}

func (s *MemberStore) Login(ctx context.Context, email, password string) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodPost, "/member/login", nil, map[string]string{
		"email":    email,
		"password": password,
	})
}

func (s *MemberStore) ChangePassword(ctx context.Context, in ports.ChangePasswordInput) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodPut, "/member/password", nil, in)
}

func (s *MemberStore) List(ctx context.Context, memberID string) (*envelope.Envelope, error) {
	var query url.Values
	if memberID != "" {
		query = url.Values{"member_id": {memberID}}
	}
	return s.gw.Do(ctx, http.MethodGet, "/user/members", query, nil)
}

func (s *MemberStore) Create(ctx context.Context, in ports.CreateMemberInput) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodPost, "/user/members", nil, in)
}

func (s *MemberStore) AdminUpdate(ctx context.Context, in ports.UpdateMemberInput) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodPut, "/user/members", nil, in)
}

func (s *MemberStore) AdminDelete(ctx context.Context, memberID int) (*envelope.Envelope, error) {
	return s.gw.Do(ctx, http.MethodDelete, "/user/members", nil, map[string]int{"member_id": memberID})
}
