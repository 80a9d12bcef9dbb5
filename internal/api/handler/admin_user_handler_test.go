package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/yu-shop/storefront-api/internal/api/envelope"
	"github.com/yu-shop/storefront-api/internal/core/ports"
)

type stubAdminUserStore struct {
	listFn   func(ctx context.Context) (*envelope.Envelope, error)
	createFn func(ctx context.Context, in ports.AdminUserInput) (*envelope.Envelope, error)
	updateFn func(ctx context.Context, in ports.AdminUserInput) (*envelope.Envelope, error)
	deleteFn func(ctx context.Context, userID int) (*envelope.Envelope, error)
	loginFn  func(ctx context.Context, account, password string) (*envelope.Envelope, error)
}

func (s *stubAdminUserStore) List(ctx context.Context) (*envelope.Envelope, error) {
	return s.listFn(ctx)
}

func (s *stubAdminUserStore) Create(ctx context.Context, in ports.AdminUserInput) (*envelope.Envelope, error) {
	return s.createFn(ctx, in)
}

func (s *stubAdminUserStore) Update(ctx context.Context, in ports.AdminUserInput) (*envelope.Envelope, error) {
	return s.updateFn(ctx, in)
}

func (s *stubAdminUserStore) Delete(ctx context.Context, userID int) (*envelope.Envelope, error) {
	return s.deleteFn(ctx, userID)
}

func (s *stubAdminUserStore) Login(ctx context.Context, account, password string) (*envelope.Envelope, error) {
	return s.loginFn(ctx, account, password)
}

func TestAdminUserHandler_Create_LevelZeroAccepted(t *testing.T) {
	stub := &stubAdminUserStore{
		createFn: func(ctx context.Context, in ports.AdminUserInput) (*envelope.Envelope, error) {
			if in.Level == nil || *in.Level != 0 {
				t.Fatalf("expected level 0, got %v", in.Level)
			}
			return envelope.Created(map[string]any{"userId": 7}, "管理員新增成功"), nil
		},
	}
	handler := NewAdminUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/user/users", `{"account":"ops","password":"pw","name":"小幫手","level":0}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAdminUserHandler_Create_LevelAbsentRejected(t *testing.T) {
	stub := &stubAdminUserStore{
		createFn: func(ctx context.Context, in ports.AdminUserInput) (*envelope.Envelope, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAdminUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/user/users", `{"account":"ops","password":"pw","name":"小幫手"}`)
	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "所有欄位皆為必填" {
		t.Fatalf("unexpected message: %s", env.Message)
	}
}

func TestAdminUserHandler_Login_MissingPassword(t *testing.T) {
	stub := &stubAdminUserStore{
		loginFn: func(ctx context.Context, account, password string) (*envelope.Envelope, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAdminUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/user/users/login", `{"account":"admin"}`)
	_ = handler.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "帳號和密碼為必填" {
		t.Fatalf("unexpected message: %s", env.Message)
	}
}

func TestAdminUserHandler_Delete_MissingID(t *testing.T) {
	stub := &stubAdminUserStore{
		deleteFn: func(ctx context.Context, userID int) (*envelope.Envelope, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAdminUserHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/user/users", `{}`)
	_ = handler.Delete(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "管理員編號為必填" {
		t.Fatalf("unexpected message: %s", env.Message)
	}
}
