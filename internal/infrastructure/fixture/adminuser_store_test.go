package fixture

import (
	"context"
	"testing"

	"github.com/yu-shop/storefront-api/internal/core/domain"
)

func TestAdminUserStore_Login_LegacyAccount(t *testing.T) {
	store := NewAdminUserStore()

	env, err := store.Login(context.Background(), "000", "000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Status != 200 || env.Message != "管理員登入成功" {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	u, ok := env.Data.(domain.AdminUser)
	if !ok {
		t.Fatalf("expected admin user, got %T", env.Data)
	}
	if u.UserID != 1 || u.Name != "yu" || u.Level != 1 {
		t.Fatalf("unexpected admin user: %+v", u)
	}
}

func TestAdminUserStore_Login_AdminAccount(t *testing.T) {
	store := NewAdminUserStore()

	env, err := store.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u := env.Data.(domain.AdminUser)
	if u.Name != "系統管理員" {
		t.Fatalf("unexpected name: %s", u.Name)
	}
}

func TestAdminUserStore_Login_BadCredentials(t *testing.T) {
	store := NewAdminUserStore()

	env, err := store.Login(context.Background(), "admin", "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Status != 401 || env.Message != "帳號或密碼錯誤" || env.Data != nil {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestAdminUserStore_Create_KeepsLevelZero(t *testing.T) {
	store := NewAdminUserStore()

	level := 0
	env, err := store.Create(context.Background(), adminInput("ops", &level))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u := env.Data.(domain.AdminUser)
	if u.Level != 0 {
		t.Fatalf("expected level 0, got %d", u.Level)
	}
}
