package fixture

import (
	"context"
	"testing"

	"github.com/yu-shop/storefront-api/internal/core/domain"
)

func TestMemberStore_Login_KnownCredentials(t *testing.T) {
	store := NewMemberStore()

	env, err := store.Login(context.Background(), "test@example.com", "password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Status != 200 || env.Message != "登入成功" {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	m, ok := env.Data.(domain.Member)
	if !ok {
		t.Fatalf("expected member, got %T", env.Data)
	}
	if m.MemberID != 12345 || m.Name != "測試用戶" {
		t.Fatalf("unexpected member: %+v", m)
	}
}

func TestMemberStore_Login_WrongPassword(t *testing.T) {
	store := NewMemberStore()

	env, err := store.Login(context.Background(), "test@example.com", "wrong")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Status != 401 || env.Message != "電子郵件或密碼錯誤" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if env.Data != nil {
		t.Fatalf("data must be null on failure")
	}
}

func TestMemberStore_Register_FabricatesID(t *testing.T) {
	store := NewMemberStore()

	env, err := store.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Status != 201 || env.Message != "會員註冊成功" {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	m := env.Data.(domain.Member)
	if m.MemberID < 0 || m.MemberID >= 100000 {
		t.Fatalf("member id out of range: %d", m.MemberID)
	}
	if m.CreateAt == "" {
		t.Fatalf("create_at must be populated")
	}
}

func TestMemberStore_Get_EchoesID(t *testing.T) {
	store := NewMemberStore()

	env, err := store.Get(context.Background(), "777")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := env.Data.(domain.Member)
	if m.MemberID != 777 {
		t.Fatalf("expected id 777, got %d", m.MemberID)
	}
}
