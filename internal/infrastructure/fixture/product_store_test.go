package fixture

import (
	"context"
	"errors"
	"testing"

	"github.com/yu-shop/storefront-api/internal/core/domain"
)

func TestProductStore_Get_KnownID(t *testing.T) {
	store := NewProductStore()

	env, err := store.Get(context.Background(), 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Status != 200 || env.Message != "成功取得商品資料" {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	p, ok := env.Data.(domain.Product)
	if !ok {
		t.Fatalf("expected product, got %T", env.Data)
	}
	if p.Name != "iPad Pro" || p.Price != "35000" {
		t.Fatalf("unexpected product: %+v", p)
	}
	if p.ImageURL != nil {
		t.Fatalf("image_url must be nil for product 8, got %v", *p.ImageURL)
	}
}

func TestProductStore_Get_UnknownID(t *testing.T) {
	store := NewProductStore()

	_, err := store.Get(context.Background(), 999)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductStore_ListAndDetailSetDiffer(t *testing.T) {
	store := NewProductStore()

	env, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	products, ok := env.Data.([]domain.Product)
	if !ok || len(products) != 4 {
		t.Fatalf("expected 4 products, got %v", env.Data)
	}

	// Product 8 exists only in the by-id set, never in the list.
	for _, p := range products {
		if p.ProductID == 8 {
			t.Fatalf("product 8 must not appear in the catalog list")
		}
	}
}

func TestProductStore_AdminListIsTruncated(t *testing.T) {
	store := NewProductStore()

	env, err := store.AdminList(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	products, ok := env.Data.([]domain.Product)
	if !ok || len(products) != 3 {
		t.Fatalf("expected 3 products, got %v", env.Data)
	}
}
