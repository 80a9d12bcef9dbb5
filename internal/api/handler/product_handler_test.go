package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/yu-shop/storefront-api/internal/api/envelope"
	"github.com/yu-shop/storefront-api/internal/core/domain"
	"github.com/yu-shop/storefront-api/internal/core/ports"
)

type stubProductStore struct {
	listFn      func(ctx context.Context) (*envelope.Envelope, error)
	getFn       func(ctx context.Context, productID int) (*envelope.Envelope, error)
	adminListFn func(ctx context.Context) (*envelope.Envelope, error)
	createFn    func(ctx context.Context, in ports.ProductInput) (*envelope.Envelope, error)
	updateFn    func(ctx context.Context, in ports.ProductInput) (*envelope.Envelope, error)
	deleteFn    func(ctx context.Context, productID int) (*envelope.Envelope, error)
}

func (s *stubProductStore) List(ctx context.Context) (*envelope.Envelope, error) {
	return s.listFn(ctx)
}

func (s *stubProductStore) Get(ctx context.Context, productID int) (*envelope.Envelope, error) {
	return s.getFn(ctx, productID)
}

func (s *stubProductStore) AdminList(ctx context.Context) (*envelope.Envelope, error) {
	return s.adminListFn(ctx)
}

func (s *stubProductStore) Create(ctx context.Context, in ports.ProductInput) (*envelope.Envelope, error) {
	return s.createFn(ctx, in)
}

func (s *stubProductStore) Update(ctx context.Context, in ports.ProductInput) (*envelope.Envelope, error) {
	return s.updateFn(ctx, in)
}

func (s *stubProductStore) Delete(ctx context.Context, productID int) (*envelope.Envelope, error) {
	return s.deleteFn(ctx, productID)
}

func TestProductHandler_Get_Success(t *testing.T) {
	stub := &stubProductStore{
		getFn: func(ctx context.Context, productID int) (*envelope.Envelope, error) {
			if productID != 8 {
				t.Fatalf("expected id 8, got %d", productID)
			}
			return envelope.OK(map[string]any{"product_id": 8, "name": "iPad Pro"}, "成功取得商品資料"), nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/product/8", "")
	c.SetParamNames("id")
	c.SetParamValues("8")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Get_NonNumericID(t *testing.T) {
	stub := &stubProductStore{
		getFn: func(ctx context.Context, productID int) (*envelope.Envelope, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/product/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.Get(c)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHandler_Get_UnknownID(t *testing.T) {
	stub := &stubProductStore{
		getFn: func(ctx context.Context, productID int) (*envelope.Envelope, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewProductHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/product/999", "")
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := handler.Get(c)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHandler_List_Success(t *testing.T) {
	stub := &stubProductStore{
		listFn: func(ctx context.Context) (*envelope.Envelope, error) {
			return envelope.OK([]map[string]any{{"product_id": 1}}, "成功取得商品列表"), nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/product", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "成功取得商品列表" {
		t.Fatalf("unexpected message: %s", env.Message)
	}
}
