package fixture

import (
	"context"

	"github.com/yu-shop/storefront-api/internal/api/envelope"
	"github.com/yu-shop/storefront-api/internal/core/domain"
	"github.com/yu-shop/storefront-api/internal/core/ports"
)

// ProductStore serves the canned catalog. The storefront list and the
// by-id set differ deliberately; both match the upstream backend's samples.
type ProductStore struct{}

func NewProductStore() *ProductStore {
	return &ProductStore{}
}

func catalog() []domain.Product {
	return []domain.Product{
		{ProductID: 1, Name: "iPhone 15", Price: "30000", SOH: 50, CategoryID: 1, IsActive: true, ImageURL: strPtr("/uploads/sample-phone.jpg")},
		{ProductID: 2, Name: "MacBook Pro", Price: "60000", SOH: 20, CategoryID: 1, IsActive: true, ImageURL: strPtr("/uploads/sample-laptop.jpg")},
		{ProductID: 3, Name: "AirPods Pro", Price: "8000", SOH: 30, CategoryID: 1, IsActive: true, ImageURL: nil},
		{ProductID: 4, Name: "Apple Watch", Price: "12000", SOH: 25, CategoryID: 3, IsActive: true, ImageURL: nil},
	}
}

func detailSet() []domain.Product {
	return []domain.Product{
		{ProductID: 1, Name: "iPhone 15", Price: "30000", SOH: 50, CategoryID: 1, IsActive: true, ImageURL: strPtr("/uploads/sample-phone.jpg")},
		{ProductID: 2, Name: "MacBook Pro", Price: "60000", SOH: 20, CategoryID: 1, IsActive: true, ImageURL: strPtr("/uploads/sample-laptop.jpg")},
		{ProductID: 8, Name: "iPad Pro", Price: "35000", SOH: 15, CategoryID: 1, IsActive: true, ImageURL: nil},
		{ProductID: 46, Name: "Apple Watch Ultra", Price: "25000", SOH: 30, CategoryID: 3, IsActive: true, ImageURL: nil},
	}
}

func (s *ProductStore) List(ctx context.Context) (*envelope.Envelope, error) {
	return envelope.OK(catalog(), "成功取得商品列表"), nil
}

func (s *ProductStore) Get(ctx context.Context, productID int) (*envelope.Envelope, error) {
	for _, p := range detailSet() {
		if p.ProductID == productID {
			return envelope.OK(p, "成功取得商品資料"), nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (s *ProductStore) AdminList(ctx context.Context) (*envelope.Envelope, error) {
	return envelope.OK(catalog()[:3], "成功取得商品列表"), nil
}

func (s *ProductStore) Create(ctx context.Context, in ports.ProductInput) (*envelope.Envelope, error) {
	return envelope.Created(domain.Product{
		ProductID:  newID(10000),
		Name:       in.Name,
		Price:      in.Price,
		SOH:        in.SOH,
		CategoryID: in.CategoryID,
		IsActive:   true,
		ImageURL:   in.ImageURL,
	}, "商品新增成功"), nil
}

func (s *ProductStore) Update(ctx context.Context, in ports.ProductInput) (*envelope.Envelope, error) {
	return envelope.OK(in, "商品更新成功"), nil
}

func (s *ProductStore) Delete(ctx context.Context, productID int) (*envelope.Envelope, error) {
	return envelope.OK(map[string]int{"product_id": productID}, "商品刪除成功"), nil
}
