package fixture

import (
	"context"

	"github.com/yu-shop/storefront-api/internal/api/envelope"
	"github.com/yu-shop/storefront-api/internal/core/domain"
	"github.com/yu-shop/storefront-api/internal/core/ports"
)

type CategoryStore struct{}

func NewCategoryStore() *CategoryStore {
	return &CategoryStore{}
}

func (s *CategoryStore) List(ctx context.Context) (*envelope.Envelope, error) {
	return envelope.OK([]domain.Category{
		{CategoryID: 1, Name: "電子產品"},
		{CategoryID: 2, Name: "服裝"},
		{CategoryID: 3, Name: "手錶"},
	}, "成功取得商品類別列表"), nil
}

func (s *CategoryStore) Create(ctx context.Context, in ports.CategoryInput) (*envelope.Envelope, error) {
	return envelope.Created(domain.Category{
		CategoryID: newID(10000),
		Name:       in.Name,
	}, "商品類別新增成功"), nil
}

func (s *CategoryStore) Update(ctx context.Context, in ports.CategoryInput) (*envelope.Envelope, error) {
	return envelope.OK(domain.Category{
		CategoryID: in.CategoryID,
		Name:       in.Name,
	}, "商品類別更新成功"), nil
}

func (s *CategoryStore) Delete(ctx context.Context, categoryID int) (*envelope.Envelope, error) {
	return envelope.OK(map[string]int{"category_id": categoryID}, "商品類別刪除成功"), nil
}
