package fixture

import (
	"context"
	"strconv"

	"github.com/yu-shop/storefront-api/internal/api/envelope"
	"github.com/yu-shop/storefront-api/internal/core/domain"
	"github.com/yu-shop/storefront-api/internal/core/ports"
)

// CartStore fabricates cart responses. Additions and removals are not
// remembered: the same canned cart comes back on every read.
type CartStore struct{}

func NewCartStore() *CartStore {
	return &CartStore{}
}

func (s *CartStore) Get(ctx context.Context, memberID string) (*envelope.Envelope, error) {
	id, _ := strconv.Atoi(memberID)
	return envelope.OK([]domain.CartItem{
		{
			MemberID:     id,
			ProductID:    1,
			Quantity:     1,
			CreateAt:     "2025-01-10T09:30:00",
			ProductName:  "iPhone 15",
			ProductPrice: 30000,
			ImageURL:     strPtr("/uploads/sample-phone.jpg"),
		},
		{
			MemberID:     id,
			ProductID:    3,
			Quantity:     2,
			CreateAt:     "2025-01-11T14:00:00",
			ProductName:  "AirPods Pro",
			ProductPrice: 8000,
			ImageURL:     nil,
		},
	}, "成功取得購物車"), nil
}

func (s *CartStore) Add(ctx context.Context, in ports.CartInput) (*envelope.Envelope, error) {
	return envelope.Created(map[string]any{
		"member_id":  in.MemberID,
		"product_id": in.ProductID,
		"quantity":   in.Quantity,
		"create_at":  nowISO(),
	}, "加入購物車成功"), nil
}

func (s *CartStore) Update(ctx context.Context, in ports.CartInput) (*envelope.Envelope, error) {
	return envelope.OK(map[string]any{
		"member_id":  in.MemberID,
		"product_id": in.ProductID,
		"quantity":   in.Quantity,
	}, "購物車更新成功"), nil
}

func (s *CartStore) Remove(ctx context.Context, memberID, productID string) (*envelope.Envelope, error) {
	mid, _ := strconv.Atoi(memberID)
	pid, _ := strconv.Atoi(productID)
	return envelope.OK(map[string]int{
		"member_id":  mid,
		"product_id": pid,
	}, "購物車商品移除成功"), nil
}
