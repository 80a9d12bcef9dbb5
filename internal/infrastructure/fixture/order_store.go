package fixture

import (
	"context"
	"strconv"

	"github.com/yu-shop/storefront-api/internal/api/envelope"
	"github.com/yu-shop/storefront-api/internal/core/domain"
)

type OrderStore struct{}

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

func (s *OrderStore) Create(ctx context.Context, memberID int) (*envelope.Envelope, error) {
	return envelope.Created(domain.Order{
		OrderID:  newID(10000),
		MemberID: memberID,
		CreateAt: nowISO(),
	}, "訂單建立成功"), nil
}

func (s *OrderStore) List(ctx context.Context, memberID string) (*envelope.Envelope, error) {
	orders := []domain.Order{
		{
			OrderID:     1001,
			MemberID:    12345,
			TotalAmount: 46000,
			CreateAt:    "2025-01-15T10:30:00",
			Details: []domain.OrderDetail{
				{ProductID: 1, Name: "iPhone 15", Quantity: 1, Price: 30000},
				{ProductID: 3, Name: "AirPods Pro", Quantity: 2, Price: 8000},
			},
		},
		{
			OrderID:     1002,
			MemberID:    1,
			TotalAmount: 60000,
			CreateAt:    "2025-01-16T15:45:00",
			Details: []domain.OrderDetail{
				{ProductID: 2, Name: "MacBook Pro", Quantity: 1, Price: 60000},
			},
		},
	}

	if memberID != "" {
		id, _ := strconv.Atoi(memberID)
		filtered := make([]domain.Order, 0, len(orders))
		for _, o := range orders {
			if o.MemberID == id {
				filtered = append(filtered, o)
			}
		}
		return envelope.OK(filtered, "成功取得訂單列表"), nil
	}

	return envelope.OK(orders, "成功取得訂單列表"), nil
}
