package fixture

import (
	"context"

	"github.com/yu-shop/storefront-api/internal/api/envelope"
	"github.com/yu-shop/storefront-api/internal/core/domain"
	"github.com/yu-shop/storefront-api/internal/core/ports"
)

// AdminUserStore fabricates back-office accounts. Two credential pairs are
// accepted: 000/000 ("yu") and admin/admin123 (系統管理員), both level 1.
type AdminUserStore struct{}

func NewAdminUserStore() *AdminUserStore {
	return &AdminUserStore{}
}

func (s *AdminUserStore) List(ctx context.Context) (*envelope.Envelope, error) {
	return envelope.OK([]domain.AdminUser{
		{UserID: 1, Name: "yu", Password: "000", Account: "000", Level: 1},
		{UserID: 2, Name: "admin", Password: "admin123", Account: "admin", Level: 1},
		{UserID: 3, Name: "manager", Password: "manager123", Account: "manager", Level: 2},
	}, "成功取得管理員列表"), nil
}

func (s *AdminUserStore) Login(ctx context.Context, account, password string) (*envelope.Envelope, error) {
	ok := (account == "admin" && password == "admin123") ||
		(account == "000" && password == "000")
	if !ok {
		return envelope.Fail(401, "帳號或密碼錯誤"), nil
	}

	name := "系統管理員"
	if account == "000" {
		name = "yu"
	}
	return envelope.OK(domain.AdminUser{
		UserID:   1,
		Account:  account,
		Name:     name,
		Password: password,
		Level:    1,
	}, "管理員登入成功"), nil
}

func (s *AdminUserStore) Create(ctx context.Context, in ports.AdminUserInput) (*envelope.Envelope, error) {
	level := 0
	if in.Level != nil {
		level = *in.Level
	}
	return envelope.Created(domain.AdminUser{
		UserID:   newID(10000),
		Account:  in.Account,
		Name:     in.Name,
		Password: in.Password,
		Level:    level,
	}, "管理員新增成功"), nil
}

func (s *AdminUserStore) Update(ctx context.Context, in ports.AdminUserInput) (*envelope.Envelope, error) {
	level := 0
	if in.Level != nil {
		level = *in.Level
	}
	return envelope.OK(domain.AdminUser{
		UserID:   in.UserID,
		Account:  in.Account,
		Name:     in.Name,
		Password: in.Password,
		Level:    level,
	}, "管理員更新成功"), nil
}

func (s *AdminUserStore) Delete(ctx context.Context, userID int) (*envelope.Envelope, error) {
	return envelope.OK(map[string]int{"userId": userID}, "管理員刪除成功"), nil
}
