package fixture

import (
	"context"
	"strconv"

	"github.com/yu-shop/storefront-api/internal/api/envelope"
	"github.com/yu-shop/storefront-api/internal/core/domain"
	"github.com/yu-shop/storefront-api/internal/core/ports"
)

// MemberStore fabricates member responses. The only accepted credential pair
// is test@example.com / password, which resolves to member 12345.
type MemberStore struct{}

func NewMemberStore() *MemberStore {
	return &MemberStore{}
}

const (
	testEmail    = "test@example.com"
	testPassword = "password"
)

func testMember(id int) domain.Member {
	return domain.Member{
		MemberID: id,
		Name:     "測試用戶",
		Email:    testEmail,
		Phone:    "0912345678",
		Address:  "台北市信義區",
		CreateAt: "2025-01-01T10:00:00",
	}
}

func (s *MemberStore) Login(ctx context.Context, email, password string) (*envelope.Envelope, error) {
	if email == testEmail && password == testPassword {
		return envelope.OK(testMember(12345), "登入成功"), nil
	}
	return envelope.Fail(401, "電子郵件或密碼錯誤"), nil
}

func (s *MemberStore) Register(ctx context.Context, in ports.RegisterMemberInput) (*envelope.Envelope, error) {
	return envelope.Created(domain.Member{
		MemberID: newID(100000),
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Address:  in.Address,
		CreateAt: nowISO(),
	}, "會員註冊成功"), nil
}

func (s *MemberStore) Get(ctx context.Context, memberID string) (*envelope.Envelope, error) {
	id, _ := strconv.Atoi(memberID)
	return envelope.OK(testMember(id), "成功取得會員資料"), nil
}

func (s *MemberStore) List(ctx context.Context, memberID string) (*envelope.Envelope, error) {
	if memberID != "" {
		return s.Get(ctx, memberID)
	}
	return envelope.OK([]domain.Member{
		{
			MemberID: 1,
			Name:     "張三",
			Email:    "zhang@example.com",
			Phone:    "0912345678",
			Address:  "台北市信義區",
			CreateAt: "2025-01-01T10:00:00",
		},
		{
			MemberID: 2,
			Name:     "李四",
			Email:    "li@example.com",
			Phone:    "0987654321",
			Address:  "新北市板橋區",
			CreateAt: "2025-01-02T11:00:00",
		},
	}, "成功取得會員列表"), nil
}

func (s *MemberStore) Create(ctx context.Context, in ports.CreateMemberInput) (*envelope.Envelope, error) {
	createAt := in.CreateAt
	if createAt == "" {
		createAt = nowISO()
	}
	return envelope.Created(domain.Member{
		MemberID: newID(100000),
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Address:  in.Address,
		CreateAt: createAt,
	}, "會員新增成功"), nil
}

func (s *MemberStore) Update(ctx context.Context, in ports.UpdateMemberInput) (*envelope.Envelope, error) {
	return envelope.OK(domain.Member{
		MemberID: in.MemberID,
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Address:  in.Address,
		CreateAt: in.CreateAt,
	}, "會員更新成功"), nil
}

func (s *MemberStore) Delete(ctx context.Context, memberID int) (*envelope.Envelope, error) {
	return envelope.OK(map[string]int{"member_id": memberID}, "會員刪除成功"), nil
}

func (s *MemberStore) ChangePassword(ctx context.Context, in ports.ChangePasswordInput) (*envelope.Envelope, error) {
	return envelope.OK(map[string]int{"member_id": in.MemberID}, "密碼修改成功"), nil
}

// Back-office mutations fabricate the same shapes as the self-service ones;
// only the route differs.

func (s *MemberStore) AdminUpdate(ctx context.Context, in ports.UpdateMemberInput) (*envelope.Envelope, error) {
	return s.Update(ctx, in)
}

func (s *MemberStore) AdminDelete(ctx context.Context, memberID int) (*envelope.Envelope, error) {
	return s.Delete(ctx, memberID)
}
