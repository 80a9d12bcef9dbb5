package fixture

import "github.com/yu-shop/storefront-api/internal/core/ports"

func registerInput() ports.RegisterMemberInput {
	return ports.RegisterMemberInput{
		Name:     "王小明",
		Email:    "wang@example.com",
		Password: "secret",
		Phone:    "0911222333",
		Address:  "高雄市前鎮區",
	}
}

func adminInput(account string, level *int) ports.AdminUserInput {
	return ports.AdminUserInput{
		Account:  account,
		Password: "pw",
		Name:     account,
		Level:    level,
	}
}
