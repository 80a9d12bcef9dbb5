package ports

// Input types carry validated request fields into a store. JSON tags match the
// wire contract exactly so the forwarding implementation can re-serialize them
// unchanged.

type RegisterMemberInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type CreateMemberInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	CreateAt string `json:"create_at,omitempty"`
}

type UpdateMemberInput struct {
	MemberID int    `json:"member_id"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	CreateAt string `json:"create_at,omitempty"`
}

type ChangePasswordInput struct {
	MemberID    int    `json:"member_id"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type ProductInput struct {
	ProductID  int     `json:"product_id,omitempty"`
	Name       string  `json:"name"`
	Price      string  `json:"price"`
	SOH        int     `json:"soh"`
	CategoryID int     `json:"category_id"`
	IsActive   *bool   `json:"is_active,omitempty"`
	ImageURL   *string `json:"image_url,omitempty"`
}

type CategoryInput struct {
	CategoryID int    `json:"category_id,omitempty"`
	Name       string `json:"name"`
}

type CartInput struct {
	MemberID  int `json:"member_id"`
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// AdminUserInput uses a pointer level so a legitimate level 0 is
// distinguishable from an absent one.
type AdminUserInput struct {
	UserID   int    `json:"userId,omitempty"`
	Account  string `json:"account"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Level    *int   `json:"level"`
}
