package domain

// Member is a storefront customer account. The password is write-only and
// never serialized back to the client.
type Member struct {
	MemberID int    `json:"member_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	CreateAt string `json:"create_at,omitempty"`
}
