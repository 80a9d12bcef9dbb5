package domain

// AdminUser is a back-office account. Level 1 is the highest permission tier.
// Passwords travel in the clear: the back office manages them as plain fields.
type AdminUser struct {
	UserID   int    `json:"userId"`
	Account  string `json:"account"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
}
