package domain

// User type discriminants for AuthState.
const (
	UserTypeMember = "member"
	UserTypeAdmin  = "admin"
)

// AuthState is the client-held record of who is using the session. It is
// rehydrated from storage at startup and replaced wholesale on every
// login/logout — never patched field by field.
type AuthState struct {
	IsLoggedIn bool    `json:"isLoggedIn"`
	User       *Member `json:"user"`
	UserType   *string `json:"userType"`
}

// LoggedOut is the default state: not logged in, no user, no type.
func LoggedOut() AuthState {
	return AuthState{IsLoggedIn: false, User: nil, UserType: nil}
}

// LoggedInAs builds the state for a freshly authenticated actor.
func LoggedInAs(user *Member, userType string) AuthState {
	return AuthState{IsLoggedIn: true, User: user, UserType: &userType}
}
