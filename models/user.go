package models

// User is the authenticated account profile.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthSession is what a successful login or registration yields: the user
// profile plus the token pair the credential store keeps.
type AuthSession struct {
	User         User
	AccessToken  string
	RefreshToken string
}

// LoginData are the credentials sent to the login endpoint.
type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterData is the payload for account creation.
type RegisterData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// UserPatch is a partial profile update. Nil fields are left unchanged.
type UserPatch struct {
	Email    *string `json:"email,omitempty"`
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}
