package domain

// User is the authenticated identity as presented by the backend, in client
// form. Timestamps stay strings; the backend emits ISO 8601 without a zone and
// the app layer only displays them.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	FullName   string `json:"fullName,omitempty"`
	Role       string `json:"role"`
	IsActive   bool   `json:"isActive"`
	IsVerified bool   `json:"isVerified"`
	CreatedAt  string `json:"createdAt"`
	LastLogin  string `json:"lastLogin,omitempty"`
}

// RegisterInput is the payload for creating a new account.
type RegisterInput struct {
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Role     string `json:"role"`
	Password string `json:"password"`
}
