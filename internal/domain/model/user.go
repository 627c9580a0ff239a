package model

import "time"

// Role describes the access level of an account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered storefront account.
type User struct {
	ID                  int64
	Name                string
	Email               string
	Phone               string
	Address             string
	PasswordHash        string
	GoogleID            string
	Role                Role
	EmailVerified       bool
	VerificationToken   string
	VerificationExpires *time.Time
	OrderOTP            string
	OrderOTPExpires     *time.Time
	CreatedAt           time.Time
}

// IsAdmin reports whether the account has administrative privileges.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasFederatedLogin reports whether the account is linked to an external
// identity provider.
func (u *User) HasFederatedLogin() bool {
	return u.GoogleID != ""
}
