package dto

// SignUpRequest describes the registration payload.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SignUpResponse reports the registration outcome and whether the
// verification email went out.
type SignUpResponse struct {
	Message   string `json:"message"`
	EmailSent bool   `json:"emailSent"`
}

// LoginRequest describes the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and the account role.
type LoginResponse struct {
	Role  string `json:"role"`
	Token string `json:"token"`
}

// ResendVerificationRequest carries the address to re-verify.
type ResendVerificationRequest struct {
	Email string `json:"email"`
}
