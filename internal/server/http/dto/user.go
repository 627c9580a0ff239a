package dto

import (
	"time"

	"github.com/lodgemart/lodgemart/internal/domain/model"
)

// UserResponse is the account representation returned by profile endpoints.
type UserResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain user to its wire form. Credentials and
// verification material never leave the server.
func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		Address:       u.Address,
		Role:          string(u.Role),
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}

// UpdateProfileRequest carries the mutable profile fields; omitted fields
// keep their stored values.
type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ChangePasswordRequest carries the password rotation payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currPassword"`
	NewPassword     string `json:"newPassword"`
}
