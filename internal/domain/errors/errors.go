package errors

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailNotVerified    = errors.New("email not verified")
	ErrInvalidOTP          = errors.New("invalid or expired otp")
	ErrNotAdmin            = errors.New("admin privileges required")
	ErrAdminExists         = errors.New("admin account already exists")
	ErrInvalidPhone        = errors.New("invalid phone number")
	ErrPhoneTaken          = errors.New("phone number already in use")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrAlreadyVerified     = errors.New("email already verified")
	ErrVerificationExpired = errors.New("verification token expired")
	ErrInvalidVerification = errors.New("invalid verification token")
	ErrPasswordUnchanged   = errors.New("new password matches current password")
	ErrNotificationFailed  = errors.New("notification dispatch failed")
)
