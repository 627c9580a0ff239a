package usecase

import "regexp"

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidatePhone checks that a phone number is exactly ten digits.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidateEmail performs a structural check on an email address.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}
