package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/lodgemart/lodgemart/internal/domain/errors"
	"github.com/lodgemart/lodgemart/internal/server/http/dto"
	"github.com/lodgemart/lodgemart/internal/server/http/middleware"
)

// AuthHandler processes registration, login and account management.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// SignUp handles POST /user/signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, emailSent, err := h.facade.SignUp(c.Request.Context(),
		req.Name, req.Email, req.Phone, req.Address, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidPhone):
			respondMessage(c, http.StatusBadRequest, "Phone number must be exactly 10 digits.")
		case errors.Is(err, domainErrors.ErrPhoneTaken):
			respondMessage(c, http.StatusBadRequest, "An account with this phone number already exists.")
		case errors.Is(err, domainErrors.ErrInvalidEmail):
			respondMessage(c, http.StatusBadRequest, "Please enter a valid email address.")
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			respondMessage(c, http.StatusBadRequest, "An account with this email already exists.")
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			respondMessage(c, http.StatusBadRequest, "password is required")
		case errors.Is(err, domainErrors.ErrAdminExists):
			respondMessage(c, http.StatusUnauthorized, "only one admin account is allowed")
		default:
			respondMessage(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	message := "Account created successfully! Please check your email to verify your account."
	if user.IsAdmin() {
		message = "Admin account created successfully! You can now login."
	}
	c.JSON(http.StatusCreated, dto.SignUpResponse{Message: message, EmailSent: emailSent})
}

// Login handles POST /user/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			respondMessage(c, http.StatusBadRequest, "no user exists with this email")
		case errors.Is(err, domainErrors.ErrEmailNotVerified):
			c.JSON(http.StatusUnauthorized, gin.H{
				"message":           "Please verify your email address before logging in.",
				"needsVerification": true,
			})
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			respondMessage(c, http.StatusUnauthorized, "incorrect password")
		default:
			respondMessage(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.LoginResponse{Role: string(user.Role), Token: token})
}

// VerifyEmail handles GET /user/verify-email.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		respondMessage(c, http.StatusBadRequest, "Verification token is required.")
		return
	}

	if err := h.facade.VerifyEmail(c.Request.Context(), token); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrVerificationExpired):
			respondMessage(c, http.StatusBadRequest, "Verification token has expired. Please request a new verification email.")
		case errors.Is(err, domainErrors.ErrInvalidVerification):
			respondMessage(c, http.StatusBadRequest, "Invalid verification token.")
		default:
			respondMessage(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respondMessage(c, http.StatusOK, "Email verified successfully! You can now login.")
}

// ResendVerification handles POST /user/resend-verification.
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req dto.ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.facade.ResendVerification(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			respondMessage(c, http.StatusNotFound, "User not found.")
		case errors.Is(err, domainErrors.ErrAlreadyVerified):
			respondMessage(c, http.StatusBadRequest, "Email is already verified.")
		case errors.Is(err, domainErrors.ErrNotificationFailed):
			respondMessage(c, http.StatusInternalServerError, "Failed to send verification email.")
		default:
			respondMessage(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respondMessage(c, http.StatusOK, "Verification email sent successfully!")
}

// Profile handles GET /user/profile.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.facade.User(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "User not found")
			return
		}
		respondMessage(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateProfile handles PUT /user/profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.facade.UpdateProfile(c.Request.Context(), CurrentUserID(c),
		req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "User not found")
			return
		}
		respondMessage(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ChangePassword handles PUT /user/profile/password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.facade.ChangePassword(c.Request.Context(), CurrentUserID(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrPasswordUnchanged):
			respondMessage(c, http.StatusBadRequest, "new password must differ from the current password")
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			respondMessage(c, http.StatusUnauthorized, "incorrect current password")
		case errors.Is(err, domainErrors.ErrNotFound):
			respondMessage(c, http.StatusNotFound, "User not found")
		default:
			respondMessage(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respondMessage(c, http.StatusOK, "password updated successfully")
}

// Logout handles POST /user/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c)
	respondMessage(c, http.StatusOK, "Logged out")
}
