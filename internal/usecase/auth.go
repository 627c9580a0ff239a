package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lodgemart/lodgemart/internal/adapter/mailer"
	domainErrors "github.com/lodgemart/lodgemart/internal/domain/errors"
	"github.com/lodgemart/lodgemart/internal/domain/model"
	"github.com/lodgemart/lodgemart/internal/domain/repository"
	pkgAuth "github.com/lodgemart/lodgemart/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle, email verification and token management.
type AuthUseCase struct {
	users           repository.UserRepository
	hasher          pkgAuth.PasswordHasher
	tokens          pkgAuth.Strategy
	notifier        mailer.Notifier
	verificationTTL time.Duration
	logger          *slog.Logger
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(
	users repository.UserRepository,
	hasher pkgAuth.PasswordHasher,
	strategy pkgAuth.Strategy,
	notifier mailer.Notifier,
	verificationTTL time.Duration,
	logger *slog.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		users:           users,
		hasher:          hasher,
		tokens:          strategy,
		notifier:        notifier,
		verificationTTL: verificationTTL,
		logger:          logger,
	}
}

// SignUpInput carries the fields accepted at registration.
type SignUpInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Password string
	Role     model.Role
}

// SignUp registers a new account. Admin accounts are pre-verified and unique;
// everyone else gets a verification email. The returned flag reports whether
// that email was actually dispatched.
func (u *AuthUseCase) SignUp(ctx context.Context, in SignUpInput) (*model.User, bool, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if !ValidatePhone(in.Phone) {
		return nil, false, domainErrors.ErrInvalidPhone
	}
	if !ValidateEmail(in.Email) {
		return nil, false, domainErrors.ErrInvalidEmail
	}
	if in.Password == "" {
		return nil, false, domainErrors.ErrInvalidCredentials
	}

	if _, err := u.users.GetByPhone(ctx, in.Phone); err == nil {
		return nil, false, domainErrors.ErrPhoneTaken
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, false, err
	}

	if _, err := u.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, false, domainErrors.ErrAlreadyExists
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, false, err
	}

	role := in.Role
	if role == "" {
		role = model.RoleUser
	}
	if role == model.RoleAdmin {
		exists, err := u.users.HasAdmin(ctx)
		if err != nil {
			return nil, false, err
		}
		if exists {
			return nil, false, domainErrors.ErrAdminExists
		}
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, false, err
	}

	user := &model.User{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		PasswordHash:  hash,
		Role:          role,
		EmailVerified: role == model.RoleAdmin,
	}
	if role != model.RoleAdmin {
		expires := time.Now().Add(u.verificationTTL)
		user.VerificationToken = uuid.NewString()
		user.VerificationExpires = &expires
	}

	created, err := u.users.Create(ctx, user)
	if err != nil {
		return nil, false, err
	}

	emailSent := true
	if role != model.RoleAdmin {
		if err := u.notifier.SendVerificationEmail(ctx, created.Email, created.VerificationToken); err != nil {
			u.logger.Error("verification email failed",
				slog.String("email", created.Email), slog.String("error", err.Error()))
			emailSent = false
		}
	}

	return created, emailSent, nil
}

// Authenticate validates credentials and returns an auth token. Unverified
// accounts without a federated login are rejected unless they are admins.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if !user.EmailVerified && !user.HasFederatedLogin() && !user.IsAdmin() {
		return nil, "", domainErrors.ErrEmailNotVerified
	}

	if user.PasswordHash == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// VerifyEmail marks the account holding the token as verified. Expired and
// unknown tokens are reported distinctly.
func (u *AuthUseCase) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return domainErrors.ErrInvalidVerification
	}

	user, err := u.users.GetByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.ErrInvalidVerification
		}
		return err
	}

	if user.VerificationExpires == nil || time.Now().After(*user.VerificationExpires) {
		return domainErrors.ErrVerificationExpired
	}

	user.EmailVerified = true
	user.VerificationToken = ""
	user.VerificationExpires = nil
	return u.users.Update(ctx, user)
}

// ResendVerification rotates the verification token and re-sends the email.
func (u *AuthUseCase) ResendVerification(ctx context.Context, email string) error {
	user, err := u.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return domainErrors.ErrAlreadyVerified
	}

	expires := time.Now().Add(u.verificationTTL)
	user.VerificationToken = uuid.NewString()
	user.VerificationExpires = &expires
	if err := u.users.Update(ctx, user); err != nil {
		return err
	}

	if err := u.notifier.SendVerificationEmail(ctx, user.Email, user.VerificationToken); err != nil {
		return domainErrors.ErrNotificationFailed
	}
	return nil
}

// UpdateProfileInput carries the mutable profile fields; empty values keep
// the stored ones.
type UpdateProfileInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// UpdateProfile applies a partial profile update and returns the fresh record.
func (u *AuthUseCase) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (*model.User, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.Address != "" {
		user.Address = in.Address
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword replaces the password after checking the current one.
func (u *AuthUseCase) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	if current == next {
		return domainErrors.ErrPasswordUnchanged
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := u.hasher.Compare(user.PasswordHash, current); err != nil {
		return domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(next)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return u.users.Update(ctx, user)
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches an account by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
