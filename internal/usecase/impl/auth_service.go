// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	deliverycontext "storepulse/internal/delivery/context"
	"storepulse/internal/domain/entity"
	domainerrors "storepulse/internal/domain/errors"
	"storepulse/internal/domain/repository"
	"storepulse/internal/domain/service"
	"storepulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minNameLength    = 20
	maxNameLength    = 60
	maxAddressLength = 400
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	tokens    service.TokenService
	publisher service.EventPublisher
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for the auth service, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Tokens    service.TokenService
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		tokens:    params.Tokens,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new account. The password is stored only as a bcrypt
// hash; the returned user never carries it.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	if err := validateProfileFields(input.Name, input.Email, input.Address); err != nil {
		return nil, err
	}

	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrValidation.WithMessage("Unknown role: " + input.Role)
	}

	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.ErrValidation.WithMessage("Both passwords should be the same")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during signup", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrPasswordPolicy, "signup rejected")
	}

	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, errors.Wrap(domainerrors.ErrEmailTaken, "signup rejected")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
		Address:      input.Address,
		Role:         role,
	}

	// The unique constraint on email is the real guard against concurrent
	// signups; the lookup above only produces a friendlier early error.
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during signup")
	}

	srv.publishRegistered(ctx, newUser)

	srv.log(ctx).Info("User registered", slog.Any("userID", newUser.ID), slog.Any("role", newUser.Role))

	return &usecase.SignUpOutput{User: newUser}, nil
}

// publishRegistered emits the signup event. Best effort: a broker outage must
// never fail the registration itself.
func (srv *authService) publishRegistered(ctx context.Context, user *entity.User) {
	if srv.publisher == nil {
		return
	}

	event := &service.UserRegisteredEvent{
		UserID:       user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		RegisteredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishUserRegistered(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish registration event", slog.Any("userID", user.ID), slog.Any("error", err))
	}
}

// Login verifies credentials and issues a signed access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotRegistered, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokens.GenerateToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// ChangePassword replaces the stored hash after verifying the old password.
// The new password is validated against the policy before anything is read or
// written, so a rejected password never mutates state.
func (srv *authService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.Wrap(domainerrors.ErrPasswordPolicy, "password change rejected")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "password change failed")
			}

			return errors.Wrap(err, "failed to load user for password change")
		}

		if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
			return errors.Wrap(domainerrors.ErrPasswordMismatch, "password change failed")
		}

		hashed, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash new password")
		}

		return userRepo.UpdatePasswordHash(ctx, userID, hashed)
	})
	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.Any("userID", userID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", userID))

	return nil
}

// validateProfileFields enforces the shared name/email/address rules used by
// both self-signup and the admin create-user path.
func validateProfileFields(name, email, address string) error {
	if len(name) < minNameLength || len(name) > maxNameLength {
		return domainerrors.ErrValidation.WithMessage("Name must be between 20 and 60 characters")
	}

	if len(address) > maxAddressLength {
		return domainerrors.ErrValidation.WithMessage("Address must not exceed 400 characters")
	}

	if !emailPattern.MatchString(email) {
		return domainerrors.ErrValidation.WithMessage("Please provide a valid email address")
	}

	return nil
}
