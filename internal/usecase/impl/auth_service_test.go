package impl

import (
	"context"
	"strings"
	"testing"

	"storepulse/internal/domain/entity"
	domainerrors "storepulse/internal/domain/errors"
	"storepulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(users *fakeUserRepo, hasher *fakeHasher, publisher *fakePublisher) usecase.AuthUsecase {
	tx := &fakeTxManager{users: users, stores: newFakeStoreRepo(), ratings: newFakeRatingRepo()}

	return NewAuthService(AuthServiceParams{
		TxManager: tx,
		UserRepo:  users,
		Hasher:    hasher,
		Tokens:    fakeTokens{},
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})
}

func validSignUpInput() *usecase.SignUpInput {
	return &usecase.SignUpInput{
		Name:            "Johnathan Maxwell Stoermer",
		Email:           "john@example.com",
		Password:        "Str0ng#Pass",
		ConfirmPassword: "Str0ng#Pass",
		Address:         "12 Main Street, Springfield",
		Role:            "NORMAL_USER",
	}
}

func TestAuthService_SignUp_Success(t *testing.T) {
	users := newFakeUserRepo()
	publisher := &fakePublisher{}
	svc := newAuthService(users, &fakeHasher{}, publisher)

	output, err := svc.SignUp(context.Background(), validSignUpInput())
	require.NoError(t, err)
	require.NotNil(t, output.User)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
	assert.Equal(t, entity.RoleNormalUser, output.User.Role)
	assert.Equal(t, "hashed:Str0ng#Pass", output.User.PasswordHash)

	// Registration event goes out after the write.
	require.Len(t, publisher.events, 1)
	assert.Equal(t, "john@example.com", publisher.events[0].Email)
}

func TestAuthService_SignUp_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*usecase.SignUpInput)
		message string
	}{
		{
			name:    "name too short",
			mutate:  func(in *usecase.SignUpInput) { in.Name = "Short Name" },
			message: "Name must be between 20 and 60 characters",
		},
		{
			name:    "name too long",
			mutate:  func(in *usecase.SignUpInput) { in.Name = strings.Repeat("a", 61) },
			message: "Name must be between 20 and 60 characters",
		},
		{
			name:    "invalid email",
			mutate:  func(in *usecase.SignUpInput) { in.Email = "not-an-email" },
			message: "Please provide a valid email address",
		},
		{
			name:    "address too long",
			mutate:  func(in *usecase.SignUpInput) { in.Address = strings.Repeat("a", 401) },
			message: "Address must not exceed 400 characters",
		},
		{
			name:    "unknown role",
			mutate:  func(in *usecase.SignUpInput) { in.Role = "SUPER_USER" },
			message: "Unknown role: SUPER_USER",
		},
		{
			name:    "password mismatch",
			mutate:  func(in *usecase.SignUpInput) { in.ConfirmPassword = "Different#1a" },
			message: "Both passwords should be the same",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newAuthService(newFakeUserRepo(), &fakeHasher{}, &fakePublisher{})
			input := validSignUpInput()
			tt.mutate(input)

			output, err := svc.SignUp(context.Background(), input)
			require.Error(t, err)
			assert.Nil(t, output)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 400, appErr.HTTPCode())
			assert.Equal(t, tt.message, appErr.Message())
		})
	}
}

func TestAuthService_SignUp_WeakPassword(t *testing.T) {
	svc := newAuthService(newFakeUserRepo(), &fakeHasher{rejectStrength: true}, &fakePublisher{})

	_, err := svc.SignUp(context.Background(), validSignUpInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordPolicy))
}

func TestAuthService_SignUp_EmailTaken(t *testing.T) {
	existing := &entity.User{ID: uuid.New(), Email: "john@example.com", Role: entity.RoleNormalUser}
	svc := newAuthService(newFakeUserRepo(existing), &fakeHasher{}, &fakePublisher{})

	_, err := svc.SignUp(context.Background(), validSignUpInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestAuthService_SignUp_PublisherFailureDoesNotFailSignup(t *testing.T) {
	users := newFakeUserRepo()
	publisher := &fakePublisher{err: errors.New("broker down")}
	svc := newAuthService(users, &fakeHasher{}, publisher)

	output, err := svc.SignUp(context.Background(), validSignUpInput())
	require.NoError(t, err)
	assert.NotNil(t, output.User)
}

func TestAuthService_Login_Success(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "john@example.com",
		PasswordHash: "hashed:Str0ng#Pass",
		Role:         entity.RoleNormalUser,
	}
	svc := newAuthService(newFakeUserRepo(user), &fakeHasher{}, &fakePublisher{})

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "john@example.com",
		Password: "Str0ng#Pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-john@example.com", output.Token)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newFakeUserRepo(), &fakeHasher{}, &fakePublisher{})

	_, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotRegistered))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "john@example.com",
		PasswordHash: "hashed:Str0ng#Pass",
	}
	svc := newAuthService(newFakeUserRepo(user), &fakeHasher{}, &fakePublisher{})

	_, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "john@example.com",
		Password: "Wrong#Pass1",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "john@example.com",
		PasswordHash: "hashed:Old#Pass12",
	}
	users := newFakeUserRepo(user)
	svc := newAuthService(users, &fakeHasher{}, &fakePublisher{})

	err := svc.ChangePassword(context.Background(), user.ID, &usecase.ChangePasswordInput{
		OldPassword: "Old#Pass12",
		NewPassword: "New#Pass34",
	})
	require.NoError(t, err)
	assert.Equal(t, "hashed:New#Pass34", users.byID[user.ID].PasswordHash)
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "john@example.com",
		PasswordHash: "hashed:Old#Pass12",
	}
	users := newFakeUserRepo(user)
	svc := newAuthService(users, &fakeHasher{}, &fakePublisher{})

	err := svc.ChangePassword(context.Background(), user.ID, &usecase.ChangePasswordInput{
		OldPassword: "Wrong#Pass1",
		NewPassword: "New#Pass34",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
	assert.Equal(t, "hashed:Old#Pass12", users.byID[user.ID].PasswordHash)
}

func TestAuthService_ChangePassword_WeakNewPasswordLeavesHashUntouched(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "john@example.com",
		PasswordHash: "hashed:Old#Pass12",
	}
	users := newFakeUserRepo(user)
	svc := newAuthService(users, &fakeHasher{rejectStrength: true}, &fakePublisher{})

	err := svc.ChangePassword(context.Background(), user.ID, &usecase.ChangePasswordInput{
		OldPassword: "Old#Pass12",
		NewPassword: "weak",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordPolicy))
	assert.Equal(t, "hashed:Old#Pass12", users.byID[user.ID].PasswordHash)
}

func TestAuthService_ChangePassword_UnknownUser(t *testing.T) {
	svc := newAuthService(newFakeUserRepo(), &fakeHasher{}, &fakePublisher{})

	err := svc.ChangePassword(context.Background(), uuid.New(), &usecase.ChangePasswordInput{
		OldPassword: "Old#Pass12",
		NewPassword: "New#Pass34",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
