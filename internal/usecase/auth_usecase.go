// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storepulse/internal/domain/entity"

	"github.com/google/uuid"
)

// SignUpInput defines the data required for self-service registration.
type SignUpInput struct {
	Name            string `json:"name" validate:"required,min=20,max=60"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Address         string `json:"address" validate:"required,max=400"`
	Role            string `json:"role" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordInput carries a password change for the authenticated user.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// SignUpOutput returns the newly created user, never including the hash.
type SignUpOutput struct {
	User *entity.User
}

// LoginOutput returns the signed token and the user after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase is the contract for authentication operations.
type AuthUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error
}
