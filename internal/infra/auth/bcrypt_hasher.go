// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"storepulse/config"
	domainerrors "storepulse/internal/domain/errors"
	"storepulse/internal/domain/service"
)

const specialCharacters = "#?!@$%^&*-"

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy *config.PasswordPolicyConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{
		cost:   cost,
		policy: cfg.PasswordPolicy,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength enforces the password policy. The single
// authoritative rule is 8-16 characters with at least one uppercase letter,
// one lowercase letter, one digit and one special character; error messages
// everywhere state exactly that.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	policy := h.policy
	if policy == nil {
		return nil
	}

	length := len(password)
	if length < policy.MinLength || (policy.MaxLength > 0 && length > policy.MaxLength) {
		return domainerrors.ErrPasswordPolicy
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			for _, s := range specialCharacters {
				if r == s {
					hasSpecial = true

					break
				}
			}
		}
	}

	if policy.RequireUppercase && !hasUpper {
		return domainerrors.ErrPasswordPolicy
	}
	if policy.RequireLowercase && !hasLower {
		return domainerrors.ErrPasswordPolicy
	}
	if policy.RequireNumbers && !hasDigit {
		return domainerrors.ErrPasswordPolicy
	}
	if policy.RequireSpecial && !hasSpecial {
		return domainerrors.ErrPasswordPolicy
	}

	return nil
}
