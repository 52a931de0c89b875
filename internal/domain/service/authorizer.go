package service

import (
	"strings"

	"storepulse/internal/domain/entity"
	domainerrors "storepulse/internal/domain/errors"
)

// Authorize is the single allow/deny decision point for role gates. It returns
// nil when role is one of the required roles, and a permission error naming
// the required roles otherwise. Works for single-role gates (admin-only,
// owner-only, user-only) and multi-role gates alike.
func Authorize(role entity.Role, required ...entity.Role) error {
	for _, r := range required {
		if role == r {
			return nil
		}
	}

	names := make([]string, len(required))
	for i, r := range required {
		names[i] = r.String()
	}

	return domainerrors.ErrForbidden.WithMessage(
		"Access denied. Required roles: " + strings.Join(names, ", "),
	)
}
