// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"storepulse/internal/delivery/http/middleware"
	"storepulse/internal/delivery/http/response"
	"storepulse/internal/domain/service"
	"storepulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc       usecase.AuthUsecase
	tokenSvc service.TokenService
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, tokenSvc service.TokenService) *AuthHandler {
	return &AuthHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
	}
}

// SignUp handles self-service registration.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var input *usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.SignUp(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.User, "User registered successfully")
}

// Login authenticates the user and returns the access token both in the
// body and as an HTTP-only cookie, so browser and API clients work alike.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    output.Token,
		Path:     "/",
		MaxAge:   int(h.tokenSvc.AccessTokenDuration().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, map[string]any{
		"token": output.Token,
		"user":  output.User,
	}, "Login successful")
}

// ChangePassword updates the authenticated user's password.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		return err
	}

	var input *usecase.ChangePasswordInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid change password input")
	}

	if err := h.uc.ChangePassword(c.Request().Context(), claims.UserID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated successfully")
}
