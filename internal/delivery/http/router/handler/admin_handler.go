package handler

import (
	"net/http"

	"storepulse/internal/delivery/http/response"
	domainerrors "storepulse/internal/domain/errors"
	"storepulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin-only handlers.
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Dashboard returns the platform-wide counters.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.uc.DashboardStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// AddUser creates a user of any role.
func (h *AdminHandler) AddUser(c echo.Context) error {
	var input *usecase.AddUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	user, err := h.uc.AddUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User created successfully")
}

// ListUsers lists users with optional name, email and role filters.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	input := &usecase.ListUsersInput{
		Name:  c.QueryParam("name"),
		Email: c.QueryParam("email"),
		Role:  c.QueryParam("role"),
	}

	users, err := h.uc.ListUsers(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// GetUser returns one user with their owned stores.
func (h *AdminHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidation.WithMessage("Valid user ID is required")
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// AddStore creates a store owned by an existing store owner.
func (h *AdminHandler) AddStore(c echo.Context) error {
	var input *usecase.AddStoreInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	store, err := h.uc.AddStore(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, store, "Store created successfully")
}

// ListStores lists stores with their average rating and optional filters.
func (h *AdminHandler) ListStores(c echo.Context) error {
	input := &usecase.ListStoresInput{
		Name:    c.QueryParam("name"),
		Email:   c.QueryParam("email"),
		Address: c.QueryParam("address"),
	}

	stores, err := h.uc.ListStores(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "")
}
