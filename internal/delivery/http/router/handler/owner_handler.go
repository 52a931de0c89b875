package handler

import (
	"net/http"

	"storepulse/internal/delivery/http/middleware"
	"storepulse/internal/delivery/http/response"
	"storepulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OwnerHandler holds dependencies for the store-owner handlers.
type OwnerHandler struct {
	uc usecase.OwnerUsecase
}

// NewOwnerHandler is the constructor for OwnerHandler, injected by Fx.
func NewOwnerHandler(uc usecase.OwnerUsecase) *OwnerHandler {
	return &OwnerHandler{uc: uc}
}

// MyStore returns the caller's own store.
func (h *OwnerHandler) MyStore(c echo.Context) error {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		return err
	}

	store, err := h.uc.MyStore(c.Request().Context(), claims.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "")
}

// MyRatings returns all ratings submitted for the caller's store.
func (h *OwnerHandler) MyRatings(c echo.Context) error {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		return err
	}

	ratings, err := h.uc.MyStoreRatings(c.Request().Context(), claims.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ratings, "")
}

// Dashboard returns the aggregate view of the caller's store.
func (h *OwnerHandler) Dashboard(c echo.Context) error {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		return err
	}

	dashboard, err := h.uc.Dashboard(c.Request().Context(), claims.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard, "")
}
