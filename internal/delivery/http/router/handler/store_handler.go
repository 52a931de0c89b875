package handler

import (
	"net/http"

	"storepulse/internal/delivery/http/middleware"
	"storepulse/internal/delivery/http/response"
	"storepulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for the normal-user store and rating
// handlers.
type StoreHandler struct {
	uc usecase.RatingUsecase
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.RatingUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// BrowseStores lists stores with the overall average and the caller's own
// rating, with optional name and address filters.
func (h *StoreHandler) BrowseStores(c echo.Context) error {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		return err
	}

	input := &usecase.BrowseStoresInput{
		Name:    c.QueryParam("name"),
		Address: c.QueryParam("address"),
	}

	stores, err := h.uc.BrowseStores(c.Request().Context(), claims.UserID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "")
}

// SubmitRating creates or overwrites the caller's rating for a store.
func (h *StoreHandler) SubmitRating(c echo.Context) error {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		return err
	}

	var input *usecase.SubmitRatingInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}

	output, err := h.uc.SubmitRating(c.Request().Context(), claims.UserID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Rating submitted successfully"
	statusCode := http.StatusCreated
	if output.Updated {
		message = "Rating updated successfully"
		statusCode = http.StatusOK
	}

	return response.Success(c, statusCode, output.Rating, message)
}

// MyRatings returns every rating the caller has submitted.
func (h *StoreHandler) MyRatings(c echo.Context) error {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		return err
	}

	ratings, err := h.uc.MyRatings(c.Request().Context(), claims.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ratings, "")
}
