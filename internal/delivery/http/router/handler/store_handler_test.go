package handler

import (
	"context"
	"net/http"
	"testing"

	"storepulse/internal/delivery/http/middleware"
	"storepulse/internal/domain/entity"
	"storepulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// fakeRatingUsecase records which operations were invoked.
type fakeRatingUsecase struct {
	submitCalls int
	updated     bool
}

func (f *fakeRatingUsecase) BrowseStores(ctx context.Context, userID uuid.UUID, input *usecase.BrowseStoresInput) ([]*usecase.RatedStore, error) {
	return nil, nil
}

func (f *fakeRatingUsecase) SubmitRating(ctx context.Context, userID uuid.UUID, input *usecase.SubmitRatingInput) (*usecase.SubmitRatingOutput, error) {
	f.submitCalls++
	return &usecase.SubmitRatingOutput{
		Rating: &entity.Rating{
			ID:      uuid.New(),
			UserID:  userID,
			Value:   input.Rating,
			StoreID: uuid.MustParse(input.StoreID),
		},
		Updated: f.updated,
	}, nil
}

func (f *fakeRatingUsecase) MyRatings(ctx context.Context, userID uuid.UUID) (entity.Ratings, error) {
	return nil, nil
}

func TestSubmitRating_EmptyBody(t *testing.T) {
	uc := &fakeRatingUsecase{}
	h := NewStoreHandler(uc)
	mw := middleware.NewAuthMiddleware(newFakeTokenService(entity.RoleNormalUser))

	rec := serveJSON(t, mw.Authenticate(h.SubmitRating), http.MethodPost, "", func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer good-token")
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
	assert.Zero(t, uc.submitCalls)
}

func TestSubmitRating_CreatedAndUpdated(t *testing.T) {
	storeID := uuid.New().String()
	body := `{"storeId":"` + storeID + `","rating":4}`
	mw := middleware.NewAuthMiddleware(newFakeTokenService(entity.RoleNormalUser))
	withToken := func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer good-token")
	}

	uc := &fakeRatingUsecase{}
	rec := serveJSON(t, mw.Authenticate(NewStoreHandler(uc).SubmitRating), http.MethodPost, body, withToken)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rating submitted successfully")

	uc = &fakeRatingUsecase{updated: true}
	rec = serveJSON(t, mw.Authenticate(NewStoreHandler(uc).SubmitRating), http.MethodPost, body, withToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rating updated successfully")
}
