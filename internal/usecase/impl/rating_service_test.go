package impl

import (
	"context"
	"testing"

	"storepulse/internal/domain/entity"
	domainerrors "storepulse/internal/domain/errors"
	"storepulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRatingService(stores *fakeStoreRepo, ratings *fakeRatingRepo) usecase.RatingUsecase {
	tx := &fakeTxManager{users: newFakeUserRepo(), stores: stores, ratings: ratings}

	return NewRatingService(RatingServiceParams{
		TxManager:  tx,
		StoreRepo:  stores,
		RatingRepo: ratings,
		Logger:     newDiscardLogger(),
	})
}

func TestRatingService_SubmitRating_CreatesThenUpdates(t *testing.T) {
	store := &entity.Store{ID: uuid.New(), Name: "Corner Books"}
	stores := newFakeStoreRepo(store)
	ratings := newFakeRatingRepo()
	svc := newRatingService(stores, ratings)
	userID := uuid.New()

	first, err := svc.SubmitRating(context.Background(), userID, &usecase.SubmitRatingInput{
		StoreID: store.ID.String(),
		Rating:  3,
	})
	require.NoError(t, err)
	assert.False(t, first.Updated)
	assert.Equal(t, 3, first.Rating.Value)

	second, err := svc.SubmitRating(context.Background(), userID, &usecase.SubmitRatingInput{
		StoreID: store.ID.String(),
		Rating:  5,
	})
	require.NoError(t, err)
	assert.True(t, second.Updated)
	assert.Equal(t, 5, second.Rating.Value)

	// Still exactly one stored rating, holding the latest value.
	stored, err := ratings.FindByUserAndStore(context.Background(), userID, store.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Value)
	count, _ := ratings.Count(context.Background())
	assert.Equal(t, int64(1), count)
}

func TestRatingService_SubmitRating_InvalidInput(t *testing.T) {
	svc := newRatingService(newFakeStoreRepo(), newFakeRatingRepo())
	userID := uuid.New()

	tests := []struct {
		name  string
		input *usecase.SubmitRatingInput
	}{
		{name: "rating too low", input: &usecase.SubmitRatingInput{StoreID: uuid.New().String(), Rating: 0}},
		{name: "rating too high", input: &usecase.SubmitRatingInput{StoreID: uuid.New().String(), Rating: 6}},
		{name: "malformed store id", input: &usecase.SubmitRatingInput{StoreID: "not-a-uuid", Rating: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := svc.SubmitRating(context.Background(), userID, tt.input)
			require.Error(t, err)
			assert.Nil(t, output)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "Valid store ID and rating (1-5) are required", appErr.Message())
		})
	}
}

func TestRatingService_SubmitRating_UnknownStore(t *testing.T) {
	svc := newRatingService(newFakeStoreRepo(), newFakeRatingRepo())

	_, err := svc.SubmitRating(context.Background(), uuid.New(), &usecase.SubmitRatingInput{
		StoreID: uuid.New().String(),
		Rating:  4,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
}

func TestRatingService_BrowseStores_IncludesOwnRating(t *testing.T) {
	store := &entity.Store{ID: uuid.New(), Name: "Corner Books", Address: "12 Main Street"}
	stores := newFakeStoreRepo(store)
	userID := uuid.New()
	stores.ratings[store.ID] = entity.Ratings{
		{UserID: userID, StoreID: store.ID, Value: 4},
		{UserID: uuid.New(), StoreID: store.ID, Value: 5},
	}
	svc := newRatingService(stores, newFakeRatingRepo())

	result, err := svc.BrowseStores(context.Background(), userID, &usecase.BrowseStoresInput{})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 4.5, result[0].OverallRating)
	require.NotNil(t, result[0].UserSubmittedRating)
	assert.Equal(t, 4, *result[0].UserSubmittedRating)
}

func TestRatingService_BrowseStores_NoOwnRating(t *testing.T) {
	store := &entity.Store{ID: uuid.New(), Name: "Corner Books"}
	stores := newFakeStoreRepo(store)
	stores.ratings[store.ID] = entity.Ratings{
		{UserID: uuid.New(), StoreID: store.ID, Value: 2},
	}
	svc := newRatingService(stores, newFakeRatingRepo())

	result, err := svc.BrowseStores(context.Background(), uuid.New(), &usecase.BrowseStoresInput{})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 2.0, result[0].OverallRating)
	assert.Nil(t, result[0].UserSubmittedRating)
}
