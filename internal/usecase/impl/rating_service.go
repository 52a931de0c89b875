package impl

import (
	"context"
	"log/slog"

	deliverycontext "storepulse/internal/delivery/context"
	"storepulse/internal/domain/entity"
	domainerrors "storepulse/internal/domain/errors"
	"storepulse/internal/domain/repository"
	"storepulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	txManager  repository.TransactionManager
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	logger     *slog.Logger
}

// RatingServiceParams holds dependencies for the rating service, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	StoreRepo  repository.StoreRepository
	RatingRepo repository.RatingRepository
	Logger     *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager:  params.TxManager,
		storeRepo:  params.StoreRepo,
		ratingRepo: params.RatingRepo,
		logger:     params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BrowseStores lists stores with their overall average and the caller's own
// submitted rating.
func (srv *ratingService) BrowseStores(ctx context.Context, userID uuid.UUID, input *usecase.BrowseStoresInput) ([]*usecase.RatedStore, error) {
	rows, err := srv.storeRepo.ListWithRatings(ctx, repository.StoreFilter{
		Name:    input.Name,
		Address: input.Address,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	stores := make([]*usecase.RatedStore, 0, len(rows))
	for _, row := range rows {
		rated := &usecase.RatedStore{
			ID:            row.Store.ID,
			Name:          row.Store.Name,
			Address:       row.Store.Address,
			OverallRating: row.Ratings.Average(),
		}
		if own := row.Ratings.ByUser(userID); own != nil {
			value := own.Value
			rated.UserSubmittedRating = &value
		}
		stores = append(stores, rated)
	}

	return stores, nil
}

// SubmitRating stores or overwrites the caller's rating for a store. The
// write itself is a single atomic upsert against the (user_id, store_id)
// unique index; the prior lookup only decides the created-vs-updated message
// and never guards the write.
func (srv *ratingService) SubmitRating(ctx context.Context, userID uuid.UUID, input *usecase.SubmitRatingInput) (*usecase.SubmitRatingOutput, error) {
	if !entity.IsValidRatingValue(input.Rating) {
		return nil, domainerrors.ErrValidation.WithMessage("Valid store ID and rating (1-5) are required")
	}

	storeID, err := uuid.Parse(input.StoreID)
	if err != nil {
		return nil, domainerrors.ErrValidation.WithMessage("Valid store ID and rating (1-5) are required")
	}

	rating := &entity.Rating{
		UserID:  userID,
		StoreID: storeID,
		Value:   input.Rating,
	}
	updated := false

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.StoreRepo().FindByID(ctx, storeID); err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return errors.Wrap(domainerrors.ErrStoreNotFound, "rating rejected")
			}

			return errors.Wrap(err, "failed to load store for rating")
		}

		ratingRepo := repoFactory.RatingRepo()

		if _, err := ratingRepo.FindByUserAndStore(ctx, userID, storeID); err == nil {
			updated = true
		} else if !errors.Is(err, repository.ErrRatingNotFound) {
			return errors.Wrap(err, "failed to look up existing rating")
		}

		return ratingRepo.Upsert(ctx, rating)
	})
	if err != nil {
		srv.log(ctx).Warn("Rating submission failed", slog.Any("userID", userID), slog.Any("storeID", storeID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Rating stored",
		slog.Any("userID", userID),
		slog.Any("storeID", storeID),
		slog.Int("value", input.Rating),
		slog.Bool("updated", updated),
	)

	return &usecase.SubmitRatingOutput{Rating: rating, Updated: updated}, nil
}

// MyRatings returns the caller's ratings with their stores.
func (srv *ratingService) MyRatings(ctx context.Context, userID uuid.UUID) (entity.Ratings, error) {
	ratings, err := srv.ratingRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user ratings")
	}

	return ratings, nil
}
