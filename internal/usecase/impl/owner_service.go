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

// ownerService implements the OwnerUsecase interface.
type ownerService struct {
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	logger     *slog.Logger
}

// OwnerServiceParams holds dependencies for the owner service, injected by Fx.
type OwnerServiceParams struct {
	fx.In

	StoreRepo  repository.StoreRepository
	RatingRepo repository.RatingRepository
	Logger     *slog.Logger
}

// NewOwnerService is the constructor for ownerService.
func NewOwnerService(params OwnerServiceParams) usecase.OwnerUsecase {
	return &ownerService{
		storeRepo:  params.StoreRepo,
		ratingRepo: params.RatingRepo,
		logger:     params.Logger,
	}
}

func (srv *ownerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// MyStore returns the caller's store, or a not-found error for storeless owners.
func (srv *ownerService) MyStore(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "owner has no store")
		}

		return nil, errors.Wrap(err, "failed to load owner store")
	}

	return store, nil
}

// MyStoreRatings returns the ratings of the caller's store with rater info.
func (srv *ownerService) MyStoreRatings(ctx context.Context, ownerID uuid.UUID) (entity.Ratings, error) {
	store, err := srv.MyStore(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	ratings, err := srv.ratingRepo.ListByStoreID(ctx, store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load store ratings")
	}

	return ratings, nil
}

// Dashboard composes the aggregate view of the caller's store.
func (srv *ownerService) Dashboard(ctx context.Context, ownerID uuid.UUID) (*usecase.OwnerDashboard, error) {
	store, err := srv.MyStore(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	ratings, err := srv.ratingRepo.ListByStoreID(ctx, store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load store ratings")
	}

	raters := make([]usecase.RaterEntry, 0, len(ratings))
	for _, r := range ratings {
		entry := usecase.RaterEntry{
			UserID: r.UserID,
			Rating: r.Value,
		}
		if r.Rater != nil {
			entry.UserName = r.Rater.Name
			entry.UserEmail = r.Rater.Email
		}
		raters = append(raters, entry)
	}

	srv.log(ctx).Debug("Owner dashboard served", slog.Any("storeID", store.ID), slog.Int("ratings", len(ratings)))

	return &usecase.OwnerDashboard{
		StoreName:     store.Name,
		AverageRating: ratings.Average(),
		TotalRatings:  len(ratings),
		UsersWhoRated: raters,
	}, nil
}
