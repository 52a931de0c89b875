package postgres

import (
	"context"

	"storepulse/internal/domain/entity"
	domainerrors "storepulse/internal/domain/errors"
	"storepulse/internal/domain/repository"
	"storepulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ratingRepository implements the repository.RatingRepository interface using GORM.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert inserts the rating or, when the (user_id, store_id) pair already
// exists, overwrites the stored value in a single statement. Relying on the
// unique index keeps concurrent submissions from ever producing two rows.
func (repo *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
		}).
		Create(ratingM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("rating out of range")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStoreNotFound.WrapMessage("rating references missing row")
		}

		return domainerrors.NewDatabaseExecuteError(err)
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

// FindByUserAndStore retrieves the rating a user submitted for a store.
func (repo *ratingRepository) FindByUserAndStore(ctx context.Context, userID, storeID uuid.UUID) (*entity.Rating, error) {
	var ratingM model.RatingModel

	err := repo.db.WithContext(ctx).
		First(&ratingM, "user_id = ? AND store_id = ?", userID, storeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating")
	}

	return toRatingDomain(&ratingM), nil
}

// ListByUserID returns all ratings a user has submitted, store preloaded.
func (repo *ratingRepository) ListByUserID(ctx context.Context, userID uuid.UUID) (entity.Ratings, error) {
	var ratingMs []*model.RatingModel

	err := repo.db.WithContext(ctx).
		Preload("Store").
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&ratingMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings by user")
	}

	return toRatingsDomain(ratingMs), nil
}

// ListByStoreID returns all ratings submitted for a store, rater preloaded.
func (repo *ratingRepository) ListByStoreID(ctx context.Context, storeID uuid.UUID) (entity.Ratings, error) {
	var ratingMs []*model.RatingModel

	err := repo.db.WithContext(ctx).
		Preload("User").
		Where("store_id = ?", storeID).
		Order("created_at").
		Find(&ratingMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings by store")
	}

	return toRatingsDomain(ratingMs), nil
}

// Count returns the total number of ratings.
func (repo *ratingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.RatingModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count ratings")
	}

	return count, nil
}

func toRatingDomain(data *model.RatingModel) *entity.Rating {
	if data == nil {
		return nil
	}

	rating := &entity.Rating{
		ID:        data.ID,
		UserID:    data.UserID,
		StoreID:   data.StoreID,
		Value:     data.Value,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.User != nil {
		rating.Rater = toUserDomain(data.User)
	}
	if data.Store != nil {
		rating.Store = toStoreDomain(data.Store)
	}

	return rating
}

func toRatingsDomain(data []*model.RatingModel) entity.Ratings {
	ratings := make(entity.Ratings, 0, len(data))
	for _, ratingM := range data {
		ratings = append(ratings, toRatingDomain(ratingM))
	}

	return ratings
}

func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	if data == nil {
		return nil
	}

	return &model.RatingModel{
		ID:      data.ID,
		UserID:  data.UserID,
		StoreID: data.StoreID,
		Value:   data.Value,
	}
}
