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
)

// storeRepository implements the repository.StoreRepository interface using GORM.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// Create persists a new store. The owner foreign key is validated by the
// caller; a dangling reference still surfaces as a constraint violation.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("store owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err)
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// FindByID retrieves a single store by its unique ID.
func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel

	err := repo.db.WithContext(ctx).First(&storeM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return toStoreDomain(&storeM), nil
}

// FindByOwnerID retrieves the store owned by the given user.
func (repo *storeRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel

	err := repo.db.WithContext(ctx).First(&storeM, "owner_id = ?", ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by owner")
	}

	return toStoreDomain(&storeM), nil
}

// ListWithRatings returns stores matching the filter with their ratings
// preloaded, so callers can aggregate without a second round trip.
func (repo *storeRepository) ListWithRatings(ctx context.Context, filter repository.StoreFilter) ([]*repository.StoreWithRatings, error) {
	query := repo.db.WithContext(ctx).Model(&model.StoreModel{})

	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Email != "" {
		query = query.Where("email ILIKE ?", "%"+filter.Email+"%")
	}
	if filter.Address != "" {
		query = query.Where("address ILIKE ?", "%"+filter.Address+"%")
	}

	var storeMs []*model.StoreModel
	if err := query.Preload("Ratings").Order("created_at").Find(&storeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	rows := make([]*repository.StoreWithRatings, 0, len(storeMs))
	for _, storeM := range storeMs {
		ratings := make(entity.Ratings, 0, len(storeM.Ratings))
		for _, ratingM := range storeM.Ratings {
			ratings = append(ratings, toRatingDomain(ratingM))
		}

		rows = append(rows, &repository.StoreWithRatings{
			Store:   toStoreDomain(storeM),
			Ratings: ratings,
		})
	}

	return rows, nil
}

// Count returns the total number of stores.
func (repo *storeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.StoreModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count stores")
	}

	return count, nil
}

func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Address:   data.Address,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:      data.ID,
		Name:    data.Name,
		Email:   data.Email,
		Address: data.Address,
		OwnerID: data.OwnerID,
	}
}
