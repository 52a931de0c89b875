package postgres

import (
	"context"
	"testing"

	"storepulse/internal/domain/entity"
	domainerrors "storepulse/internal/domain/errors"
	"storepulse/internal/domain/repository"
	"storepulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the same schema the
// postgres migration produces. The upsert path only depends on the unique
// index, which sqlite honors identically.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.StoreModel{},
		&model.RatingModel{},
	))

	return db
}

func seedUserAndStore(t *testing.T, db *gorm.DB) (uuid.UUID, uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	owner := &entity.User{
		Name:         "Store Owner With Long Name",
		Email:        "owner@example.com",
		PasswordHash: "hash",
		Address:      "1 Owner Street",
		Role:         entity.RoleStoreOwner,
	}
	require.NoError(t, NewUserRepository(db).Create(ctx, owner))

	store := &entity.Store{
		Name:    "Corner Books",
		Email:   "books@example.com",
		Address: "12 Main Street",
		OwnerID: owner.ID,
	}
	require.NoError(t, NewStoreRepository(db).Create(ctx, store))

	return owner.ID, store.ID
}

func TestRatingRepository_UpsertKeepsOneRowPerPair(t *testing.T) {
	db := newTestDB(t)
	userID, storeID := seedUserAndStore(t, db)
	repo := NewRatingRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entity.Rating{UserID: userID, StoreID: storeID, Value: 3}))
	require.NoError(t, repo.Upsert(ctx, &entity.Rating{UserID: userID, StoreID: storeID, Value: 5}))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	stored, err := repo.FindByUserAndStore(ctx, userID, storeID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Value)
}

func TestRatingRepository_UpsertSeparatePairs(t *testing.T) {
	db := newTestDB(t)
	userID, storeID := seedUserAndStore(t, db)
	repo := NewRatingRepository(db)
	ctx := context.Background()

	otherUser := uuid.New()
	require.NoError(t, repo.Upsert(ctx, &entity.Rating{UserID: userID, StoreID: storeID, Value: 3}))
	require.NoError(t, repo.Upsert(ctx, &entity.Rating{UserID: otherUser, StoreID: storeID, Value: 4}))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	byStore, err := repo.ListByStoreID(ctx, storeID)
	require.NoError(t, err)
	assert.Len(t, byStore, 2)
}

func TestRatingRepository_FindByUserAndStore_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewRatingRepository(db)

	_, err := repo.FindByUserAndStore(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrRatingNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &entity.User{
		Name:         "First Registered Long Name",
		Email:        "dup@example.com",
		PasswordHash: "hash",
		Role:         entity.RoleNormalUser,
	}
	require.NoError(t, repo.Create(ctx, first))

	second := &entity.User{
		Name:         "Second Registered Long Name",
		Email:        "dup@example.com",
		PasswordHash: "hash",
		Role:         entity.RoleNormalUser,
	}
	err := repo.Create(ctx, second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestStoreRepository_FindByOwnerID(t *testing.T) {
	db := newTestDB(t)
	ownerID, storeID := seedUserAndStore(t, db)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	store, err := repo.FindByOwnerID(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, storeID, store.ID)

	_, err = repo.FindByOwnerID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrStoreNotFound)
}
