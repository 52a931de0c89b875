package impl

import (
	"context"
	"log/slog"

	deliverycontext "storepulse/internal/delivery/context"
	"storepulse/internal/domain/entity"
	domainerrors "storepulse/internal/domain/errors"
	"storepulse/internal/domain/repository"
	"storepulse/internal/domain/service"
	"storepulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// AdminServiceParams holds dependencies for the admin service, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	StoreRepo  repository.StoreRepository
	RatingRepo repository.RatingRepository
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		storeRepo:  params.StoreRepo,
		ratingRepo: params.RatingRepo,
		hasher:     params.Hasher,
		logger:     params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DashboardStats returns the platform-wide counters.
func (srv *adminService) DashboardStats(ctx context.Context) (*usecase.DashboardStats, error) {
	users, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	stores, err := srv.storeRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count stores")
	}

	ratings, err := srv.ratingRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count ratings")
	}

	return &usecase.DashboardStats{
		TotalUsers:   users,
		TotalStores:  stores,
		TotalRatings: ratings,
	}, nil
}

// AddUser creates a user with an admin-supplied role. Shares the signup
// validation rules minus the confirm-password check.
func (srv *adminService) AddUser(ctx context.Context, input *usecase.AddUserInput) (*entity.User, error) {
	if err := validateProfileFields(input.Name, input.Email, input.Address); err != nil {
		return nil, err
	}

	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrValidation.WithMessage("Unknown role: " + input.Role)
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordPolicy, "user creation rejected")
	}

	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, errors.Wrap(domainerrors.ErrEmailTaken, "user creation rejected")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
		Address:      input.Address,
		Role:         role,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("Admin created user", slog.Any("userID", newUser.ID), slog.Any("role", newUser.Role))

	return newUser, nil
}

// AddStore creates a store after verifying the owner reference inside one
// transaction: the owner must exist and hold the STORE_OWNER role at creation
// time. The link is not re-validated later.
func (srv *adminService) AddStore(ctx context.Context, input *usecase.AddStoreInput) (*entity.Store, error) {
	ownerID, err := uuid.Parse(input.OwnerID)
	if err != nil {
		return nil, domainerrors.ErrValidation.WithMessage("Invalid owner ID")
	}

	newStore := &entity.Store{
		Name:    input.Name,
		Email:   input.Email,
		Address: input.Address,
		OwnerID: ownerID,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		owner, err := repoFactory.UserRepo().FindByID(ctx, ownerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrValidation.WithMessage("Invalid owner or owner must be STORE_OWNER")
			}

			return errors.Wrap(err, "failed to load store owner")
		}

		if owner.Role != entity.RoleStoreOwner {
			return domainerrors.ErrValidation.WithMessage("Invalid owner or owner must be STORE_OWNER")
		}

		return repoFactory.StoreRepo().Create(ctx, newStore)
	})
	if err != nil {
		srv.log(ctx).Warn("Store creation failed", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Admin created store", slog.Any("storeID", newStore.ID), slog.Any("ownerID", ownerID))

	return newStore, nil
}

// ListUsers returns users matching the optional filters in insertion order.
func (srv *adminService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx, repository.UserFilter{
		Name:  input.Name,
		Email: input.Email,
		Role:  entity.Role(input.Role),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// ListStores returns stores decorated with their average rating.
func (srv *adminService) ListStores(ctx context.Context, input *usecase.ListStoresInput) ([]*usecase.StoreSummary, error) {
	rows, err := srv.storeRepo.ListWithRatings(ctx, repository.StoreFilter{
		Name:    input.Name,
		Email:   input.Email,
		Address: input.Address,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	summaries := make([]*usecase.StoreSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, &usecase.StoreSummary{
			ID:            row.Store.ID,
			Name:          row.Store.Name,
			Email:         row.Store.Email,
			Address:       row.Store.Address,
			OwnerID:       row.Store.OwnerID,
			AverageRating: row.Ratings.Average(),
		})
	}

	return summaries, nil
}

// GetUser returns one user with their owned stores.
func (srv *adminService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByIDWithStores(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}
