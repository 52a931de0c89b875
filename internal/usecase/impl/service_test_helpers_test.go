package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"storepulse/internal/domain/entity"
	"storepulse/internal/domain/repository"
	"storepulse/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserRepo is an in-memory UserRepository keyed by email and ID.
type fakeUserRepo struct {
	byID      map[uuid.UUID]*entity.User
	byEmail   map[string]*entity.User
	createErr error
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		byID:    make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
	for _, u := range users {
		repo.put(u)
	}

	return repo
}

func (f *fakeUserRepo) put(u *entity.User) {
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.put(user)

	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindByIDWithStores(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeUserRepo) List(_ context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(f.byID))
	for _, u := range f.byID {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		users = append(users, u)
	}

	return users, nil
}

func (f *fakeUserRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := f.byID[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.PasswordHash = hash

	return nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

// fakeStoreRepo is an in-memory StoreRepository.
type fakeStoreRepo struct {
	stores  map[uuid.UUID]*entity.Store
	ratings map[uuid.UUID]entity.Ratings
}

func newFakeStoreRepo(stores ...*entity.Store) *fakeStoreRepo {
	repo := &fakeStoreRepo{
		stores:  make(map[uuid.UUID]*entity.Store),
		ratings: make(map[uuid.UUID]entity.Ratings),
	}
	for _, s := range stores {
		repo.stores[s.ID] = s
	}

	return repo
}

func (f *fakeStoreRepo) Create(_ context.Context, store *entity.Store) error {
	if store.ID == uuid.Nil {
		store.ID = uuid.New()
	}
	f.stores[store.ID] = store

	return nil
}

func (f *fakeStoreRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Store, error) {
	if s, ok := f.stores[id]; ok {
		return s, nil
	}

	return nil, repository.ErrStoreNotFound
}

func (f *fakeStoreRepo) FindByOwnerID(_ context.Context, ownerID uuid.UUID) (*entity.Store, error) {
	for _, s := range f.stores {
		if s.OwnerID == ownerID {
			return s, nil
		}
	}

	return nil, repository.ErrStoreNotFound
}

func (f *fakeStoreRepo) ListWithRatings(_ context.Context, _ repository.StoreFilter) ([]*repository.StoreWithRatings, error) {
	rows := make([]*repository.StoreWithRatings, 0, len(f.stores))
	for _, s := range f.stores {
		rows = append(rows, &repository.StoreWithRatings{
			Store:   s,
			Ratings: f.ratings[s.ID],
		})
	}

	return rows, nil
}

func (f *fakeStoreRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.stores)), nil
}

// fakeRatingRepo is an in-memory RatingRepository honoring the one-per-pair
// invariant.
type fakeRatingRepo struct {
	ratings map[[2]uuid.UUID]*entity.Rating
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[[2]uuid.UUID]*entity.Rating)}
}

func (f *fakeRatingRepo) Upsert(_ context.Context, rating *entity.Rating) error {
	key := [2]uuid.UUID{rating.UserID, rating.StoreID}
	if existing, ok := f.ratings[key]; ok {
		existing.Value = rating.Value
		rating.ID = existing.ID

		return nil
	}
	rating.ID = uuid.New()
	f.ratings[key] = rating

	return nil
}

func (f *fakeRatingRepo) FindByUserAndStore(_ context.Context, userID, storeID uuid.UUID) (*entity.Rating, error) {
	if r, ok := f.ratings[[2]uuid.UUID{userID, storeID}]; ok {
		return r, nil
	}

	return nil, repository.ErrRatingNotFound
}

func (f *fakeRatingRepo) ListByUserID(_ context.Context, userID uuid.UUID) (entity.Ratings, error) {
	var out entity.Ratings
	for _, r := range f.ratings {
		if r.UserID == userID {
			out = append(out, r)
		}
	}

	return out, nil
}

func (f *fakeRatingRepo) ListByStoreID(_ context.Context, storeID uuid.UUID) (entity.Ratings, error) {
	var out entity.Ratings
	for _, r := range f.ratings {
		if r.StoreID == storeID {
			out = append(out, r)
		}
	}

	return out, nil
}

func (f *fakeRatingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.ratings)), nil
}

// fakeTxManager runs the unit of work directly against the fakes; there is
// no rollback, tests assert on the error paths instead.
type fakeTxManager struct {
	users   *fakeUserRepo
	stores  *fakeStoreRepo
	ratings *fakeRatingRepo
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f)
}

func (f *fakeTxManager) UserRepo() repository.UserRepository     { return f.users }
func (f *fakeTxManager) StoreRepo() repository.StoreRepository   { return f.stores }
func (f *fakeTxManager) RatingRepo() repository.RatingRepository { return f.ratings }

// fakeHasher hashes by prefixing, which keeps assertions readable.
type fakeHasher struct {
	rejectStrength bool
}

func (f *fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (f *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

func (f *fakeHasher) ValidatePasswordStrength(string) error {
	if f.rejectStrength {
		return errors.New("weak password")
	}

	return nil
}

// fakeTokens issues predictable tokens.
type fakeTokens struct{}

func (fakeTokens) GenerateToken(user *entity.User) (string, error) {
	return "token-" + user.Email, nil
}

func (fakeTokens) ValidateToken(string) (*service.Claims, error) {
	return nil, errors.New("not implemented")
}

func (fakeTokens) AccessTokenDuration() time.Duration {
	return 2 * time.Hour
}

// fakePublisher records published events.
type fakePublisher struct {
	events []*service.UserRegisteredEvent
	err    error
}

func (f *fakePublisher) PublishUserRegistered(_ context.Context, event *service.UserRegisteredEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)

	return nil
}
