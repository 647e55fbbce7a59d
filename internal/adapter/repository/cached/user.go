package cached

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"todo-user-service/internal/adapter/cache"
	domain "todo-user-service/internal/domain/user"
	"todo-user-service/internal/usecase/user"
)

// CachedUserRepository implements user.Repository with caching support.
// It wraps a persistent repository (DB) and a cache implementation.
// Users served by GetByID from the cache carry no password hash; credential
// checks go through GetByUsername, which always reads the DB.
//
// A GetByID that reads the DB before a concurrent Update and fills the cache
// after that Update invalidates it leaves the old profile cached. Staleness is
// bounded by the cache TTL.
type CachedUserRepository struct {
	dbRepo user.Repository
	cache  cache.UserCache
	log    *zap.Logger
	group  singleflight.Group
}

// NewCachedUserRepository creates a new instance of CachedUserRepository.
func NewCachedUserRepository(dbRepo user.Repository, cache cache.UserCache, log *zap.Logger) *CachedUserRepository {
	return &CachedUserRepository{
		dbRepo: dbRepo,
		cache:  cache,
		log:    log,
	}
}

// Create delegates to the DB repository.
func (r *CachedUserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	return r.dbRepo.Create(ctx, u)
}

// GetByID retrieves a user by ID using Cache-Aside pattern.
func (r *CachedUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if cached := r.fromCache(ctx, id); cached != nil {
		return cached, nil
	}

	result, err, _ := r.group.Do(cache.Key(id), func() (any, error) {
		// shared by every waiter, so one caller's cancellation must not fail the rest
		ctx := context.WithoutCancel(ctx)

		// another caller may have filled the cache while we waited
		if cached := r.fromCache(ctx, id); cached != nil {
			return cached, nil
		}

		u, err := r.dbRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		if err := r.cache.Set(ctx, u); err != nil {
			r.log.Warn("failed to cache user", zap.String("id", id), zap.Error(err))
		}
		return u, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*domain.User), nil
}

func (r *CachedUserRepository) fromCache(ctx context.Context, id string) *domain.User {
	u, err := r.cache.Get(ctx, id)
	if err != nil {
		r.log.Warn("cache get error, falling back to database", zap.String("id", id), zap.Error(err))
		return nil
	}
	return u
}

// GetByUsername delegates to the DB repository.
func (r *CachedUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.dbRepo.GetByUsername(ctx, username)
}

// Update updates the user in DB and invalidates the cache.
func (r *CachedUserRepository) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	updated, err := r.dbRepo.Update(ctx, u)
	if err != nil {
		return nil, err
	}

	r.invalidate(ctx, u.ID, "update")
	return updated, nil
}

// Delete deletes the user from DB and invalidates the cache.
func (r *CachedUserRepository) Delete(ctx context.Context, id string) error {
	if err := r.dbRepo.Delete(ctx, id); err != nil {
		return err
	}

	r.invalidate(ctx, id, "delete")
	return nil
}

func (r *CachedUserRepository) invalidate(ctx context.Context, id, op string) {
	if err := r.cache.Delete(ctx, id); err != nil {
		r.log.Warn("failed to invalidate cache after "+op, zap.String("id", id), zap.Error(err))
	}
}
