package repository

import (
	"context"
	"sync"

	"github.com/YourPalZack/junk-t/core/storage"
	"github.com/YourPalZack/junk-t/modules/user/entity"
)

// UserRepository keeps its own mutex on top of the collection so the
// username-uniqueness check and the insert happen as one step.
type UserRepository struct {
	mu    sync.Mutex
	users *storage.Collection[entity.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: storage.NewCollection[entity.User]()}
}

func (r *UserRepository) Create(ctx context.Context, user entity.User) (entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := r.users.List(func(u entity.User) bool { return u.Username == user.Username })
	if len(existing) > 0 {
		return entity.User{}, storage.ErrConditionFailed
	}

	created := r.users.Insert(func(id int64) entity.User {
		user.ID = id
		return user
	})
	return created, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (entity.User, error) {
	return r.users.Get(id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (entity.User, error) {
	matches := r.users.List(func(u entity.User) bool { return u.Username == username })
	if len(matches) == 0 {
		return entity.User{}, storage.ErrNotFound
	}
	return matches[0], nil
}
