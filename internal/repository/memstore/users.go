// Package memstore holds in-memory stores with the same contracts as the
// Mongo repositories. They back STORAGE=memory and the HTTP tests.
package memstore

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Amitgupta170804/BlogEase/internal/models"
	"github.com/Amitgupta170804/BlogEase/internal/repository"
)

type UserStore struct {
	mu    sync.RWMutex
	users map[bson.ObjectID]models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[bson.ObjectID]models.User)}
}

// taken reports whether another user already holds username or email.
// Callers hold mu.
func (s *UserStore) taken(self bson.ObjectID, username, email string) bool {
	for id, u := range s.users {
		if id == self {
			continue
		}
		if u.Username == username || (email != "" && u.Email == email) {
			return true
		}
	}
	return false
}

func (s *UserStore) Insert(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	if s.taken(u.ID, u.Username, u.Email) {
		return repository.ErrDuplicate
	}
	s.users[u.ID] = *u
	return nil
}

func (s *UserStore) first(match func(models.User) bool) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if match(u) {
			out := u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *UserStore) FindByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return s.first(func(u models.User) bool { return u.Email == email })
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	return s.first(func(u models.User) bool { return u.Username == username })
}

func (s *UserStore) FindByUsernameFold(_ context.Context, username string) (*models.User, error) {
	return s.first(func(u models.User) bool { return strings.EqualFold(u.Username, username) })
}

func (s *UserStore) FindByIDs(_ context.Context, ids []bson.ObjectID) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *UserStore) UpdateProfile(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.users[u.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if s.taken(u.ID, u.Username, "") {
		return repository.ErrDuplicate
	}
	cur.Username = u.Username
	cur.Bio = u.Bio
	cur.ProfilePicture = u.ProfilePicture
	cur.UpdatedAt = u.UpdatedAt
	s.users[u.ID] = cur
	return nil
}
