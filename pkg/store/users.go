package store

import (
	"strconv"

	"shopdata/pkg/domain"
)

// Users returns a copy of all users in insertion order.
func (s *DataStore) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User{}, s.users...)
}

// UserByID looks up a user by ID.
func (s *DataStore) UserByID(id string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexByID(s.users, id, userID); i >= 0 {
		return s.users[i], true
	}
	return domain.User{}, false
}

// UserByEmail returns the first user whose email matches exactly.
func (s *DataStore) UserByEmail(email string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return domain.User{}, false
}

// CreateUser assigns the next user id and timestamps, then persists.
func (s *DataStore) CreateUser(in domain.UserInput) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	u := domain.User{
		ID:        strconv.Itoa(s.counters.NextUserID),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users = append(s.users, u)
	s.counters.NextUserID++
	s.persistLocked()
	return u
}

// UpdateUser merges patch over the user with id.
func (s *DataStore) UpdateUser(id string, patch domain.UserPatch) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.users, id, userID)
	if i < 0 {
		return domain.User{}, false
	}
	u := patch.Apply(s.users[i])
	u.UpdatedAt = s.now()
	s.users[i] = u
	s.persistLocked()
	return u, true
}

// DeleteUser removes the user with id.
func (s *DataStore) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	users, ok := removeByID(s.users, id, userID)
	if !ok {
		return false
	}
	s.users = users
	s.persistLocked()
	return true
}
