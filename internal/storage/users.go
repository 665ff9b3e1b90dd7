package storage

import (
	"encoding/json"

	"github.com/rajputarjun2947-afk/Vocano/internal/events"
	"github.com/rajputarjun2947-afk/Vocano/internal/kvstore"
	"github.com/rajputarjun2947-afk/Vocano/internal/models"
)

func (s *Store) Users() []models.User {
	return kvstore.Load[models.User](s.kv, keyUsers)
}

// SaveUser upserts matching on email or phone; both are expected unique
// across the collection and this write-time scan is the only enforcement.
func (s *Store) SaveUser(u models.User) {
	kvstore.Upsert(s.kv, keyUsers, u, func(a, b models.User) bool {
		return a.Email == b.Email || a.Phone == b.Phone
	})
}

func (s *Store) FindUserByID(id string) (models.User, bool) {
	for _, u := range s.Users() {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) FindUserByEmail(email string) (models.User, bool) {
	for _, u := range s.Users() {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) FindUserByPhone(phone string) (models.User, bool) {
	for _, u := range s.Users() {
		if u.Phone == phone {
			return u, true
		}
	}
	return models.User{}, false
}

// ValidatePassword compares the stored password verbatim; user records keep
// credentials exactly as registered.
func (s *Store) ValidatePassword(email, password string) (models.User, bool) {
	u, ok := s.FindUserByEmail(email)
	if !ok || u.Password != password {
		return models.User{}, false
	}
	return u, true
}

// CurrentUser is the persisted session slot. Facade operations never read it
// ambiently; callers resolve the user themselves and pass its ID down.
func (s *Store) CurrentUser() (models.User, bool) {
	raw, ok := s.kv.Get(keyCurrentUser)
	if !ok {
		return models.User{}, false
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return models.User{}, false
	}
	return u, true
}

func (s *Store) SetCurrentUser(u models.User) {
	data, err := json.Marshal(u)
	if err != nil {
		return
	}
	s.kv.Put(keyCurrentUser, string(data))
	s.publish(events.TopicAuth)
}

func (s *Store) ClearCurrentUser() {
	s.kv.Delete(keyCurrentUser)
	s.publish(events.TopicAuth)
}
