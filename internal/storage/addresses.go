package storage

import (
	"github.com/rajputarjun2947-afk/Vocano/internal/kvstore"
	"github.com/rajputarjun2947-afk/Vocano/internal/models"
)

func (s *Store) Addresses(userID string) []models.Address {
	return kvstore.Load[models.Address](s.kv, addressesKey(userID))
}

func (s *Store) SaveAddress(userID string, a models.Address) {
	kvstore.Upsert(s.kv, addressesKey(userID), a, func(x, y models.Address) bool {
		return x.ID == y.ID
	})
}

func (s *Store) DeleteAddress(userID, addressID string) {
	kvstore.RemoveIf(s.kv, addressesKey(userID), func(a models.Address) bool {
		return a.ID == addressID
	})
}
