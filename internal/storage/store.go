// Package storage is the persistence facade of the shop: eight record
// collections kept as JSON sequences under named keys in a local key-value
// store. Every mutation is a whole-collection read-modify-write, callers get
// values back rather than errors, and per-user collections take the user ID
// explicitly instead of reading an ambient session.
package storage

import (
	"time"

	"github.com/rajputarjun2947-afk/Vocano/internal/events"
	"github.com/rajputarjun2947-afk/Vocano/internal/kvstore"
)

const (
	keyCart        = "cart"
	keyOrders      = "orders"
	keyProducts    = "products"
	keyCoupons     = "coupons"
	keyUsers       = "users"
	keyCurrentUser = "current-user"
)

func addressesKey(userID string) string {
	return "addresses:" + userID
}

func wishlistKey(userID string) string {
	return "wishlist:" + userID
}

func notificationsKey(userID string) string {
	return "notifications:" + userID
}

type Store struct {
	kv  kvstore.KV
	bus *events.Bus
	now func() time.Time
}

func New(kv kvstore.KV, bus *events.Bus) *Store {
	return &Store{kv: kv, bus: bus, now: time.Now}
}

func (s *Store) publish(topic string) {
	if s.bus != nil {
		s.bus.Publish(topic)
	}
}
