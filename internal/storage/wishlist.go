package storage

import "github.com/rajputarjun2947-afk/Vocano/internal/kvstore"

func (s *Store) Wishlist(userID string) []string {
	return kvstore.Load[string](s.kv, wishlistKey(userID))
}

// ToggleWishlist adds the product ID if absent, else removes it; toggling
// twice restores the original membership.
func (s *Store) ToggleWishlist(userID, productID string) {
	kvstore.Toggle(s.kv, wishlistKey(userID), productID)
}
