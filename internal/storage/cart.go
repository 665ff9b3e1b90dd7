package storage

import (
	"github.com/rajputarjun2947-afk/Vocano/internal/events"
	"github.com/rajputarjun2947-afk/Vocano/internal/kvstore"
	"github.com/rajputarjun2947-afk/Vocano/internal/models"
)

func (s *Store) Cart() []models.CartItem {
	return kvstore.Load[models.CartItem](s.kv, keyCart)
}

// AddToCart coalesces onto an existing (product, size, color) line, else
// appends. Quantity caps are the caller's business, not the store's.
func (s *Store) AddToCart(item models.CartItem) {
	cart := s.Cart()
	for i := range cart {
		if cart[i].SameLine(item) {
			cart[i].Quantity += item.Quantity
			kvstore.Save(s.kv, keyCart, cart)
			s.publish(events.TopicCart)
			return
		}
	}
	kvstore.Save(s.kv, keyCart, append(cart, item))
	s.publish(events.TopicCart)
}

// UpdateCartItem overwrites the quantity of the matching line; a resulting
// quantity <= 0 drops the line. No-op when no line matches.
func (s *Store) UpdateCartItem(productID, size, color string, quantity int) {
	probe := models.CartItem{ProductID: productID, Size: size, Color: color}
	cart := s.Cart()
	for i := range cart {
		if !cart[i].SameLine(probe) {
			continue
		}
		if quantity <= 0 {
			cart = append(cart[:i], cart[i+1:]...)
		} else {
			cart[i].Quantity = quantity
		}
		kvstore.Save(s.kv, keyCart, cart)
		s.publish(events.TopicCart)
		return
	}
}

func (s *Store) RemoveFromCart(productID, size, color string) {
	probe := models.CartItem{ProductID: productID, Size: size, Color: color}
	kvstore.RemoveIf(s.kv, keyCart, func(it models.CartItem) bool {
		return it.SameLine(probe)
	})
	s.publish(events.TopicCart)
}

func (s *Store) ClearCart() {
	s.kv.Delete(keyCart)
	s.publish(events.TopicCart)
}
