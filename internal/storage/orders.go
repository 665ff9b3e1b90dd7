package storage

import (
	"github.com/rajputarjun2947-afk/Vocano/internal/events"
	"github.com/rajputarjun2947-afk/Vocano/internal/kvstore"
	"github.com/rajputarjun2947-afk/Vocano/internal/models"
)

func (s *Store) Orders() []models.Order {
	return kvstore.Load[models.Order](s.kv, keyOrders)
}

// SaveOrder prepends; every call is a new order, there is no upsert and no
// duplicate-ID check.
func (s *Store) SaveOrder(o models.Order) {
	kvstore.Prepend(s.kv, keyOrders, o)
	s.publish(events.TopicOrders)
}

// UpdateOrderStatus overwrites the status and stamps UpdatedAt. Any status
// may replace any other; an unknown order ID is a silent no-op.
func (s *Store) UpdateOrderStatus(orderID string, status models.OrderStatus) {
	orders := s.Orders()
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].OrderStatus = status
			orders[i].UpdatedAt = s.now()
			kvstore.Save(s.kv, keyOrders, orders)
			s.publish(events.TopicOrders)
			return
		}
	}
}

func (s *Store) UpdatePaymentStatus(orderID string, status models.PaymentStatus) {
	orders := s.Orders()
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].PaymentStatus = status
			orders[i].UpdatedAt = s.now()
			kvstore.Save(s.kv, keyOrders, orders)
			s.publish(events.TopicOrders)
			return
		}
	}
}

func (s *Store) UserOrders(userID string) []models.Order {
	var out []models.Order
	for _, o := range s.Orders() {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

func (s *Store) FindOrder(orderID string) (models.Order, bool) {
	for _, o := range s.Orders() {
		if o.ID == orderID {
			return o, true
		}
	}
	return models.Order{}, false
}
