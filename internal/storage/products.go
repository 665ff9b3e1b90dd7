package storage

import (
	"encoding/json"

	"github.com/rajputarjun2947-afk/Vocano/internal/events"
	"github.com/rajputarjun2947-afk/Vocano/internal/kvstore"
	"github.com/rajputarjun2947-afk/Vocano/internal/models"
)

// Products falls back to the bundled catalog only when the key has never
// been written; a stored empty sequence stays empty.
func (s *Store) Products() []models.Product {
	raw, ok := s.kv.Get(keyProducts)
	if !ok {
		return DefaultCatalog()
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil
	}
	return products
}

func (s *Store) FindProduct(productID string) (models.Product, bool) {
	for _, p := range s.Products() {
		if p.ID == productID {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Store) SaveProduct(p models.Product) {
	products := s.Products()
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			kvstore.Save(s.kv, keyProducts, products)
			s.publish(events.TopicCatalog)
			return
		}
	}
	kvstore.Save(s.kv, keyProducts, append(products, p))
	s.publish(events.TopicCatalog)
}

func (s *Store) DeleteProduct(productID string) {
	products := s.Products()
	kept := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	kvstore.Save(s.kv, keyProducts, kept)
	s.publish(events.TopicCatalog)
}
