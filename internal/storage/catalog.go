package storage

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rajputarjun2947-afk/Vocano/internal/models"
)

// DefaultCatalog is the bundled product set served while no catalog has ever
// been written to the store.
func DefaultCatalog() []models.Product {
	return []models.Product{
		{
			ID:          "p1",
			Name:        "Classic Oversized Tee",
			Description: "Heavyweight cotton tee with a dropped shoulder fit.",
			Price:       decimal.NewFromInt(1299),
			Discount:    10,
			Images:      []string{"/images/p1-front.jpg", "/images/p1-back.jpg"},
			Category:    "Men",
			Subcategory: "T-Shirts",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black", "White", "Olive"},
			Stock:       120,
			Rating:      4.5,
			Reviews:     86,
			Featured:    true,
			Bestseller:  true,
		},
		{
			ID:          "p2",
			Name:        "Fleece Zip Hoodie",
			Description: "Brushed fleece hoodie with a two-way metal zip.",
			Price:       decimal.NewFromInt(2799),
			Discount:    15,
			Images:      []string{"/images/p2-front.jpg"},
			Category:    "Men",
			Subcategory: "Hoodies",
			Sizes:       []string{"M", "L", "XL"},
			Colors:      []string{"Charcoal", "Navy"},
			Stock:       64,
			Rating:      4.7,
			Reviews:     41,
			Featured:    true,
			Trending:    true,
		},
		{
			ID:          "p3",
			Name:        "Relaxed Linen Shirt",
			Description: "Breathable linen blend, garment washed for softness.",
			Price:       decimal.NewFromInt(2199),
			Discount:    0,
			Images:      []string{"/images/p3-front.jpg"},
			Category:    "Women",
			Subcategory: "Shirts",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Sand", "White"},
			Stock:       48,
			Rating:      4.3,
			Reviews:     22,
			Trending:    true,
		},
		{
			ID:          "p4",
			Name:        "Tapered Cargo Pants",
			Description: "Stretch twill cargos with articulated knees.",
			Price:       decimal.NewFromInt(3499),
			Discount:    20,
			Images:      []string{"/images/p4-front.jpg"},
			Category:    "Men",
			Subcategory: "Pants",
			Sizes:       []string{"30", "32", "34", "36"},
			Colors:      []string{"Khaki", "Black"},
			Stock:       75,
			Rating:      4.1,
			Reviews:     19,
		},
		{
			ID:          "p5",
			Name:        "Ribbed Knit Dress",
			Description: "Midi-length ribbed knit with side slit.",
			Price:       decimal.NewFromInt(3999),
			Discount:    5,
			Images:      []string{"/images/p5-front.jpg"},
			Category:    "Women",
			Subcategory: "Dresses",
			Sizes:       []string{"XS", "S", "M"},
			Colors:      []string{"Rust", "Black"},
			Stock:       30,
			Rating:      4.8,
			Reviews:     57,
			Featured:    true,
			Bestseller:  true,
		},
		{
			ID:          "p6",
			Name:        "Everyday Canvas Tote",
			Description: "16oz canvas tote with interior zip pocket.",
			Price:       decimal.NewFromInt(999),
			Discount:    0,
			Images:      []string{"/images/p6-front.jpg"},
			Category:    "Accessories",
			Subcategory: "Bags",
			Sizes:       []string{"One Size"},
			Colors:      []string{"Natural", "Black"},
			Stock:       200,
			Rating:      4.0,
			Reviews:     12,
		},
	}
}

func seedCoupons() []models.Coupon {
	welcomeCap := decimal.NewFromInt(500)
	megaCap := decimal.NewFromInt(2000)
	expiry := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)
	return []models.Coupon{
		{
			ID:          "c1",
			Code:        "WELCOME10",
			Discount:    decimal.NewFromInt(10),
			Type:        models.CouponPercentage,
			MinPurchase: decimal.NewFromInt(2000),
			MaxDiscount: &welcomeCap,
			ExpiryDate:  expiry,
			Active:      true,
		},
		{
			ID:          "c2",
			Code:        "FLAT500",
			Discount:    decimal.NewFromInt(500),
			Type:        models.CouponFixed,
			MinPurchase: decimal.NewFromInt(5000),
			ExpiryDate:  expiry,
			Active:      true,
		},
		{
			ID:          "c3",
			Code:        "MEGA20",
			Discount:    decimal.NewFromInt(20),
			Type:        models.CouponPercentage,
			MinPurchase: decimal.NewFromInt(10000),
			MaxDiscount: &megaCap,
			ExpiryDate:  expiry,
			Active:      true,
		},
	}
}

const (
	adminEmail    = "admin@vocano.com"
	adminPassword = "admin123"
)

// EnsureAdmin bootstraps the admin account on first boot.
func (s *Store) EnsureAdmin() {
	if _, ok := s.FindUserByEmail(adminEmail); ok {
		return
	}
	s.SaveUser(models.User{
		ID:        uuid.NewString(),
		Name:      "Admin",
		Email:     adminEmail,
		Phone:     "9999999999",
		Password:  adminPassword,
		Role:      models.RoleAdmin,
		CreatedAt: s.now(),
	})
}

// EnsureCoupons seeds the promo coupons once; unlike products, coupons are
// materialized at boot rather than faulted in on read.
func (s *Store) EnsureCoupons() {
	if _, ok := s.kv.Get(keyCoupons); ok {
		return
	}
	for _, c := range seedCoupons() {
		s.SaveCoupon(c)
	}
}

// SeedDemoCatalog writes the bundled catalog under the products key so the
// admin console starts from editable records.
func (s *Store) SeedDemoCatalog() {
	if _, ok := s.kv.Get(keyProducts); ok {
		return
	}
	for _, p := range DefaultCatalog() {
		s.SaveProduct(p)
	}
}
