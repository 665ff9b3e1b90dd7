package storage

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rajputarjun2947-afk/Vocano/internal/kvstore"
	"github.com/rajputarjun2947-afk/Vocano/internal/models"
)

type CouponResult struct {
	Valid    bool            `json:"valid"`
	Discount decimal.Decimal `json:"discount"`
	Message  string          `json:"message"`
}

func (s *Store) Coupons() []models.Coupon {
	return kvstore.Load[models.Coupon](s.kv, keyCoupons)
}

func (s *Store) SaveCoupon(c models.Coupon) {
	kvstore.Upsert(s.kv, keyCoupons, c, func(x, y models.Coupon) bool {
		return x.ID == y.ID
	})
}

func (s *Store) DeleteCoupon(couponID string) {
	kvstore.RemoveIf(s.kv, keyCoupons, func(c models.Coupon) bool {
		return c.ID == couponID
	})
}

// ApplyCoupon validates code against the active coupons and computes the
// discount for the given total. Pure: it mutates nothing and answers the
// same for the same inputs and coupon collection.
func (s *Store) ApplyCoupon(code string, totalAmount decimal.Decimal) CouponResult {
	var coupon *models.Coupon
	for _, c := range s.Coupons() {
		if c.Active && strings.EqualFold(c.Code, code) {
			coupon = &c
			break
		}
	}
	if coupon == nil {
		return CouponResult{Message: "Invalid coupon code"}
	}
	if s.now().After(coupon.ExpiryDate) {
		return CouponResult{Message: "Coupon has expired"}
	}
	if totalAmount.LessThan(coupon.MinPurchase) {
		return CouponResult{
			Message: fmt.Sprintf("Minimum purchase of ₹%s required", coupon.MinPurchase),
		}
	}

	discount := coupon.Discount
	if coupon.Type == models.CouponPercentage {
		discount = totalAmount.Mul(coupon.Discount).Div(decimal.NewFromInt(100))
		if coupon.MaxDiscount != nil {
			discount = decimal.Min(discount, *coupon.MaxDiscount)
		}
	}
	return CouponResult{Valid: true, Discount: discount, Message: "Coupon applied successfully!"}
}
