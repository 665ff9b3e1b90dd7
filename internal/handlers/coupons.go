package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/rajputarjun2947-afk/Vocano/internal/models"
	"github.com/rajputarjun2947-afk/Vocano/internal/storage"
)

type CouponHandler struct {
	Store *storage.Store
}

// Apply validates a code against the current total. Always 200: validity is
// in the body, not the status code.
func (h *CouponHandler) Apply(c echo.Context) error {
	var req struct {
		Code        string          `json:"code"`
		TotalAmount decimal.Decimal `json:"totalAmount"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}

	return c.JSON(http.StatusOK, h.Store.ApplyCoupon(req.Code, req.TotalAmount))
}

func (h *CouponHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Coupons())
}

func (h *CouponHandler) Create(c echo.Context) error {
	var coupon models.Coupon
	if err := c.Bind(&coupon); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}
	if coupon.Code == "" {
		return errorResponse(c, http.StatusBadRequest, "code is required")
	}
	if coupon.Type != models.CouponPercentage && coupon.Type != models.CouponFixed {
		return errorResponse(c, http.StatusBadRequest, "unknown coupon type")
	}
	if coupon.ID == "" {
		coupon.ID = uuid.NewString()
	}

	h.Store.SaveCoupon(coupon)
	return c.JSON(http.StatusCreated, coupon)
}

func (h *CouponHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var coupon models.Coupon
	var found bool
	for _, existing := range h.Store.Coupons() {
		if existing.ID == id {
			coupon = existing
			found = true
			break
		}
	}
	if !found {
		return errorResponse(c, http.StatusNotFound, "coupon not found")
	}

	if err := c.Bind(&coupon); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}
	coupon.ID = id

	h.Store.SaveCoupon(coupon)
	return c.JSON(http.StatusOK, coupon)
}

func (h *CouponHandler) Delete(c echo.Context) error {
	h.Store.DeleteCoupon(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
