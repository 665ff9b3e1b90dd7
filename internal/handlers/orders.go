package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/rajputarjun2947-afk/Vocano/internal/middleware/auth"
	"github.com/rajputarjun2947-afk/Vocano/internal/models"
	"github.com/rajputarjun2947-afk/Vocano/internal/storage"
)

type OrderHandler struct {
	Store *storage.Store
}

var (
	freeDeliveryOver = decimal.NewFromInt(5000)
	deliveryCharge   = decimal.NewFromInt(50)
)

// Checkout snapshots the cart and the chosen address into a new order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID := auth.UserID(c)

	var req struct {
		AddressID     string `json:"addressId"`
		PaymentMethod string `json:"paymentMethod"`
		CouponCode    string `json:"couponCode"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}

	cart := h.Store.Cart()
	if len(cart) == 0 {
		return errorResponse(c, http.StatusBadRequest, "cart is empty")
	}
	if req.PaymentMethod == "" {
		return errorResponse(c, http.StatusBadRequest, "Please select a payment method")
	}

	var address *models.Address
	for _, a := range h.Store.Addresses(userID) {
		if a.ID == req.AddressID {
			address = &a
			break
		}
	}
	if address == nil {
		return errorResponse(c, http.StatusBadRequest, "Please select a delivery address")
	}

	subtotal := decimal.Zero
	for _, it := range cart {
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	discount := decimal.Zero
	if req.CouponCode != "" {
		res := h.Store.ApplyCoupon(req.CouponCode, subtotal)
		if !res.Valid {
			return errorResponse(c, http.StatusBadRequest, res.Message)
		}
		discount = res.Discount
	}

	delivery := deliveryCharge
	if subtotal.GreaterThan(freeDeliveryOver) {
		delivery = decimal.Zero
	}

	paymentStatus := models.PaymentCompleted
	if req.PaymentMethod == "cod" {
		paymentStatus = models.PaymentPending
	}

	now := time.Now()
	order := models.Order{
		ID:              fmt.Sprintf("ORD-%d", now.UnixMilli()),
		UserID:          userID,
		Items:           cart,
		TotalAmount:     subtotal,
		Discount:        discount,
		DeliveryCharge:  delivery,
		FinalAmount:     subtotal.Add(delivery).Sub(discount),
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   paymentStatus,
		OrderStatus:     models.OrderPending,
		ShippingAddress: *address,
		CouponCode:      req.CouponCode,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	h.Store.SaveOrder(order)
	h.Store.ClearCart()
	h.Store.AddNotification(models.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     "Order Placed Successfully",
		Message:   fmt.Sprintf("Your order %s has been placed successfully.", order.ID),
		Type:      models.NotificationOrder,
		CreatedAt: now,
	})

	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListMine(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.UserOrders(auth.UserID(c)))
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, ok := h.Store.FindOrder(c.Param("id"))
	if !ok || order.UserID != auth.UserID(c) {
		return errorResponse(c, http.StatusNotFound, "order not found")
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Cancel(c echo.Context) error {
	order, ok := h.Store.FindOrder(c.Param("id"))
	if !ok || order.UserID != auth.UserID(c) {
		return errorResponse(c, http.StatusNotFound, "order not found")
	}
	if order.OrderStatus == models.OrderDelivered || order.OrderStatus == models.OrderCancelled {
		return errorResponse(c, http.StatusBadRequest, "order can no longer be cancelled")
	}

	h.Store.UpdateOrderStatus(order.ID, models.OrderCancelled)
	updated, _ := h.Store.FindOrder(order.ID)
	return c.JSON(http.StatusOK, updated)
}
