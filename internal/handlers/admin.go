package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rajputarjun2947-afk/Vocano/internal/models"
	"github.com/rajputarjun2947-afk/Vocano/internal/storage"
)

// AdminHandler backs the admin console: user moderation and order tracking.
type AdminHandler struct {
	Store *storage.Store
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Users())
}

func (h *AdminHandler) SetUserBlocked(c echo.Context) error {
	var req struct {
		Blocked bool `json:"blocked"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}

	user, ok := h.Store.FindUserByID(c.Param("id"))
	if !ok {
		return errorResponse(c, http.StatusNotFound, "user not found")
	}

	user.IsBlocked = req.Blocked
	h.Store.SaveUser(user)
	return c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) ListOrders(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Orders())
}

var validOrderStatus = map[models.OrderStatus]bool{
	models.OrderPending:   true,
	models.OrderConfirmed: true,
	models.OrderPacked:    true,
	models.OrderShipped:   true,
	models.OrderDelivered: true,
	models.OrderCancelled: true,
}

// UpdateOrderStatus sets any status from any status; the transition graph is
// left to the operator.
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	var req struct {
		OrderStatus models.OrderStatus `json:"orderStatus"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}
	if !validOrderStatus[req.OrderStatus] {
		return errorResponse(c, http.StatusBadRequest, "unknown order status")
	}

	id := c.Param("id")
	if _, ok := h.Store.FindOrder(id); !ok {
		return errorResponse(c, http.StatusNotFound, "order not found")
	}

	h.Store.UpdateOrderStatus(id, req.OrderStatus)
	order, _ := h.Store.FindOrder(id)
	return c.JSON(http.StatusOK, order)
}

var validPaymentStatus = map[models.PaymentStatus]bool{
	models.PaymentPending:   true,
	models.PaymentCompleted: true,
	models.PaymentFailed:    true,
}

func (h *AdminHandler) UpdatePaymentStatus(c echo.Context) error {
	var req struct {
		PaymentStatus models.PaymentStatus `json:"paymentStatus"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}
	if !validPaymentStatus[req.PaymentStatus] {
		return errorResponse(c, http.StatusBadRequest, "unknown payment status")
	}

	id := c.Param("id")
	if _, ok := h.Store.FindOrder(id); !ok {
		return errorResponse(c, http.StatusNotFound, "order not found")
	}

	h.Store.UpdatePaymentStatus(id, req.PaymentStatus)
	order, _ := h.Store.FindOrder(id)
	return c.JSON(http.StatusOK, order)
}
