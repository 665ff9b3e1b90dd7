package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rajputarjun2947-afk/Vocano/internal/middleware/auth"
	"github.com/rajputarjun2947-afk/Vocano/internal/storage"
)

type NotificationHandler struct {
	Store *storage.Store
}

func (h *NotificationHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Notifications(auth.UserID(c)))
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	h.Store.MarkNotificationRead(auth.UserID(c), c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
