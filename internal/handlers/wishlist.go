package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rajputarjun2947-afk/Vocano/internal/middleware/auth"
	"github.com/rajputarjun2947-afk/Vocano/internal/storage"
)

type WishlistHandler struct {
	Store *storage.Store
}

func (h *WishlistHandler) Get(c echo.Context) error {
	ids := h.Store.Wishlist(auth.UserID(c))
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(http.StatusOK, ids)
}

func (h *WishlistHandler) Toggle(c echo.Context) error {
	userID := auth.UserID(c)
	productID := c.Param("productId")
	if _, ok := h.Store.FindProduct(productID); !ok {
		return errorResponse(c, http.StatusNotFound, "product not found")
	}

	h.Store.ToggleWishlist(userID, productID)

	ids := h.Store.Wishlist(userID)
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(http.StatusOK, ids)
}
