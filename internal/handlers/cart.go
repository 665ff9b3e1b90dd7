package handlers

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/rajputarjun2947-afk/Vocano/internal/models"
	"github.com/rajputarjun2947-afk/Vocano/internal/storage"
)

type CartHandler struct {
	Store *storage.Store
}

// maxLineQuantity is the per-line cap; the store itself does not enforce one.
const maxLineQuantity = 10

func unitPrice(p models.Product) decimal.Decimal {
	if p.Discount <= 0 {
		return p.Price
	}
	pct := decimal.NewFromInt(int64(100 - p.Discount))
	return p.Price.Mul(pct).Div(decimal.NewFromInt(100))
}

func (h *CartHandler) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Cart())
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	var req struct {
		ProductID string `json:"productId"`
		Size      string `json:"size"`
		Color     string `json:"color"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	product, ok := h.Store.FindProduct(req.ProductID)
	if !ok {
		return errorResponse(c, http.StatusNotFound, "product not found")
	}
	if !slices.Contains(product.Sizes, req.Size) {
		return errorResponse(c, http.StatusBadRequest, "invalid size")
	}
	if !slices.Contains(product.Colors, req.Color) {
		return errorResponse(c, http.StatusBadRequest, "invalid color")
	}

	current := 0
	probe := models.CartItem{ProductID: req.ProductID, Size: req.Size, Color: req.Color}
	for _, it := range h.Store.Cart() {
		if it.SameLine(probe) {
			current = it.Quantity
			break
		}
	}

	if current == 0 {
		h.Store.AddToCart(models.CartItem{
			ProductID: req.ProductID,
			Size:      req.Size,
			Color:     req.Color,
			Quantity:  min(req.Quantity, maxLineQuantity),
			Price:     unitPrice(product),
		})
	} else {
		h.Store.UpdateCartItem(req.ProductID, req.Size, req.Color, min(current+req.Quantity, maxLineQuantity))
	}

	return c.JSON(http.StatusOK, h.Store.Cart())
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req struct {
		ProductID string `json:"productId"`
		Size      string `json:"size"`
		Color     string `json:"color"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Quantity > maxLineQuantity {
		req.Quantity = maxLineQuantity
	}

	h.Store.UpdateCartItem(req.ProductID, req.Size, req.Color, req.Quantity)
	return c.JSON(http.StatusOK, h.Store.Cart())
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID := c.QueryParam("productId")
	if productID == "" {
		return errorResponse(c, http.StatusBadRequest, "productId is required")
	}
	h.Store.RemoveFromCart(productID, c.QueryParam("size"), c.QueryParam("color"))
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) Clear(c echo.Context) error {
	h.Store.ClearCart()
	return c.NoContent(http.StatusNoContent)
}
