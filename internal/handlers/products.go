package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rajputarjun2947-afk/Vocano/internal/models"
	"github.com/rajputarjun2947-afk/Vocano/internal/storage"
	"github.com/rajputarjun2947-afk/Vocano/internal/util"
)

type ProductHandler struct {
	Store *storage.Store
}

func matchesQuery(p models.Product, q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	category := c.QueryParam("category")
	q := c.QueryParam("q")

	var items []models.Product
	for _, p := range h.Store.Products() {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if c.QueryParam("featured") == "true" && !p.Featured {
			continue
		}
		if c.QueryParam("trending") == "true" && !p.Trending {
			continue
		}
		if c.QueryParam("bestseller") == "true" && !p.Bestseller {
			continue
		}
		if !matchesQuery(p, q) {
			continue
		}
		items = append(items, p)
	}

	total := len(items)
	offset, limit := util.Calculate(page, size)
	window := util.Window(items, page, size)

	return c.JSON(http.StatusOK, map[string]any{
		"data": window,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + limit - 1) / limit,
			"has_prev":    page > 1,
			"has_next":    offset+limit < total,
		},
	})
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, ok := h.Store.FindProduct(c.Param("id"))
	if !ok {
		return errorResponse(c, http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var product models.Product
	if err := c.Bind(&product); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}
	if product.Name == "" {
		return errorResponse(c, http.StatusBadRequest, "name is required")
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	h.Store.SaveProduct(product)
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) PatchProduct(c echo.Context) error {
	product, ok := h.Store.FindProduct(c.Param("id"))
	if !ok {
		return errorResponse(c, http.StatusNotFound, "product not found")
	}
	// bind over the stored record so omitted fields keep their values
	if err := c.Bind(&product); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}
	product.ID = c.Param("id")

	h.Store.SaveProduct(product)
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	h.Store.DeleteProduct(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
