package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rajputarjun2947-afk/Vocano/internal/middleware/auth"
	"github.com/rajputarjun2947-afk/Vocano/internal/models"
	"github.com/rajputarjun2947-afk/Vocano/internal/storage"
)

type AddressHandler struct {
	Store *storage.Store
}

func addressComplete(a models.Address) bool {
	return a.Name != "" && a.Phone != "" && a.AddressLine1 != "" &&
		a.City != "" && a.State != "" && a.Pincode != ""
}

func (h *AddressHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Addresses(auth.UserID(c)))
}

func (h *AddressHandler) Create(c echo.Context) error {
	userID := auth.UserID(c)

	var address models.Address
	if err := c.Bind(&address); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}
	if !addressComplete(address) {
		return errorResponse(c, http.StatusBadRequest, "Please fill all required fields")
	}

	address.ID = uuid.NewString()
	// the first address becomes the default
	if len(h.Store.Addresses(userID)) == 0 {
		address.IsDefault = true
	}

	h.Store.SaveAddress(userID, address)
	return c.JSON(http.StatusCreated, address)
}

func (h *AddressHandler) Update(c echo.Context) error {
	userID := auth.UserID(c)
	id := c.Param("id")

	var found bool
	for _, a := range h.Store.Addresses(userID) {
		if a.ID == id {
			found = true
			break
		}
	}
	if !found {
		return errorResponse(c, http.StatusNotFound, "address not found")
	}

	var address models.Address
	if err := c.Bind(&address); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}
	if !addressComplete(address) {
		return errorResponse(c, http.StatusBadRequest, "Please fill all required fields")
	}
	address.ID = id

	h.Store.SaveAddress(userID, address)
	return c.JSON(http.StatusOK, address)
}

func (h *AddressHandler) Delete(c echo.Context) error {
	h.Store.DeleteAddress(auth.UserID(c), c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
