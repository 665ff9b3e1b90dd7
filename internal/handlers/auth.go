package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rajputarjun2947-afk/Vocano/internal/middleware/auth"
	"github.com/rajputarjun2947-afk/Vocano/internal/models"
	"github.com/rajputarjun2947-afk/Vocano/internal/storage"
)

type AuthHandler struct {
	Store    *storage.Store
	Sessions *auth.Sessions
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Password == "" {
		return errorResponse(c, http.StatusBadRequest, "Please fill all required fields")
	}
	if len(req.Phone) != 10 || !isDigits(req.Phone) {
		return errorResponse(c, http.StatusBadRequest, "Phone number must be 10 digits")
	}

	if _, exists := h.Store.FindUserByEmail(req.Email); exists {
		return errorResponse(c, http.StatusConflict, "user already exists")
	}
	if _, exists := h.Store.FindUserByPhone(req.Phone); exists {
		return errorResponse(c, http.StatusConflict, "user already exists")
	}

	user := models.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		Role:      models.RoleCustomer,
		CreatedAt: time.Now(),
	}
	h.Store.SaveUser(user)

	if err := h.startSession(c, user); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid request body")
	}

	user, ok := h.Store.ValidatePassword(req.Email, req.Password)
	if !ok {
		return errorResponse(c, http.StatusUnauthorized, "invalid email or password")
	}
	if user.IsBlocked {
		return errorResponse(c, http.StatusForbidden, "account is blocked")
	}

	if err := h.startSession(c, user); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user":     user,
		"is_admin": user.Role == models.RoleAdmin,
	})
}

func (h *AuthHandler) startSession(c echo.Context, user models.User) error {
	token, exp, err := h.Sessions.Sign(user)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "could not create session")
	}
	c.SetCookie(CreateCookie(auth.CookieName, token, "/", exp))
	h.Store.SetCurrentUser(user)
	return nil
}

func (h *AuthHandler) Logout(c echo.Context) error {
	expired := time.Now().Add(-1 * time.Hour)
	c.SetCookie(CreateCookie(auth.CookieName, "", "/", expired))
	h.Store.ClearCurrentUser()
	return c.JSON(http.StatusOK, echo.Map{
		"message": "logged out",
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := h.Store.FindUserByID(auth.UserID(c))
	if !ok {
		return errorResponse(c, http.StatusNotFound, "user not found")
	}
	return c.JSON(http.StatusOK, user)
}
