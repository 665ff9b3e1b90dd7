package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/rajputarjun2947-afk/Vocano/internal/models"
	"github.com/rajputarjun2947-afk/Vocano/internal/storage"
)

const (
	CookieName = "session"
	TTL        = 7 * 24 * time.Hour
)

type Sessions struct {
	Store     *storage.Store
	JWTSecret []byte
}

func (s *Sessions) Sign(u models.User) (string, time.Time, error) {
	exp := time.Now().Add(TTL)
	claims := jwt.MapClaims{
		"sub":  u.ID,
		"role": string(u.Role),
		"exp":  exp.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.JWTSecret)
	return signed, exp, err
}

func (s *Sessions) resolve(c echo.Context) (models.User, error) {
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return models.User{}, echo.NewHTTPError(http.StatusUnauthorized, "login required")
	}

	token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signature method: %v", t.Header["alg"])
		}
		return s.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return models.User{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.User{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
	}
	sub, _ := claims["sub"].(string)

	// the session only names the user; role and blocked state are re-read
	// from the users collection so admin edits take effect immediately
	user, ok := s.Store.FindUserByID(sub)
	if !ok {
		return models.User{}, echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
	}
	if user.IsBlocked {
		return models.User{}, echo.NewHTTPError(http.StatusForbidden, "account is blocked")
	}
	return user, nil
}

func (s *Sessions) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := s.resolve(c)
		if err != nil {
			return err
		}
		setUserContext(c, user)
		return next(c)
	}
}

func (s *Sessions) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := s.resolve(c)
		if err != nil {
			return err
		}
		if user.Role != models.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "not enough rights")
		}
		setUserContext(c, user)
		return next(c)
	}
}

func setUserContext(c echo.Context, u models.User) {
	c.Set("userID", u.ID)
	c.Set("role", u.Role)
}

func UserID(c echo.Context) string {
	id, _ := c.Get("userID").(string)
	return id
}

func UserRole(c echo.Context) models.Role {
	role, _ := c.Get("role").(models.Role)
	return role
}
