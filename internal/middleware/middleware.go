package middleware

import (
	"net/http"
	"strings"

	"dinewise/internal/api"
	"dinewise/internal/database"
	"dinewise/internal/model"
	"dinewise/internal/service"
	"dinewise/internal/store"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// 測試時可覆寫的函式變數
var (
	verifyIdentityToken = service.VerifyIdentityToken
	upsertUserBySubject = store.UpsertUserBySubject
)

// UserFromContext 取出 RequireAuth 放入的使用者。
func UserFromContext(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	return user, ok
}

func extractClaims(c echo.Context) (*service.IdentityClaims, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, false
	}
	claims, err := verifyIdentityToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

// RequireAuth verifies the bearer token and provisions the account on first
// sight of a new subject. The resolved user is stored on the context under
// ContextUserKey.
func RequireAuth(db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := extractClaims(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{
					Code:    api.ErrCodeUnauthorized,
					Message: "missing or invalid bearer token",
				})
			}
			user, err := upsertUserBySubject(c.Request().Context(), db, claims.Subject, claims.Email, claims.Name)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{
					Code:    api.ErrCodeInternal,
					Message: "failed to resolve user",
				})
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}
