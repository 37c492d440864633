// File: internal/handler/auth/me.go
package auth

import (
	"net/http"

	"dinewise/internal/api"
	"dinewise/internal/middleware"

	"github.com/labstack/echo/v4"
)

// MeHandler 取得當前使用者資訊
// @Summary     Get current user info
// @Description 回傳通過令牌驗證後（必要時自動建立）的使用者資料
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/me [get]
func MeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.UserFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Code: api.ErrCodeUnauthorized, Message: "authentication required"})
		}
		return c.JSON(http.StatusOK, api.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			FullName:  user.FullName,
			CreatedAt: user.CreatedAt,
		})
	}
}
