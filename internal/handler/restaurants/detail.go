// File: internal/handler/restaurants/detail.go
package restaurants

import (
	"errors"
	"net/http"
	"time"

	"dinewise/internal/api"
	"dinewise/internal/cache"
	"dinewise/internal/database"
	"dinewise/internal/service"
	"dinewise/internal/yelp"

	"github.com/labstack/echo/v4"
)

// 測試時可覆寫的函式變數
var (
	getDetail  = service.Detail
	getReviews = service.Reviews
)

func writeServiceError(c echo.Context, err error) error {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		return c.JSON(svcErr.Status, api.ErrorResponse{Code: svcErr.Code, Message: svcErr.Message})
	}
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.ErrCodeInternal, Message: "internal error"})
}

// DetailHandler 餐廳詳情
// @Summary     Get restaurant detail
// @Description 即時抓取必要，本地快取只補缺漏欄位，附最多三則上游評論
// @Tags        restaurants
// @Produce     json
// @Param       yelp_id path string true "餐廳識別碼"
// @Success     200 {object} api.RestaurantDetailResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     429 {object} api.ErrorResponse
// @Failure     502 {object} api.ErrorResponse
// @Router      /restaurants/{yelp_id} [get]
func DetailHandler(db database.DB, rdb cache.Cache, yp yelp.API, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		yelpID := c.Param("yelp_id")
		if yelpID == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.ErrCodeValidation, Message: "yelp_id is required"})
		}

		resp, err := getDetail(c.Request().Context(), db, rdb, yp, yelpID, ttl)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// YelpReviewsHandler 上游評論
// @Summary     Get provider reviews
// @Description 回傳最多三則上游評論
// @Tags        restaurants
// @Produce     json
// @Param       yelp_id path string true "餐廳識別碼"
// @Success     200 {object} api.YelpReviewsResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     502 {object} api.ErrorResponse
// @Router      /restaurants/{yelp_id}/reviews [get]
func YelpReviewsHandler(yp yelp.API) echo.HandlerFunc {
	return func(c echo.Context) error {
		yelpID := c.Param("yelp_id")
		if yelpID == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.ErrCodeValidation, Message: "yelp_id is required"})
		}

		resp, err := getReviews(c.Request().Context(), yp, yelpID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
