// File: internal/handler/search/search.go
package search

import (
	"errors"
	"net/http"

	"dinewise/internal/api"
	"dinewise/internal/database"
	"dinewise/internal/service"
	"dinewise/internal/yelp"

	"github.com/labstack/echo/v4"
)

// 測試時可覆寫的函式變數
var (
	searchRestaurants = service.Search
	searchNearby      = service.Nearby
)

func writeServiceError(c echo.Context, err error) error {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		return c.JSON(svcErr.Status, api.ErrorResponse{Code: svcErr.Code, Message: svcErr.Message})
	}
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.ErrCodeInternal, Message: "internal error"})
}

// SearchHandler 餐廳搜尋
// @Summary     Search restaurants
// @Description 行政區代碼 (MAN/BK/QN/BX/SI) 走本地快取，其他地點走即時搜尋
// @Tags        search
// @Produce     json
// @Param       q          query string  false "關鍵字"
// @Param       location   query string  false "行政區代碼或自由地點"
// @Param       cuisine    query string  false "菜系"
// @Param       price      query string  false "價位，逗號分隔 ($ 到 $$$$)"
// @Param       rating_min query number  false "最低評分 (1-5)"
// @Param       limit      query integer false "每頁筆數 (1-50)"
// @Param       offset     query integer false "偏移量"
// @Success     200 {object} api.SearchResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     429 {object} api.ErrorResponse
// @Failure     502 {object} api.ErrorResponse
// @Router      /search [get]
func SearchHandler(db database.DB, yp yelp.API) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SearchRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.ErrCodeValidation, Message: "invalid query parameters"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.ErrCodeValidation, Message: err.Error()})
		}

		resp, err := searchRestaurants(c.Request().Context(), db, yp, req)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// NearbyHandler 座標鄰近搜尋
// @Summary     Search restaurants near a coordinate
// @Description 嚴格以半徑過濾結果，超出半徑的上游結果一律剔除
// @Tags        search
// @Produce     json
// @Param       latitude  query number  true  "緯度"
// @Param       longitude query number  true  "經度"
// @Param       radius    query integer false "半徑公尺 (100-40000，預設 5000)"
// @Param       limit     query integer false "每頁筆數 (1-50)"
// @Success     200 {object} api.NearbyResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     429 {object} api.ErrorResponse
// @Failure     502 {object} api.ErrorResponse
// @Router      /search/nearby [get]
func NearbyHandler(db database.DB, yp yelp.API) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.NearbyRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.ErrCodeValidation, Message: "invalid query parameters"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.ErrCodeValidation, Message: err.Error()})
		}

		resp, err := searchNearby(c.Request().Context(), db, yp, req)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
