// File: internal/handler/flags/flags.go
package flags

import (
	"net/http"

	"dinewise/internal/api"
	"dinewise/internal/database"
	"dinewise/internal/middleware"
	"dinewise/internal/model"
	"dinewise/internal/store"

	"github.com/labstack/echo/v4"
)

// 測試時可覆寫的函式變數
var (
	upsertFlags     = store.UpsertFlags
	getFlags        = store.GetFlags
	listFlags       = store.ListFlags
	deleteFlags     = store.DeleteFlags
	getCachedDetail = store.GetRestaurantByYelpID
)

func itemFromFlags(f model.RestaurantFlags) api.FlagsItem {
	updatedAt := f.UpdatedAt
	return api.FlagsItem{
		ID:         f.ID,
		YelpID:     f.YelpID,
		Visited:    f.Visited,
		PromoOptIn: f.PromoOptIn,
		UpdatedAt:  &updatedAt,
	}
}

func enrichedItem(c echo.Context, db database.DB, f model.RestaurantFlags) api.FlagsItem {
	item := itemFromFlags(f)
	// 快取沒有這家餐廳時 restaurant 留空，不視為錯誤。
	if cached, err := getCachedDetail(c.Request().Context(), db, f.YelpID); err == nil && cached != nil {
		item.Restaurant = &api.ReviewRestaurant{
			Name:    cached.Name,
			Address: cached.Address,
			Rating:  cached.Rating,
			Price:   cached.Price,
		}
	}
	return item
}

// UpsertHandler 設定餐廳旗標
// @Summary     Set visited / promo flags for a restaurant
// @Description 部分更新：省略的欄位維持原值，首次建立時預設 false
// @Tags        flags
// @Accept      json
// @Produce     json
// @Param       yelp_id path string true "餐廳識別碼"
// @Param       request body api.UpdateFlagsRequest true "要設定的旗標"
// @Success     200 {object} api.FlagsResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /flags/{yelp_id} [put]
func UpsertHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.UserFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Code: api.ErrCodeUnauthorized, Message: "authentication required"})
		}
		yelpID := c.Param("yelp_id")
		var req api.UpdateFlagsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.ErrCodeValidation, Message: "invalid request body"})
		}
		if req.Visited == nil && req.PromoOptIn == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.ErrCodeValidation, Message: "at least one flag is required"})
		}

		flags, err := upsertFlags(c.Request().Context(), db, user.ID, yelpID, req.Visited, req.PromoOptIn)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.ErrCodeInternal, Message: "failed to update flags"})
		}
		return c.JSON(http.StatusOK, api.FlagsResponse{
			Status:  "success",
			Message: "flags updated",
			Flags:   itemFromFlags(*flags),
		})
	}
}

// GetHandler 查單一餐廳旗標
// @Summary     Get flags for one restaurant
// @Description 沒有資料列時回傳預設值並標示 exists=false
// @Tags        flags
// @Produce     json
// @Param       yelp_id path string true "餐廳識別碼"
// @Success     200 {object} api.FlagsResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /flags/{yelp_id} [get]
func GetHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.UserFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Code: api.ErrCodeUnauthorized, Message: "authentication required"})
		}
		yelpID := c.Param("yelp_id")

		flags, err := getFlags(c.Request().Context(), db, user.ID, yelpID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.ErrCodeInternal, Message: "failed to get flags"})
		}

		exists := flags != nil
		var item api.FlagsItem
		if exists {
			item = itemFromFlags(*flags)
		} else {
			item = api.FlagsItem{YelpID: yelpID}
		}
		item.Exists = &exists
		return c.JSON(http.StatusOK, api.FlagsResponse{Status: "success", Flags: item})
	}
}

// ListHandler 我的所有旗標
// @Summary     List all of the caller's flags
// @Description 附帶快取中的餐廳資料
// @Tags        flags
// @Produce     json
// @Success     200 {object} api.FlagsListResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /flags [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.UserFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Code: api.ErrCodeUnauthorized, Message: "authentication required"})
		}

		flags, err := listFlags(c.Request().Context(), db, user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.ErrCodeInternal, Message: "failed to list flags"})
		}

		items := make([]api.FlagsItem, 0, len(flags))
		for _, f := range flags {
			items = append(items, enrichedItem(c, db, f))
		}
		return c.JSON(http.StatusOK, api.FlagsListResponse{Status: "success", Total: len(items), Flags: items})
	}
}

// DeleteHandler 刪除旗標
// @Summary     Delete the caller's flags for one restaurant
// @Description 只能刪自己的旗標，別人的旗標一律回 404
// @Tags        flags
// @Produce     json
// @Param       yelp_id path string true "餐廳識別碼"
// @Success     200 {object} api.FlagsDeleteResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /flags/{yelp_id} [delete]
func DeleteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.UserFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Code: api.ErrCodeUnauthorized, Message: "authentication required"})
		}
		yelpID := c.Param("yelp_id")

		deleted, err := deleteFlags(c.Request().Context(), db, user.ID, yelpID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.ErrCodeInternal, Message: "failed to delete flags"})
		}
		if !deleted {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Code: api.ErrCodeNotFound, Message: "flags not found"})
		}
		return c.JSON(http.StatusOK, api.FlagsDeleteResponse{
			Status:  "success",
			Message: "flags deleted",
			YelpID:  yelpID,
		})
	}
}
