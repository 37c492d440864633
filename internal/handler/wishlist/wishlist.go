// File: internal/handler/wishlist/wishlist.go
package wishlist

import (
	"net/http"

	"dinewise/internal/api"
	"dinewise/internal/database"
	"dinewise/internal/middleware"
	"dinewise/internal/model"
	"dinewise/internal/service"
	"dinewise/internal/store"

	"github.com/labstack/echo/v4"
)

// 測試時可覆寫的函式變數
var (
	addEntry        = store.AddWishlistEntry
	listEntries     = store.ListWishlist
	removeEntry     = store.RemoveWishlistEntry
	containsEntry   = store.WishlistContains
	getCachedDetail = store.GetRestaurantByYelpID
)

func currentUser(c echo.Context) (*model.User, bool) {
	return middleware.UserFromContext(c)
}

func itemFromEntry(c echo.Context, db database.DB, e model.WishlistEntry) api.WishlistItem {
	item := api.WishlistItem{ID: e.ID, YelpID: e.YelpID, CreatedAt: e.CreatedAt}
	// 快取沒有這家餐廳時 restaurant 留空，不視為錯誤。
	if cached, err := getCachedDetail(c.Request().Context(), db, e.YelpID); err == nil && cached != nil {
		summary := service.SummaryFromCache(*cached)
		item.Restaurant = &summary
	}
	return item
}

// AddHandler 加入願望清單
// @Summary     Add a restaurant to the wishlist
// @Description 重複加入視為成功，資料列不變
// @Tags        wishlist
// @Accept      json
// @Produce     json
// @Param       request body api.AddWishlistRequest true "餐廳識別碼"
// @Success     201 {object} api.WishlistItemResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /wishlist [post]
func AddHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := currentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Code: api.ErrCodeUnauthorized, Message: "authentication required"})
		}
		var req api.AddWishlistRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.ErrCodeValidation, Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.ErrCodeValidation, Message: err.Error()})
		}

		entry, err := addEntry(c.Request().Context(), db, user.ID, req.YelpID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.ErrCodeInternal, Message: "failed to add to wishlist"})
		}
		return c.JSON(http.StatusCreated, api.WishlistItemResponse{
			Status:       "success",
			Message:      "restaurant added to wishlist",
			WishlistItem: itemFromEntry(c, db, *entry),
		})
	}
}

// ListHandler 願望清單
// @Summary     List the caller's wishlist
// @Description 新的在前，附帶快取中的餐廳資料
// @Tags        wishlist
// @Produce     json
// @Success     200 {object} api.WishlistListResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /wishlist [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := currentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Code: api.ErrCodeUnauthorized, Message: "authentication required"})
		}

		entries, err := listEntries(c.Request().Context(), db, user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.ErrCodeInternal, Message: "failed to list wishlist"})
		}

		items := make([]api.WishlistItem, 0, len(entries))
		for _, e := range entries {
			items = append(items, itemFromEntry(c, db, e))
		}
		return c.JSON(http.StatusOK, api.WishlistListResponse{
			Status:   "success",
			Total:    len(items),
			Wishlist: items,
		})
	}
}

// CheckHandler 會員狀態查詢
// @Summary     Check whether a restaurant is wishlisted
// @Tags        wishlist
// @Produce     json
// @Param       yelp_id path string true "餐廳識別碼"
// @Success     200 {object} api.WishlistCheckResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /wishlist/check/{yelp_id} [get]
func CheckHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := currentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Code: api.ErrCodeUnauthorized, Message: "authentication required"})
		}
		yelpID := c.Param("yelp_id")

		in, err := containsEntry(c.Request().Context(), db, user.ID, yelpID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.ErrCodeInternal, Message: "failed to check wishlist"})
		}
		return c.JSON(http.StatusOK, api.WishlistCheckResponse{YelpID: yelpID, InWishlist: in})
	}
}

// RemoveHandler 自願望清單移除
// @Summary     Remove a restaurant from the wishlist
// @Description 只能移除自己的項目，別人的項目一律回 404
// @Tags        wishlist
// @Produce     json
// @Param       yelp_id path string true "餐廳識別碼"
// @Success     200 {object} api.WishlistDeleteResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /wishlist/{yelp_id} [delete]
func RemoveHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := currentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Code: api.ErrCodeUnauthorized, Message: "authentication required"})
		}
		yelpID := c.Param("yelp_id")

		removed, err := removeEntry(c.Request().Context(), db, user.ID, yelpID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.ErrCodeInternal, Message: "failed to remove from wishlist"})
		}
		if !removed {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Code: api.ErrCodeNotFound, Message: "wishlist entry not found"})
		}
		return c.JSON(http.StatusOK, api.WishlistDeleteResponse{
			Status:  "success",
			Message: "restaurant removed from wishlist",
			YelpID:  yelpID,
		})
	}
}
