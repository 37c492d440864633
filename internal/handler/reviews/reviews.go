// File: internal/handler/reviews/reviews.go
package reviews

import (
	"net/http"
	"strconv"

	"dinewise/internal/api"
	"dinewise/internal/database"
	"dinewise/internal/middleware"
	"dinewise/internal/model"
	"dinewise/internal/store"

	"github.com/labstack/echo/v4"
)

// 測試時可覆寫的函式變數
var (
	createReview     = store.CreateReview
	listByRestaurant = store.ListReviewsByRestaurant
	listByUser       = store.ListReviewsByUser
	updateReview     = store.UpdateReview
	deleteReview     = store.DeleteReview
	getCachedDetail  = store.GetRestaurantByYelpID
)

func itemFromReview(r model.Review) api.ReviewItem {
	return api.ReviewItem{
		ID:        r.ID,
		YelpID:    r.YelpID,
		Rating:    r.Rating,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
}

// CreateHandler 建立評論
// @Summary     Create a review
// @Tags        reviews
// @Accept      json
// @Produce     json
// @Param       request body api.CreateReviewRequest true "評論內容"
// @Success     201 {object} api.ReviewResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reviews [post]
func CreateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.UserFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Code: api.ErrCodeUnauthorized, Message: "authentication required"})
		}
		var req api.CreateReviewRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.ErrCodeValidation, Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.ErrCodeValidation, Message: err.Error()})
		}

		review, err := createReview(c.Request().Context(), db, user.ID, req.YelpID, req.Rating, req.Text)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.ErrCodeInternal, Message: "failed to create review"})
		}
		item := itemFromReview(*review)
		item.User = &api.ReviewAuthor{ID: user.ID, FullName: user.FullName}
		return c.JSON(http.StatusCreated, api.ReviewResponse{
			Status:  "success",
			Message: "review created",
			Review:  item,
		})
	}
}

// ListByRestaurantHandler 餐廳評論列表（公開）
// @Summary     List community reviews for a restaurant
// @Tags        reviews
// @Produce     json
// @Param       yelp_id query string true "餐廳識別碼"
// @Success     200 {object} api.ReviewListResponse
// @Failure     400 {object} api.ErrorResponse
// @Router      /reviews [get]
func ListByRestaurantHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		yelpID := c.QueryParam("yelp_id")
		if yelpID == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.ErrCodeValidation, Message: "yelp_id is required"})
		}

		reviews, err := listByRestaurant(c.Request().Context(), db, yelpID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.ErrCodeInternal, Message: "failed to list reviews"})
		}

		items := make([]api.ReviewItem, 0, len(reviews))
		for _, r := range reviews {
			item := itemFromReview(r.Review)
			item.User = &api.ReviewAuthor{ID: r.UserID, FullName: r.AuthorName}
			items = append(items, item)
		}
		return c.JSON(http.StatusOK, api.ReviewListResponse{Status: "success", Total: len(items), Reviews: items})
	}
}

// MyReviewsHandler 我的評論，附帶快取中的餐廳摘要
// @Summary     List the caller's reviews
// @Tags        reviews
// @Produce     json
// @Success     200 {object} api.ReviewListResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me/reviews [get]
func MyReviewsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.UserFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Code: api.ErrCodeUnauthorized, Message: "authentication required"})
		}

		reviews, err := listByUser(c.Request().Context(), db, user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.ErrCodeInternal, Message: "failed to list reviews"})
		}

		items := make([]api.ReviewItem, 0, len(reviews))
		for _, r := range reviews {
			item := itemFromReview(r)
			if cached, err := getCachedDetail(c.Request().Context(), db, r.YelpID); err == nil && cached != nil {
				item.Restaurant = &api.ReviewRestaurant{Name: cached.Name, Address: cached.Address, Rating: cached.Rating}
			}
			items = append(items, item)
		}
		return c.JSON(http.StatusOK, api.ReviewListResponse{Status: "success", Total: len(items), Reviews: items})
	}
}

// UpdateHandler 修改評論
// @Summary     Update one of the caller's reviews
// @Description 省略的欄位不變。不是作者時回 404，不是 403
// @Tags        reviews
// @Accept      json
// @Produce     json
// @Param       review_id path string true "評論 ID"
// @Param       request body api.UpdateReviewRequest true "要修改的欄位"
// @Success     200 {object} api.ReviewResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reviews/{review_id} [patch]
func UpdateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.UserFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Code: api.ErrCodeUnauthorized, Message: "authentication required"})
		}
		reviewID, err := strconv.Atoi(c.Param("review_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.ErrCodeValidation, Message: "review_id must be an integer"})
		}
		var req api.UpdateReviewRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.ErrCodeValidation, Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.ErrCodeValidation, Message: err.Error()})
		}
		if req.Rating == nil && req.Text == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.ErrCodeValidation, Message: "nothing to update"})
		}

		review, err := updateReview(c.Request().Context(), db, reviewID, user.ID, req.Rating, req.Text)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.ErrCodeInternal, Message: "failed to update review"})
		}
		if review == nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Code: api.ErrCodeNotFound, Message: "review not found"})
		}
		return c.JSON(http.StatusOK, api.ReviewResponse{
			Status:  "success",
			Message: "review updated",
			Review:  itemFromReview(*review),
		})
	}
}

// DeleteHandler 刪除評論
// @Summary     Delete one of the caller's reviews
// @Description 不是作者時回 404，不是 403
// @Tags        reviews
// @Produce     json
// @Param       review_id path string true "評論 ID"
// @Success     200 {object} api.ReviewDeleteResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reviews/{review_id} [delete]
func DeleteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.UserFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Code: api.ErrCodeUnauthorized, Message: "authentication required"})
		}
		reviewID, err := strconv.Atoi(c.Param("review_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.ErrCodeValidation, Message: "review_id must be an integer"})
		}

		deleted, err := deleteReview(c.Request().Context(), db, reviewID, user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.ErrCodeInternal, Message: "failed to delete review"})
		}
		if !deleted {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Code: api.ErrCodeNotFound, Message: "review not found"})
		}
		return c.JSON(http.StatusOK, api.ReviewDeleteResponse{
			Status:   "success",
			Message:  "review deleted",
			ReviewID: reviewID,
		})
	}
}
