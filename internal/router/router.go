// File: internal/router/router.go
package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"dinewise/internal/cache"
	"dinewise/internal/database"
	"dinewise/internal/handler"
	"dinewise/internal/handler/auth"
	"dinewise/internal/handler/flags"
	"dinewise/internal/handler/restaurants"
	"dinewise/internal/handler/reviews"
	"dinewise/internal/handler/search"
	"dinewise/internal/handler/wishlist"
	"dinewise/internal/middleware"
	"dinewise/internal/yelp"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, yp yelp.API, detailTTL time.Duration) {
	api := e.Group("/api")
	requireAuth := middleware.RequireAuth(db)

	// 健康檢查
	api.GET("/health", handler.HealthHandler())
	api.GET("/ping", handler.PingHandler(db, rdb), requireAuth)

	// 搜尋（公開）
	api.GET("/search", search.SearchHandler(db, yp))
	api.GET("/search/nearby", search.NearbyHandler(db, yp))

	// 餐廳詳情與上游評論（公開）
	api.GET("/restaurants/:yelp_id", restaurants.DetailHandler(db, rdb, yp, detailTTL))
	api.GET("/restaurants/:yelp_id/reviews", restaurants.YelpReviewsHandler(yp))

	// 當前使用者
	api.GET("/auth/me", auth.MeHandler(), requireAuth)

	// 願望清單
	apiWishlist := api.Group("/wishlist", requireAuth)
	apiWishlist.POST("", wishlist.AddHandler(db))
	apiWishlist.GET("", wishlist.ListHandler(db))
	apiWishlist.GET("/check/:yelp_id", wishlist.CheckHandler(db))
	apiWishlist.DELETE("/:yelp_id", wishlist.RemoveHandler(db))

	// 社群評論：依餐廳查詢為公開，其他操作需登入
	api.GET("/reviews", reviews.ListByRestaurantHandler(db))
	api.POST("/reviews", reviews.CreateHandler(db), requireAuth)
	api.PATCH("/reviews/:review_id", reviews.UpdateHandler(db), requireAuth)
	api.DELETE("/reviews/:review_id", reviews.DeleteHandler(db), requireAuth)
	api.GET("/users/me/reviews", reviews.MyReviewsHandler(db), requireAuth)

	// 旗標
	apiFlags := api.Group("/flags", requireAuth)
	apiFlags.GET("", flags.ListHandler(db))
	apiFlags.PUT("/:yelp_id", flags.UpsertHandler(db))
	apiFlags.GET("/:yelp_id", flags.GetHandler(db))
	apiFlags.DELETE("/:yelp_id", flags.DeleteHandler(db))
}
