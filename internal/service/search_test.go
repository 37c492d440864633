package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"testing"
	"time"

	"dinewise/internal/api"
	"dinewise/internal/database"
	"dinewise/internal/model"
	"dinewise/internal/store"
	"dinewise/internal/yelp"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func restoreGlobals() {
	searchCached = store.SearchCached
	upsertRestaurant = store.UpsertRestaurant
	getRestaurantByYelpID = store.GetRestaurantByYelpID
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
	logf = log.Printf
}

// captureLog 收集服務層的警告訊息。
func captureLog(lines *[]string) {
	logf = func(format string, args ...any) {
		*lines = append(*lines, fmt.Sprintf(format, args...))
	}
}

func TestIsBorough(t *testing.T) {
	for _, code := range []string{"MAN", "BK", "QN", "BX", "SI", "man", " bk "} {
		require.True(t, IsBorough(code), code)
	}
	for _, code := range []string{"", "NYC", "Jersey City", "BROOKLYN"} {
		require.False(t, IsBorough(code), code)
	}
}

func TestParsePrices(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		prices, err := parsePrices("")
		require.NoError(t, err)
		require.Nil(t, prices)
	})

	t.Run("valid list", func(t *testing.T) {
		prices, err := parsePrices("$, $$")
		require.NoError(t, err)
		require.Equal(t, []string{"$", "$$"}, prices)
		require.Equal(t, "1,2", tiersParam(prices))
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := parsePrices("$,cheap")
		var svcErr *Error
		require.ErrorAs(t, err, &svcErr)
		require.Equal(t, http.StatusBadRequest, svcErr.Status)
		require.Equal(t, api.ErrCodeValidation, svcErr.Code)
	})
}

func TestSearchCachePath(t *testing.T) {
	t.Cleanup(restoreGlobals)

	var gotFilter store.CachedSearchFilter
	searchCached = func(_ context.Context, _ database.DB, f store.CachedSearchFilter) ([]model.CachedRestaurant, error) {
		gotFilter = f
		return []model.CachedRestaurant{
			{YelpID: "a", Name: "Top", Rating: 4.9, ReviewCount: 50},
			{YelpID: "b", Name: "Next", Rating: 4.8, ReviewCount: 120},
		}, nil
	}

	min := 4.5
	resp, err := Search(context.Background(), &database.FakeDB{}, &yelp.FakeAPI{}, api.SearchRequest{
		Location:  "bk",
		Query:     "pizza",
		Price:     "$$",
		RatingMin: &min,
	})
	require.NoError(t, err)
	require.Equal(t, "cached_db", resp.Method)
	require.Equal(t, 2, resp.Total)
	require.Equal(t, "a", resp.Restaurants[0].ID)
	require.Equal(t, "BK", gotFilter.LocationCode)
	require.Equal(t, "pizza", gotFilter.Query)
	require.Equal(t, []string{"$$"}, gotFilter.Prices)
	require.Equal(t, &min, gotFilter.RatingMin)
	require.Equal(t, 20, gotFilter.Limit)
}

func TestSearchCachePathError(t *testing.T) {
	t.Cleanup(restoreGlobals)

	searchCached = func(_ context.Context, _ database.DB, _ store.CachedSearchFilter) ([]model.CachedRestaurant, error) {
		return nil, errors.New("boom")
	}
	_, err := Search(context.Background(), &database.FakeDB{}, &yelp.FakeAPI{}, api.SearchRequest{Location: "MAN"})
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, http.StatusInternalServerError, svcErr.Status)
}

func TestSearchLivePath(t *testing.T) {
	t.Cleanup(restoreGlobals)

	var written []model.CachedRestaurant
	upsertRestaurant = func(_ context.Context, _ database.DB, r *model.CachedRestaurant) error {
		written = append(written, *r)
		return nil
	}

	var gotParams yelp.SearchParams
	yp := &yelp.FakeAPI{
		SearchBusinessesFn: func(_ context.Context, p yelp.SearchParams) ([]api.RestaurantSummary, error) {
			gotParams = p
			return []api.RestaurantSummary{
				{ID: "a", Name: "A", Rating: 4.8, ReviewCount: 10},
				{ID: "b", Name: "B", Rating: 4.2, ReviewCount: 99},
				{ID: "c", Name: "C", Rating: 4.9, ReviewCount: 5},
				{ID: "d", Name: "Ghost", Rating: 5.0, ReviewCount: 0},
			}, nil
		},
	}

	min := 4.5
	resp, err := Search(context.Background(), &database.FakeDB{}, yp, api.SearchRequest{
		Location:  "Boston",
		Query:     "dumplings",
		Cuisine:   "chinese",
		Price:     "$,$$",
		RatingMin: &min,
	})
	require.NoError(t, err)
	require.Equal(t, "yelp_api", resp.Method)
	require.Equal(t, "dumplings chinese", gotParams.Term)
	require.Equal(t, "Boston", gotParams.Location)
	require.Equal(t, "1,2", gotParams.Price)

	// 零評論被剔除，rating_min 在本地套用，排序高分在前。
	require.Equal(t, 2, resp.Total)
	require.Equal(t, []string{"c", "a"}, []string{resp.Restaurants[0].ID, resp.Restaurants[1].ID})

	require.Len(t, written, 2)
	require.Equal(t, "SEARCH", written[0].LocationCode)
}

func TestSearchLiveDefaults(t *testing.T) {
	t.Cleanup(restoreGlobals)

	upsertRestaurant = func(_ context.Context, _ database.DB, _ *model.CachedRestaurant) error { return nil }
	yp := &yelp.FakeAPI{
		SearchBusinessesFn: func(_ context.Context, p yelp.SearchParams) ([]api.RestaurantSummary, error) {
			require.Equal(t, "restaurants", p.Term)
			require.Equal(t, "New York City", p.Location)
			return nil, nil
		},
	}
	resp, err := Search(context.Background(), &database.FakeDB{}, yp, api.SearchRequest{})
	require.NoError(t, err)
	require.Equal(t, 0, resp.Total)
	require.NotNil(t, resp.Restaurants)
}

func TestSearchLiveWriteBackFailureIgnored(t *testing.T) {
	t.Cleanup(restoreGlobals)

	upsertRestaurant = func(_ context.Context, _ database.DB, _ *model.CachedRestaurant) error {
		return errors.New("cache down")
	}
	yp := &yelp.FakeAPI{
		SearchBusinessesFn: func(_ context.Context, _ yelp.SearchParams) ([]api.RestaurantSummary, error) {
			return []api.RestaurantSummary{{ID: "a", Rating: 4.0, ReviewCount: 3}}, nil
		},
	}
	resp, err := Search(context.Background(), &database.FakeDB{}, yp, api.SearchRequest{Location: "Boston"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
}

func TestSearchUpstreamErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)

	cases := []struct {
		name       string
		code       string
		wantStatus int
		wantCode   string
	}{
		{"rate limited", yelp.ErrCodeRateLimited, http.StatusTooManyRequests, api.ErrCodeRateLimited},
		{"invalid request", yelp.ErrCodeInvalidRequest, http.StatusBadRequest, api.ErrCodeValidation},
		{"unavailable", yelp.ErrCodeUpstream, http.StatusBadGateway, api.ErrCodeUpstream},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Cleanup(restoreGlobals)
			var logged []string
			captureLog(&logged)

			yp := &yelp.FakeAPI{
				SearchBusinessesFn: func(_ context.Context, _ yelp.SearchParams) ([]api.RestaurantSummary, error) {
					return nil, &yelp.APIError{StatusCode: 500, Code: tc.code, Message: "nope"}
				},
			}
			_, err := Search(context.Background(), &database.FakeDB{}, yp, api.SearchRequest{Location: "Boston"})
			var svcErr *Error
			require.ErrorAs(t, err, &svcErr)
			require.Equal(t, tc.wantStatus, svcErr.Status)
			require.Equal(t, tc.wantCode, svcErr.Code)

			// 失敗時留下可重現的紀錄：端點、參數與上游狀態碼。
			require.Len(t, logged, 1)
			require.Contains(t, logged[0], "businesses/search")
			require.Contains(t, logged[0], `location="Boston"`)
			require.Contains(t, logged[0], "status=500")
		})
	}
}
