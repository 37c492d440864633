package wishlist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dinewise/internal/database"
	"dinewise/internal/middleware"
	"dinewise/internal/model"
	"dinewise/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restore() {
	addEntry = store.AddWishlistEntry
	listEntries = store.ListWishlist
	removeEntry = store.RemoveWishlistEntry
	containsEntry = store.WishlistContains
	getCachedDetail = store.GetRestaurantByYelpID
}

type testValidator struct{ v *validator.Validate }

func (t *testValidator) Validate(i any) error { return t.v.Struct(i) }

func newCtx(t *testing.T, method, body, yelpID string, user *model.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if yelpID != "" {
		c.SetParamNames("yelp_id")
		c.SetParamValues(yelpID)
	}
	if user != nil {
		c.Set(middleware.ContextUserKey, user)
	}
	return c, rec
}

func noCache() {
	getCachedDetail = func(_ context.Context, _ database.DB, _ string) (*model.CachedRestaurant, error) {
		return nil, nil
	}
}

func TestAddHandler(t *testing.T) {
	user := &model.User{ID: 7}

	t.Run("created, idempotent semantics", func(t *testing.T) {
		t.Cleanup(restore)
		noCache()
		addEntry = func(_ context.Context, _ database.DB, userID int, yelpID string) (*model.WishlistEntry, error) {
			require.Equal(t, 7, userID)
			return &model.WishlistEntry{ID: 1, UserID: userID, YelpID: yelpID, CreatedAt: time.Now()}, nil
		}
		c, rec := newCtx(t, http.MethodPost, `{"yelp_id":"abc"}`, "", user)
		require.NoError(t, AddHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), "abc")
	})

	t.Run("enriched from cache", func(t *testing.T) {
		t.Cleanup(restore)
		addEntry = func(_ context.Context, _ database.DB, userID int, yelpID string) (*model.WishlistEntry, error) {
			return &model.WishlistEntry{ID: 1, UserID: userID, YelpID: yelpID}, nil
		}
		getCachedDetail = func(_ context.Context, _ database.DB, _ string) (*model.CachedRestaurant, error) {
			return &model.CachedRestaurant{YelpID: "abc", Name: "Luigi"}, nil
		}
		c, rec := newCtx(t, http.MethodPost, `{"yelp_id":"abc"}`, "", user)
		require.NoError(t, AddHandler(&database.FakeDB{})(c))
		require.Contains(t, rec.Body.String(), "Luigi")
	})

	t.Run("missing yelp_id", func(t *testing.T) {
		t.Cleanup(restore)
		c, rec := newCtx(t, http.MethodPost, `{}`, "", user)
		require.NoError(t, AddHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		t.Cleanup(restore)
		c, rec := newCtx(t, http.MethodPost, `{"yelp_id":"abc"}`, "", nil)
		require.NoError(t, AddHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListHandler(t *testing.T) {
	user := &model.User{ID: 7}

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		noCache()
		listEntries = func(_ context.Context, _ database.DB, userID int) ([]model.WishlistEntry, error) {
			return []model.WishlistEntry{{ID: 1, UserID: userID, YelpID: "abc"}}, nil
		}
		c, rec := newCtx(t, http.MethodGet, "", "", user)
		require.NoError(t, ListHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"total":1`)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Cleanup(restore)
		listEntries = func(_ context.Context, _ database.DB, _ int) ([]model.WishlistEntry, error) {
			return nil, errors.New("boom")
		}
		c, rec := newCtx(t, http.MethodGet, "", "", user)
		require.NoError(t, ListHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestCheckHandler(t *testing.T) {
	t.Cleanup(restore)
	containsEntry = func(_ context.Context, _ database.DB, _ int, yelpID string) (bool, error) {
		return yelpID == "abc", nil
	}
	c, rec := newCtx(t, http.MethodGet, "", "abc", &model.User{ID: 7})
	require.NoError(t, CheckHandler(&database.FakeDB{})(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"in_wishlist":true`)
}

func TestRemoveHandler(t *testing.T) {
	user := &model.User{ID: 7}

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		removeEntry = func(_ context.Context, _ database.DB, userID int, yelpID string) (bool, error) {
			require.Equal(t, 7, userID)
			return true, nil
		}
		c, rec := newCtx(t, http.MethodDelete, "", "abc", user)
		require.NoError(t, RemoveHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not owned looks like missing", func(t *testing.T) {
		t.Cleanup(restore)
		removeEntry = func(_ context.Context, _ database.DB, _ int, _ string) (bool, error) {
			return false, nil
		}
		c, rec := newCtx(t, http.MethodDelete, "", "abc", user)
		require.NoError(t, RemoveHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "not_found")
	})
}
