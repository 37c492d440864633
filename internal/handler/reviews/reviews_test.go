package reviews

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
	createReview = store.CreateReview
	listByRestaurant = store.ListReviewsByRestaurant
	listByUser = store.ListReviewsByUser
	updateReview = store.UpdateReview
	deleteReview = store.DeleteReview
	getCachedDetail = store.GetRestaurantByYelpID
}

type testValidator struct{ v *validator.Validate }

func (t *testValidator) Validate(i any) error { return t.v.Struct(i) }

func newCtx(t *testing.T, method, target, body string, user *model.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(middleware.ContextUserKey, user)
	}
	return c, rec
}

func TestCreateHandler(t *testing.T) {
	user := &model.User{ID: 7, FullName: "Alice"}

	t.Run("created", func(t *testing.T) {
		t.Cleanup(restore)
		createReview = func(_ context.Context, _ database.DB, userID int, yelpID string, rating int, text string) (*model.Review, error) {
			require.Equal(t, 7, userID)
			require.Equal(t, 5, rating)
			return &model.Review{ID: 1, UserID: userID, YelpID: yelpID, Rating: rating, Text: text, CreatedAt: time.Now()}, nil
		}
		c, rec := newCtx(t, http.MethodPost, "/", `{"yelp_id":"abc","rating":5,"text":"great"}`, user)
		require.NoError(t, CreateHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), "Alice")
	})

	t.Run("rating out of range", func(t *testing.T) {
		t.Cleanup(restore)
		c, rec := newCtx(t, http.MethodPost, "/", `{"yelp_id":"abc","rating":6,"text":"great"}`, user)
		require.NoError(t, CreateHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("text too long", func(t *testing.T) {
		t.Cleanup(restore)
		long := strings.Repeat("x", 1001)
		c, rec := newCtx(t, http.MethodPost, "/", `{"yelp_id":"abc","rating":5,"text":"`+long+`"}`, user)
		require.NoError(t, CreateHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		t.Cleanup(restore)
		c, rec := newCtx(t, http.MethodPost, "/", `{"yelp_id":"abc","rating":5,"text":"great"}`, nil)
		require.NoError(t, CreateHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListByRestaurantHandler(t *testing.T) {
	t.Run("ok with authors", func(t *testing.T) {
		t.Cleanup(restore)
		listByRestaurant = func(_ context.Context, _ database.DB, yelpID string) ([]store.ReviewWithAuthor, error) {
			require.Equal(t, "abc", yelpID)
			return []store.ReviewWithAuthor{
				{Review: model.Review{ID: 1, UserID: 7, YelpID: yelpID, Rating: 5, Text: "great"}, AuthorName: "Alice"},
			}, nil
		}
		c, rec := newCtx(t, http.MethodGet, "/?yelp_id=abc", "", nil)
		require.NoError(t, ListByRestaurantHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Alice")
	})

	t.Run("missing yelp_id", func(t *testing.T) {
		t.Cleanup(restore)
		c, rec := newCtx(t, http.MethodGet, "/", "", nil)
		require.NoError(t, ListByRestaurantHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMyReviewsHandler(t *testing.T) {
	t.Cleanup(restore)
	listByUser = func(_ context.Context, _ database.DB, userID int) ([]model.Review, error) {
		return []model.Review{{ID: 1, UserID: userID, YelpID: "abc", Rating: 4}}, nil
	}
	getCachedDetail = func(_ context.Context, _ database.DB, _ string) (*model.CachedRestaurant, error) {
		return &model.CachedRestaurant{YelpID: "abc", Name: "Luigi"}, nil
	}
	c, rec := newCtx(t, http.MethodGet, "/", "", &model.User{ID: 7})
	require.NoError(t, MyReviewsHandler(&database.FakeDB{})(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Luigi")
}

func TestUpdateHandler(t *testing.T) {
	user := &model.User{ID: 7}

	setParam := func(c echo.Context, id string) {
		c.SetParamNames("review_id")
		c.SetParamValues(id)
	}

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		updateReview = func(_ context.Context, _ database.DB, reviewID, userID int, rating *int, text *string) (*model.Review, error) {
			require.Equal(t, 1, reviewID)
			require.Equal(t, 7, userID)
			require.NotNil(t, rating)
			require.Nil(t, text)
			return &model.Review{ID: reviewID, UserID: userID, Rating: *rating}, nil
		}
		c, rec := newCtx(t, http.MethodPatch, "/", `{"rating":3}`, user)
		setParam(c, "1")
		require.NoError(t, UpdateHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not owner yields 404", func(t *testing.T) {
		t.Cleanup(restore)
		updateReview = func(_ context.Context, _ database.DB, _, _ int, _ *int, _ *string) (*model.Review, error) {
			return nil, nil
		}
		c, rec := newCtx(t, http.MethodPatch, "/", `{"rating":3}`, user)
		setParam(c, "1")
		require.NoError(t, UpdateHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.NotContains(t, rec.Body.String(), "forbidden")
	})

	t.Run("empty patch rejected", func(t *testing.T) {
		t.Cleanup(restore)
		c, rec := newCtx(t, http.MethodPatch, "/", `{}`, user)
		setParam(c, "1")
		require.NoError(t, UpdateHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		t.Cleanup(restore)
		c, rec := newCtx(t, http.MethodPatch, "/", `{"rating":3}`, user)
		setParam(c, "abc")
		require.NoError(t, UpdateHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteHandler(t *testing.T) {
	user := &model.User{ID: 7}

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		deleteReview = func(_ context.Context, _ database.DB, reviewID, userID int) (bool, error) {
			require.Equal(t, 2, reviewID)
			return true, nil
		}
		c, rec := newCtx(t, http.MethodDelete, "/", "", user)
		c.SetParamNames("review_id")
		c.SetParamValues("2")
		require.NoError(t, DeleteHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not owner yields 404", func(t *testing.T) {
		t.Cleanup(restore)
		deleteReview = func(_ context.Context, _ database.DB, _, _ int) (bool, error) {
			return false, nil
		}
		c, rec := newCtx(t, http.MethodDelete, "/", "", user)
		c.SetParamNames("review_id")
		c.SetParamValues("2")
		require.NoError(t, DeleteHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Cleanup(restore)
		deleteReview = func(_ context.Context, _ database.DB, _, _ int) (bool, error) {
			return false, errors.New("boom")
		}
		c, rec := newCtx(t, http.MethodDelete, "/", "", user)
		c.SetParamNames("review_id")
		c.SetParamValues("2")
		require.NoError(t, DeleteHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
