package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"dinewise/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestReviewStore(t *testing.T) {
	now := time.Now().UTC()

	t.Run("Create ok", func(t *testing.T) {
		var gotArgs []any
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeRow{values: []any{1, 7, "abc", 5, "great", now, now}}
			},
		}
		r, err := CreateReview(context.Background(), p, 7, "abc", 5, "great")
		require.NoError(t, err)
		require.Equal(t, 5, r.Rating)
		require.Equal(t, "great", r.Text)
		require.Equal(t, []any{7, "abc", 5, "great"}, gotArgs)
	})

	t.Run("Create err", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("boom")}
			},
		}
		_, err := CreateReview(context.Background(), p, 7, "abc", 5, "great")
		require.Error(t, err)
	})

	t.Run("ListByRestaurant joins author", func(t *testing.T) {
		var gotSQL string
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
				gotSQL = sql
				return &fakeRows{data: [][]any{
					{2, 8, "abc", 4, "good", now, now, "Bob"},
					{1, 7, "abc", 5, "great", now, now, "Alice"},
				}}, nil
			},
		}
		reviews, err := ListReviewsByRestaurant(context.Background(), p, "abc")
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		require.Equal(t, "Bob", reviews[0].AuthorName)
		require.Contains(t, gotSQL, "JOIN users")
		require.Contains(t, gotSQL, "ORDER BY r.created_at DESC")
	})

	t.Run("ListByUser ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeRows{data: [][]any{{1, 7, "abc", 5, "great", now, now}}}, nil
			},
		}
		reviews, err := ListReviewsByUser(context.Background(), p, 7)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
	})

	t.Run("Update ok", func(t *testing.T) {
		var gotArgs []any
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				gotArgs = args
				require.Contains(t, sql, "WHERE id = $1 AND user_id = $2")
				require.Contains(t, sql, "COALESCE($3, rating)")
				return &fakeRows{data: [][]any{{1, 7, "abc", 3, "ok", now, now}}}, nil
			},
		}
		rating := 3
		r, err := UpdateReview(context.Background(), p, 1, 7, &rating, nil)
		require.NoError(t, err)
		require.Equal(t, 3, r.Rating)
		require.Equal(t, 1, gotArgs[0])
		require.Equal(t, 7, gotArgs[1])
		require.Equal(t, &rating, gotArgs[2])
		require.Nil(t, gotArgs[3])
	})

	t.Run("Update not owner", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeRows{}, nil
			},
		}
		r, err := UpdateReview(context.Background(), p, 1, 99, nil, nil)
		require.NoError(t, err)
		require.Nil(t, r)
	})

	t.Run("Delete ok", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
				require.Contains(t, sql, "id = $1 AND user_id = $2")
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		deleted, err := DeleteReview(context.Background(), p, 1, 7)
		require.NoError(t, err)
		require.True(t, deleted)
	})

	t.Run("Delete not owner", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		deleted, err := DeleteReview(context.Background(), p, 1, 99)
		require.NoError(t, err)
		require.False(t, deleted)
	})
}
