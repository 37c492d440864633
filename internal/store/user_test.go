package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"dinewise/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestUserStore(t *testing.T) {
	now := time.Now().UTC()

	t.Run("UpsertUserBySubject ok", func(t *testing.T) {
		var gotArgs []any
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeRow{values: []any{1, "a@b.c", "Alice", "auth0|abc", now}}
			},
		}
		u, err := UpsertUserBySubject(context.Background(), p, "auth0|abc", "a@b.c", "Alice")
		require.NoError(t, err)
		require.Equal(t, 1, u.ID)
		require.Equal(t, "auth0|abc", u.AuthSubject)
		require.Equal(t, []any{"auth0|abc", "a@b.c", "Alice"}, gotArgs)
	})

	t.Run("UpsertUserBySubject err", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("boom")}
			},
		}
		_, err := UpsertUserBySubject(context.Background(), p, "s", "e", "n")
		require.Error(t, err)
	})

	t.Run("GetUserByID ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{values: []any{2, "b@b.c", "Bob", "auth0|bob", now}}
			},
		}
		u, err := GetUserByID(context.Background(), p, 2)
		require.NoError(t, err)
		require.Equal(t, "Bob", u.FullName)
	})

	t.Run("GetUserByID err", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetUserByID(context.Background(), p, 9)
		require.Error(t, err)
	})
}
