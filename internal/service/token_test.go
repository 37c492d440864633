package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIdentityToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("round trip", func(t *testing.T) {
		token, err := IssueIdentityToken("auth0|abc", "a@b.c", "Alice", time.Minute)
		require.NoError(t, err)

		claims, err := VerifyIdentityToken(token)
		require.NoError(t, err)
		require.Equal(t, "auth0|abc", claims.Subject)
		require.Equal(t, "a@b.c", claims.Email)
		require.Equal(t, "Alice", claims.Name)
	})

	t.Run("expired", func(t *testing.T) {
		timeNow = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := IssueIdentityToken("auth0|abc", "a@b.c", "Alice", time.Minute)
		require.NoError(t, err)
		timeNow = time.Now

		_, err = VerifyIdentityToken(token)
		require.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "x"})
		signed, err := other.SignedString([]byte("different"))
		require.NoError(t, err)

		_, err = VerifyIdentityToken(signed)
		require.Error(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		token, err := IssueIdentityToken("", "a@b.c", "Alice", time.Minute)
		require.NoError(t, err)

		_, err = VerifyIdentityToken(token)
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := VerifyIdentityToken("not-a-token")
		require.Error(t, err)
	})

	t.Run("parse failure", func(t *testing.T) {
		parseWithClaims = func(_ string, _ jwt.Claims, _ jwt.Keyfunc, _ ...jwt.ParserOption) (*jwt.Token, error) {
			return nil, fmt.Errorf("parse boom")
		}
		t.Cleanup(restoreGlobals)
		_, err := VerifyIdentityToken("whatever")
		require.Error(t, err)
	})
}

func TestIdentityTokenMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := IssueIdentityToken("s", "e", "n", time.Minute)
	require.Error(t, err)
	_, err = VerifyIdentityToken("x")
	require.Error(t, err)
}
