package session_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pot-portal/core/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, subject string, exp time.Time) string {
	t.Helper()
	claims := session.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Email: "player@example.com",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func newStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(session.Config{Path: filepath.Join(t.TempDir(), "nested", "jwt_token")})
}

func TestStore_SetGetClear(t *testing.T) {
	s := newStore(t)
	assert.Equal(t, "", s.Token())

	require.NoError(t, s.SetToken("abc"))
	assert.Equal(t, "abc", s.Token())

	// A fresh store reads what was persisted.
	reopened := session.NewStore(session.Config{Path: s.Path()})
	assert.Equal(t, "abc", reopened.Token())

	require.NoError(t, s.Clear())
	assert.Equal(t, "", s.Token())
	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))

	// Clearing twice is fine.
	assert.NoError(t, s.Clear())
}

func TestStore_EmptyTokenClears(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.SetToken("abc"))
	require.NoError(t, s.SetToken(""))

	assert.Equal(t, "", session.NewStore(session.Config{Path: s.Path()}).Token())
}

func TestStore_FilePermissions(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.SetToken("abc"))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_Claims(t *testing.T) {
	s := newStore(t)

	_, err := s.Claims()
	assert.ErrorIs(t, err, session.ErrNoToken)

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	require.NoError(t, s.SetToken(signedToken(t, "42", exp)))

	claims, err := s.Claims()
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "player@example.com", claims.Email)
	assert.True(t, exp.Equal(claims.ExpiresAt.Time))
}

func TestStore_Expired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"Valid", signedToken(t, "1", now.Add(time.Hour)), false},
		{"Expired", signedToken(t, "1", now.Add(-time.Hour)), true},
		{"Garbage", "not-a-jwt", true},
		{"No token", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			require.NoError(t, s.SetToken(tt.token))
			assert.Equal(t, tt.want, s.Expired(now))
		})
	}
}

func TestParseClaims_NoExpiry(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "7"}).SignedString([]byte("k"))
	require.NoError(t, err)

	claims, err := session.ParseClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.False(t, claims.ExpiredAt(time.Now()))
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "jwt_token", filepath.Base(session.DefaultPath()))
}
