package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestJWT_GetUserID(t *testing.T) {
	ctx := context.Background()
	j := New(testSecret)
	userID := uuid.New()

	token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	got, err := j.GetUserID(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWT_GetUserID_Invalid(t *testing.T) {
	ctx := context.Background()
	j := New(testSecret)

	tests := []struct {
		name  string
		token string
	}{
		{
			name: "expired",
			token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), Claims{
				UserID:           uuid.NewString(),
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
			}),
		},
		{
			name:  "wrong secret",
			token: sign(t, jwt.SigningMethodHS256, []byte("other"), Claims{UserID: uuid.NewString()}),
		},
		{
			name:  "wrong algorithm",
			token: sign(t, jwt.SigningMethodHS512, []byte(testSecret), Claims{UserID: uuid.NewString()}),
		},
		{
			name:  "missing user id",
			token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), Claims{}),
		},
		{
			name:  "malformed user id",
			token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), Claims{UserID: "42"}),
		},
		{
			name:  "garbage",
			token: "not-a-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := j.GetUserID(ctx, tt.token)
			assert.Error(t, err)
			assert.Equal(t, uuid.Nil, got)
		})
	}
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	ctx := context.Background()
	j := New(testSecret)

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "missing", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "no token", header: "Bearer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			got, err := j.GetTokenFromRequest(ctx, req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
