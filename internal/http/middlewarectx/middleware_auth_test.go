package middlewarectx

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/product-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/product-catalog/internal/services/session"
)

type SessionServiceMock struct {
	mock.Mock
}

func (m *SessionServiceMock) ValidateToken(ctx context.Context, token string) (*jwt.Claims, error) {
	args := m.Called(ctx, token)
	claims, _ := args.Get(0).(*jwt.Claims)
	return claims, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestVerifyToken(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		mockClaims     *jwt.Claims
		mockErr        error
		wantStatusCode int
		wantMessage    string
		wantNextCalled bool
	}{
		{
			name:           "missing token",
			token:          "",
			wantStatusCode: http.StatusNotFound,
			wantMessage:    "a token is required for authentication",
			wantNextCalled: false,
		},
		{
			name:           "invalid token",
			token:          "bad-token",
			mockErr:        session.ErrInvalidToken,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid token",
			wantNextCalled: false,
		},
		{
			name:           "unclassified validation failure",
			token:          "some-token",
			mockErr:        errors.New("connection lost"),
			wantStatusCode: http.StatusNotFound,
			wantMessage:    "invalid token",
			wantNextCalled: false,
		},
		{
			name:           "valid token",
			token:          "good-token",
			mockClaims:     &jwt.Claims{Username: "jartsa"},
			wantStatusCode: http.StatusOK,
			wantNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(SessionServiceMock)
			if tt.token != "" {
				svc.On("ValidateToken", mock.Anything, tt.token).
					Return(tt.mockClaims, tt.mockErr).Once()
			}

			nextCalled := false
			var gotUsername string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUsername, _ = r.Context().Value(User).(string)
				w.WriteHeader(http.StatusOK)
			})

			handler := VerifyToken(svc, newNoopLogger(), false)(next)

			req := httptest.NewRequest(http.MethodGet, "/product-groups", nil)
			if tt.token != "" {
				req.Header.Set(TokenHeader, tt.token)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)

			if tt.wantNextCalled {
				assert.Equal(t, "jartsa", gotUsername)
			} else {
				var got map[string]any
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, false, got["success"])
				assert.Equal(t, tt.wantMessage, got["message"])
				assert.Equal(t, "", got["stack"])
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestVerifyToken_DevModeIncludesStack(t *testing.T) {
	svc := new(SessionServiceMock)
	svc.On("ValidateToken", mock.Anything, "bad-token").
		Return(nil, session.ErrInvalidToken).Once()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := VerifyToken(svc, newNoopLogger(), true)(next)

	req := httptest.NewRequest(http.MethodGet, "/product-groups", nil)
	req.Header.Set(TokenHeader, "bad-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.NotEmpty(t, got["stack"])
}
