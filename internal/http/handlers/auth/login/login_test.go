package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/product-catalog/internal/services/session"
)

type SessionServiceMock struct {
	mock.Mock
}

func (m *SessionServiceMock) Authenticate(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockToken      string
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantToken      string
		wantMessage    string
	}{
		{
			name:           "valid login",
			requestBody:    Request{Username: "jartsa", Password: "joo"},
			mockToken:      "issued-token",
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantToken:      "issued-token",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid request body",
		},
		{
			name:           "missing password",
			requestBody:    Request{Username: "jartsa"},
			wantStatusCode: http.StatusNotFound,
			wantMessage:    "invalid username or password",
		},
		{
			name:           "missing username",
			requestBody:    Request{Password: "joo"},
			wantStatusCode: http.StatusNotFound,
			wantMessage:    "invalid username or password",
		},
		{
			name:           "wrong credentials",
			requestBody:    Request{Username: "jartsa", Password: "nope"},
			mockErr:        session.ErrInvalidCredentials,
			mockCalled:     true,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid username or password",
		},
		{
			name:           "storage failure",
			requestBody:    Request{Username: "jartsa", Password: "joo"},
			mockErr:        errors.New("connection lost"),
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantMessage:    "something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(SessionServiceMock)
			handler := New(newNoopLogger(), svc, false)

			if tt.mockCalled {
				req := tt.requestBody.(Request)
				svc.On("Authenticate", mock.Anything, req.Username, req.Password).
					Return(tt.mockToken, tt.mockErr).Once()
			}

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				var err error
				bodyBytes, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

			if tt.wantToken != "" {
				assert.Equal(t, "ok", got["ret"])
				assert.Equal(t, tt.wantToken, got["token"])
			} else {
				assert.Equal(t, false, got["success"])
				assert.Equal(t, tt.wantMessage, got["message"])
			}
			svc.AssertExpectations(t)
		})
	}
}
