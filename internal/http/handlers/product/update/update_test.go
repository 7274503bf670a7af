package update

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/services/catalog"
)

type CatalogServiceMock struct {
	mock.Mock
}

func (m *CatalogServiceMock) UpdateProduct(ctx context.Context, productID int, product models.Product) (*models.Product, error) {
	args := m.Called(ctx, productID, product)
	updated, _ := args.Get(0).(*models.Product)
	return updated, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestUpdateProductHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		requestBody    any
		mockProduct    *models.Product
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantMessage    string
	}{
		{
			name:           "product updated",
			url:            "/products/5",
			requestBody:    Request{Name: "cola zero", Price: 2.0, Stock: 4},
			mockProduct:    &models.Product{ID: 5, Name: "cola zero", Price: 2.0, Stock: 4},
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "product not found leaves table unchanged",
			url:            "/products/42",
			requestBody:    Request{Name: "ghost"},
			mockErr:        catalog.ErrNotFound,
			mockCalled:     true,
			wantStatusCode: http.StatusNotFound,
			wantMessage:    "product not found",
		},
		{
			name:           "missing name",
			url:            "/products/5",
			requestBody:    Request{Price: 1.0},
			wantStatusCode: http.StatusNotFound,
			wantMessage:    "product name is required",
		},
		{
			name:           "invalid json body",
			url:            "/products/5",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(CatalogServiceMock)
			handler := New(newNoopLogger(), svc, false)

			if tt.mockCalled {
				svc.On("UpdateProduct", mock.Anything, mock.Anything, mock.Anything).
					Return(tt.mockProduct, tt.mockErr).Once()
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

			r := chi.NewRouter()
			r.Put("/products/{productId}", handler.ServeHTTP)

			req := httptest.NewRequest(http.MethodPut, tt.url, bytes.NewReader(bodyBytes))
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

			if tt.mockProduct != nil {
				assert.Equal(t, "ok", got["ret"])
				product, ok := got["product"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "cola zero", product["name"])
			} else {
				assert.Equal(t, false, got["success"])
				assert.Equal(t, tt.wantMessage, got["message"])
			}
			svc.AssertExpectations(t)
		})
	}
}
