package create

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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/product-catalog/internal/models"
)

type CatalogServiceMock struct {
	mock.Mock
}

func (m *CatalogServiceMock) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	args := m.Called(ctx, product)
	created, _ := args.Get(0).(*models.Product)
	return created, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestCreateProductHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockProduct    *models.Product
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantMessage    string
	}{
		{
			name:        "product created",
			requestBody: Request{ProductGroupID: 1, Name: "cola", Price: 2.5, Stock: 10},
			mockProduct: &models.Product{
				ID: 7, ProductGroupID: 1, Name: "cola", Price: 2.5, Stock: 10,
			},
			mockCalled:     true,
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "missing group id",
			requestBody:    Request{Name: "cola"},
			wantStatusCode: http.StatusNotFound,
			wantMessage:    "product group id and name are required",
		},
		{
			name:           "missing name",
			requestBody:    Request{ProductGroupID: 1},
			wantStatusCode: http.StatusNotFound,
			wantMessage:    "product group id and name are required",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid request body",
		},
		{
			name:           "storage failure",
			requestBody:    Request{ProductGroupID: 1, Name: "cola"},
			mockErr:        errors.New("connection lost"),
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantMessage:    "failed to create product",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(CatalogServiceMock)
			handler := New(newNoopLogger(), svc, false)

			if tt.mockCalled {
				svc.On("CreateProduct", mock.Anything, mock.Anything).
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

			req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(bodyBytes))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

			if tt.mockProduct != nil {
				assert.Equal(t, "ok", got["ret"])
				product, ok := got["product"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, float64(7), product["id"])
				assert.Equal(t, "cola", product["name"])
			} else {
				assert.Equal(t, false, got["success"])
				assert.Equal(t, tt.wantMessage, got["message"])
			}
			svc.AssertExpectations(t)
		})
	}
}
