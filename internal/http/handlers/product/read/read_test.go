package read

import (
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

func (m *CatalogServiceMock) GetProduct(ctx context.Context, groupID, productID int) (*models.Product, error) {
	args := m.Called(ctx, groupID, productID)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newRouter(handler *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/product/{groupId}/{productId}", handler.ServeHTTP)
	return r
}

func TestReadProductHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockProduct    *models.Product
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantMessage    string
	}{
		{
			name: "product found",
			url:  "/product/1/2",
			mockProduct: &models.Product{
				ID: 2, ProductGroupID: 1, Name: "cola",
				Price: 2.5, Stock: 10, GroupName: "drinks",
			},
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "product not found",
			url:            "/product/1/42",
			mockErr:        catalog.ErrNotFound,
			mockCalled:     true,
			wantStatusCode: http.StatusNotFound,
			wantMessage:    "product not found",
		},
		{
			name:           "group id is not a number",
			url:            "/product/abc/2",
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid group id",
		},
		{
			name:           "product id is not a number",
			url:            "/product/1/abc",
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid product id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(CatalogServiceMock)
			handler := New(newNoopLogger(), svc, false)

			if tt.mockCalled {
				svc.On("GetProduct", mock.Anything, mock.Anything, mock.Anything).
					Return(tt.mockProduct, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			newRouter(handler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

			if tt.mockProduct != nil {
				assert.Equal(t, "ok", got["ret"])
				product, ok := got["product"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "cola", product["name"])
				assert.Equal(t, "drinks", product["group_name"])
			} else {
				assert.Equal(t, false, got["success"])
				assert.Equal(t, tt.wantMessage, got["message"])
			}
			svc.AssertExpectations(t)
		})
	}
}
