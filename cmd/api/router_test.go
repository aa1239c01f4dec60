package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecobytes/site-api/internal/catalog"
	"github.com/ecobytes/site-api/internal/handlers"
	"github.com/ecobytes/site-api/internal/logging"
	"github.com/ecobytes/site-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type noopQuotes struct{}

func (noopQuotes) Submit(ctx context.Context, req *models.QuoteRequest, clientIP string) (*models.Quote, error) {
	return &models.Quote{ID: "q"}, nil
}

type noopNewsletter struct{}

func (noopNewsletter) Subscribe(ctx context.Context, email, clientIP string) (*models.Subscriber, error) {
	return &models.Subscriber{ID: "s"}, nil
}

func (noopNewsletter) Count(ctx context.Context) (int64, error) { return 0, nil }

type noopLookup struct{}

func (noopLookup) Lookup(ctx context.Context, cep string) (*models.Address, error) {
	return &models.Address{CEP: cep}, nil
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logging.New(zap.NewNop())
	return newRouter(routes{
		health: handlers.NewHealthHandlers(map[string]handlers.HealthCheckFunc{
			"mongodb": func(context.Context) error { return nil },
		}),
		cep:        handlers.NewCEPHandlers(noopLookup{}, logger),
		catalog:    handlers.NewCatalogHandlers(catalog.Default()),
		quotes:     handlers.NewQuoteHandlers(noopQuotes{}, logger),
		newsletter: handlers.NewNewsletterHandlers(noopNewsletter{}, logger),
	}, []string{"*"})
}

func TestRouter_Routes(t *testing.T) {
	router := testRouter()

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/v1/health", "", http.StatusOK},
		{http.MethodPost, "/v1/validate/document", `{"document":"529.982.247-25"}`, http.StatusOK},
		{http.MethodPost, "/v1/validate/email", `{"email":"a@b.com"}`, http.StatusOK},
		{http.MethodPost, "/v1/validate/phone", `{"phone":"(21) 98765-4321"}`, http.StatusOK},
		{http.MethodPost, "/v1/format/document", `{"value":"529"}`, http.StatusOK},
		{http.MethodPost, "/v1/format/phone", `{"value":"21"}`, http.StatusOK},
		{http.MethodPost, "/v1/format/cep", `{"value":"01001"}`, http.StatusOK},
		{http.MethodGet, "/v1/cep/01001000", "", http.StatusOK},
		{http.MethodGet, "/v1/catalog/products", "", http.StatusOK},
		{http.MethodGet, "/v1/catalog/unit?produto=copos", "", http.StatusOK},
		{http.MethodPost, "/v1/quotes", `{"nome":"Maria"}`, http.StatusCreated},
		{http.MethodPost, "/v1/newsletter", `{"email":"a@b.com"}`, http.StatusCreated},
		{http.MethodGet, "/v1/newsletter/count", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/v1/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodOptions, "/v1/quotes", nil)
	req.Header.Set("Origin", "https://ecobytes.com.br")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
