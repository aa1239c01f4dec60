package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/ecobytes/site-api/internal/logging"
	"github.com/ecobytes/site-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logging.SafeLogger {
	return logging.New(zap.NewNop())
}

// doJSON sends body as JSON to router and returns the recorder.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type stubLookup struct {
	addr *models.Address
	err  error
	got  string
}

func (s *stubLookup) Lookup(ctx context.Context, cep string) (*models.Address, error) {
	s.got = cep
	return s.addr, s.err
}

type stubQuotes struct {
	quote *models.Quote
	err   error
	req   *models.QuoteRequest
	ip    string
}

func (s *stubQuotes) Submit(ctx context.Context, req *models.QuoteRequest, clientIP string) (*models.Quote, error) {
	s.req = req
	s.ip = clientIP
	return s.quote, s.err
}

type stubNewsletter struct {
	err   error
	count int64
	email string
}

func (s *stubNewsletter) Subscribe(ctx context.Context, email, clientIP string) (*models.Subscriber, error) {
	s.email = email
	if s.err != nil {
		return nil, s.err
	}
	return &models.Subscriber{ID: "sub-1", Email: email}, nil
}

func (s *stubNewsletter) Count(ctx context.Context) (int64, error) {
	return s.count, s.err
}
