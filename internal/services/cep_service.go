package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ecobytes/site-api/internal/document"
	"github.com/ecobytes/site-api/internal/logging"
	"github.com/ecobytes/site-api/internal/models"
	"github.com/ecobytes/site-api/internal/observability"
	"github.com/ecobytes/site-api/internal/utils"
	"github.com/ecobytes/site-api/internal/utils/httpclient"
	"github.com/ecobytes/site-api/internal/validation"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// viaCEPResponse is the JSON body returned by ViaCEP. Unknown CEPs come back
// as {"erro": true}, and some deployments send "true" as a string.
type viaCEPResponse struct {
	CEP         string          `json:"cep"`
	Logradouro  string          `json:"logradouro"`
	Complemento string          `json:"complemento"`
	Bairro      string          `json:"bairro"`
	Localidade  string          `json:"localidade"`
	UF          string          `json:"uf"`
	IBGE        string          `json:"ibge"`
	DDD         string          `json:"ddd"`
	Erro        json.RawMessage `json:"erro"`
}

func (r *viaCEPResponse) notFound() bool {
	v := strings.Trim(string(r.Erro), `" `)
	return v == "true"
}

// CEPService resolves postal codes through ViaCEP with a Redis cache in front.
type CEPService struct {
	baseURL string
	pool    *httpclient.HTTPClientPool
	limiter *rate.Limiter
	cache   Cache
	ttl     time.Duration
	logger  *logging.SafeLogger
}

// NewCEPService creates a CEP lookup client. cache may be nil.
func NewCEPService(baseURL string, pool *httpclient.HTTPClientPool, limiter *rate.Limiter, cache Cache, ttl time.Duration, logger *logging.SafeLogger) *CEPService {
	return &CEPService{
		baseURL: strings.TrimRight(baseURL, "/"),
		pool:    pool,
		limiter: limiter,
		cache:   cache,
		ttl:     ttl,
		logger:  logger,
	}
}

func cepCacheKey(digits string) string {
	return "cep:" + digits
}

// Lookup returns the address of cep. Formatting characters are ignored.
func (s *CEPService) Lookup(ctx context.Context, cep string) (*models.Address, error) {
	if !validation.ValidateCEP(cep) {
		observability.CEPLookups.WithLabelValues("invalid").Inc()
		return nil, models.ErrInvalidCEP
	}
	digits := document.Digits(cep)

	if addr := s.fromCache(ctx, digits); addr != nil {
		observability.CEPLookups.WithLabelValues("cache_hit").Inc()
		return addr, nil
	}

	addr, err := s.fetch(ctx, digits)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrCEPNotFound):
			observability.CEPLookups.WithLabelValues("not_found").Inc()
		case errors.Is(err, models.ErrInvalidCEP):
			observability.CEPLookups.WithLabelValues("invalid").Inc()
		default:
			observability.CEPLookups.WithLabelValues("error").Inc()
		}
		return nil, err
	}
	observability.CEPLookups.WithLabelValues("found").Inc()

	s.toCache(ctx, digits, addr)
	return addr, nil
}

func (s *CEPService) fromCache(ctx context.Context, digits string) *models.Address {
	if s.cache == nil {
		return nil
	}
	key := cepCacheKey(digits)
	ctx, span := utils.TraceCacheGet(ctx, key)
	defer span.End()

	cached, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		observability.CacheMisses.WithLabelValues("get_cep").Inc()
		s.logger.Debug("cep cache miss", zap.String("cep", digits))
		return nil
	}

	var addr models.Address
	if err := json.Unmarshal([]byte(cached), &addr); err != nil {
		s.logger.Warn("discarding corrupt cep cache entry", zap.String("cep", digits), zap.Error(err))
		return nil
	}
	observability.CacheHits.WithLabelValues("get_cep").Inc()
	s.logger.Debug("cep cache hit", zap.String("cep", digits))
	return &addr
}

func (s *CEPService) toCache(ctx context.Context, digits string, addr *models.Address) {
	if s.cache == nil {
		return
	}
	key := cepCacheKey(digits)
	ctx, span := utils.TraceCacheSet(ctx, key, s.ttl)
	defer span.End()

	data, err := json.Marshal(addr)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.logger.Warn("failed to cache cep", zap.String("cep", digits), zap.Error(err))
	}
}

func (s *CEPService) fetch(ctx context.Context, digits string) (*models.Address, error) {
	ctx, span := utils.TraceExternalService(ctx, "viacep", "lookup")
	defer span.End()
	start := time.Now()
	defer utils.AddTimingToSpan(span, start)

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("cep lookup throttled: %w", err)
		}
	}

	url := fmt.Sprintf("%s/%s/json/", s.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build cep request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.pool.Do(req)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"cep": digits})
		s.logger.Error("cep lookup failed", zap.String("cep", digits), zap.Error(err))
		return nil, fmt.Errorf("cep lookup failed: %w", err)
	}
	defer resp.Body.Close()

	utils.AddSpanAttribute(span, "http.status_code", resp.StatusCode)
	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return nil, models.ErrInvalidCEP
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		s.logger.Error("unexpected cep lookup status",
			zap.String("cep", digits),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("cep lookup returned status %d", resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode cep response: %w", err)
	}
	if body.notFound() {
		return nil, models.ErrCEPNotFound
	}

	return &models.Address{
		CEP:         document.CEPMask.Apply(digits),
		Logradouro:  body.Logradouro,
		Complemento: body.Complemento,
		Bairro:      body.Bairro,
		Localidade:  body.Localidade,
		UF:          body.UF,
		IBGE:        body.IBGE,
		DDD:         body.DDD,
	}, nil
}
