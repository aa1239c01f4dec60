package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/ecobytes/site-api/internal/logging"
	"github.com/ecobytes/site-api/internal/models"
	"github.com/ecobytes/site-api/internal/services"
	"github.com/ecobytes/site-api/internal/utils"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// QuoteSubmitter validates and stores quote requests.
type QuoteSubmitter interface {
	Submit(ctx context.Context, req *models.QuoteRequest, clientIP string) (*models.Quote, error)
}

// QuoteResponse is returned when a quote is stored.
type QuoteResponse struct {
	Message string        `json:"message"`
	Quote   *models.Quote `json:"orcamento"`
}

// QuoteHandlers serves the quote form.
type QuoteHandlers struct {
	service QuoteSubmitter
	logger  *logging.SafeLogger
}

func NewQuoteHandlers(service QuoteSubmitter, logger *logging.SafeLogger) *QuoteHandlers {
	return &QuoteHandlers{service: service, logger: logger}
}

// CreateQuote godoc
// @Summary Solicita orçamento
// @Description Valida o formulário de orçamento, registra a solicitação e notifica a equipe comercial.
// @Tags quotes
// @Accept json
// @Produce json
// @Param data body models.QuoteRequest true "Formulário de orçamento"
// @Success 201 {object} QuoteResponse
// @Failure 400 {object} validation.ValidationResult "Campos inválidos"
// @Failure 429 {object} ErrorResponse "Limite de envios atingido"
// @Failure 500 {object} ErrorResponse
// @Router /quotes [post]
func (h *QuoteHandlers) CreateQuote(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CreateQuote")
	defer span.End()

	ctx, parseSpan := utils.TraceInputParsing(ctx, "quote_request")
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RecordErrorInSpan(parseSpan, err, nil)
		parseSpan.End()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "corpo da requisição inválido"})
		return
	}
	parseSpan.End()

	quote, err := h.service.Submit(ctx, &req, c.ClientIP())
	var vErr *services.ValidationFailedError
	switch {
	case err == nil:
		span.SetAttributes(attribute.String("quote.id", quote.ID))
		c.JSON(http.StatusCreated, QuoteResponse{Message: services.MsgOrcamentoSolicitado, Quote: quote})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, vErr.Result)
	case errors.Is(err, models.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: services.MsgMuitasSolicitacoes})
	default:
		h.logger.Error("quote submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: services.MsgErroEnvioOrcamento})
	}
}
