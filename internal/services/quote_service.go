package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ecobytes/site-api/internal/broker"
	"github.com/ecobytes/site-api/internal/catalog"
	"github.com/ecobytes/site-api/internal/document"
	"github.com/ecobytes/site-api/internal/logging"
	"github.com/ecobytes/site-api/internal/models"
	"github.com/ecobytes/site-api/internal/observability"
	"github.com/ecobytes/site-api/internal/utils"
	"github.com/ecobytes/site-api/internal/validation"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuoteRequestedEvent is the event name published for every stored quote.
const QuoteRequestedEvent = "quote.requested"

const quoteForm = "quote"

// Quote form messages, shown to the visitor as-is.
const (
	MsgNomeObrigatorio     = "Nome é obrigatório"
	MsgEmailInvalido       = "E-mail inválido"
	MsgTelefoneInvalido    = "Telefone inválido"
	MsgDocumentoInvalido   = "CPF ou CNPJ inválido"
	MsgProdutoInvalido     = "Produto inválido"
	MsgUnidadeInvalida     = "Unidade inválida"
	MsgQuantidadeInvalida  = "Quantidade deve ser maior que zero"
	MsgPoliticaNaoAceita   = `Selecione "Aceito" na política de privacidade para enviar`
	MsgOrcamentoSolicitado = "Orçamento solicitado com sucesso! Entraremos em contato em breve."
	MsgErroEnvioOrcamento  = "Erro ao enviar orçamento. Tente novamente."
	MsgMuitasSolicitacoes  = "Muitas solicitações. Tente novamente mais tarde."
)

// ValidationFailedError carries the field errors of a rejected form.
type ValidationFailedError struct {
	Result *validation.ValidationResult
}

func (e *ValidationFailedError) Error() string {
	return "validation failed: " + strings.Join(e.Result.Messages(), "; ")
}

// fieldErrors maps form fields to the sentinel reported through Unwrap.
var fieldErrors = map[string]error{
	"produto":         models.ErrUnknownProduct,
	"politica_aceita": models.ErrPolicyNotAccepted,
}

// Unwrap exposes sentinel errors for the failed fields that have one, so
// callers can test for them with errors.Is.
func (e *ValidationFailedError) Unwrap() []error {
	var errs []error
	for _, fe := range e.Result.Errors {
		if err, ok := fieldErrors[fe.Field]; ok {
			errs = append(errs, err)
		}
	}
	return errs
}

// QuoteService validates, stores and announces quote requests.
type QuoteService struct {
	store     QuoteStore
	catalog   *catalog.Catalog
	limiter   *SubmissionLimiter
	publisher broker.Publisher
	logger    *logging.SafeLogger
	now       func() time.Time
}

// NewQuoteService creates a QuoteService. limiter and publisher may be nil.
func NewQuoteService(store QuoteStore, cat *catalog.Catalog, limiter *SubmissionLimiter, publisher broker.Publisher, logger *logging.SafeLogger) *QuoteService {
	return &QuoteService{
		store:     store,
		catalog:   cat,
		limiter:   limiter,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Validate checks every field of req and collects all failures.
func (s *QuoteService) Validate(req *models.QuoteRequest) *validation.ValidationResult {
	result := validation.NewValidationResult()

	if validation.SanitizeString(req.Nome) == "" {
		result.AddError("nome", MsgNomeObrigatorio)
	}
	if !validation.ValidateEmail(strings.TrimSpace(req.Email)) {
		result.AddError("email", MsgEmailInvalido)
	}
	if !validation.ValidatePhone(req.Telefone) {
		result.AddError("telefone", MsgTelefoneInvalido)
	}

	doc := document.Validate(req.Documento)
	observability.RecordDocumentValidation(doc.Kind.String(), doc.Valid)
	if !doc.Valid {
		result.AddError("documento", MsgDocumentoInvalido)
	}

	product, ok := s.catalog.Product(req.Produto)
	switch {
	case !ok:
		result.AddError("produto", MsgProdutoInvalido)
	case product.Variable() && !s.catalog.HasUnit(req.Unidade):
		result.AddError("unidade", MsgUnidadeInvalida)
	}

	if req.Quantidade < 1 {
		result.AddError("quantidade", MsgQuantidadeInvalida)
	}
	if !req.PoliticaAceita {
		result.AddError("politica_aceita", MsgPoliticaNaoAceita)
	}
	return result
}

// Submit validates req, applies the per-client submission limit, stores the
// normalized quote and publishes QuoteRequestedEvent. Validation failures
// return *ValidationFailedError; an exhausted limit returns
// models.ErrRateLimited.
func (s *QuoteService) Submit(ctx context.Context, req *models.QuoteRequest, clientIP string) (*models.Quote, error) {
	ctx, span, cleanup := utils.TraceOperation(ctx, "quote.submit", map[string]interface{}{
		"quote.produto": req.Produto,
	})
	defer cleanup()

	_, vspan := utils.TraceInputValidation(ctx, "quote", "all")
	result := s.Validate(req)
	vspan.End()
	if !result.IsValid {
		observability.FormSubmissions.WithLabelValues(quoteForm, "invalid").Inc()
		s.logger.Debug("quote rejected",
			zap.Strings("errors", result.Messages()),
			zap.String("client_ip", clientIP))
		return nil, &ValidationFailedError{Result: result}
	}

	if s.limiter != nil && !s.limiter.Allow(ctx, quoteForm, clientIP) {
		observability.FormSubmissions.WithLabelValues(quoteForm, "rate_limited").Inc()
		return nil, models.ErrRateLimited
	}

	quote := s.normalize(ctx, req)
	quote.ClientIP = clientIP
	utils.AddSpanAttribute(span, "quote.id", quote.ID)

	if err := s.store.InsertQuote(ctx, quote); err != nil {
		observability.FormSubmissions.WithLabelValues(quoteForm, "error").Inc()
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"quote.id": quote.ID})
		s.logger.Error("failed to store quote", zap.String("quote_id", quote.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to store quote: %w", err)
	}

	s.publish(ctx, quote)

	observability.FormSubmissions.WithLabelValues(quoteForm, "success").Inc()
	s.logger.Info("quote stored",
		zap.String("quote_id", quote.ID),
		zap.String("produto", quote.Produto),
		zap.Float64("quantidade", quote.Quantidade),
		zap.String("unidade", quote.Unidade),
		zap.String("documento", observability.MaskDocument(quote.Documento.Numero)),
		zap.String("email", observability.MaskEmail(quote.Email)))
	return quote, nil
}

// normalize turns a validated request into the stored representation.
func (s *QuoteService) normalize(ctx context.Context, req *models.QuoteRequest) *models.Quote {
	_, span := utils.TraceBusinessLogic(ctx, "quote_normalize")
	defer span.End()

	doc := document.Validate(req.Documento)
	unit := s.catalog.Resolve(req.Produto, req.Unidade)

	return &models.Quote{
		ID:       uuid.NewString(),
		Nome:     validation.SanitizeString(req.Nome),
		Email:    strings.TrimSpace(req.Email),
		Telefone: normalizePhone(req.Telefone),
		Documento: models.QuoteDocument{
			Tipo:      doc.Kind.String(),
			Numero:    doc.Digits,
			Formatado: doc.Formatted,
		},
		Empresa:    validation.SanitizeString(req.Empresa),
		Produto:    req.Produto,
		Quantidade: req.Quantidade,
		Unidade:    unit.Unit,
		Mensagem:   validation.SanitizeString(req.Mensagem),
		CreatedAt:  s.now().UTC(),
	}
}

// normalizePhone parses raw with the numbering plan. Numbers that pass the
// digit count check but not the plan are split by position.
func normalizePhone(raw string) models.QuotePhone {
	if pc, err := validation.ParsePhone(raw); err == nil {
		return models.QuotePhone{DDI: pc.DDI, DDD: pc.DDD, Valor: pc.Valor, E164: pc.Full}
	}
	digits := document.Digits(raw)
	return models.QuotePhone{
		DDI:   "55",
		DDD:   digits[:2],
		Valor: digits[2:],
		E164:  "+55" + digits,
	}
}

// publish announces quote. Broker failures are logged, the quote is already
// stored.
func (s *QuoteService) publish(ctx context.Context, quote *models.Quote) {
	if s.publisher == nil {
		return
	}

	event := models.QuoteRequestedEvent{
		QuoteID:    quote.ID,
		Nome:       quote.Nome,
		Email:      quote.Email,
		Produto:    quote.Produto,
		Quantidade: quote.Quantidade,
		Unidade:    quote.Unidade,
		CreatedAt:  quote.CreatedAt,
	}
	headers := map[string]any{
		"quote_id":  quote.ID,
		"timestamp": quote.CreatedAt.Format(time.RFC3339),
	}

	ctx, span := utils.TraceMessagePublish(ctx, "quotes", QuoteRequestedEvent)
	defer span.End()
	if err := s.publisher.Publish(ctx, QuoteRequestedEvent, event, headers); err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"quote.id": quote.ID})
		s.logger.Error("failed to publish quote event",
			zap.String("quote_id", quote.ID),
			zap.Error(err))
	}
}
