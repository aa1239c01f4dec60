package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/ecobytes/site-api/internal/logging"
	"github.com/ecobytes/site-api/internal/models"
	"github.com/ecobytes/site-api/internal/utils"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// AddressLookup resolves a CEP into an address.
type AddressLookup interface {
	Lookup(ctx context.Context, cep string) (*models.Address, error)
}

// CEPHandlers serves postal code lookups.
type CEPHandlers struct {
	lookup AddressLookup
	logger *logging.SafeLogger
}

func NewCEPHandlers(lookup AddressLookup, logger *logging.SafeLogger) *CEPHandlers {
	return &CEPHandlers{lookup: lookup, logger: logger}
}

// GetAddress godoc
// @Summary Consulta endereço por CEP
// @Description Retorna o endereço do CEP consultando o ViaCEP, com cache.
// @Tags cep
// @Produce json
// @Param cep path string true "CEP com ou sem traço" example(01001-000)
// @Success 200 {object} models.Address
// @Failure 400 {object} ErrorResponse "CEP inválido"
// @Failure 404 {object} ErrorResponse "CEP não encontrado"
// @Failure 502 {object} ErrorResponse "Falha no serviço de CEP"
// @Router /cep/{cep} [get]
func (h *CEPHandlers) GetAddress(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetAddress")
	defer span.End()

	addr, err := h.lookup.Lookup(ctx, c.Param("cep"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, addr)
	case errors.Is(err, models.ErrInvalidCEP):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "CEP inválido"})
	case errors.Is(err, models.ErrCEPNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "CEP não encontrado"})
	default:
		utils.RecordErrorInSpan(span, err, nil)
		h.logger.Error("cep lookup failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "serviço de CEP indisponível"})
	}
}
