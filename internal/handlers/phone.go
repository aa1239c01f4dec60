package handlers

import (
	"net/http"

	"github.com/ecobytes/site-api/internal/logging"
	"github.com/ecobytes/site-api/internal/validation"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// PhoneValidationRequest representa a requisição para validação de telefone
// swagger:model
// @description Estrutura de entrada contendo o número de telefone a ser validado.
type PhoneValidationRequest struct {
	// Número de telefone em formato nacional ou internacional.
	// example: "(11) 99988-7766"
	Phone string `json:"phone" binding:"required"`
}

// PhoneValidationResponse representa a resposta da validação de telefone
// swagger:model
// @description Resultado da validação, contendo a decomposição (DDI, DDD, número) quando válida.
type PhoneValidationResponse struct {
	// Indica se o número é válido.
	Valid bool `json:"valid"`
	// Mensagem de retorno.
	Message string `json:"message,omitempty"`
	// DDI (código do país)
	DDI string `json:"ddi,omitempty"`
	// DDD (código de área)
	DDD string `json:"ddd,omitempty"`
	// Número do assinante
	Numero string `json:"numero,omitempty"`
	// Representação E.164 do número
	E164 string `json:"e164,omitempty"`
	// Número com máscara
	Formatted string `json:"formatted,omitempty"`
}

// ValidatePhoneNumber godoc
// @Summary Valida número de telefone
// @Description Confere se o número tem DDD e 8 ou 9 dígitos e se pertence ao plano de numeração.
// @Tags validation
// @Accept json
// @Produce json
// @Param data body PhoneValidationRequest true "Telefone a ser validado"
// @Success 200 {object} PhoneValidationResponse
// @Failure 400 {object} ErrorResponse
// @Router /validate/phone [post]
func ValidatePhoneNumber(c *gin.Context) {
	_, span := otel.Tracer("").Start(c.Request.Context(), "ValidatePhoneNumber")
	defer span.End()

	var req PhoneValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "campo phone é obrigatório"})
		return
	}

	if !validation.ValidatePhone(req.Phone) {
		c.JSON(http.StatusOK, PhoneValidationResponse{Valid: false, Message: "Telefone inválido"})
		return
	}

	pc, err := validation.ParsePhone(req.Phone)
	if err != nil {
		logging.Logger.Debug("phone outside numbering plan", zap.Error(err))
		c.JSON(http.StatusOK, PhoneValidationResponse{Valid: false, Message: "Telefone inválido"})
		return
	}

	c.JSON(http.StatusOK, PhoneValidationResponse{
		Valid:     true,
		Message:   "telefone válido",
		DDI:       pc.DDI,
		DDD:       pc.DDD,
		Numero:    pc.Valor,
		E164:      pc.Full,
		Formatted: validation.FormatPhone(req.Phone),
	})
}
