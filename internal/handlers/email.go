package handlers

import (
	"net/http"
	"strings"

	"github.com/ecobytes/site-api/internal/logging"
	"github.com/ecobytes/site-api/internal/observability"
	"github.com/ecobytes/site-api/internal/utils"
	"github.com/ecobytes/site-api/internal/validation"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// EmailValidationRequest representa a requisição para validação de email
// swagger:model
// @description Estrutura de entrada contendo o endereço de email a ser validado.
type EmailValidationRequest struct {
	// Endereço de email a ser validado.
	// example: "usuario@exemplo.com"
	Email string `json:"email" binding:"required"`
}

// EmailValidationResponse representa a resposta da validação de email
// swagger:model
// @description Resultado da validação, contendo informações sobre o endereço de email quando válido.
type EmailValidationResponse struct {
	// Indica se o email é válido.
	Valid bool `json:"valid"`
	// Mensagem de retorno.
	Message string `json:"message"`
	// Parte local do email (antes do @)
	LocalPart string `json:"local_part,omitempty"`
	// Domínio do email (após o @)
	Domain string `json:"domain,omitempty"`
	// Email normalizado, usado na detecção de duplicados
	Normalized string `json:"normalized,omitempty"`
}

// ValidateEmailAddress godoc
// @Summary Valida endereço de email
// @Description Valida o formato do endereço de email e retorna suas partes quando válido.
// @Tags validation
// @Accept json
// @Produce json
// @Param data body EmailValidationRequest true "Email a ser validado"
// @Success 200 {object} EmailValidationResponse
// @Failure 400 {object} ErrorResponse
// @Router /validate/email [post]
func ValidateEmailAddress(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ValidateEmailAddress")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "validate_email_address"),
		attribute.String("service", "email_validation"),
	)

	var req EmailValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{
			"error.type": "input_parsing",
			"input.type": "EmailValidationRequest",
		})
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "campo email é obrigatório"})
		return
	}

	email := strings.TrimSpace(req.Email)
	logger := logging.Logger.With(zap.String("email", observability.MaskEmail(email)))

	_, formatSpan := utils.TraceBusinessLogic(ctx, "validate_email_format")
	utils.AddSpanAttribute(formatSpan, "email.length", len(email))
	valid := validation.ValidateEmail(email)
	utils.AddSpanAttribute(formatSpan, "email.valid", valid)
	formatSpan.End()

	if !valid {
		message := "E-mail inválido"
		if len(email) > validation.MaxEmailLength {
			message = "email muito longo (máximo 254 caracteres)"
		}
		logger.Debug("email rejected", zap.Int("length", len(email)))
		c.JSON(http.StatusOK, EmailValidationResponse{Valid: false, Message: message})
		return
	}

	at := strings.LastIndex(email, "@")
	c.JSON(http.StatusOK, EmailValidationResponse{
		Valid:      true,
		Message:    "email válido",
		LocalPart:  email[:at],
		Domain:     strings.ToLower(email[at+1:]),
		Normalized: validation.NormalizeEmail(email),
	})
}
