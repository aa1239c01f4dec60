package handlers

import (
	"net/http"

	"github.com/ecobytes/site-api/internal/document"
	"github.com/ecobytes/site-api/internal/observability"
	"github.com/ecobytes/site-api/internal/validation"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// DocumentValidationRequest representa a requisição para validação de CPF/CNPJ
// swagger:model
// @description Estrutura de entrada com o CPF ou CNPJ, formatado ou não.
type DocumentValidationRequest struct {
	// CPF ou CNPJ.
	// example: "529.982.247-25"
	Document string `json:"document" binding:"required"`
}

// DocumentValidationResponse representa o resultado da validação de CPF/CNPJ
// swagger:model
type DocumentValidationResponse struct {
	Valid     bool          `json:"valid"`
	Kind      document.Kind `json:"kind" swaggertype:"string" enums:"CPF,CNPJ,Invalid"`
	Digits    string        `json:"digits"`
	Formatted string        `json:"formatted"`
	Message   string        `json:"message"`
}

// FormatRequest carries a value being typed into a masked field.
type FormatRequest struct {
	// example: "52998224725"
	Value string `json:"value"`
}

// FormatResponse is the masked value.
type FormatResponse struct {
	Formatted string `json:"formatted"`
	Kind      string `json:"kind,omitempty"`
}

func documentMessage(res document.Result) string {
	if !res.Valid {
		return "CPF ou CNPJ inválido"
	}
	return res.Kind.String() + " válido"
}

// ValidateDocument godoc
// @Summary Valida CPF ou CNPJ
// @Description Classifica o documento pelo número de dígitos e confere os dígitos verificadores.
// @Tags validation
// @Accept json
// @Produce json
// @Param data body DocumentValidationRequest true "Documento a ser validado"
// @Success 200 {object} DocumentValidationResponse
// @Failure 400 {object} ErrorResponse
// @Router /validate/document [post]
func ValidateDocument(c *gin.Context) {
	_, span := otel.Tracer("").Start(c.Request.Context(), "ValidateDocument")
	defer span.End()

	var req DocumentValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "campo document é obrigatório"})
		return
	}

	res := document.Validate(req.Document)
	observability.RecordDocumentValidation(res.Kind.String(), res.Valid)
	span.SetAttributes(
		attribute.String("document.kind", res.Kind.String()),
		attribute.Bool("document.valid", res.Valid),
	)
	observability.Logger().Debug("document validated",
		zap.String("kind", res.Kind.String()),
		zap.Bool("valid", res.Valid),
		zap.String("document", observability.MaskDocument(res.Digits)))

	c.JSON(http.StatusOK, DocumentValidationResponse{
		Valid:     res.Valid,
		Kind:      res.Kind,
		Digits:    res.Digits,
		Formatted: res.Formatted,
		Message:   documentMessage(res),
	})
}

// FormatDocument godoc
// @Summary Aplica a máscara de CPF/CNPJ
// @Description Formata o valor digitado com a máscara de CPF até 11 dígitos e de CNPJ acima disso.
// @Tags format
// @Accept json
// @Produce json
// @Param data body FormatRequest true "Valor digitado"
// @Success 200 {object} FormatResponse
// @Failure 400 {object} ErrorResponse
// @Router /format/document [post]
func FormatDocument(c *gin.Context) {
	var req FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "corpo da requisição inválido"})
		return
	}
	c.JSON(http.StatusOK, FormatResponse{
		Formatted: document.Format(req.Value),
		Kind:      document.Classify(req.Value).String(),
	})
}

// FormatPhone godoc
// @Summary Aplica a máscara de telefone
// @Description Formata o valor digitado como (XX) XXXX-XXXX ou (XX) XXXXX-XXXX.
// @Tags format
// @Accept json
// @Produce json
// @Param data body FormatRequest true "Valor digitado"
// @Success 200 {object} FormatResponse
// @Failure 400 {object} ErrorResponse
// @Router /format/phone [post]
func FormatPhone(c *gin.Context) {
	var req FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "corpo da requisição inválido"})
		return
	}
	c.JSON(http.StatusOK, FormatResponse{Formatted: validation.FormatPhone(req.Value)})
}

// FormatCEP godoc
// @Summary Aplica a máscara de CEP
// @Tags format
// @Accept json
// @Produce json
// @Param data body FormatRequest true "Valor digitado"
// @Success 200 {object} FormatResponse
// @Failure 400 {object} ErrorResponse
// @Router /format/cep [post]
func FormatCEP(c *gin.Context) {
	var req FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "corpo da requisição inválido"})
		return
	}
	c.JSON(http.StatusOK, FormatResponse{Formatted: validation.FormatCEP(req.Value)})
}
