package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/ecobytes/site-api/internal/logging"
	"github.com/ecobytes/site-api/internal/models"
	"github.com/ecobytes/site-api/internal/services"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// NewsletterSubscriber manages newsletter subscriptions.
type NewsletterSubscriber interface {
	Subscribe(ctx context.Context, email, clientIP string) (*models.Subscriber, error)
	Count(ctx context.Context) (int64, error)
}

// SubscriberCountResponse reports how many addresses are subscribed.
type SubscriberCountResponse struct {
	Total int64 `json:"total"`
}

// NewsletterHandlers serves the newsletter signup.
type NewsletterHandlers struct {
	service NewsletterSubscriber
	logger  *logging.SafeLogger
}

func NewNewsletterHandlers(service NewsletterSubscriber, logger *logging.SafeLogger) *NewsletterHandlers {
	return &NewsletterHandlers{service: service, logger: logger}
}

// Subscribe godoc
// @Summary Inscreve email na newsletter
// @Description Emails que diferem apenas em maiúsculas e minúsculas são considerados o mesmo inscrito.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param data body models.NewsletterRequest true "Email"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email já inscrito"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /newsletter [post]
func (h *NewsletterHandlers) Subscribe(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "NewsletterSubscribe")
	defer span.End()

	var req models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: services.MsgNewsletterEmailInvalido})
		return
	}

	_, err := h.service.Subscribe(ctx, req.Email, c.ClientIP())
	var vErr *services.ValidationFailedError
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, MessageResponse{Message: services.MsgNewsletterCadastrado})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: services.MsgNewsletterEmailInvalido})
	case errors.Is(err, models.ErrAlreadySubscribed):
		c.JSON(http.StatusConflict, ErrorResponse{Error: services.MsgNewsletterJaInscrito})
	case errors.Is(err, models.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: services.MsgMuitasSolicitacoes})
	default:
		h.logger.Error("newsletter subscription failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao realizar cadastro. Tente novamente."})
	}
}

// CountSubscribers godoc
// @Summary Total de inscritos na newsletter
// @Tags newsletter
// @Produce json
// @Success 200 {object} SubscriberCountResponse
// @Failure 500 {object} ErrorResponse
// @Router /newsletter/count [get]
func (h *NewsletterHandlers) CountSubscribers(c *gin.Context) {
	n, err := h.service.Count(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to count subscribers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "erro ao consultar inscritos"})
		return
	}
	c.JSON(http.StatusOK, SubscriberCountResponse{Total: n})
}
