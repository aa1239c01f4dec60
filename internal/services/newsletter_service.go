package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecobytes/site-api/internal/logging"
	"github.com/ecobytes/site-api/internal/models"
	"github.com/ecobytes/site-api/internal/observability"
	"github.com/ecobytes/site-api/internal/utils"
	"github.com/ecobytes/site-api/internal/validation"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const newsletterForm = "newsletter"

// Newsletter form messages.
const (
	MsgNewsletterEmailInvalido = "Por favor, insira um email válido."
	MsgNewsletterJaInscrito    = "Este email já está inscrito na nossa newsletter!"
	MsgNewsletterCadastrado    = "Cadastro realizado, receba novidades em breve!"
)

// NewsletterService manages newsletter subscriptions.
type NewsletterService struct {
	store   SubscriberStore
	limiter *SubmissionLimiter
	logger  *logging.SafeLogger
	now     func() time.Time
}

// NewNewsletterService creates a NewsletterService. limiter may be nil.
func NewNewsletterService(store SubscriberStore, limiter *SubmissionLimiter, logger *logging.SafeLogger) *NewsletterService {
	return &NewsletterService{
		store:   store,
		limiter: limiter,
		logger:  logger,
		now:     time.Now,
	}
}

// Subscribe stores email as a subscriber. Addresses that differ only in case
// or surrounding spaces are the same subscriber and yield
// models.ErrAlreadySubscribed.
func (s *NewsletterService) Subscribe(ctx context.Context, email, clientIP string) (*models.Subscriber, error) {
	ctx, span, cleanup := utils.TraceOperation(ctx, "newsletter.subscribe", nil)
	defer cleanup()

	email = strings.TrimSpace(email)
	if !validation.ValidateEmail(email) {
		observability.FormSubmissions.WithLabelValues(newsletterForm, "invalid").Inc()
		result := validation.NewValidationResult()
		result.AddError("email", MsgNewsletterEmailInvalido)
		return nil, &ValidationFailedError{Result: result}
	}

	if s.limiter != nil && !s.limiter.Allow(ctx, newsletterForm, clientIP) {
		observability.FormSubmissions.WithLabelValues(newsletterForm, "rate_limited").Inc()
		return nil, models.ErrRateLimited
	}

	sub := &models.Subscriber{
		ID:              uuid.NewString(),
		Email:           email,
		EmailNormalized: validation.NormalizeEmail(email),
		SubscribedAt:    s.now().UTC(),
	}

	if err := s.store.InsertSubscriber(ctx, sub); err != nil {
		if errors.Is(err, models.ErrAlreadySubscribed) {
			observability.FormSubmissions.WithLabelValues(newsletterForm, "duplicate").Inc()
			s.logger.Debug("newsletter subscriber already exists",
				zap.String("email", observability.MaskEmail(email)))
			return nil, models.ErrAlreadySubscribed
		}
		observability.FormSubmissions.WithLabelValues(newsletterForm, "error").Inc()
		utils.RecordErrorInSpan(span, err, nil)
		s.logger.Error("failed to store subscriber", zap.Error(err))
		return nil, fmt.Errorf("failed to store subscriber: %w", err)
	}

	observability.FormSubmissions.WithLabelValues(newsletterForm, "success").Inc()
	s.logger.Info("newsletter subscriber added",
		zap.String("subscriber_id", sub.ID),
		zap.String("email", observability.MaskEmail(email)))
	return sub, nil
}

// Count returns the number of subscribers.
func (s *NewsletterService) Count(ctx context.Context) (int64, error) {
	return s.store.CountSubscribers(ctx)
}
