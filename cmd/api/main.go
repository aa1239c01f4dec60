package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecobytes/site-api/internal/broker"
	"github.com/ecobytes/site-api/internal/catalog"
	"github.com/ecobytes/site-api/internal/config"
	"github.com/ecobytes/site-api/internal/handlers"
	"github.com/ecobytes/site-api/internal/logging"
	"github.com/ecobytes/site-api/internal/observability"
	"github.com/ecobytes/site-api/internal/services"
	"github.com/ecobytes/site-api/internal/utils/httpclient"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/ecobytes/site-api/docs"
)

// @title           EcoBytes Site API
// @version         1.0
// @description     Validação e máscaras de CPF, CNPJ, telefone e CEP, consulta de endereço, catálogo de produtos, orçamentos e newsletter do site EcoBytes.

// @host      localhost:8080
// @BasePath  /v1

// @tag.name validation
// @tag.description Validação de documentos e campos de formulário

// @tag.name health
// @tag.description Health check operations

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() { _ = logging.Logger.Sync() }()

	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}
	cfg := config.AppConfig

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	if err := config.InitMongoDB(); err != nil {
		logging.Logger.Fatal("failed to initialize MongoDB", zap.Error(err))
	}
	if err := config.InitRedis(); err != nil {
		logging.Logger.Fatal("failed to initialize Redis", zap.Error(err))
	}
	defer func() { _ = config.Redis.Close() }()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	config.StartIndexMaintenance(ctx, cfg.IndexMaintenanceInterval)

	cat := catalog.Default()
	if cfg.CatalogFile != "" {
		loaded, err := catalog.Load(cfg.CatalogFile)
		if err != nil {
			logging.Logger.Fatal("failed to load catalog", zap.String("file", cfg.CatalogFile), zap.Error(err))
		}
		cat = loaded
	}

	checks := map[string]handlers.HealthCheckFunc{
		"mongodb": func(ctx context.Context) error { return config.MongoDB.Client().Ping(ctx, nil) },
		"redis":   func(ctx context.Context) error { return config.Redis.Ping(ctx).Err() },
	}

	var publisher broker.Publisher
	if cfg.RabbitMQURL != "" {
		p, err := broker.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQQueue)
		if err != nil {
			logging.Logger.Error("quote events disabled, rabbitmq unavailable", zap.Error(err))
		} else {
			publisher = p
			defer func() { _ = p.Close() }()
			checks["rabbitmq"] = func(context.Context) error { return p.Ping() }
			logging.Logger.Info("publishing quote events", zap.String("queue", p.Queue()))
		}
	}

	pool := httpclient.NewHTTPClientPool(10, cfg.CEPLookupTimeout)
	defer pool.Close()

	limiter := services.NewSubmissionLimiter(config.Redis, cfg.SubmissionLimit, cfg.SubmissionWindow, logging.Logger.Named("ratelimit"))
	cepService := services.NewCEPService(cfg.CEPLookupURL, pool, services.NewOutboundLimiter(cfg.CEPLookupRPS),
		config.Redis, cfg.CEPCacheTTL, logging.Logger.Named("cep"))
	quoteService := services.NewQuoteService(
		services.NewMongoQuoteStore(config.MongoDB, cfg.QuoteCollection),
		cat, limiter, publisher, logging.Logger.Named("quotes"))
	newsletterService := services.NewNewsletterService(
		services.NewMongoSubscriberStore(config.MongoDB, cfg.NewsletterCollection),
		limiter, logging.Logger.Named("newsletter"))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := newRouter(routes{
		health:     handlers.NewHealthHandlers(checks),
		cep:        handlers.NewCEPHandlers(cepService, logging.Logger),
		catalog:    handlers.NewCatalogHandlers(cat),
		quotes:     handlers.NewQuoteHandlers(quoteService, logging.Logger),
		newsletter: handlers.NewNewsletterHandlers(newsletterService, logging.Logger),
	}, cfg.CORSAllowedOrigins)

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", cfg.Port),
			zap.String("environment", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Logger.Error("server forced to shutdown", zap.Error(err))
	}

	logging.Logger.Info("server exited gracefully")
}
