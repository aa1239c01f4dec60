package observability

import (
	"context"
	"fmt"
	"time"

	"github.com/ecobytes/site-api/internal/config"
	"github.com/ecobytes/site-api/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	ServiceName    = "site-api"
	ServiceVersion = "v1"
)

var (
	tracerProvider *sdktrace.TracerProvider
)

// InitTracer exports spans over OTLP/gRPC to cfg.TracingEndpoint and installs
// the W3C trace-context and baggage propagators read by the HTTP middleware.
// Failures are logged and leave the no-op provider in place.
func InitTracer(cfg *config.Config) {
	logger := logging.Logger.Named("tracing")
	if !cfg.TracingEnabled {
		logger.Info("tracing is disabled")
		return
	}

	ctx := context.Background()

	// plaintext inside the cluster
	client := otlptracegrpc.NewClient(
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.TracingEndpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		logger.Error("failed to create OTLP exporter",
			zap.String("endpoint", cfg.TracingEndpoint),
			zap.Error(err))
		return
	}

	res, err := newResource(ctx, cfg.Environment)
	if err != nil {
		logger.Error("failed to create resource", zap.Error(err))
		return
	}

	installTracerProvider(newTracerProvider(exporter, res, cfg.TracingSampleRatio))

	logger.Info("tracer initialized",
		zap.String("endpoint", cfg.TracingEndpoint),
		zap.String("environment", cfg.Environment),
		zap.Float64("sample_ratio", cfg.TracingSampleRatio))
}

// newResource describes this service on every exported span.
func newResource(ctx context.Context, environment string) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(ServiceName),
			semconv.ServiceVersionKey.String(ServiceVersion),
			semconv.DeploymentEnvironmentKey.String(environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build tracing resource: %w", err)
	}
	return res, nil
}

func newTracerProvider(exporter sdktrace.SpanExporter, res *resource.Resource, ratio float64) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithMaxExportBatchSize(512),
			sdktrace.WithBatchTimeout(time.Second*10),
			sdktrace.WithMaxQueueSize(2048),
		),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	)
}

func installTracerProvider(tp *sdktrace.TracerProvider) {
	tracerProvider = tp
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
}

// ShutdownTracer flushes pending spans and stops the provider.
func ShutdownTracer() {
	if tracerProvider == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := tracerProvider.Shutdown(ctx); err != nil {
		logging.Logger.Named("tracing").Error("failed to shutdown tracer provider", zap.Error(err))
	}
	tracerProvider = nil
}
