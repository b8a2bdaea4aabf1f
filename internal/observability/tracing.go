package observability

import (
	"context"
	"fmt"
	"time"

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

	"github.com/brabant-dados/app-vergunningen-search/internal/config"
)

// ServiceName identifica o serviço nos traces
const ServiceName = "app-vergunningen-search"

// Tracing guarda o provider instalado; o valor nil representa tracing desligado
type Tracing struct {
	provider *sdktrace.TracerProvider
}

// SetupTracing cria o exporter OTLP gRPC e instala o provider global.
// Com TRACING_ENABLED=false retorna nil sem erro e os spans viram no-op.
func SetupTracing(ctx context.Context, cfg *config.Config) (*Tracing, error) {
	if !cfg.TracingEnabled {
		zap.L().Info("tracing desligado")
		return nil, nil
	}

	exporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.TracingEndpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	))
	if err != nil {
		return nil, fmt.Errorf("falha ao criar exporter OTLP: %w", err)
	}

	t, err := newTracing(ctx, exporter, cfg.Version, cfg.TracingSampleRatio)
	if err != nil {
		return nil, err
	}

	otel.SetTracerProvider(t.provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	zap.L().Info("tracer inicializado",
		zap.String("endpoint", cfg.TracingEndpoint),
		zap.Float64("sample_ratio", cfg.TracingSampleRatio))
	return t, nil
}

func newTracing(ctx context.Context, exporter sdktrace.SpanExporter, version string, ratio float64) (*Tracing, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(ServiceName),
			semconv.ServiceVersionKey.String(version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar resource: %w", err)
	}

	return &Tracing{
		provider: sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter,
				sdktrace.WithMaxExportBatchSize(512),
				sdktrace.WithBatchTimeout(10*time.Second),
				sdktrace.WithMaxQueueSize(2048),
			),
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sampler(ratio)),
		),
	}, nil
}

// sampler respeita a decisão do span pai; sem pai amostra pela fração
func sampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	case ratio <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
}

// Shutdown envia os spans pendentes e encerra o provider
func (t *Tracing) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	if err := t.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("falha ao encerrar tracer provider: %w", err)
	}
	return nil
}
