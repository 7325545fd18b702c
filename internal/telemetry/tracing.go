// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package telemetry sets up OpenTelemetry tracing and the Prometheus
// metrics exposed by the gateway.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/MKhiriev/cbs-gateway/internal/config"
	"github.com/MKhiriev/cbs-gateway/internal/logger"
)

// InstrumentationName is the tracer name used by gateway spans.
const InstrumentationName = "github.com/MKhiriev/cbs-gateway"

// ShutdownFunc flushes pending spans and releases exporter resources.
type ShutdownFunc func(context.Context) error

// Tracer returns the gateway tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(InstrumentationName)
}

// InitTracer installs a global tracer provider and the W3C propagator.
//
// When cfg.OTLPEndpoint is set, spans are batched to the collector over
// insecure gRPC. Otherwise spans are still sampled so trace and span ids are
// available to logs and downstream headers, but nothing is exported.
func InitTracer(ctx context.Context, cfg config.Telemetry, version, environment string, log *logger.Logger) (ShutdownFunc, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			semconv.ServiceVersionKey.String(version),
			attribute.String("environment", environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating otel resource: %w", err)
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	}

	var conn *grpc.ClientConn
	if cfg.OTLPEndpoint != "" {
		conn, err = grpc.NewClient(cfg.OTLPEndpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, fmt.Errorf("error creating otlp grpc client: %w", err)
		}

		exporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("error creating otlp trace exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))

		log.Info().Str("endpoint", cfg.OTLPEndpoint).Msg("exporting traces over OTLP")
	} else {
		log.Info().Msg("no OTLP endpoint configured, traces are not exported")
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return func(ctx context.Context) error {
		err := tp.Shutdown(ctx)
		if conn != nil {
			if cErr := conn.Close(); err == nil {
				err = cErr
			}
		}
		return err
	}, nil
}

// SpanIDs returns the hex trace and span ids of the span in ctx, or "-" for
// each when ctx carries no valid span.
func SpanIDs(ctx context.Context) (traceID, spanID string) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return "-", "-"
	}
	return sc.TraceID().String(), sc.SpanID().String()
}
