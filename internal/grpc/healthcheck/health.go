// Package healthcheck публикует доступность сервиса предсказаний через стандартный gRPC Health.
package healthcheck

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName имя сервиса в ответах Health/Check
const ServiceName = "analyzer"

// Pinger проверяет доступность зависимости
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthReporter struct {
	health   *health.Server
	pinger   Pinger
	interval time.Duration
	logger   *zap.Logger
}

// NewHealthReporter до первой проверки считает сервис недоступным.
func NewHealthReporter(pinger Pinger, interval time.Duration, logger *zap.Logger) *HealthReporter {
	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &HealthReporter{
		health:   hs,
		pinger:   pinger,
		interval: interval,
		logger:   logger,
	}
}

// Probe выполняет одну проверку и обновляет статус.
func (r *HealthReporter) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := r.pinger.Ping(ctx); err != nil {
		r.logger.Warn("Predictor health probe failed", zap.Error(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	r.health.SetServingStatus(ServiceName, status)
	r.health.SetServingStatus("", status)
	return status
}

// Run проверяет доступность с интервалом до отмены ctx, затем переводит сервер в Shutdown.
func (r *HealthReporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			r.health.Shutdown()
			return
		case <-ticker.C:
			r.Probe(ctx)
		}
	}
}

// NewServer создаёт gRPC-сервер с зарегистрированным Health-сервисом.
func NewServer(reporter *HealthReporter, opts ...grpc.ServerOption) *grpc.Server {
	s := grpc.NewServer(opts...)
	healthpb.RegisterHealthServer(s, reporter.health)
	return s
}
