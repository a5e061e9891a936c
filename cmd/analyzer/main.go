package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Totarae/AudioAnalyzer/internal/config"
	"github.com/Totarae/AudioAnalyzer/internal/grpc/healthcheck"
	"github.com/Totarae/AudioAnalyzer/internal/handlers"
	"github.com/Totarae/AudioAnalyzer/internal/predictor"
	"github.com/Totarae/AudioAnalyzer/internal/router"
	"github.com/Totarae/AudioAnalyzer/internal/service"
	"github.com/Totarae/AudioAnalyzer/internal/storage"
	"github.com/Totarae/AudioAnalyzer/internal/view"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Инициализация конфигурации
	cfg := config.NewConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Ошибка при запуске сервера: ", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Клиент сервиса предсказаний создаётся один раз и разделяется всеми запросами
	client := predictor.NewClient(predictor.Config{
		URL:     cfg.PredictorURL,
		Timeout: cfg.PredictorTimeout,
	}, logger)

	store := storage.NewFileStore(cfg.StorageDir)
	svc := service.NewAnalyzeService(store, client, logger)

	renderer, err := view.NewRenderer()
	if err != nil {
		return err
	}

	handler := handlers.NewHandler(svc, renderer, logger, cfg.MaxUploadMemory)
	r := router.NewRouter(handler, logger, store.Root())

	lis, err := net.Listen("tcp", cfg.ServerAddress)
	if err != nil {
		return err
	}

	srv := &http.Server{Handler: r}
	errCh := make(chan error, 2)

	go func() {
		logger.Info("Сервер запущен на ",
			zap.String("address", lis.Addr().String()),
			zap.Bool("https", cfg.EnableHTTPS),
			zap.String("predictor", client.URL()),
			zap.String("storage", store.Root()),
		)
		var serveErr error
		if cfg.EnableHTTPS {
			serveErr = srv.ServeTLS(lis, cfg.TLSCertPath, cfg.TLSKeyPath)
		} else {
			serveErr = srv.Serve(lis)
		}
		if !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
	}()

	if cfg.GRPCAddress != "" {
		reporter := healthcheck.NewHealthReporter(client, cfg.HealthInterval, logger)
		grpcServer := healthcheck.NewServer(reporter)

		grpcLis, lisErr := net.Listen("tcp", cfg.GRPCAddress)
		if lisErr != nil {
			_ = srv.Close()
			return lisErr
		}

		go reporter.Run(ctx)
		go func() {
			logger.Info("gRPC health server started", zap.String("address", grpcLis.Addr().String()))
			if grpcErr := grpcServer.Serve(grpcLis); grpcErr != nil {
				errCh <- grpcErr
			}
		}()
		defer grpcServer.Stop()
	}

	select {
	case <-ctx.Done():
	case err = <-errCh:
		_ = srv.Close()
		return err
	}

	logger.Info("Остановка сервера")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}
