package service

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/Totarae/AudioAnalyzer/internal/model"
	"go.uber.org/zap"
)

//go:generate mockgen -source=analyzer.go -destination=mocks/analyzer_mock.go -package=mocks

// Storage сохраняет загруженные файлы и возвращает манифест.
type Storage interface {
	Save(ctx context.Context, files []*multipart.FileHeader) ([]model.AudioFile, error)
}

// Forwarder отправляет манифест в сервис предсказаний.
type Forwarder interface {
	Submit(ctx context.Context, files []model.AudioFile) (string, error)
	Ping(ctx context.Context) error
}

type AnalyzeService struct {
	Storage   Storage
	Forwarder Forwarder
	Logger    *zap.Logger
}

func NewAnalyzeService(storage Storage, forwarder Forwarder, logger *zap.Logger) *AnalyzeService {
	return &AnalyzeService{
		Storage:   storage,
		Forwarder: forwarder,
		Logger:    logger,
	}
}

// Analyze сохраняет файлы, отправляет манифест и строит таблицу результатов.
// Шаги выполняются строго последовательно.
func (s *AnalyzeService) Analyze(ctx context.Context, files []*multipart.FileHeader) ([]model.AnalyzeResult, error) {
	audioFiles, err := s.Storage.Save(ctx, files)
	if err != nil {
		return nil, fmt.Errorf("save uploads: %w", err)
	}

	body, err := s.Forwarder.Submit(ctx, audioFiles)
	if err != nil {
		return nil, fmt.Errorf("forward manifest: %w", err)
	}

	table, err := MapResults(audioFiles, body)
	if err != nil {
		return nil, err
	}

	// Пустая таблица при несовпадении количества: поведение требует подтверждения
	if len(table) != len(audioFiles) {
		s.Logger.Warn("Prediction count mismatch, result table left empty",
			zap.Int("files", len(audioFiles)),
		)
	}

	return table, nil
}

// Ping проверяет доступность сервиса предсказаний.
func (s *AnalyzeService) Ping(ctx context.Context) error {
	return s.Forwarder.Ping(ctx)
}
