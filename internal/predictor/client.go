// Package predictor отправляет манифест загруженных файлов во внешний сервис предсказаний.
package predictor

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Totarae/AudioAnalyzer/internal/model"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	DefaultURL     = "http://127.0.0.1:5000/submit_input"
	DefaultTimeout = 30 * time.Minute
)

// Config параметры клиента сервиса предсказаний
type Config struct {
	URL     string
	Timeout time.Duration
}

// Client создаётся один раз при старте и используется всеми запросами только на чтение.
type Client struct {
	client *resty.Client
	url    string
	logger *zap.Logger
}

// NewClient создаёт клиента. Пустые значения конфигурации заменяются значениями по умолчанию.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	cli := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(0)

	return &Client{client: cli, url: cfg.URL, logger: logger}
}

// URL возвращает адрес сервиса предсказаний.
func (c *Client) URL() string {
	return c.url
}

// Submit отправляет манифест и возвращает тело ответа как есть.
// Код ответа не проверяется, он только пишется в лог.
func (c *Client) Submit(ctx context.Context, files []model.AudioFile) (string, error) {
	if files == nil {
		files = []model.AudioFile{}
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(model.SubmitRequest{Files: files}).
		Post(c.url)
	if err != nil {
		return "", fmt.Errorf("submit request: %w", err)
	}

	body := resp.String()
	c.logger.Info("Prediction response received",
		zap.Int("status", resp.StatusCode()),
		zap.Int("files", len(files)),
		zap.Duration("duration", resp.Time()),
	)
	c.logger.Debug("Prediction response body", zap.String("body", body))

	return body, nil
}

// Ping проверяет доступность сервиса: любой HTTP-ответ считается успехом.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Head(c.url)
	if err != nil {
		return fmt.Errorf("ping predictor: %w", err)
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return fmt.Errorf("ping predictor: http %d", resp.StatusCode())
	}
	return nil
}
