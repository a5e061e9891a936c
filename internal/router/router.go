package router

import (
	"net/http"

	"github.com/Totarae/AudioAnalyzer/internal/handlers"
	"github.com/Totarae/AudioAnalyzer/internal/middleware"
	"github.com/Totarae/AudioAnalyzer/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewRouter создаёт и настраивает маршрутизатор.
// Сохранённые файлы раздаются из storageDir по пути /AudioFiles/.
func NewRouter(handler *handlers.Handler, logger *zap.Logger, storageDir string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware(logger)) // Подключаем логирование
	r.Use(middleware.GzipMiddleware)            // Gzip-сжатие

	r.Get("/", handler.Index)
	r.Post("/", handler.Analyze)
	r.Get("/ping", handler.Ping)

	prefix := "/" + service.DisplayDir + "/"
	r.Handle(prefix+"*", http.StripPrefix(prefix, http.FileServer(http.Dir(storageDir))))
	return r
}
