package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"

	"github.com/Totarae/AudioAnalyzer/internal/middleware"
	"github.com/Totarae/AudioAnalyzer/internal/model"
	"github.com/Totarae/AudioAnalyzer/internal/view"
	"go.uber.org/zap"
)

// FileField имя поля формы с файлами
const FileField = "File"

// Analyzer выполняет загрузку, отправку и сопоставление результатов.
type Analyzer interface {
	Analyze(ctx context.Context, files []*multipart.FileHeader) ([]model.AnalyzeResult, error)
	Ping(ctx context.Context) error
}

type Handler struct {
	Service   Analyzer
	Renderer  *view.Renderer
	Logger    *zap.Logger
	MaxMemory int64
}

func NewHandler(service Analyzer, renderer *view.Renderer, logger *zap.Logger, maxMemory int64) *Handler {
	return &Handler{
		Service:   service,
		Renderer:  renderer,
		Logger:    logger,
		MaxMemory: maxMemory,
	}
}

// Index отдаёт страницу с формой и пустой таблицей
func (h *Handler) Index(res http.ResponseWriter, req *http.Request) {
	var buf bytes.Buffer
	if err := h.Renderer.RenderPage(&buf, []model.AnalyzeResult{}); err != nil {
		h.internalError(res, req, "render page", err)
		return
	}

	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	res.WriteHeader(http.StatusOK)
	res.Write(buf.Bytes())
}

// Analyze принимает multipart-форму с файлами и возвращает фрагмент таблицы
func (h *Handler) Analyze(res http.ResponseWriter, req *http.Request) {
	if err := req.ParseMultipartForm(h.MaxMemory); err != nil {
		h.Logger.Warn("Bad upload form",
			zap.String("request_id", middleware.RequestID(req.Context())),
			zap.Error(err),
		)
		http.Error(res, "Bad Request", http.StatusBadRequest)
		return
	}
	defer req.MultipartForm.RemoveAll()

	files := req.MultipartForm.File[FileField]

	results, err := h.Service.Analyze(req.Context(), files)
	if err != nil {
		h.internalError(res, req, "analyze uploads", err)
		return
	}

	var buf bytes.Buffer
	if err = h.Renderer.RenderTable(&buf, results); err != nil {
		h.internalError(res, req, "render table", err)
		return
	}

	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	res.WriteHeader(http.StatusOK)
	res.Write(buf.Bytes())
}

// Ping проверяет доступность сервиса предсказаний
func (h *Handler) Ping(res http.ResponseWriter, req *http.Request) {
	if err := h.Service.Ping(req.Context()); err != nil {
		h.Logger.Warn("Predictor unreachable", zap.Error(err))
		http.Error(res, "Predictor unavailable", http.StatusInternalServerError)
		return
	}
	res.WriteHeader(http.StatusOK)
}

func (h *Handler) internalError(res http.ResponseWriter, req *http.Request, op string, err error) {
	h.Logger.Error("Request failed",
		zap.String("request_id", middleware.RequestID(req.Context())),
		zap.String("op", op),
		zap.Error(err),
	)
	http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
