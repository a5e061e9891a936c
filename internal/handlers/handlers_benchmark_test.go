package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Totarae/AudioAnalyzer/internal/model"
)

func BenchmarkIndex(b *testing.B) {
	h := newTestHandler(b, &stubAnalyzer{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rec := httptest.NewRecorder()
		h.Index(rec, req)
	}
}

func BenchmarkAnalyze(b *testing.B) {
	rows := make([]model.AnalyzeResult, 0, 10)
	for i := 0; i < 10; i++ {
		rows = append(rows, model.AnalyzeResult{Name: "AudioFiles/a.wav", Status: "speech", Text: "hello"})
	}
	h := newTestHandler(b, &stubAnalyzer{results: rows})

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		req := uploadRequest(b, "a.wav", "b.wav")
		rec := httptest.NewRecorder()
		b.StartTimer()

		h.Analyze(rec, req)
	}
}
