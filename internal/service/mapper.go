package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"

	"github.com/Totarae/AudioAnalyzer/internal/model"
)

// DisplayDir каталог, относительно которого в таблице показываются файлы.
const DisplayDir = "AudioFiles"

// ErrMalformedResponse ответ сервиса предсказаний не удалось разобрать.
var ErrMalformedResponse = errors.New("malformed prediction response")

// MapResults разбирает ответ сервиса и сопоставляет предсказания с файлами по позиции.
// Если число предсказаний не совпадает с числом файлов, возвращается пустая таблица.
func MapResults(files []model.AudioFile, body string) ([]model.AnalyzeResult, error) {
	var resp model.ResponseDto
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	table := make([]model.AnalyzeResult, 0, len(files))
	if len(resp.Data) != len(files) {
		return table, nil
	}

	for i, file := range files {
		prediction := resp.Data[i]
		table = append(table, model.AnalyzeResult{
			Name:   path.Join(DisplayDir, file.Name),
			Status: deref(prediction.Prediction),
			Text:   deref(prediction.Text),
		})
	}
	return table, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
