package model

// PredictionResult представляет одну запись ответа сервиса предсказаний.
// Оба поля могут прийти как null.
type PredictionResult struct {
	Prediction *string `json:"prediction"`
	Text       *string `json:"text"`
}

// ResponseDto обёртка ответа сервиса предсказаний.
type ResponseDto struct {
	Data []PredictionResult `json:"data"`
}
