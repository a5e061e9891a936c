package model

// AudioFile описывает загруженный файл, сохранённый на диск.
// Content содержит путь к файлу в локальной файловой системе, а не его байты.
type AudioFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// SubmitRequest тело запроса к сервису предсказаний.
type SubmitRequest struct {
	Files []AudioFile `json:"files"`
}
