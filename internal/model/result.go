package model

// AnalyzeResult строка итоговой таблицы.
type AnalyzeResult struct {
	Name   string
	Status string
	Text   string
}
