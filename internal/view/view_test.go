package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Totarae/AudioAnalyzer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_Rows(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.RenderTable(&buf, []model.AnalyzeResult{
		{Name: "AudioFiles/a.wav", Status: "speech", Text: "hello"},
		{Name: "AudioFiles/b.wav", Status: "silence", Text: ""},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<table"))
	assert.NotContains(t, out, "<form")
	assert.Equal(t, 3, strings.Count(out, "<tr>"))

	first := strings.Index(out, "AudioFiles/a.wav")
	second := strings.Index(out, "AudioFiles/b.wav")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
	assert.Contains(t, out, "<td>speech</td>")
	assert.Contains(t, out, "<td>hello</td>")
	assert.Contains(t, out, "<td>silence</td>")
}

func TestRenderTable_Empty(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderTable(&buf, nil))

	assert.Equal(t, 1, strings.Count(buf.String(), "<tr>"))
	assert.NotContains(t, buf.String(), "<td>")
}

func TestRenderTable_EscapesPredictionText(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.RenderTable(&buf, []model.AnalyzeResult{
		{Name: "AudioFiles/x.wav", Status: "speech", Text: "<script>alert(1)</script>"},
	})
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestRenderPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderPage(&buf, []model.AnalyzeResult{}))

	out := buf.String()
	assert.Contains(t, out, `enctype="multipart/form-data"`)
	assert.Contains(t, out, `name="File"`)
	assert.Contains(t, out, "multiple")
	assert.Contains(t, out, `<table class="results">`)
	assert.NotContains(t, out, "<td>")
}
