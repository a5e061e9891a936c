package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/Totarae/AudioAnalyzer/internal/model"
	"github.com/Totarae/AudioAnalyzer/internal/service"
	"github.com/Totarae/AudioAnalyzer/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newService(t *testing.T) (*service.AnalyzeService, *mocks.MockStorage, *mocks.MockForwarder, *observer.ObservedLogs) {
	t.Helper()
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)
	forwarder := mocks.NewMockForwarder(ctrl)
	core, logs := observer.New(zap.InfoLevel)

	return service.NewAnalyzeService(storage, forwarder, zap.New(core)), storage, forwarder, logs
}

func TestAnalyze_Success(t *testing.T) {
	svc, storage, forwarder, logs := newService(t)
	ctx := context.Background()

	uploads := []*multipart.FileHeader{{Filename: "a.wav"}, {Filename: "b.wav"}}
	manifest := []model.AudioFile{
		{Name: "a.wav", Content: "/tmp/AudioFiles/a.wav"},
		{Name: "b.wav", Content: "/tmp/AudioFiles/b.wav"},
	}

	gomock.InOrder(
		storage.EXPECT().Save(ctx, uploads).Return(manifest, nil),
		forwarder.EXPECT().Submit(ctx, manifest).
			Return(`{"data":[{"prediction":"speech","text":"hello"},{"prediction":"silence","text":""}]}`, nil),
	)

	got, err := svc.Analyze(ctx, uploads)
	require.NoError(t, err)
	assert.Equal(t, []model.AnalyzeResult{
		{Name: "AudioFiles/a.wav", Status: "speech", Text: "hello"},
		{Name: "AudioFiles/b.wav", Status: "silence", Text: ""},
	}, got)
	assert.Zero(t, logs.FilterMessage("Prediction count mismatch, result table left empty").Len())
}

func TestAnalyze_CountMismatch(t *testing.T) {
	svc, storage, forwarder, logs := newService(t)

	manifest := []model.AudioFile{{Name: "a.wav"}, {Name: "b.wav"}}
	storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return(manifest, nil)
	forwarder.EXPECT().Submit(gomock.Any(), manifest).Return(`{"data":[{"prediction":"speech","text":"hello"}]}`, nil)

	got, err := svc.Analyze(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 1, logs.FilterMessage("Prediction count mismatch, result table left empty").Len())
}

func TestAnalyze_NoFiles(t *testing.T) {
	svc, storage, forwarder, _ := newService(t)

	storage.EXPECT().Save(gomock.Any(), gomock.Len(0)).Return([]model.AudioFile{}, nil)
	forwarder.EXPECT().Submit(gomock.Any(), []model.AudioFile{}).Return(`{"data":[]}`, nil)

	got, err := svc.Analyze(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAnalyze_StorageError(t *testing.T) {
	svc, storage, _, _ := newService(t)
	diskFull := errors.New("no space left on device")

	storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, diskFull)

	got, err := svc.Analyze(context.Background(), []*multipart.FileHeader{{Filename: "a.wav"}})
	assert.ErrorIs(t, err, diskFull)
	assert.Nil(t, got)
}

func TestAnalyze_ForwardError(t *testing.T) {
	svc, storage, forwarder, _ := newService(t)
	timeout := context.DeadlineExceeded

	storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return([]model.AudioFile{{Name: "a.wav"}}, nil)
	forwarder.EXPECT().Submit(gomock.Any(), gomock.Any()).Return("", timeout)

	_, err := svc.Analyze(context.Background(), nil)
	assert.ErrorIs(t, err, timeout)
}

func TestAnalyze_MalformedResponse(t *testing.T) {
	svc, storage, forwarder, _ := newService(t)

	storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return([]model.AudioFile{{Name: "a.wav"}}, nil)
	forwarder.EXPECT().Submit(gomock.Any(), gomock.Any()).Return("Bad Gateway", nil)

	got, err := svc.Analyze(context.Background(), nil)
	assert.ErrorIs(t, err, service.ErrMalformedResponse)
	assert.Nil(t, got)
}

func TestPing(t *testing.T) {
	svc, _, forwarder, _ := newService(t)
	refused := errors.New("connection refused")

	forwarder.EXPECT().Ping(gomock.Any()).Return(refused)

	assert.ErrorIs(t, svc.Ping(context.Background()), refused)
}
