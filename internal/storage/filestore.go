// Package storage сохраняет загруженные аудиофайлы в локальный каталог.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/Totarae/AudioAnalyzer/internal/model"
)

// FileStore пишет файлы в каталог root.
// Одноимённые файлы перезаписываются без проверки конфликтов и без блокировок.
type FileStore struct {
	root string
}

// NewFileStore создаёт хранилище с корнем root. Каталог создаётся лениво при первом Save.
func NewFileStore(root string) *FileStore {
	return &FileStore{root: root}
}

// Root возвращает корневой каталог хранилища.
func (s *FileStore) Root() string {
	return s.root
}

// Save копирует каждый файл в <root>/<имя файла> и возвращает манифест в исходном порядке.
// Каталог создаётся даже для пустого списка.
func (s *FileStore) Save(ctx context.Context, files []*multipart.FileHeader) ([]model.AudioFile, error) {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return nil, fmt.Errorf("create storage dir %q: %w", s.root, err)
	}

	audioFiles := make([]model.AudioFile, 0, len(files))
	for _, fh := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := filepath.Base(fh.Filename)
		path := filepath.Join(s.root, name)
		if err := s.write(fh, path); err != nil {
			return nil, err
		}

		audioFiles = append(audioFiles, model.AudioFile{Name: name, Content: path})
	}
	return audioFiles, nil
}

func (s *FileStore) write(fh *multipart.FileHeader, path string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("create file %q: %w", path, err)
	}

	if _, err = io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("write file %q: %w", path, err)
	}
	return dst.Close()
}
