package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStore хранит токен в текстовом файле
type FileStore struct {
	path string
}

// NewFileStore создает хранилище токена в файле path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get читает токен; пустой или отсутствующий файл означает ErrTokenNotFound
func (s *FileStore) Get(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrTokenNotFound
		}
		return "", fmt.Errorf("%w: read %s: %v", ErrStorage, s.path, err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrTokenNotFound
	}
	return token, nil
}

// Save записывает токен, создавая каталог при необходимости
func (s *FileStore) Save(_ context.Context, token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("%w: create directory: %v", ErrStorage, err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStorage, s.path, err)
	}
	return nil
}

// Clear удаляет файл токена
func (s *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: remove %s: %v", ErrStorage, s.path, err)
	}
	return nil
}
