// Package local 提供本地磁盘文档存储
package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"eduslide-api/internal/config"
	"eduslide-api/internal/domain/repository"
)

// Store 本地磁盘 DeckStore 实现。
// 写入先落临时文件再 rename，保证失败时不会留下可读取的半成品。
type Store struct {
	dir string
}

// NewStore 创建本地存储，目录不存在时创建
func NewStore(cfg *config.LocalStorageConfig) (*Store, error) {
	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		return nil, fmt.Errorf("storage dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir 存储根目录
func (s *Store) Dir() string {
	return s.dir
}

// Write 原子写入一份文档
func (s *Store) Write(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to finalize document: %w", err)
	}
	return nil
}

// Read 按键读取文档字节
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to read document %s: %w", key, err)
	}
	return data, nil
}

// Exists 判断文档是否存在
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	path, err := s.pathFor(key)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// pathFor 将不透明键映射为文件路径，拒绝路径穿越
func (s *Store) pathFor(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("storage key is empty")
	}
	if strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.dir, key+".pptx"), nil
}
