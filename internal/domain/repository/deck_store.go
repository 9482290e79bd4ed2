// Package repository 定义领域层对外部依赖的端口
package repository

import (
	"context"
	"errors"
)

// ErrDocumentNotFound 按键读取时未命中
var ErrDocumentNotFound = errors.New("document not found")

// DeckStore 生成文档的持久化端口。键为核心生成的不透明标识符，
// 写入必须是原子的：失败时不得留下可读取的半成品。
type DeckStore interface {
	// Write 以 key 为标识写入一份完整文档
	Write(ctx context.Context, key string, data []byte) error
	// Read 读取文档字节；未找到时返回 ErrDocumentNotFound
	Read(ctx context.Context, key string) ([]byte, error)
	// Exists 判断文档是否存在
	Exists(ctx context.Context, key string) (bool, error)
}
