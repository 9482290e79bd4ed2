// Package presentation 实现演示文稿生成的应用编排：
// 提纲规划、模型内容生成与容错解析、配图解析、文档组装与存储。
package presentation

import (
	"context"

	"github.com/cloudwego/eino/components/model"

	"eduslide-api/internal/domain/entity"
)

// ChatModelFactory 按提供商名称返回聊天模型实例
type ChatModelFactory interface {
	Get(ctx context.Context, name string) (model.BaseChatModel, error)
}

// ImageSearcher 按关键词查找单张候选图片。
// 未命中时返回 (nil, nil)，错误仅表示查找本身失败。
type ImageSearcher interface {
	Search(ctx context.Context, keyword string) (*entity.ImageReference, error)
}

// ImageDownloader 下载图片原始字节
type ImageDownloader interface {
	Download(ctx context.Context, url string) ([]byte, error)
}
