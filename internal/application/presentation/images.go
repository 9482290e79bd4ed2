package presentation

import (
	"context"
	"time"

	"eduslide-api/internal/domain/entity"
	"eduslide-api/pkg/logger"
	"eduslide-api/pkg/metrics"
)

// maxImageKeywords 每张幻灯片最多尝试的关键词数
const maxImageKeywords = 3

// ImageResolver 将幻灯片关键词解析为一张候选图片。
// 失败不向上传播：任何查找错误或全部未命中都返回 nil。
type ImageResolver struct {
	searcher ImageSearcher
	timeout  time.Duration
}

// NewImageResolver 创建图片解析器，timeout 为单次查找超时
func NewImageResolver(searcher ImageSearcher, timeout time.Duration) *ImageResolver {
	return &ImageResolver{searcher: searcher, timeout: timeout}
}

// Resolve 依次尝试前三个关键词，首个命中即返回。
// 全部失败或关键词为空时返回 nil，幻灯片照常生成。
func (r *ImageResolver) Resolve(ctx context.Context, keywords []string) *entity.ImageReference {
	if r.searcher == nil {
		return nil
	}
	tried := 0
	for _, kw := range keywords {
		if tried >= maxImageKeywords {
			break
		}
		if kw == "" {
			continue
		}
		tried++
		ref := r.lookup(ctx, kw)
		if ref != nil {
			metrics.ImageLookupTotal.WithLabelValues("hit").Inc()
			return ref
		}
	}
	if tried > 0 {
		metrics.ImageLookupTotal.WithLabelValues("miss").Inc()
	}
	return nil
}

func (r *ImageResolver) lookup(ctx context.Context, keyword string) *entity.ImageReference {
	lookupCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	ref, err := r.searcher.Search(lookupCtx, keyword)
	if err != nil {
		logger.Warn(ctx, "image lookup failed", "keyword", keyword, "error", err)
		metrics.ImageLookupTotal.WithLabelValues("error").Inc()
		return nil
	}
	return ref
}
