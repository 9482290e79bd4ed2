//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"github.com/google/wire"

	"eduslide-api/internal/config"
	"eduslide-api/internal/interfaces/http/router"
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		StorageSet,
		LLMSet,
		ImageSet,
		PresentationSet,
		RouterSet,
	)
	return nil, nil, nil
}
