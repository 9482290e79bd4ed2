// Package wire 提供依赖注入配置
package wire

import (
	"github.com/google/wire"

	"eduslide-api/internal/application/presentation"
	"eduslide-api/internal/config"
	"eduslide-api/internal/domain/repository"
	"eduslide-api/internal/infrastructure/image/pexels"
	"eduslide-api/internal/infrastructure/llm"
	"eduslide-api/internal/infrastructure/storage/local"
	"eduslide-api/internal/interfaces/http/handler"
	"eduslide-api/internal/interfaces/http/router"
	"eduslide-api/internal/workflow/prompt"
)

// StorageSet 存储提供者集合
var StorageSet = wire.NewSet(
	ProvideLocalStore,
	wire.Bind(new(repository.DeckStore), new(*local.Store)),
)

// LLMSet 模型提供者集合
var LLMSet = wire.NewSet(
	llm.NewEinoFactory,
	prompt.NewRegistry,
	ProvideSlotGenerator,
	wire.Bind(new(presentation.ChatModelFactory), new(*llm.EinoFactory)),
)

// ImageSet 图片提供者集合
var ImageSet = wire.NewSet(
	ProvidePexelsClient,
	ProvideImageResolver,
	ProvideImageDownloader,
)

// PresentationSet 应用服务提供者集合
var PresentationSet = wire.NewSet(
	presentation.NewService,
)

// RouterSet 路由器提供者集合
var RouterSet = wire.NewSet(
	handler.NewHealthHandler,
	handler.NewPresentationHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)

// ProvideLocalStore 提供本地磁盘存储
func ProvideLocalStore(cfg *config.Config) (*local.Store, error) {
	return local.NewStore(&cfg.Storage.Local)
}

// ProvidePexelsClient 提供 Pexels 客户端
func ProvidePexelsClient(cfg *config.Config) *pexels.Client {
	return pexels.NewClient(&cfg.Image.Pexels)
}

// ProvideSlotGenerator 提供槽位生成器，使用默认模型提供商
func ProvideSlotGenerator(factory presentation.ChatModelFactory, prompts *prompt.Registry) *presentation.SlotGenerator {
	return presentation.NewSlotGenerator(factory, prompts, "")
}

// ProvideImageResolver 提供图片解析器。未配置 API Key 时解析器为空实现。
func ProvideImageResolver(cfg *config.Config, client *pexels.Client) *presentation.ImageResolver {
	if !client.Configured() {
		return presentation.NewImageResolver(nil, 0)
	}
	return presentation.NewImageResolver(client, cfg.Generation.ImageTimeout)
}

// ProvideImageDownloader 提供图片下载器
func ProvideImageDownloader(client *pexels.Client) presentation.ImageDownloader {
	if !client.Configured() {
		return nil
	}
	return client
}
