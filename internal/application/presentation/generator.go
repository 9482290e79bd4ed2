package presentation

import (
	"context"
	"time"

	"eduslide-api/internal/domain/entity"
	"eduslide-api/internal/workflow/prompt"
	"eduslide-api/pkg/logger"
	"eduslide-api/pkg/metrics"
)

// SlotGenerator 负责单个槽位的模型调用与解析。
// 所有方法都不返回错误：模型或解析失败时退化为确定性占位内容。
type SlotGenerator struct {
	factory  ChatModelFactory
	prompts  *prompt.Registry
	provider string
}

// NewSlotGenerator 创建槽位生成器，provider 为空时使用默认提供商
func NewSlotGenerator(factory ChatModelFactory, prompts *prompt.Registry, provider string) *SlotGenerator {
	return &SlotGenerator{
		factory:  factory,
		prompts:  prompts,
		provider: provider,
	}
}

// GenerateContent 生成一张内容页。调用链上任何失败都落到回退内容。
func (g *SlotGenerator) GenerateContent(ctx context.Context, params GenerationParams) (entity.SlideContent, Origin) {
	raw, err := g.invoke(ctx, prompt.PromptSlideContentV1, map[string]any{
		"slide_index": params.SlideIndex,
		"slide_count": params.SlideCount,
		"topic":       params.Topic,
		"language":    params.Language,
		"audience":    params.Audience,
		"complexity":  params.Complexity,
		"style":       params.Style,
	})
	if err != nil {
		logger.Warn(ctx, "slide content generation failed, using fallback",
			"slide_index", params.SlideIndex, "error", err)
		metrics.SlotContentTotal.WithLabelValues("content", string(OriginFallback)).Inc()
		return FallbackSlideContent(params.Topic, params.SlideIndex), OriginFallback
	}
	content, origin := ParseSlideContent(raw, params.Topic, params.SlideIndex)
	metrics.SlotContentTotal.WithLabelValues("content", string(origin)).Inc()
	return content, origin
}

// GenerateQuiz 生成测验页，失败语义与内容页一致
func (g *SlotGenerator) GenerateQuiz(ctx context.Context, params GenerationParams) (entity.QuizContent, Origin) {
	raw, err := g.invoke(ctx, prompt.PromptQuizV1, map[string]any{
		"topic":    params.Topic,
		"language": params.Language,
		"audience": params.Audience,
	})
	if err != nil {
		logger.Warn(ctx, "quiz generation failed, using fallback", "error", err)
		metrics.SlotContentTotal.WithLabelValues("quiz", string(OriginFallback)).Inc()
		return FallbackQuizContent(params.Topic), OriginFallback
	}
	quiz, origin := ParseQuizContent(raw, params.Topic)
	metrics.SlotContentTotal.WithLabelValues("quiz", string(origin)).Inc()
	return quiz, origin
}

func (g *SlotGenerator) invoke(ctx context.Context, id prompt.PromptID, vars map[string]any) (string, error) {
	tpl, err := g.prompts.ChatTemplate(id)
	if err != nil {
		return "", err
	}
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", err
	}
	chatModel, err := g.factory.Get(ctx, g.provider)
	if err != nil {
		return "", err
	}

	start := time.Now()
	resp, err := chatModel.Generate(ctx, msgs)
	metrics.LLMCallDuration.WithLabelValues(g.providerLabel()).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

func (g *SlotGenerator) providerLabel() string {
	if g.provider == "" {
		return "default"
	}
	return g.provider
}
