package presentation

import (
	"eduslide-api/internal/domain/entity"
)

// BuildPlan 由配置构建幻灯片提纲：
// SlideCount 个内容槽位（序号从 1 开始），启用测验时追加一个测验槽位。
// 纯函数，不触达模型。
func BuildPlan(cfg *entity.SlideConfiguration) entity.SlidePlan {
	slots := make([]entity.Slot, 0, cfg.SlideCount+1)
	for i := 1; i <= cfg.SlideCount; i++ {
		slots = append(slots, entity.Slot{Index: i, Kind: entity.SlotContent})
	}
	if cfg.IncludeQuiz {
		slots = append(slots, entity.Slot{Index: cfg.SlideCount + 1, Kind: entity.SlotQuiz})
	}
	return entity.SlidePlan{Slots: slots}
}

// GenerationParams 单个槽位的提示词参数
type GenerationParams struct {
	Topic      string
	SlideIndex int
	SlideCount int
	Audience   string
	Style      string
	Complexity string
	Language   string
}

// ParamsForSlot 将配置与槽位序号展开为提示词参数
func ParamsForSlot(cfg *entity.SlideConfiguration, slot entity.Slot) GenerationParams {
	return GenerationParams{
		Topic:      cfg.Topic,
		SlideIndex: slot.Index,
		SlideCount: cfg.SlideCount,
		Audience:   cfg.AudienceDescription(),
		Style:      cfg.StyleDescription(),
		Complexity: complexityFor(cfg.Audience),
		Language:   languageInstruction(cfg.Language),
	}
}

// complexityFor 受众层级决定讲解深度
func complexityFor(level entity.AudienceLevel) string {
	switch level {
	case entity.AudienceElementary:
		return "very simple, concrete, with everyday analogies"
	case entity.AudienceMiddle:
		return "simple but precise, introducing proper terminology"
	case entity.AudienceHigh:
		return "moderately advanced, assuming basic subject background"
	case entity.AudienceCollege:
		return "advanced, rigorous, citing underlying principles"
	case entity.AudienceProfessional:
		return "expert-level, practical, focused on application"
	default:
		return "moderately advanced, assuming basic subject background"
	}
}

// languageInstruction 提示词中的语言要求，仅透传不做结构处理
func languageInstruction(lang entity.Language) string {
	switch lang {
	case entity.LanguageHindi:
		return "Hindi"
	case entity.LanguageBilingual:
		return "English with Hindi translations for key terms"
	default:
		return "English"
	}
}
