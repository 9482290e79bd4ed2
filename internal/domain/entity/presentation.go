// Package entity 定义领域实体
package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// AudienceLevel 受众层级
type AudienceLevel string

const (
	AudienceElementary   AudienceLevel = "elementary"
	AudienceMiddle       AudienceLevel = "middle"
	AudienceHigh         AudienceLevel = "high"
	AudienceCollege      AudienceLevel = "college"
	AudienceProfessional AudienceLevel = "professional"
)

// PresentationStyle 演示风格
type PresentationStyle string

const (
	StyleAcademic     PresentationStyle = "academic"
	StyleStorytelling PresentationStyle = "storytelling"
	StyleInteractive  PresentationStyle = "interactive"
	StyleTechnical    PresentationStyle = "technical"
	StyleVisual       PresentationStyle = "visual"
)

// ColorTheme 配色主题
type ColorTheme string

const (
	ThemeBlue   ColorTheme = "blue"
	ThemePurple ColorTheme = "purple"
	ThemeGreen  ColorTheme = "green"
	ThemeOrange ColorTheme = "orange"
)

// Language 输出语言。仅作为提示词变量透传，不影响生成结构。
type Language string

const (
	LanguageEnglish   Language = "english"
	LanguageHindi     Language = "hindi"
	LanguageBilingual Language = "bilingual"
)

// 话题长度边界（按 rune 计）
const (
	MinTopicRunes = 5
	MaxTopicRunes = 300

	MinSlideCount = 3
	MaxSlideCount = 15
)

// SlideConfiguration 一次生成请求的全部输入。生成开始后不可变。
type SlideConfiguration struct {
	Topic         string            `json:"topic"`
	Audience      AudienceLevel     `json:"audience_level"`
	SlideCount    int               `json:"num_slides"`
	Style         PresentationStyle `json:"presentation_style"`
	Theme         ColorTheme        `json:"color_theme"`
	Language      Language          `json:"language"`
	IncludeImages bool              `json:"include_images"`
	SpeakerNotes  bool              `json:"speaker_notes"`
	IncludeQuiz   bool              `json:"include_quiz"`
}

// ValidationError 配置校验错误，携带出错字段名
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate 校验配置。任何生成工作开始之前调用；失败时指明出错字段。
func (c *SlideConfiguration) Validate() error {
	topic := strings.TrimSpace(c.Topic)
	if n := utf8.RuneCountInString(topic); n < MinTopicRunes {
		return &ValidationError{Field: "topic", Reason: fmt.Sprintf("must be at least %d characters", MinTopicRunes)}
	} else if n > MaxTopicRunes {
		return &ValidationError{Field: "topic", Reason: fmt.Sprintf("must be at most %d characters", MaxTopicRunes)}
	}
	if c.SlideCount < MinSlideCount || c.SlideCount > MaxSlideCount {
		return &ValidationError{Field: "num_slides", Reason: fmt.Sprintf("must be between %d and %d", MinSlideCount, MaxSlideCount)}
	}
	switch c.Audience {
	case AudienceElementary, AudienceMiddle, AudienceHigh, AudienceCollege, AudienceProfessional:
	default:
		return &ValidationError{Field: "audience_level", Reason: fmt.Sprintf("unknown value %q", c.Audience)}
	}
	switch c.Style {
	case StyleAcademic, StyleStorytelling, StyleInteractive, StyleTechnical, StyleVisual:
	default:
		return &ValidationError{Field: "presentation_style", Reason: fmt.Sprintf("unknown value %q", c.Style)}
	}
	switch c.Theme {
	case ThemeBlue, ThemePurple, ThemeGreen, ThemeOrange:
	default:
		return &ValidationError{Field: "color_theme", Reason: fmt.Sprintf("unknown value %q", c.Theme)}
	}
	switch c.Language {
	case LanguageEnglish, LanguageHindi, LanguageBilingual:
	default:
		return &ValidationError{Field: "language", Reason: fmt.Sprintf("unknown value %q", c.Language)}
	}
	return nil
}

// AudienceDescription 受众的自然语言描述，用于提示词与标题页副标题
func (c *SlideConfiguration) AudienceDescription() string {
	switch c.Audience {
	case AudienceElementary:
		return "children studying in grades 1-5"
	case AudienceMiddle:
		return "students in grades 6-8"
	case AudienceHigh:
		return "class 9-12 students"
	case AudienceCollege:
		return "undergraduate learners"
	case AudienceProfessional:
		return "industry professionals"
	default:
		return "students"
	}
}

// StyleDescription 风格的自然语言描述，用于提示词
func (c *SlideConfiguration) StyleDescription() string {
	switch c.Style {
	case StyleAcademic:
		return "structured, clear, textbook-oriented"
	case StyleStorytelling:
		return "narrative with relatable scenarios and examples"
	case StyleInteractive:
		return "engaging, question-based, activity-driven"
	case StyleTechnical:
		return "precise, systematic, process-focused"
	case StyleVisual:
		return "minimal text, diagram-friendly, visual-oriented"
	default:
		return "clear and structured"
	}
}

// SlideContent 单张内容页的载荷。
// 不变式：Heading 非空；Bullets 非空（解析失败时由模板兜底填充）。
type SlideContent struct {
	Heading  string   `json:"heading"`
	Bullets  []string `json:"bullets"`
	Summary  string   `json:"summary,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// QuizContent 测验页载荷。
// 不变式：Options 恰好 4 个；CorrectIndex 在 [0, 3] 内。
type QuizContent struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// QuizOptionCount 测验固定选项数
const QuizOptionCount = 4

// ImageReference 已解析的图片引用。每页至多一张；缺失是正常状态。
type ImageReference struct {
	URL             string `json:"url"`
	Alt             string `json:"alt,omitempty"`
	Photographer    string `json:"photographer,omitempty"`
	PhotographerURL string `json:"photographer_url,omitempty"`
}

// SlotKind 槽位类型
type SlotKind string

const (
	SlotContent SlotKind = "content"
	SlotQuiz    SlotKind = "quiz"
)

// Slot 幻灯片计划中的一个槽位。Index 从 1 开始，即最终文档中
// 内容页的顺序（标题页隐含在最前）。
type Slot struct {
	Index int
	Kind  SlotKind
}

// SlidePlan 由配置派生的有序槽位序列：N 个内容槽位，测验槽位（若有）恒居末尾。
type SlidePlan struct {
	Slots []Slot
}

// ContentSlots 内容槽位数量
func (p *SlidePlan) ContentSlots() int {
	n := 0
	for _, s := range p.Slots {
		if s.Kind == SlotContent {
			n++
		}
	}
	return n
}

// HasQuiz 计划是否包含测验槽位
func (p *SlidePlan) HasQuiz() bool {
	return len(p.Slots) > 0 && p.Slots[len(p.Slots)-1].Kind == SlotQuiz
}

// FilledSlot 已填充的槽位：内容页或测验页之一
type FilledSlot struct {
	Slot    Slot
	Content *SlideContent
	Quiz    *QuizContent
}

// GeneratedDocument 最终产物。所有槽位填充、图片解析完成后创建，
// 落盘一次后不可变，凭生成的标识符寻址。
type GeneratedDocument struct {
	ID        string
	Config    SlideConfiguration
	Slots     []FilledSlot
	Images    map[int]*ImageReference // 槽位序号 -> 图片引用
	TotalSize int64
	CreatedAt time.Time
}

// TotalSlides 最终文档页数，标题页计入
func (d *GeneratedDocument) TotalSlides() int {
	return 1 + len(d.Slots)
}
