// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"time"

	"eduslide-api/internal/domain/entity"
)

// GeneratePresentationRequest 生成演示文稿请求。
// 枚举与边界的最终裁决在领域校验，binding 标签只做初筛。
type GeneratePresentationRequest struct {
	Topic         string `json:"topic" binding:"required,max=300"`
	AudienceLevel string `json:"audience_level,omitempty"`
	NumSlides     int    `json:"num_slides,omitempty" binding:"omitempty,gte=1,lte=50"`
	Style         string `json:"presentation_style,omitempty"`
	ColorTheme    string `json:"color_theme,omitempty"`
	Language      string `json:"language,omitempty"`
	IncludeImages *bool  `json:"include_images,omitempty"`
	SpeakerNotes  *bool  `json:"speaker_notes,omitempty"`
	IncludeQuiz   *bool  `json:"include_quiz,omitempty"`
}

// ToConfiguration 转换为领域配置，空字段填入默认值
func (r *GeneratePresentationRequest) ToConfiguration() *entity.SlideConfiguration {
	cfg := &entity.SlideConfiguration{
		Topic:         r.Topic,
		Audience:      entity.AudienceHigh,
		SlideCount:    8,
		Style:         entity.StyleAcademic,
		Theme:         entity.ThemeBlue,
		Language:      entity.LanguageEnglish,
		IncludeImages: true,
		SpeakerNotes:  true,
		IncludeQuiz:   false,
	}
	if r.AudienceLevel != "" {
		cfg.Audience = entity.AudienceLevel(r.AudienceLevel)
	}
	if r.NumSlides > 0 {
		cfg.SlideCount = r.NumSlides
	}
	if r.Style != "" {
		cfg.Style = entity.PresentationStyle(r.Style)
	}
	if r.ColorTheme != "" {
		cfg.Theme = entity.ColorTheme(r.ColorTheme)
	}
	if r.Language != "" {
		cfg.Language = entity.Language(r.Language)
	}
	if r.IncludeImages != nil {
		cfg.IncludeImages = *r.IncludeImages
	}
	if r.SpeakerNotes != nil {
		cfg.SpeakerNotes = *r.SpeakerNotes
	}
	if r.IncludeQuiz != nil {
		cfg.IncludeQuiz = *r.IncludeQuiz
	}
	return cfg
}

// SlideSummary 单页内容摘要
type SlideSummary struct {
	Index    int      `json:"index"`
	Kind     string   `json:"kind"`
	Heading  string   `json:"heading,omitempty"`
	Bullets  []string `json:"bullets,omitempty"`
	Question string   `json:"question,omitempty"`
	HasImage bool     `json:"has_image"`
}

// PresentationResponse 生成结果响应
type PresentationResponse struct {
	PresentationID   string         `json:"presentation_id"`
	TotalSlides      int            `json:"total_slides"`
	SizeBytes        int64          `json:"size_bytes"`
	Slides           []SlideSummary `json:"slides"`
	GenerationTimeMs int64          `json:"generation_time_ms"`
	CreatedAt        time.Time      `json:"created_at"`
}

// NewPresentationResponse 由生成结果构造响应
func NewPresentationResponse(doc *entity.GeneratedDocument, elapsed time.Duration) PresentationResponse {
	slides := make([]SlideSummary, 0, len(doc.Slots))
	for _, fs := range doc.Slots {
		s := SlideSummary{
			Index:    fs.Slot.Index,
			Kind:     string(fs.Slot.Kind),
			HasImage: doc.Images[fs.Slot.Index] != nil,
		}
		if fs.Content != nil {
			s.Heading = fs.Content.Heading
			s.Bullets = fs.Content.Bullets
		}
		if fs.Quiz != nil {
			s.Question = fs.Quiz.Question
		}
		slides = append(slides, s)
	}
	return PresentationResponse{
		PresentationID:   doc.ID,
		TotalSlides:      doc.TotalSlides(),
		SizeBytes:        doc.TotalSize,
		Slides:           slides,
		GenerationTimeMs: elapsed.Milliseconds(),
		CreatedAt:        doc.CreatedAt,
	}
}
