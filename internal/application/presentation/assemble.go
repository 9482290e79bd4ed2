package presentation

import (
	"fmt"
	"strings"

	"eduslide-api/internal/domain/entity"
	"eduslide-api/internal/pptx"
)

// 正文排版上限：超长列表会溢出文本框
const (
	maxBulletsPerSlide = 5
	maxBulletRunes     = 200
)

// clampBullets 限制每页要点数量与单条长度。
// 超出数量上限的要点合并为一条收尾；超长要点按 rune 截断。
func clampBullets(bullets []string) []string {
	var out []string
	for _, b := range bullets {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		out = append(out, truncateRunes(b, maxBulletRunes))
	}
	if len(out) > maxBulletsPerSlide {
		tail := strings.Join(out[maxBulletsPerSlide-1:], "; ")
		out = out[:maxBulletsPerSlide-1]
		out = append(out, truncateRunes("Further details: "+tail, maxBulletRunes))
	}
	return out
}

func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}

// assembleDeck 按槽位顺序组装文档：标题页在前，随后严格按槽位序号
// 排列内容页与测验页。imageBytes 以槽位序号寻址，缺失即无图。
func assembleDeck(cfg *entity.SlideConfiguration, slots []entity.FilledSlot, imageBytes map[int][]byte, imageRefs map[int]*entity.ImageReference) ([]byte, int, error) {
	builder := pptx.NewBuilder(ThemeFor(cfg.Style, cfg.Theme), cfg.Topic)
	builder.AddTitleSlide(cfg.Topic, "For "+cfg.AudienceDescription())

	for _, fs := range slots {
		switch fs.Slot.Kind {
		case entity.SlotContent:
			if fs.Content == nil {
				return nil, 0, fmt.Errorf("content slot %d has no content", fs.Slot.Index)
			}
			var img *pptx.Image
			if data, ok := imageBytes[fs.Slot.Index]; ok && len(data) > 0 {
				alt := ""
				if ref := imageRefs[fs.Slot.Index]; ref != nil {
					alt = ref.Alt
				}
				img = &pptx.Image{Data: data, Alt: alt}
			}
			notes := ""
			if cfg.SpeakerNotes && fs.Content.Summary != "" {
				notes = fs.Content.Summary
			}
			builder.AddContentSlide(fs.Content.Heading, clampBullets(fs.Content.Bullets), img, notes)
		case entity.SlotQuiz:
			if fs.Quiz == nil {
				return nil, 0, fmt.Errorf("quiz slot %d has no content", fs.Slot.Index)
			}
			builder.AddQuizSlide(fs.Quiz.Question, fs.Quiz.Options, fs.Quiz.CorrectIndex)
		default:
			return nil, 0, fmt.Errorf("unknown slot kind %q at index %d", fs.Slot.Kind, fs.Slot.Index)
		}
	}

	data, err := builder.Bytes()
	if err != nil {
		return nil, 0, err
	}
	return data, builder.SlideCount(), nil
}
