package presentation

import (
	"eduslide-api/internal/domain/entity"
	"eduslide-api/internal/pptx"
)

// ThemeFor 将演示风格与配色主题映射为文档视觉主题。
// 风格决定底色明暗，配色主题决定强调色。
func ThemeFor(style entity.PresentationStyle, color entity.ColorTheme) pptx.Theme {
	theme := pptx.DefaultTheme()
	theme.Accent = accentFor(color)

	if style == entity.StyleTechnical {
		theme.Background = "14181F"
		theme.TitleColor = "F2F4F8"
		theme.BodyColor = "D8DCE3"
		theme.SubtitleColor = "9AA3AF"
	}
	return theme
}

func accentFor(color entity.ColorTheme) string {
	switch color {
	case entity.ThemePurple:
		return "8E44AD"
	case entity.ThemeGreen:
		return "2ECC71"
	case entity.ThemeOrange:
		return "E67E22"
	default:
		return "3478F6"
	}
}
