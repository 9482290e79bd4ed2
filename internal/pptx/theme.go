// Package pptx 实现 OOXML PresentationML (.pptx) 文档写入。
// .pptx 本质是一个 zip 包，内部为若干 XML part 与关系文件。
package pptx

// Theme 文档级视觉主题。颜色为 RRGGBB 十六进制（不带 #），
// 整个文档只应用一个主题，不支持逐页覆盖。
type Theme struct {
	Background    string
	TitleColor    string
	BodyColor     string
	SubtitleColor string
	Accent        string
	HeadingFont   string
	BodyFont      string
}

// DefaultTheme 干净的浅色默认主题
func DefaultTheme() Theme {
	return Theme{
		Background:    "F5F6FA",
		TitleColor:    "141414",
		BodyColor:     "1E1E1E",
		SubtitleColor: "5A5A5A",
		Accent:        "3478F6",
		HeadingFont:   "Calibri",
		BodyFont:      "Calibri",
	}
}

// normalize 补齐缺失字段，保证写入时总有合法颜色
func (t Theme) normalize() Theme {
	def := DefaultTheme()
	if t.Background == "" {
		t.Background = def.Background
	}
	if t.TitleColor == "" {
		t.TitleColor = def.TitleColor
	}
	if t.BodyColor == "" {
		t.BodyColor = def.BodyColor
	}
	if t.SubtitleColor == "" {
		t.SubtitleColor = def.SubtitleColor
	}
	if t.Accent == "" {
		t.Accent = def.Accent
	}
	if t.HeadingFont == "" {
		t.HeadingFont = def.HeadingFont
	}
	if t.BodyFont == "" {
		t.BodyFont = def.BodyFont
	}
	return t
}
