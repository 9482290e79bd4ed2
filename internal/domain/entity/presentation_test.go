package entity

import (
	"errors"
	"strings"
	"testing"
)

func validConfig() SlideConfiguration {
	return SlideConfiguration{
		Topic:      "Plate Tectonics",
		Audience:   AudienceHigh,
		SlideCount: 8,
		Style:      StyleAcademic,
		Theme:      ThemeBlue,
		Language:   LanguageEnglish,
	}
}

func TestSlideConfiguration_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*SlideConfiguration)
		wantField string
	}{
		{"valid", func(c *SlideConfiguration) {}, ""},
		{"topic too short", func(c *SlideConfiguration) { c.Topic = "hi" }, "topic"},
		{"topic whitespace only", func(c *SlideConfiguration) { c.Topic = "       " }, "topic"},
		{"topic too long", func(c *SlideConfiguration) { c.Topic = strings.Repeat("a", 301) }, "topic"},
		{"topic at max", func(c *SlideConfiguration) { c.Topic = strings.Repeat("a", 300) }, ""},
		{"multibyte topic counts runes", func(c *SlideConfiguration) { c.Topic = strings.Repeat("光", 300) }, ""},
		{"too few slides", func(c *SlideConfiguration) { c.SlideCount = 2 }, "num_slides"},
		{"too many slides", func(c *SlideConfiguration) { c.SlideCount = 16 }, "num_slides"},
		{"slides at bounds", func(c *SlideConfiguration) { c.SlideCount = 15 }, ""},
		{"unknown audience", func(c *SlideConfiguration) { c.Audience = "toddlers" }, "audience_level"},
		{"unknown style", func(c *SlideConfiguration) { c.Style = "chaotic" }, "presentation_style"},
		{"unknown theme", func(c *SlideConfiguration) { c.Theme = "mauve" }, "color_theme"},
		{"unknown language", func(c *SlideConfiguration) { c.Language = "latin" }, "language"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestSlidePlan_Accessors(t *testing.T) {
	plan := SlidePlan{Slots: []Slot{
		{Index: 1, Kind: SlotContent},
		{Index: 2, Kind: SlotContent},
		{Index: 3, Kind: SlotQuiz},
	}}
	if plan.ContentSlots() != 2 {
		t.Errorf("content slots = %d", plan.ContentSlots())
	}
	if !plan.HasQuiz() {
		t.Error("HasQuiz = false")
	}

	empty := SlidePlan{}
	if empty.HasQuiz() {
		t.Error("empty plan reports quiz")
	}
}

func TestDescriptions_NonEmptyForAllEnums(t *testing.T) {
	for _, a := range []AudienceLevel{AudienceElementary, AudienceMiddle, AudienceHigh, AudienceCollege, AudienceProfessional} {
		cfg := validConfig()
		cfg.Audience = a
		if cfg.AudienceDescription() == "" {
			t.Errorf("empty audience description for %s", a)
		}
	}
	for _, s := range []PresentationStyle{StyleAcademic, StyleStorytelling, StyleInteractive, StyleTechnical, StyleVisual} {
		cfg := validConfig()
		cfg.Style = s
		if cfg.StyleDescription() == "" {
			t.Errorf("empty style description for %s", s)
		}
	}
}
