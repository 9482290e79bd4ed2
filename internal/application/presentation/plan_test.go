package presentation

import (
	"testing"

	"eduslide-api/internal/domain/entity"
)

func baseConfig() *entity.SlideConfiguration {
	return &entity.SlideConfiguration{
		Topic:      "The Water Cycle",
		Audience:   entity.AudienceMiddle,
		SlideCount: 6,
		Style:      entity.StyleAcademic,
		Theme:      entity.ThemeBlue,
		Language:   entity.LanguageEnglish,
	}
}

func TestBuildPlan_ContentOnly(t *testing.T) {
	cfg := baseConfig()
	plan := BuildPlan(cfg)

	if len(plan.Slots) != 6 {
		t.Fatalf("slots = %d, want 6", len(plan.Slots))
	}
	for i, s := range plan.Slots {
		if s.Index != i+1 {
			t.Errorf("slot %d index = %d, want %d", i, s.Index, i+1)
		}
		if s.Kind != entity.SlotContent {
			t.Errorf("slot %d kind = %s", i, s.Kind)
		}
	}
	if plan.HasQuiz() {
		t.Error("plan should not have quiz slot")
	}
}

func TestBuildPlan_WithQuiz(t *testing.T) {
	cfg := baseConfig()
	cfg.IncludeQuiz = true
	plan := BuildPlan(cfg)

	if len(plan.Slots) != 7 {
		t.Fatalf("slots = %d, want 7", len(plan.Slots))
	}
	last := plan.Slots[len(plan.Slots)-1]
	if last.Kind != entity.SlotQuiz {
		t.Errorf("last slot kind = %s, want quiz", last.Kind)
	}
	if last.Index != 7 {
		t.Errorf("quiz index = %d, want 7", last.Index)
	}
	if plan.ContentSlots() != 6 {
		t.Errorf("content slots = %d, want 6", plan.ContentSlots())
	}
}

func TestParamsForSlot(t *testing.T) {
	cfg := baseConfig()
	params := ParamsForSlot(cfg, entity.Slot{Index: 3, Kind: entity.SlotContent})

	if params.Topic != cfg.Topic {
		t.Errorf("topic = %q", params.Topic)
	}
	if params.SlideIndex != 3 || params.SlideCount != 6 {
		t.Errorf("index/count = %d/%d", params.SlideIndex, params.SlideCount)
	}
	if params.Audience == "" || params.Complexity == "" || params.Style == "" {
		t.Errorf("descriptions must be non-empty: %+v", params)
	}
	if params.Language != "English" {
		t.Errorf("language = %q", params.Language)
	}
}

func TestClampBullets(t *testing.T) {
	t.Run("merges overflow", func(t *testing.T) {
		in := []string{"a", "b", "c", "d", "e", "f", "g"}
		out := clampBullets(in)
		if len(out) != maxBulletsPerSlide {
			t.Fatalf("len = %d, want %d", len(out), maxBulletsPerSlide)
		}
		last := out[len(out)-1]
		if got, want := last[:17], "Further details: "; got != want {
			t.Errorf("tail = %q", last)
		}
	})
	t.Run("truncates long bullet", func(t *testing.T) {
		long := make([]rune, 400)
		for i := range long {
			long[i] = 'x'
		}
		out := clampBullets([]string{string(long)})
		if got := len([]rune(out[0])); got > maxBulletRunes {
			t.Errorf("bullet length = %d runes, want <= %d", got, maxBulletRunes)
		}
	})
	t.Run("drops blanks", func(t *testing.T) {
		out := clampBullets([]string{" ", "keep", ""})
		if len(out) != 1 || out[0] != "keep" {
			t.Errorf("out = %v", out)
		}
	})
}
