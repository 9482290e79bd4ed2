package presentation

import (
	"reflect"
	"testing"

	"eduslide-api/internal/domain/entity"
)

func TestParseSlideContent_WellFormed(t *testing.T) {
	raw := `{"heading":"Photosynthesis Basics","bullets":["Light reactions","Calvin cycle"],"summary":"How plants make food.","keywords":["photosynthesis","chlorophyll"]}`

	content, origin := ParseSlideContent(raw, "Photosynthesis", 1)
	if origin != OriginModel {
		t.Fatalf("origin = %s, want %s", origin, OriginModel)
	}
	if content.Heading != "Photosynthesis Basics" {
		t.Errorf("heading = %q", content.Heading)
	}
	if len(content.Bullets) != 2 {
		t.Errorf("bullets = %v", content.Bullets)
	}
	if content.Keywords[0] != "photosynthesis" {
		t.Errorf("keywords = %v", content.Keywords)
	}
}

func TestParseSlideContent_FencedWithProse(t *testing.T) {
	raw := "Sure! Here is the slide you asked for:\n```json\n{\"heading\":\"X\",\"bullets\":[\"a\"],\"summary\":\"s\",\"keywords\":[\"k\"]}\n```\nLet me know if you need changes."

	content, origin := ParseSlideContent(raw, "Topic", 2)
	if origin != OriginModel {
		t.Fatalf("origin = %s, want %s", origin, OriginModel)
	}
	if content.Heading != "X" {
		t.Errorf("heading = %q, want X", content.Heading)
	}
}

func TestParseSlideContent_LanguageTagWithoutFence(t *testing.T) {
	raw := `json {"heading":"Tagged","bullets":["b"],"summary":"s","keywords":["k"]}`

	content, origin := ParseSlideContent(raw, "Topic", 1)
	if origin != OriginModel {
		t.Fatalf("origin = %s, want %s", origin, OriginModel)
	}
	if content.Heading != "Tagged" {
		t.Errorf("heading = %q", content.Heading)
	}
}

func TestParseSlideContent_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"prose only", "I could not generate the slide, sorry."},
		{"truncated json", `{"heading":"Incomplete","bullets":["a","b"`},
		{"array not object", `["a","b","c"]`},
		{"unbalanced braces", "}{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, origin := ParseSlideContent(tt.raw, "Gravity", 3)
			if origin != OriginFallback {
				t.Fatalf("origin = %s, want %s", origin, OriginFallback)
			}
			want := FallbackSlideContent("Gravity", 3)
			if !reflect.DeepEqual(content, want) {
				t.Errorf("content = %+v, want fallback %+v", content, want)
			}
		})
	}
}

func TestParseSlideContent_PartialFields(t *testing.T) {
	// 合法 JSON 但缺少 bullets 且 heading 类型错误
	raw := `{"heading":42,"summary":"only summary","keywords":["k1"]}`

	content, origin := ParseSlideContent(raw, "Gravity", 2)
	if origin != OriginModel {
		t.Fatalf("origin = %s, want %s", origin, OriginModel)
	}
	fallback := FallbackSlideContent("Gravity", 2)
	if content.Heading != fallback.Heading {
		t.Errorf("heading = %q, want fallback %q", content.Heading, fallback.Heading)
	}
	if !reflect.DeepEqual(content.Bullets, fallback.Bullets) {
		t.Errorf("bullets = %v, want fallback %v", content.Bullets, fallback.Bullets)
	}
	if content.Summary != "only summary" {
		t.Errorf("summary = %q, model value should survive", content.Summary)
	}
}

func TestParseSlideContent_FencedHeadingOnly(t *testing.T) {
	raw := "```json\n{\"heading\":\"X\"}\n```"

	content, origin := ParseSlideContent(raw, "Magnetism", 1)
	if origin != OriginModel {
		t.Fatalf("origin = %s, want %s", origin, OriginModel)
	}
	if content.Heading != "X" {
		t.Errorf("heading = %q, want X", content.Heading)
	}
	fallback := FallbackSlideContent("Magnetism", 1)
	if !reflect.DeepEqual(content.Bullets, fallback.Bullets) {
		t.Errorf("bullets = %v, want per-field fallback", content.Bullets)
	}
	if content.Summary != fallback.Summary {
		t.Errorf("summary = %q", content.Summary)
	}
}

func TestParseSlideContent_Deterministic(t *testing.T) {
	raw := "complete nonsense, not json at all"
	first, _ := ParseSlideContent(raw, "Cells", 4)
	for i := 0; i < 5; i++ {
		again, _ := ParseSlideContent(raw, "Cells", 4)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %+v vs %+v", i, again, first)
		}
	}
}

func TestParseQuizContent_WellFormed(t *testing.T) {
	raw := `{"question":"What powers photosynthesis?","options":["Light","Heat","Sound","Wind"],"correct_index":0}`

	quiz, origin := ParseQuizContent(raw, "Photosynthesis")
	if origin != OriginModel {
		t.Fatalf("origin = %s, want %s", origin, OriginModel)
	}
	if quiz.Question != "What powers photosynthesis?" {
		t.Errorf("question = %q", quiz.Question)
	}
	if len(quiz.Options) != entity.QuizOptionCount {
		t.Errorf("options = %v", quiz.Options)
	}
	if quiz.CorrectIndex != 0 {
		t.Errorf("correct_index = %d", quiz.CorrectIndex)
	}
}

func TestParseQuizContent_OptionCountNormalized(t *testing.T) {
	t.Run("too few", func(t *testing.T) {
		raw := `{"question":"Q?","options":["only one"],"correct_index":0}`
		quiz, _ := ParseQuizContent(raw, "Topic")
		if len(quiz.Options) != entity.QuizOptionCount {
			t.Fatalf("options = %v, want %d entries", quiz.Options, entity.QuizOptionCount)
		}
		if quiz.Options[0] != "only one" {
			t.Errorf("model option should be kept first, got %v", quiz.Options)
		}
	})
	t.Run("too many", func(t *testing.T) {
		raw := `{"question":"Q?","options":["a","b","c","d","e","f"],"correct_index":1}`
		quiz, _ := ParseQuizContent(raw, "Topic")
		if len(quiz.Options) != entity.QuizOptionCount {
			t.Fatalf("options = %v", quiz.Options)
		}
	})
}

func TestParseQuizContent_BadCorrectIndex(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"out of range", `{"question":"Q?","options":["a","b","c","d"],"correct_index":7}`},
		{"negative", `{"question":"Q?","options":["a","b","c","d"],"correct_index":-2}`},
		{"fractional", `{"question":"Q?","options":["a","b","c","d"],"correct_index":1.5}`},
		{"string", `{"question":"Q?","options":["a","b","c","d"],"correct_index":"two"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz, _ := ParseQuizContent(tt.raw, "Topic")
			if quiz.CorrectIndex != 0 {
				t.Errorf("correct_index = %d, want 0", quiz.CorrectIndex)
			}
		})
	}
}

func TestParseQuizContent_Malformed(t *testing.T) {
	quiz, origin := ParseQuizContent("no json here", "Gravity")
	if origin != OriginFallback {
		t.Fatalf("origin = %s, want %s", origin, OriginFallback)
	}
	want := FallbackQuizContent("Gravity")
	if !reflect.DeepEqual(quiz, want) {
		t.Errorf("quiz = %+v, want %+v", quiz, want)
	}
}

func TestFallbackSlideContent_Invariants(t *testing.T) {
	content := FallbackSlideContent("Black Holes", 5)
	if content.Heading == "" {
		t.Error("heading must not be empty")
	}
	if len(content.Bullets) == 0 {
		t.Error("bullets must not be empty")
	}
	if len(content.Keywords) == 0 || content.Keywords[0] != "Black Holes" {
		t.Errorf("keywords = %v, topic must lead", content.Keywords)
	}
}
