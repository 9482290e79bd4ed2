package presentation

import (
	"context"
	"errors"
	"testing"
	"time"

	"eduslide-api/internal/domain/entity"
)

type fakeSearcher struct {
	calls   []string
	results map[string]*entity.ImageReference
	err     error
}

func (f *fakeSearcher) Search(ctx context.Context, keyword string) (*entity.ImageReference, error) {
	f.calls = append(f.calls, keyword)
	if f.err != nil {
		return nil, f.err
	}
	return f.results[keyword], nil
}

func TestImageResolver_FirstKeywordWins(t *testing.T) {
	searcher := &fakeSearcher{
		results: map[string]*entity.ImageReference{
			"ocean": {URL: "https://example.com/ocean.jpg"},
		},
	}
	r := NewImageResolver(searcher, time.Second)

	ref := r.Resolve(context.Background(), []string{"ocean", "waves", "water"})
	if ref == nil || ref.URL != "https://example.com/ocean.jpg" {
		t.Fatalf("ref = %+v", ref)
	}
	if len(searcher.calls) != 1 {
		t.Errorf("calls = %v, want short-circuit after first hit", searcher.calls)
	}
}

func TestImageResolver_FallsThroughToLaterKeyword(t *testing.T) {
	searcher := &fakeSearcher{
		results: map[string]*entity.ImageReference{
			"waves": {URL: "https://example.com/waves.jpg"},
		},
	}
	r := NewImageResolver(searcher, time.Second)

	ref := r.Resolve(context.Background(), []string{"ocean", "waves", "water"})
	if ref == nil || ref.URL != "https://example.com/waves.jpg" {
		t.Fatalf("ref = %+v", ref)
	}
	if len(searcher.calls) != 2 {
		t.Errorf("calls = %v", searcher.calls)
	}
}

func TestImageResolver_OnlyFirstThreeKeywords(t *testing.T) {
	searcher := &fakeSearcher{results: map[string]*entity.ImageReference{}}
	r := NewImageResolver(searcher, time.Second)

	ref := r.Resolve(context.Background(), []string{"a", "b", "c", "d", "e"})
	if ref != nil {
		t.Fatalf("ref = %+v, want nil", ref)
	}
	if len(searcher.calls) != maxImageKeywords {
		t.Errorf("calls = %v, want %d lookups", searcher.calls, maxImageKeywords)
	}
}

func TestImageResolver_AllFailuresYieldNil(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("provider down")}
	r := NewImageResolver(searcher, time.Second)

	if ref := r.Resolve(context.Background(), []string{"a", "b"}); ref != nil {
		t.Errorf("ref = %+v, want nil on provider failure", ref)
	}
}

func TestImageResolver_EmptyKeywords(t *testing.T) {
	searcher := &fakeSearcher{}
	r := NewImageResolver(searcher, time.Second)

	if ref := r.Resolve(context.Background(), nil); ref != nil {
		t.Errorf("ref = %+v, want nil", ref)
	}
	if len(searcher.calls) != 0 {
		t.Errorf("calls = %v, want none", searcher.calls)
	}
}

func TestImageResolver_NilSearcher(t *testing.T) {
	r := NewImageResolver(nil, time.Second)
	if ref := r.Resolve(context.Background(), []string{"a"}); ref != nil {
		t.Errorf("ref = %+v, want nil", ref)
	}
}
