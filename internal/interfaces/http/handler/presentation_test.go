package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/gin-gonic/gin"

	"eduslide-api/internal/application/presentation"
	"eduslide-api/internal/config"
	"eduslide-api/internal/domain/repository"
	"eduslide-api/internal/workflow/prompt"
)

type stubChatModel struct {
	reply string
}

func (s *stubChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	return schema.AssistantMessage(s.reply, nil), nil
}

func (s *stubChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

type stubFactory struct{ m model.BaseChatModel }

func (s *stubFactory) Get(ctx context.Context, name string) (model.BaseChatModel, error) {
	return s.m, nil
}

type stubStore struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func (s *stubStore) Write(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key] = data
	return nil
}

func (s *stubStore) Read(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if data, ok := s.docs[key]; ok {
		return data, nil
	}
	return nil, repository.ErrDocumentNotFound
}

func (s *stubStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.docs[key]
	return ok, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *stubStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Generation.SlotTimeout = 10 * time.Second
	cfg.Generation.MaxConcurrentSlots = 4

	reply := `{"heading":"H","bullets":["one","two"],"summary":"s","keywords":["k"]}`
	gen := presentation.NewSlotGenerator(&stubFactory{m: &stubChatModel{reply: reply}}, prompt.NewRegistry(), "")
	store := &stubStore{docs: make(map[string][]byte)}
	svc := presentation.NewService(cfg, gen, presentation.NewImageResolver(nil, 0), nil, store)

	h := NewPresentationHandler(svc)
	engine := gin.New()
	engine.POST("/v1/presentations", h.Generate)
	engine.GET("/v1/presentations/:pid/download", h.Download)
	return engine, store
}

func TestPresentationHandler_Generate(t *testing.T) {
	engine, _ := newTestRouter(t)

	body := `{"topic":"The Solar System","num_slides":3,"include_images":false}`
	req := httptest.NewRequest(http.MethodPost, "/v1/presentations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			PresentationID string `json:"presentation_id"`
			TotalSlides    int    `json:"total_slides"`
			Slides         []struct {
				Kind string `json:"kind"`
			} `json:"slides"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.HasPrefix(resp.Data.PresentationID, "pres_") {
		t.Errorf("presentation_id = %q", resp.Data.PresentationID)
	}
	// 标题页 + 3 内容页
	if resp.Data.TotalSlides != 4 {
		t.Errorf("total_slides = %d", resp.Data.TotalSlides)
	}
	if len(resp.Data.Slides) != 3 {
		t.Errorf("slides = %d", len(resp.Data.Slides))
	}
}

func TestPresentationHandler_GenerateValidationError(t *testing.T) {
	engine, _ := newTestRouter(t)

	body := `{"topic":"The Solar System","num_slides":40}`
	req := httptest.NewRequest(http.MethodPost, "/v1/presentations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestPresentationHandler_GenerateBadBody(t *testing.T) {
	engine, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/presentations", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestPresentationHandler_Download(t *testing.T) {
	engine, store := newTestRouter(t)
	store.docs["pres_abc123abc123"] = []byte("pptx payload")

	req := httptest.NewRequest(http.MethodGet, "/v1/presentations/pres_abc123abc123/download", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != pptxContentType {
		t.Errorf("content-type = %q", got)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "eduslide_ai_pres_abc123abc123.pptx") {
		t.Errorf("content-disposition = %q", cd)
	}
	if w.Body.String() != "pptx payload" {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestPresentationHandler_DownloadNotFound(t *testing.T) {
	engine, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/presentations/pres_nope00000000/download", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}
