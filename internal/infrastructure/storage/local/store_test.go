package local

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"eduslide-api/internal/config"
	"eduslide-api/internal/domain/repository"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(&config.LocalStorageConfig{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestStore_WriteReadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	payload := []byte("pptx bytes")
	if err := store.Write(ctx, "pres_abc123def456", payload); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := store.Read(ctx, "pres_abc123def456")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("got %q", got)
	}

	ok, err := store.Exists(ctx, "pres_abc123def456")
	if err != nil || !ok {
		t.Errorf("Exists = %v, %v", ok, err)
	}

	// 磁盘上的文件名带 .pptx 后缀
	if _, err := os.Stat(filepath.Join(store.Dir(), "pres_abc123def456.pptx")); err != nil {
		t.Errorf("expected .pptx file on disk: %v", err)
	}
}

func TestStore_ReadMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Read(context.Background(), "pres_missing00000")
	if !errors.Is(err, repository.ErrDocumentNotFound) {
		t.Errorf("err = %v, want ErrDocumentNotFound", err)
	}

	ok, err := store.Exists(context.Background(), "pres_missing00000")
	if err != nil || ok {
		t.Errorf("Exists = %v, %v", ok, err)
	}
}

func TestStore_RejectsTraversalKeys(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{"../evil", "a/b", `a\b`, "", "  "} {
		if err := store.Write(ctx, key, []byte("x")); err == nil {
			t.Errorf("Write(%q) must fail", key)
		}
		if _, err := store.Read(ctx, key); err == nil {
			t.Errorf("Read(%q) must fail", key)
		}
	}
}

func TestStore_NoTempFilesLeftAfterWrite(t *testing.T) {
	store := newTestStore(t)

	if err := store.Write(context.Background(), "pres_aaaabbbbcccc", []byte("data")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	entries, err := os.ReadDir(store.Dir())
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if e.Name() != "pres_aaaabbbbcccc.pptx" {
			t.Errorf("unexpected file %s", e.Name())
		}
	}
}

func TestNewStore_EmptyDir(t *testing.T) {
	if _, err := NewStore(&config.LocalStorageConfig{Dir: "  "}); err == nil {
		t.Error("want error for empty dir")
	}
}
