package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "texts.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestSaveAndGetText(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	created := time.Unix(1700000000, 0).UTC()
	if _, err := st.SaveText(ctx, "poem", "床前明月光，疑是地上霜。", created); err != nil {
		t.Fatalf("save text: %v", err)
	}
	text, err := st.GetText(ctx, "poem")
	if err != nil {
		t.Fatalf("get text: %v", err)
	}
	if text.Content != "床前明月光，疑是地上霜。" || !text.CreatedAt.Equal(created) {
		t.Fatalf("unexpected text: %+v", text)
	}
	if _, err := st.GetText(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveTextReplacesByName(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	first, err := st.SaveText(ctx, "note", "一", time.Unix(1, 0))
	if err != nil {
		t.Fatalf("save text: %v", err)
	}
	second, err := st.SaveText(ctx, "note", "二", time.Unix(2, 0))
	if err != nil {
		t.Fatalf("save text: %v", err)
	}
	if first != second {
		t.Fatalf("expected same row id, got %d and %d", first, second)
	}
	text, err := st.GetText(ctx, "note")
	if err != nil {
		t.Fatalf("get text: %v", err)
	}
	if text.Content != "二" {
		t.Fatalf("expected replaced content, got %q", text.Content)
	}
}

func TestListAndDeleteTexts(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	for i, name := range []string{"b", "a", "c"} {
		if _, err := st.SaveText(ctx, name, "你好", time.Unix(int64(i), 0)); err != nil {
			t.Fatalf("save text: %v", err)
		}
	}
	texts, err := st.ListTexts(ctx)
	if err != nil {
		t.Fatalf("list texts: %v", err)
	}
	if len(texts) != 3 || texts[0].Name != "b" || texts[2].Name != "c" {
		t.Fatalf("unexpected order: %+v", texts)
	}
	if err := st.DeleteText(ctx, "a"); err != nil {
		t.Fatalf("delete text: %v", err)
	}
	if err := st.DeleteText(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	texts, err = st.ListTexts(ctx)
	if err != nil {
		t.Fatalf("list texts: %v", err)
	}
	if len(texts) != 2 {
		t.Fatalf("expected 2 texts, got %d", len(texts))
	}
}
