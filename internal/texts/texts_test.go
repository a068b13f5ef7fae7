package texts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/zitype/internal/generator"
)

func TestArticlesDecode(t *testing.T) {
	articles, err := Articles()
	if err != nil {
		t.Fatalf("articles: %v", err)
	}
	if len(articles) == 0 {
		t.Fatalf("expected embedded articles")
	}
	for _, a := range articles {
		if a.Title == "" || strings.TrimSpace(a.Content) == "" {
			t.Fatalf("article missing title or content: %+v", a)
		}
	}
}

func TestFindArticle(t *testing.T) {
	articles, err := Articles()
	if err != nil {
		t.Fatalf("articles: %v", err)
	}
	byTitle, err := FindArticle(articles, articles[1].Title)
	if err != nil || byTitle.Title != articles[1].Title {
		t.Fatalf("lookup by title failed: %v", err)
	}
	byIndex, err := FindArticle(articles, "1")
	if err != nil || byIndex.Title != articles[0].Title {
		t.Fatalf("lookup by index failed: %v", err)
	}
	if _, err := FindArticle(articles, "0"); err == nil {
		t.Fatalf("expected error for out-of-range index")
	}
	if _, err := FindArticle(articles, "nope"); err == nil {
		t.Fatalf("expected error for unknown title")
	}
}

func TestVocabularyIsLogographic(t *testing.T) {
	words, err := Vocabulary()
	if err != nil {
		t.Fatalf("vocabulary: %v", err)
	}
	if len(words) < 50 {
		t.Fatalf("expected a sizeable vocabulary, got %d", len(words))
	}
	for _, w := range words {
		if strings.HasPrefix(w, "#") {
			t.Fatalf("comment leaked into vocabulary: %q", w)
		}
	}
}

func TestLoadVocabularyCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	if err := os.WriteFile(path, []byte("苹果\nbanana split\n橙子\n"), 0o644); err != nil {
		t.Fatalf("write vocab: %v", err)
	}
	words, err := LoadVocabulary(path)
	if err != nil {
		t.Fatalf("load vocabulary: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("expected words with spaces dropped, got %v", words)
	}
}

func TestFixedRejectsBlank(t *testing.T) {
	if _, err := Fixed("  \n"); err == nil {
		t.Fatalf("expected blank text to be rejected")
	}
	src, err := Fixed("你好")
	if err != nil {
		t.Fatalf("fixed: %v", err)
	}
	if text, _ := src(); text != "你好" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestRandomSource(t *testing.T) {
	src, err := Random(generator.NewWithSeed(7), []string{"你好", "世界", "学习"}, 2)
	if err != nil {
		t.Fatalf("random: %v", err)
	}
	text, err := src()
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	if len(strings.Fields(text)) != 2 {
		t.Fatalf("expected two words, got %q", text)
	}
	if _, err := Random(generator.New(), nil, 2); err == nil {
		t.Fatalf("expected error for empty vocabulary")
	}
}
