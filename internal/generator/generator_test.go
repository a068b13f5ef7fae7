package generator

import (
	"strings"
	"testing"
)

func TestSampleDistinct(t *testing.T) {
	words := []string{"你好", "世界", "学习", "工作", "朋友"}
	got := NewWithSeed(1).Sample(words, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 words, got %d", len(got))
	}
	seen := map[string]bool{}
	for _, w := range got {
		if seen[w] {
			t.Fatalf("duplicate word %q in sample", w)
		}
		seen[w] = true
	}
}

func TestSampleCapsAtVocabularySize(t *testing.T) {
	words := []string{"你好", "世界"}
	if got := NewWithSeed(2).Sample(words, 10); len(got) != 2 {
		t.Fatalf("expected sample capped at 2, got %d", len(got))
	}
	if got := NewWithSeed(2).Sample(nil, 10); got != nil {
		t.Fatalf("expected nil sample for empty vocabulary")
	}
}

func TestTextJoinsWithSpaces(t *testing.T) {
	text := NewWithSeed(3).Text([]string{"你好", "世界", "学习"}, 3)
	if strings.Count(text, " ") != 2 {
		t.Fatalf("expected words joined by single spaces: %q", text)
	}
}
