package wordlist

import "testing"

func TestFilterVocabulary(t *testing.T) {
	if !FilterVocabulary("你好") {
		t.Fatalf("expected 你好 to pass vocabulary filter")
	}
	for _, word := range []string{"", "hello", "你好!", "中 文", "ok好"} {
		if FilterVocabulary(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestApplyPrintable(t *testing.T) {
	got := Apply([]string{"你好", "a b", "", "tab\there", "ok"}, FilterPrintable)
	if len(got) != 2 || got[0] != "你好" || got[1] != "ok" {
		t.Fatalf("unexpected filtered words: %v", got)
	}
}
