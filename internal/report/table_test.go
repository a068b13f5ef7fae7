package report

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Name", "Chars", "Preview"}
	rows := [][]string{
		{"a", "12", "xy"},
		{"poem", "3", "z"},
	}
	rightAlign := map[int]bool{1: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Name Chars Preview" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "a       12 xy" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "poem     3 z" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideCharacters(t *testing.T) {
	rows := [][]string{
		{"春晓", "1"},
		{"ab", "2"},
	}
	lines := formatTable(nil, rows, nil)
	if lines[0] != "春晓 1" {
		t.Fatalf("unexpected wide row: %q", lines[0])
	}
	if lines[1] != "ab   2" {
		t.Fatalf("expected padding by display width: %q", lines[1])
	}
}

func TestPreviewTruncates(t *testing.T) {
	if got := preview("你好\n世界", 20); got != "你好 世界" {
		t.Fatalf("unexpected preview: %q", got)
	}
	if got := preview("床前明月光疑是地上霜", 7); got != "床前..." {
		t.Fatalf("unexpected truncated preview: %q", got)
	}
}
