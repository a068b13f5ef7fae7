package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/zitype/internal/model"
	"github.com/verte-zerg/zitype/internal/typing"
)

func TestRenderResults(t *testing.T) {
	var buf bytes.Buffer
	res := typing.Compute(90*time.Second, 60, typing.Counters{Judged: 40, Errors: 2})
	if err := RenderResults(&buf, res); err != nil {
		t.Fatalf("render results: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"90.0s", "8 WPM", "95.0%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("results missing %q: %s", want, out)
		}
	}
}

func TestRenderArticles(t *testing.T) {
	var buf bytes.Buffer
	err := RenderArticles(&buf, []model.Article{{Title: "春晓", Content: "春眠不觉晓，处处闻啼鸟。"}})
	if err != nil {
		t.Fatalf("render articles: %v", err)
	}
	if !strings.Contains(buf.String(), "春晓") || !strings.Contains(buf.String(), "12") {
		t.Fatalf("unexpected articles output: %s", buf.String())
	}
}

func TestRenderTextsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTexts(&buf, nil); err != nil {
		t.Fatalf("render texts: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No saved texts found." {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
