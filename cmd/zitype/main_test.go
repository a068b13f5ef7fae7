package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/zitype/internal/config"
	"github.com/verte-zerg/zitype/internal/model"
)

func testConfig() model.Config {
	return model.Config{
		Words:         5,
		IdleThreshold: 3 * time.Second,
		CheckInterval: 2 * time.Second,
	}
}

func noSaved(context.Context, string) (string, error) {
	return "", errors.New("unexpected saved lookup")
}

func TestValidateConfig(t *testing.T) {
	if err := validateConfig(testConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := testConfig()
	cfg.Words = 0
	if err := validateConfig(cfg); err == nil || !strings.Contains(err.Error(), "--words") {
		t.Fatalf("expected words error, got %v", err)
	}
	cfg = testConfig()
	cfg.IdleThreshold = 0
	if err := validateConfig(cfg); err == nil || !strings.Contains(err.Error(), "--idle-ms") {
		t.Fatalf("expected idle-ms error, got %v", err)
	}
}

func TestResolveSourceRejectsMultipleFlags(t *testing.T) {
	flags := sourceFlags{text: "你好", random: true}
	if _, err := resolveSource(context.Background(), flags, testConfig(), nil, false, noSaved); err == nil {
		t.Fatalf("expected conflict error")
	}
}

func TestResolveSourceText(t *testing.T) {
	src, err := resolveSource(context.Background(), sourceFlags{text: "你好 world"}, testConfig(), nil, false, noSaved)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	got, err := src()
	if err != nil || got != "你好 world" {
		t.Fatalf("unexpected text %q (%v)", got, err)
	}
}

func TestResolveSourceBlankTextRejected(t *testing.T) {
	if _, err := resolveSource(context.Background(), sourceFlags{text: "   "}, testConfig(), nil, false, noSaved); err == nil {
		t.Fatalf("expected blank text error")
	}
}

func TestResolveSourceArticleByIndex(t *testing.T) {
	src, err := resolveSource(context.Background(), sourceFlags{article: "1"}, testConfig(), nil, false, noSaved)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	got, err := src()
	if err != nil || got == "" {
		t.Fatalf("expected article content, got %q (%v)", got, err)
	}
}

func TestResolveSourcePipedStdin(t *testing.T) {
	src, err := resolveSource(context.Background(), sourceFlags{}, testConfig(), strings.NewReader("春眠不觉晓"), true, noSaved)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got, _ := src(); got != "春眠不觉晓" {
		t.Fatalf("expected piped text, got %q", got)
	}
}

func TestResolveSourceSaved(t *testing.T) {
	load := func(_ context.Context, name string) (string, error) {
		return "saved " + name, nil
	}
	src, err := resolveSource(context.Background(), sourceFlags{saved: "poem"}, testConfig(), nil, false, load)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got, _ := src(); got != "saved poem" {
		t.Fatalf("unexpected saved text %q", got)
	}
}

func TestResolveSourceRandomDefault(t *testing.T) {
	src, err := resolveSource(context.Background(), sourceFlags{}, testConfig(), nil, false, noSaved)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	got, err := src()
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	if n := len(strings.Fields(got)); n != 5 {
		t.Fatalf("expected 5 words, got %d in %q", n, got)
	}
}

func TestReadTextInput(t *testing.T) {
	if _, err := readTextInput("", strings.NewReader("x"), false); err == nil {
		t.Fatalf("expected error without file or piped stdin")
	}
	path := filepath.Join(t.TempDir(), "text.txt")
	if err := os.WriteFile(path, []byte("静夜思"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := readTextInput(path, nil, false)
	if err != nil || got != "静夜思" {
		t.Fatalf("unexpected file text %q (%v)", got, err)
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Practice.Words != nil || cfg.Practice.IdleMs != nil {
		t.Fatalf("expected commented template to set nothing")
	}
}
