// Package texts supplies target text for practice sessions.
package texts

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/zitype/internal/generator"
	"github.com/verte-zerg/zitype/internal/model"
	"github.com/verte-zerg/zitype/internal/wordlist"
)

//go:embed data/articles.toml
var articlesTOML string

//go:embed data/vocabulary.txt
var vocabularyTxt []byte

type catalog struct {
	Articles []model.Article `toml:"article"`
}

// Articles returns the embedded curated articles in catalog order.
func Articles() ([]model.Article, error) {
	var c catalog
	if _, err := toml.Decode(articlesTOML, &c); err != nil {
		return nil, fmt.Errorf("failed to decode articles: %w", err)
	}
	return c.Articles, nil
}

// FindArticle looks an article up by exact title or 1-based index.
func FindArticle(articles []model.Article, key string) (model.Article, error) {
	key = strings.TrimSpace(key)
	for _, a := range articles {
		if a.Title == key {
			return a, nil
		}
	}
	if idx, err := strconv.Atoi(key); err == nil && idx >= 1 && idx <= len(articles) {
		return articles[idx-1], nil
	}
	return model.Article{}, fmt.Errorf("unknown article %q (run: zitype articles)", key)
}

// Vocabulary returns the embedded vocabulary.
func Vocabulary() ([]string, error) {
	words, err := wordlist.ParseWords(bytes.NewReader(vocabularyTxt))
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded vocabulary: %w", err)
	}
	return wordlist.Apply(words, wordlist.FilterVocabulary), nil
}

// LoadVocabulary reads a custom vocabulary file, or the embedded one when path is empty.
func LoadVocabulary(path string) ([]string, error) {
	if path == "" {
		return Vocabulary()
	}
	words, err := wordlist.LoadWords(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}
	words = wordlist.Apply(words, wordlist.FilterPrintable)
	if len(words) == 0 {
		return nil, fmt.Errorf("vocabulary %s has no usable words", path)
	}
	return words, nil
}

// Source produces the target text of the next session.
type Source func() (string, error)

// Fixed returns a Source that always yields text. Blank text is rejected.
func Fixed(text string) (Source, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("practice text is empty")
	}
	return func() (string, error) { return text, nil }, nil
}

// Random returns a Source that samples count words for every session.
func Random(gen *generator.Generator, words []string, count int) (Source, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("vocabulary is empty")
	}
	if count <= 0 {
		return nil, fmt.Errorf("word count must be > 0")
	}
	return func() (string, error) { return gen.Text(words, count), nil }, nil
}
