package report

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/verte-zerg/zitype/internal/model"
	"github.com/verte-zerg/zitype/internal/typing"
)

const previewWidth = 40

// RenderResults prints the results of a completed session.
func RenderResults(w io.Writer, res typing.Results) error {
	rows := [][]string{
		{"Time", fmt.Sprintf("%.1fs", res.ElapsedSeconds())},
		{"Speed", fmt.Sprintf("%d WPM", res.Speed)},
		{"Accuracy", res.AccuracyText() + "%"},
	}
	return writeLines(w, formatTable(nil, rows, map[int]bool{1: true}))
}

// RenderArticles prints the curated article catalog with 1-based indexes.
func RenderArticles(w io.Writer, articles []model.Article) error {
	if len(articles) == 0 {
		_, err := fmt.Fprintln(w, "No articles found.")
		return err
	}
	rows := make([][]string, 0, len(articles))
	for i, a := range articles {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			a.Title,
			strconv.Itoa(utf8.RuneCountInString(a.Content)),
			preview(a.Content, previewWidth),
		})
	}
	headers := []string{"#", "Title", "Chars", "Preview"}
	return writeLines(w, formatTable(headers, rows, map[int]bool{0: true, 2: true}))
}

// RenderTexts prints the saved text library.
func RenderTexts(w io.Writer, texts []model.SavedText) error {
	if len(texts) == 0 {
		_, err := fmt.Fprintln(w, "No saved texts found.")
		return err
	}
	rows := make([][]string, 0, len(texts))
	for _, t := range texts {
		rows = append(rows, []string{
			t.Name,
			strconv.Itoa(utf8.RuneCountInString(t.Content)),
			t.CreatedAt.Local().Format("2006-01-02"),
			preview(t.Content, previewWidth),
		})
	}
	headers := []string{"Name", "Chars", "Saved", "Preview"}
	return writeLines(w, formatTable(headers, rows, map[int]bool{1: true}))
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
