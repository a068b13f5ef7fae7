// Package main provides the CLI entrypoint for zitype.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/zitype/internal/config"
	"github.com/verte-zerg/zitype/internal/generator"
	"github.com/verte-zerg/zitype/internal/model"
	"github.com/verte-zerg/zitype/internal/report"
	"github.com/verte-zerg/zitype/internal/store"
	"github.com/verte-zerg/zitype/internal/texts"
	"github.com/verte-zerg/zitype/internal/translit"
	"github.com/verte-zerg/zitype/internal/tui"
)

const (
	defaultWords   = 50
	defaultIdleMs  = 3000
	defaultCheckMs = 2000
)

var (
	practiceWords   int
	practiceVocab   string
	practiceIdleMs  int
	practiceCheckMs int

	sourceArticle string
	sourceText    string
	sourceFile    string
	sourceSaved   string
	sourceRandom  bool

	textsAddFile string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "zitype",
		Short:         "Chinese typing trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().IntVar(&practiceWords, "words", defaultWords, "words per random text")
	rootCmd.Flags().StringVar(&practiceVocab, "vocab", "", "vocabulary file for random texts (default: embedded)")
	rootCmd.Flags().IntVar(&practiceIdleMs, "idle-ms", defaultIdleMs, "inactivity before a session pauses, in milliseconds")
	rootCmd.Flags().IntVar(&practiceCheckMs, "check-ms", defaultCheckMs, "interval of the inactivity check, in milliseconds")
	rootCmd.Flags().StringVar(&sourceArticle, "article", "", "practice a curated article by title or index")
	rootCmd.Flags().StringVar(&sourceText, "text", "", "practice the given text")
	rootCmd.Flags().StringVar(&sourceFile, "file", "", "practice the text in a file")
	rootCmd.Flags().StringVar(&sourceSaved, "saved", "", "practice a text from the library")
	rootCmd.Flags().BoolVar(&sourceRandom, "random", false, "practice random vocabulary (default)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newArticlesCmd())
	rootCmd.AddCommand(newTextsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyStringConfig(cmd, "vocab", &practiceVocab, fileCfg.Practice.Vocab)
	applyIntConfig(cmd, "idle-ms", &practiceIdleMs, fileCfg.Practice.IdleMs)
	applyIntConfig(cmd, "check-ms", &practiceCheckMs, fileCfg.Practice.CheckMs)

	cfg := model.Config{
		Words:         practiceWords,
		VocabPath:     practiceVocab,
		IdleThreshold: time.Duration(practiceIdleMs) * time.Millisecond,
		CheckInterval: time.Duration(practiceCheckMs) * time.Millisecond,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	flags := sourceFlags{
		article: sourceArticle,
		text:    sourceText,
		file:    sourceFile,
		saved:   sourceSaved,
		random:  sourceRandom,
	}
	piped := stdinPiped()
	source, err := resolveSource(cmd.Context(), flags, cfg, os.Stdin, piped, loadSavedText)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithReportFocus()}
	if piped {
		// Stdin carried the text; keys come from the terminal.
		opts = append(opts, tea.WithInputTTY())
	}
	m := tui.NewModel(cfg, source, translit.NewPinyin())
	program := tea.NewProgram(m, opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if res, ok := m.LastResults(); ok {
		if err := report.RenderResults(cmd.OutOrStdout(), res); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

type sourceFlags struct {
	article string
	text    string
	file    string
	saved   string
	random  bool
}

func (f sourceFlags) count() int {
	n := 0
	for _, set := range []bool{f.article != "", f.text != "", f.file != "", f.saved != "", f.random} {
		if set {
			n++
		}
	}
	return n
}

// resolveSource picks the text source. Piped stdin is used only when no
// source flag is set; random vocabulary is the default.
func resolveSource(ctx context.Context, flags sourceFlags, cfg model.Config, stdin io.Reader, piped bool, loadSaved func(context.Context, string) (string, error)) (texts.Source, error) {
	if flags.count() > 1 {
		return nil, fmt.Errorf("only one of --article, --text, --file, --saved, --random may be set")
	}
	switch {
	case flags.article != "":
		articles, err := texts.Articles()
		if err != nil {
			return nil, err
		}
		article, err := texts.FindArticle(articles, flags.article)
		if err != nil {
			return nil, err
		}
		return texts.Fixed(article.Content)
	case flags.text != "":
		return texts.Fixed(flags.text)
	case flags.file != "":
		data, err := os.ReadFile(flags.file)
		if err != nil {
			return nil, fmt.Errorf("failed to read text file: %w", err)
		}
		return texts.Fixed(string(data))
	case flags.saved != "":
		content, err := loadSaved(ctx, flags.saved)
		if err != nil {
			return nil, err
		}
		return texts.Fixed(content)
	case !flags.random && piped:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return texts.Fixed(string(data))
	}
	words, err := texts.LoadVocabulary(cfg.VocabPath)
	if err != nil {
		return nil, err
	}
	return texts.Random(generator.New(), words, cfg.Words)
}

func loadSavedText(ctx context.Context, name string) (string, error) {
	var content string
	err := withStore(func(st *store.Store) error {
		saved, err := st.GetText(ctx, name)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no saved text named %q (run: zitype texts list)", name)
		}
		if err != nil {
			return fmt.Errorf("failed to load saved text: %w", err)
		}
		content = saved.Content
		return nil
	})
	return content, err
}

func stdinPiped() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newArticlesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "articles",
		Short: "List curated articles",
		Args:  cobra.NoArgs,
		RunE:  runArticlesCmd,
	}
}

func runArticlesCmd(cmd *cobra.Command, _ []string) error {
	articles, err := texts.Articles()
	if err != nil {
		return err
	}
	if err := report.RenderArticles(cmd.OutOrStdout(), articles); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newTextsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "texts",
		Short: "Manage saved practice texts",
	}

	addCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Save a text from a file or stdin",
		Args:  cobra.ExactArgs(1),
		RunE:  runTextsAddCmd,
	}
	addCmd.Flags().StringVar(&textsAddFile, "file", "", "read the text from a file instead of stdin")

	cmd.AddCommand(addCmd)
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved texts",
		Args:  cobra.NoArgs,
		RunE:  runTextsListCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm NAME",
		Short: "Remove a saved text",
		Args:  cobra.ExactArgs(1),
		RunE:  runTextsRmCmd,
	})
	return cmd
}

func runTextsAddCmd(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	if name == "" {
		return fmt.Errorf("text name must not be empty")
	}
	content, err := readTextInput(textsAddFile, cmd.InOrStdin(), stdinPiped())
	if err != nil {
		return err
	}
	return withStore(func(st *store.Store) error {
		if _, err := st.SaveText(cmd.Context(), name, content, time.Now().UTC()); err != nil {
			return fmt.Errorf("failed to save text: %w", err)
		}
		logErrf("Saved %q (%d characters)\n", name, len([]rune(content)))
		return nil
	})
}

func readTextInput(path string, stdin io.Reader, piped bool) (string, error) {
	var data []byte
	var err error
	switch {
	case path != "":
		data, err = os.ReadFile(path)
	case piped:
		data, err = io.ReadAll(stdin)
	default:
		return "", fmt.Errorf("no text given: use --file or pipe text on stdin")
	}
	if err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}
	content := string(data)
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("practice text is empty")
	}
	return content, nil
}

func runTextsListCmd(cmd *cobra.Command, _ []string) error {
	return withStore(func(st *store.Store) error {
		saved, err := st.ListTexts(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list texts: %w", err)
		}
		if err := report.RenderTexts(cmd.OutOrStdout(), saved); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	})
}

func runTextsRmCmd(cmd *cobra.Command, args []string) error {
	return withStore(func(st *store.Store) error {
		err := st.DeleteText(cmd.Context(), args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no saved text named %q", args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to remove text: %w", err)
		}
		return nil
	})
}

func withStore(fn func(*store.Store) error) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	return fn(st)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# zitype configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# words = %d              # Words per random text
# vocab = ""              # Vocabulary file for random texts (default: embedded)
# idle-ms = %d          # Inactivity before a session pauses, in milliseconds
# check-ms = %d         # Interval of the inactivity check, in milliseconds
`,
		defaultWords,
		defaultIdleMs,
		defaultCheckMs,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.IdleThreshold <= 0 {
		return fmt.Errorf("--idle-ms must be > 0")
	}
	if cfg.CheckInterval <= 0 {
		return fmt.Errorf("--check-ms must be > 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
