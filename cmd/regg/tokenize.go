package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"regg/internal/diag"
	"regg/internal/diagfmt"
	"regg/internal/driver"
	"regg/internal/project"
	"regg/internal/source"
	"regg/internal/token"
)

// Exit code for scans that complete but report diagnostics, so scripts can
// tell "bad input" from "tool failed".
const exitDiagnostics = 65

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] path",
	Short: "Tokenize a regg template file or directory",
	Long: `Tokenize breaks a .regg template into its constituent tokens.
Given a directory, every .regg file under it is scanned in parallel.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().Int("jobs", 0, "number of parallel scans for directories (0 = unbounded)")
	tokenizeCmd.Flags().Bool("cache", false, "reuse token streams for unchanged files")
	tokenizeCmd.Flags().String("cache-dir", "", "token cache location (default <project>/.regg-cache)")
}

// tokenizeSettings is the merge of regg.toml defaults and explicit flags.
// Flags win when set.
type tokenizeSettings struct {
	format         string
	ext            string
	jobs           int
	maxDiagnostics int
	cacheEnabled   bool
	cacheDir       string
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", path, err)
	}

	settings, err := resolveSettings(cmd, path, info.IsDir())
	if err != nil {
		return err
	}

	if info.IsDir() {
		return tokenizeDir(cmd, path, settings)
	}
	return tokenizeFile(cmd, path, settings)
}

func resolveSettings(cmd *cobra.Command, path string, isDir bool) (tokenizeSettings, error) {
	settings := tokenizeSettings{
		format:         project.DefaultFormat,
		ext:            project.DefaultExt,
		maxDiagnostics: project.DefaultMaxDiagnostics,
	}

	startDir := path
	if !isDir {
		startDir = "."
	}
	manifest, found, err := project.Load(startDir)
	if err != nil {
		return tokenizeSettings{}, err
	}
	if found {
		settings.format = manifest.Config.Output.Format
		settings.ext = manifest.Config.Scan.Ext
		settings.jobs = manifest.Config.Scan.Jobs
		settings.maxDiagnostics = manifest.Config.Scan.MaxDiagnostics
		settings.cacheDir = filepath.Join(manifest.Root, ".regg-cache")
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		settings.format, _ = flags.GetString("format")
	}
	if flags.Changed("jobs") {
		settings.jobs, _ = flags.GetInt("jobs")
	}
	if cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		settings.maxDiagnostics, _ = cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	}
	settings.cacheEnabled, _ = flags.GetBool("cache")
	if flags.Changed("cache-dir") {
		settings.cacheDir, _ = flags.GetString("cache-dir")
		settings.cacheEnabled = true
	}
	if settings.cacheEnabled && settings.cacheDir == "" {
		settings.cacheDir = ".regg-cache"
	}

	switch settings.format {
	case "pretty", "json", "msgpack":
	default:
		return tokenizeSettings{}, fmt.Errorf("unknown format: %s", settings.format)
	}
	return settings, nil
}

func tokenizeFile(cmd *cobra.Command, path string, settings tokenizeSettings) error {
	result, err := driver.Tokenize(path, settings.maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if err := printDiagnostics(cmd, settings.format, result.Bag, result.FileSet); err != nil {
		return err
	}
	if err := printTokens(settings.format, result.Tokens, result.FileSet); err != nil {
		return err
	}

	if result.Bag.HasErrors() {
		os.Exit(exitDiagnostics)
	}
	return nil
}

func tokenizeDir(cmd *cobra.Command, dir string, settings tokenizeSettings) error {
	opts := driver.DirOptions{
		Ext:            settings.ext,
		Jobs:           settings.jobs,
		MaxDiagnostics: settings.maxDiagnostics,
	}
	if settings.cacheEnabled {
		cache, err := driver.NewDiskCache(settings.cacheDir)
		if err != nil {
			return err
		}
		opts.Cache = cache
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	files, err := driver.ListFiles(dir, opts.Ext)
	if err != nil {
		return err
	}

	var result *driver.DirResult
	if !quiet && len(files) > 1 && isTerminal(os.Stdout) {
		result, err = runScanWithUI(context.Background(), dir, files, opts)
	} else {
		result, err = driver.TokenizeDir(context.Background(), dir, opts)
	}
	if err != nil {
		return err
	}

	hadErrors := false
	for i := range result.Files {
		file := &result.Files[i]
		fmt.Fprintf(os.Stdout, "== %s\n", file.Path)
		if err := printDiagnostics(cmd, settings.format, file.Bag, result.FileSet); err != nil {
			return err
		}
		if err := printTokens(settings.format, file.Tokens, result.FileSet); err != nil {
			return err
		}
		if file.Bag.HasErrors() {
			hadErrors = true
		}
	}

	if hadErrors {
		os.Exit(exitDiagnostics)
	}
	return nil
}

// printDiagnostics writes the bag to stderr. JSON output mode carries the
// diagnostics as JSON too, so the whole run stays machine-readable.
func printDiagnostics(cmd *cobra.Command, format string, bag *diag.Bag, fileSet *source.FileSet) error {
	if !bag.HasWarnings() {
		return nil
	}
	if format == "json" {
		return diagfmt.DiagnosticsJSON(os.Stderr, bag, fileSet)
	}
	opts := diagfmt.PrettyOpts{
		Color:   useColor(cmd, os.Stderr),
		Context: 2,
	}
	diagfmt.Pretty(os.Stderr, bag, fileSet, opts)
	return nil
}

func printTokens(format string, tokens []token.Token, fileSet *source.FileSet) error {
	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, tokens, fileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, tokens)
	case "msgpack":
		return diagfmt.FormatTokensMsgpack(os.Stdout, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
