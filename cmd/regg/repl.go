package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"regg/internal/diagfmt"
	"regg/internal/driver"
	"regg/internal/version"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Tokenize lines interactively",
	Long: `Repl reads template snippets line by line and prints their token
streams. Each line is scanned independently; a bad line does not poison the
next one. Exit with Ctrl-D.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	if !quiet {
		fmt.Fprintf(os.Stdout, "regg %s repl, Ctrl-D to exit\n", version.Version)
	}

	scanner := bufio.NewScanner(os.Stdin)
	lineNum := 0
	for {
		fmt.Fprint(os.Stdout, "> ")
		if !scanner.Scan() {
			break
		}
		lineNum++

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		result := driver.TokenizeSource(fmt.Sprintf("repl:%d", lineNum), line, maxDiagnostics)
		if err := diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet); err != nil {
			return err
		}
		diagfmt.Classic(os.Stderr, result.Bag)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if !quiet {
		fmt.Fprintln(os.Stdout)
	}
	return nil
}
