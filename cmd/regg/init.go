package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new regg project",
	Long: `Initialize a new regg project by creating a project manifest (regg.toml)
and a starter template (index.regg). If [path|name] is omitted, initializes
the current directory. If a non-existing name is provided, a directory will be
created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	// Project name comes from the directory basename.
	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "regg-project"
	}

	manifestPath := filepath.Join(target, "regg.toml")
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	if err := os.WriteFile(manifestPath, []byte(buildDefaultManifest(name)), 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	indexPath := filepath.Join(target, "index.regg")
	createdIndex := false
	if _, err := os.Stat(indexPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(indexPath, []byte(defaultIndexRegg()), 0o600); err != nil {
			return fmt.Errorf("failed to write index.regg: %w", err)
		}
		createdIndex = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized regg project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - regg.toml\n")
	if createdIndex {
		fmt.Fprintf(os.Stdout, "  - index.regg\n")
	} else {
		fmt.Fprintf(os.Stdout, "  - index.regg (existing)\n")
	}
	return nil
}

func buildDefaultManifest(name string) string {
	return fmt.Sprintf(`# Regg project manifest
[package]
name = "%s"

[scan]
ext = ".regg"
max_diagnostics = 64

[output]
format = "pretty"
color = "auto"
`, name)
}

func defaultIndexRegg() string {
	return `---
let title = "Hello, regg!"
let items = ["one", "two"]
---
<h1>{title}</h1>
<ul>
{items.map(item => (` + "`" + `<li>{item}</li>` + "`" + `))}
</ul>
`
}
