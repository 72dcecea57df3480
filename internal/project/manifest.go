package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a loaded regg.toml plus where it was found.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the regg.toml layout.
type Config struct {
	Package PackageConfig `toml:"package"`
	Scan    ScanConfig    `toml:"scan"`
	Output  OutputConfig  `toml:"output"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type ScanConfig struct {
	Ext            string `toml:"ext"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Jobs           int    `toml:"jobs"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

// Defaults applied for fields regg.toml leaves out.
const (
	DefaultExt            = ".regg"
	DefaultMaxDiagnostics = 64
	DefaultFormat         = "pretty"
	DefaultColor          = "auto"
)

// FindReggToml walks up from startDir to locate regg.toml.
func FindReggToml(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "regg.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and parses the nearest regg.toml above startDir.
// ok is false when no manifest exists; that is not an error.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindReggToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadConfig(path string) (Config, error) {
	cfg := Config{
		Scan: ScanConfig{
			Ext:            DefaultExt,
			MaxDiagnostics: DefaultMaxDiagnostics,
		},
		Output: OutputConfig{
			Format: DefaultFormat,
			Color:  DefaultColor,
		},
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if err := validateConfig(path, cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(path string, cfg Config) error {
	if !strings.HasPrefix(cfg.Scan.Ext, ".") {
		return fmt.Errorf("%s: [scan].ext must start with a dot", path)
	}
	if cfg.Scan.MaxDiagnostics < 1 {
		return fmt.Errorf("%s: [scan].max_diagnostics must be positive", path)
	}
	if cfg.Scan.Jobs < 0 {
		return fmt.Errorf("%s: [scan].jobs must not be negative", path)
	}
	switch cfg.Output.Format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("%s: [output].format must be pretty, json or msgpack", path)
	}
	switch cfg.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("%s: [output].color must be auto, on or off", path)
	}
	return nil
}
