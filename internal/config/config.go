package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"autoshader/internal/texture"
)

// Config holds texture lookup and material build settings.
type Config struct {
	// Paths
	TextureDir   string `json:"texture_dir" yaml:"texture_dir"`
	ProjectRoot  string `json:"project_root" yaml:"project_root"`
	PatternsFile string `json:"patterns_file" yaml:"patterns_file"`
	Manifest     string `json:"manifest" yaml:"manifest"`

	// Build settings
	UDIM    bool   `json:"udim" yaml:"udim"`
	Workers int    `json:"workers" yaml:"workers"`
	Debug   bool   `json:"debug" yaml:"debug"`
	LogName string `json:"log_name" yaml:"log_name"`
}

// Load reads a JSON or YAML config file, chosen by extension.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	// Relative paths in the file are relative to the file itself.
	base := filepath.Dir(path)
	cfg.TextureDir = relativeTo(base, cfg.TextureDir)
	cfg.ProjectRoot = relativeTo(base, cfg.ProjectRoot)
	cfg.PatternsFile = relativeTo(base, cfg.PatternsFile)
	cfg.Manifest = relativeTo(base, cfg.Manifest)

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	TextureDir   string
	ProjectRoot  string
	PatternsFile string
	Manifest     string
	UDIM         bool
	Workers      int
	Debug        bool
}

// Resolve applies flags over the file values and fills in defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.ProjectRoot != "" {
		c.ProjectRoot = flags.ProjectRoot
	}
	if flags.PatternsFile != "" {
		c.PatternsFile = flags.PatternsFile
	}
	if flags.Manifest != "" {
		c.Manifest = flags.Manifest
	}
	if flags.UDIM {
		c.UDIM = true
	}
	if flags.Debug {
		c.Debug = true
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.ProjectRoot == "" {
		c.ProjectRoot = detectProjectRoot()
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogName == "" {
		c.LogName = "autoshader"
	}
}

// Patterns returns the pattern table named by PatternsFile, or the
// built-in table when none is configured.
func (c Config) Patterns() (texture.PatternTable, error) {
	if c.PatternsFile == "" {
		return texture.DefaultPatterns(), nil
	}
	return texture.LoadPatterns(c.PatternsFile)
}

func relativeTo(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// detectProjectRoot walks up from the working directory looking for a
// folder that holds sourceimages/.
func detectProjectRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	for dir := cwd; ; dir = filepath.Dir(dir) {
		if info, err := os.Stat(filepath.Join(dir, texture.SourceImagesDir)); err == nil && info.IsDir() {
			return dir
		}
		if filepath.Dir(dir) == dir {
			return ""
		}
	}
}
