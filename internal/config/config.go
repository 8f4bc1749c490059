// Package config loads and validates the YAML configuration of the printdoc CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-printdoc/internal/assets"
	"github.com/alnah/go-printdoc/internal/fileutil"
	"github.com/alnah/go-printdoc/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxStyleNameLength     = assets.MaxAssetNameLength
	MaxPathLength          = 4096 // PATH_MAX on Linux
	MaxTitleLength         = 200  // Document title
	MaxPrinterNameLength   = 100  // Printer name
	MaxPageSizeLength      = 20   // "A4", "Letter", "80mm"
	MaxAttributeNameLength = 64   // Attribute name
	MaxAttributeLength     = 500  // Attribute value
	MaxWorkers             = 64   // Batch worker cap
	MaxCopies              = 999  // Copies in the print payload
)

// Log levels accepted by logging.level.
const (
	LogLevelNone   = "none"
	LogLevelNormal = "normal"
	LogLevelDebug  = "debug"
)

// Config holds all configuration for the printdoc CLI.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Output   OutputConfig   `yaml:"output"`
	Assets   AssetsConfig   `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
	Workers  int            `yaml:"workers"` // 0 = auto
}

// DocumentConfig defines defaults for every rendered document.
// A document file's own options take precedence over these.
type DocumentConfig struct {
	Style               string         `yaml:"style"`      // Baseline style name (empty = "default")
	StyleSheet          string         `yaml:"styleSheet"` // Path to an extra CSS file
	Title               string         `yaml:"title"`
	Preview             bool           `yaml:"preview"`
	PrinterName         string         `yaml:"printerName"`
	Copies              int            `yaml:"copies"`
	PageSize            string         `yaml:"pageSize"`
	HTMLAttributes      map[string]any `yaml:"htmlAttributes"`
	BodyAttributes      map[string]any `yaml:"bodyAttributes"`
	ContainerAttributes map[string]any `yaml:"containerAttributes"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = beside the input file
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// LoggingConfig defines diagnostic output.
type LoggingConfig struct {
	Level string `yaml:"level"` // none, normal, debug (empty = normal)
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	d := c.Document

	fields := []struct {
		name   string
		value  string
		maxLen int
	}{
		{"document.style", d.Style, MaxStyleNameLength},
		{"document.styleSheet", d.StyleSheet, MaxPathLength},
		{"document.title", d.Title, MaxTitleLength},
		{"document.printerName", d.PrinterName, MaxPrinterNameLength},
		{"document.pageSize", d.PageSize, MaxPageSizeLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.maxLen); err != nil {
			return err
		}
	}

	if d.Style != "" {
		if err := assets.ValidateAssetName(d.Style); err != nil {
			return fmt.Errorf("%w: document.style: %v", ErrInvalidField, err)
		}
	}

	attributeSets := []struct {
		name  string
		attrs map[string]any
	}{
		{"document.htmlAttributes", d.HTMLAttributes},
		{"document.bodyAttributes", d.BodyAttributes},
		{"document.containerAttributes", d.ContainerAttributes},
	}
	for _, set := range attributeSets {
		if err := validateAttributes(set.name, set.attrs); err != nil {
			return err
		}
	}

	if d.Copies < 0 || d.Copies > MaxCopies {
		return fmt.Errorf("%w: document.copies must be between 0 and %d, got %d", ErrInvalidField, MaxCopies, d.Copies)
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidField, MaxWorkers, c.Workers)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", LogLevelNone, LogLevelNormal, LogLevelDebug:
	default:
		return fmt.Errorf("%w: logging.level %q (must be none, normal, or debug)", ErrInvalidField, c.Logging.Level)
	}

	if c.Assets.BasePath != "" {
		info, err := os.Stat(c.Assets.BasePath)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%w: assets.basePath: directory does not exist: %s", ErrInvalidField, c.Assets.BasePath)
			}
			return fmt.Errorf("assets.basePath: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: assets.basePath: not a directory: %s", ErrInvalidField, c.Assets.BasePath)
		}
	}

	return nil
}

// validateAttributes checks attribute names and string values.
func validateAttributes(setName string, attrs map[string]any) error {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		field := setName + "." + name
		if err := validateFieldLength(field, name, MaxAttributeNameLength); err != nil {
			return err
		}
		if s, ok := attrs[name].(string); ok {
			if err := validateFieldLength(field, s, MaxAttributeLength); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that renders with embedded assets,
// beside the input, at normal log level.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: LogLevelNormal},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-printdoc", name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries the current directory, then ~/.config/go-printdoc/.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
