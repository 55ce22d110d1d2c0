package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultConfigFileName is the standard configuration file name.
	DefaultConfigFileName = "utilboard.toml"

	// XDGConfigSubdir is the subdirectory under the XDG base directories.
	XDGConfigSubdir = "utilboard"
)

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading config from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load resolves the configuration file and parses it. Sources, in order:
//  1. explicitPath, if set (no other source is tried)
//  2. $XDG_CONFIG_HOME/utilboard/utilboard.toml (or ~/.config/...)
//  3. ./utilboard.toml
//  4. Default(), written to the XDG path (or ./) when createDefault is set
//
// The returned path is where the configuration came from, or "" for an
// in-memory default that could not be written.
func Load(explicitPath string, createDefault bool) (*Config, string, error) {
	if explicitPath != "" {
		cfg, err := loadFromFile(explicitPath)
		if err != nil {
			return nil, "", &LoadError{Path: explicitPath, Err: err}
		}
		return cfg, explicitPath, nil
	}

	xdgPath := xdgConfigPath()
	cwdPath := filepath.Join(".", DefaultConfigFileName)

	for _, path := range searchPaths(xdgPath, cwdPath) {
		if !fileExists(path) {
			continue
		}
		cfg, err := loadFromFile(path)
		if err != nil {
			return nil, "", &LoadError{Path: path, Err: err}
		}
		return cfg, path, nil
	}

	if !createDefault {
		return nil, "", errors.New("no configuration file found; searched: " + strings.Join(searchPaths(xdgPath, cwdPath), ", "))
	}

	cfg := Default()

	target := cwdPath
	if xdgPath != "" {
		if err := os.MkdirAll(filepath.Dir(xdgPath), 0750); err == nil {
			target = xdgPath
		}
	}

	if err := Save(cfg, target); err != nil {
		return cfg, "", nil
	}

	return cfg, target, nil
}

func searchPaths(xdgPath, cwdPath string) []string {
	if xdgPath == "" {
		return []string{cwdPath}
	}
	return []string{xdgPath, cwdPath}
}

// loadFromFile parses a TOML file over the defaults and validates the result.
func loadFromFile(path string) (*Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Save writes a configuration to a TOML file.
func Save(cfg *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0640)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	header := `# utilboard configuration
#
# Generated with default values. as_of (RFC3339) freezes the dashboard date;
# snapshot_schedule takes a five-field cron spec.

`
	if _, err := f.WriteString(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}

	return nil
}

// xdgConfigPath returns the XDG config file path, or "" when neither
// XDG_CONFIG_HOME nor a home directory is available.
func xdgConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, XDGConfigSubdir, DefaultConfigFileName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", XDGConfigSubdir, DefaultConfigFileName)
}

func xdgDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, XDGConfigSubdir)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", XDGConfigSubdir)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ConfigPath returns the configuration file path Load would use.
func ConfigPath(explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}

	xdgPath := xdgConfigPath()
	cwdPath := filepath.Join(".", DefaultConfigFileName)
	for _, path := range searchPaths(xdgPath, cwdPath) {
		if fileExists(path) {
			return path
		}
	}

	if xdgPath != "" {
		return xdgPath
	}
	return cwdPath
}

// EnsureDataDir resolves the snapshot database path. Relative paths live
// under the XDG data directory when it can be created.
func EnsureDataDir(cfg *Config) (string, error) {
	return ensureFileDir(cfg.Database.Path, xdgDataDir())
}

// EnsureLogDir creates the log directory if needed. An empty log file
// disables file logging and returns "".
func EnsureLogDir(cfg *Config) (string, error) {
	if cfg.Logging.File == "" {
		return "", nil
	}
	return ensureFileDir(cfg.Logging.File, "")
}

// ensureFileDir creates the parent directory of path. A relative path is
// placed under base when base is set and can be created.
func ensureFileDir(path, base string) (string, error) {
	if !filepath.IsAbs(path) && base != "" {
		if err := os.MkdirAll(base, 0750); err == nil {
			path = filepath.Join(base, path)
		}
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return "", fmt.Errorf("creating directory for %s: %w", path, err)
		}
	}

	return path, nil
}
