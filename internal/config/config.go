// Package config loads the optional urbancharge settings file.
//
// The file is TOML and every key is optional:
//
//	algorithm  = "less-naive"
//	iterations = 500
//	seed       = 42
//	format     = "png"
//	scale      = 2.0
//	no_cache   = false
//	verbose    = true
//
// Values from the file override [Defaults]; command-line flags override the
// file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/urbancharge/urbancharge/pkg/errors"
	"github.com/urbancharge/urbancharge/pkg/render/nodelink"
	"github.com/urbancharge/urbancharge/pkg/solver"
)

const (
	appName  = "urbancharge"
	fileName = "config.toml"
)

// Settings holds user preferences for solving and rendering.
type Settings struct {
	Algorithm  string  `toml:"algorithm"`
	Iterations int     `toml:"iterations"`
	Seed       uint64  `toml:"seed"` // 0 picks a fresh seed for every run
	Format     string  `toml:"format"`
	Scale      float64 `toml:"scale"`
	NoCache    bool    `toml:"no_cache"`
	Verbose    bool    `toml:"verbose"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Algorithm:  solver.StrategyOptimized,
		Iterations: solver.DefaultIterations,
		Format:     string(nodelink.FormatSVG),
		Scale:      1,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/urbancharge/config.toml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the settings file at path on top of [Defaults].
//
// An empty path means [DefaultPath], which may be absent. A path given
// explicitly must exist.
func Load(path string) (Settings, error) {
	s := Defaults()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return s, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return s, nil
		}
		if os.IsNotExist(err) {
			return s, errs.Wrap(errs.ErrCodeFileNotFound, err, "settings file %s", path)
		}
		return s, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read %s", path)
	}

	return Parse(string(data), path)
}

// Parse decodes settings from TOML text on top of [Defaults]. name labels
// errors.
func Parse(data, name string) (Settings, error) {
	s := Defaults()
	md, err := toml.Decode(data, &s)
	if err != nil {
		return Defaults(), errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse %s", name)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Defaults(), errs.New(errs.ErrCodeInvalidConfig, "%s: unknown keys: %s", name, strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return Defaults(), errs.Wrap(errs.ErrCodeInvalidConfig, err, "%s", name)
	}
	return s, nil
}

// Validate checks that every value is usable.
func (s Settings) Validate() error {
	if err := solver.ValidateStrategy(s.Algorithm); err != nil {
		return err
	}
	if s.Iterations <= 0 {
		return errs.New(errs.ErrCodeInvalidInput, "iterations must be positive, got %d", s.Iterations)
	}
	if _, err := nodelink.ParseFormat(s.Format); err != nil {
		return err
	}
	if s.Scale <= 0 {
		return errs.New(errs.ErrCodeInvalidInput, "scale must be positive, got %g", s.Scale)
	}
	return nil
}
