package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration of every game and validates the result.
// Search order per game: dir/<game>.yaml -> ~/.arcade/configs/<game>.yaml
// -> ./configs/<game>.yaml -> embedded default. Files only need to name the
// fields they override.
func Load(dir string) (Arcade, error) {
	var (
		cfg  Arcade
		errs []error
		err  error
	)

	cfg.Snake, err = loadFile(dir, "snake.yaml", defaultSnakeYAML, DefaultSnakeConfig())
	errs = append(errs, err)
	cfg.Pong, err = loadFile(dir, "pong.yaml", defaultPongYAML, DefaultPongConfig())
	errs = append(errs, err)
	cfg.Tetris, err = loadFile(dir, "tetris.yaml", defaultTetrisYAML, DefaultTetrisConfig())
	errs = append(errs, err)
	cfg.Invaders, err = loadFile(dir, "invaders.yaml", defaultInvadersYAML, DefaultInvadersConfig())
	errs = append(errs, err)

	if err := errors.Join(errs...); err != nil {
		return Defaults(), err
	}
	if err := cfg.Validate(); err != nil {
		return Defaults(), fmt.Errorf("config: invalid: %w", err)
	}
	return cfg, nil
}

// loadFile resolves one game's configuration. A file in the explicit
// directory that cannot be parsed is an error; the implicit locations
// fall through silently.
func loadFile[T any](dir, name string, embedded []byte, fallback T) (T, error) {
	base := fallback
	if err := yaml.Unmarshal(embedded, &base); err != nil {
		base = fallback // Fallback to hardcoded if embed fails
	}

	if dir != "" {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			cfg := base
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return base, fmt.Errorf("config: parse %s: %w", path, err)
			}
			return cfg, nil
		case !errors.Is(err, fs.ErrNotExist):
			return base, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	for _, path := range []string{userConfigPath(name), filepath.Join("configs", name)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := base
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	return base, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
