package preset

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EmbeddedFS is a package-level variable that can be set with embedded preset files
var EmbeddedFS embed.FS

// WalkConfigDirectory walks the config directory and loads all YAML preset definitions.
// It first attempts to load from the embedded filesystem, falling back to the OS
// filesystem so local preset experiments don't require a rebuild.
func WalkConfigDirectory(configDir string) ([]*Config, error) {
	configs, err := walkEmbeddedConfigs()
	if err == nil && len(configs) > 0 {
		slog.Info("loaded presets from embedded filesystem", "count", len(configs))
		return configs, nil
	}

	return walkOSFilesystem(configDir)
}

func walkEmbeddedConfigs() ([]*Config, error) {
	var configs []*Config

	// Stat a known path to see if the embedded FS has content.
	if _, err := fs.Stat(EmbeddedFS, "."); err != nil {
		return nil, fmt.Errorf("embedded FS not available")
	}

	err := fs.WalkDir(EmbeddedFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isYAML(d.Name()) {
			return nil
		}

		data, err := EmbeddedFS.ReadFile(path)
		if err != nil {
			slog.Error("failed to read embedded preset", "path", path, "error", err)
			return err
		}

		config, err := parsePresetConfig(data, path)
		if err != nil {
			slog.Error("failed to parse embedded preset", "path", path, "error", err)
			return err
		}

		configs = append(configs, config)
		slog.Info("loaded preset from embedded FS", "preset", config.Name, "path", path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk embedded presets: %w", err)
	}

	return configs, nil
}

func walkOSFilesystem(configDir string) ([]*Config, error) {
	var configs []*Config

	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		slog.Warn("preset directory does not exist", "dir", configDir)
		return configs, nil // empty slice, not an error
	}

	err := filepath.Walk(configDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			slog.Error("error accessing path", "path", path, "error", err)
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !isYAML(info.Name()) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			slog.Error("failed to read preset file", "path", path, "error", err)
			return err
		}

		config, err := parsePresetConfig(data, path)
		if err != nil {
			slog.Error("failed to parse preset", "path", path, "error", err)
			return err
		}

		configs = append(configs, config)
		slog.Info("loaded preset from filesystem", "preset", config.Name, "path", path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk preset directory: %w", err)
	}

	return configs, nil
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

func parsePresetConfig(data []byte, path string) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preset in %s: %w", path, err)
	}
	return &config, nil
}
