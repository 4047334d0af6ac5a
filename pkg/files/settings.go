package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/praxly/praxly-cli/pkg/models"
	"gopkg.in/yaml.v3"
)

// ReadSettings loads settings.yaml, falling back to defaults when the file
// does not exist.
func ReadSettings() (*models.Settings, error) {
	absPath := filepath.Join(PraxlyDir, SettingsFile)

	content, err := os.ReadFile(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	return settings, nil
}

// WriteSettings stores the settings file
func WriteSettings(settings *models.Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	absPath := filepath.Join(PraxlyDir, SettingsFile)
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(absPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}
