package files

import (
	"fmt"
	"os"
	"path/filepath"
)

// progressPath is where an exercise's in-flight code lives. Progress is the
// "live value" of an exercise's backing field: when present it wins over the
// lesson's declared initial code.
func progressPath(exerciseID string) string {
	return filepath.Join(PraxlyDir, ProgressDir, exerciseID+".txt")
}

// SaveProgress stores the current code for an exercise
func SaveProgress(exerciseID, code string) error {
	path := progressPath(exerciseID)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create progress directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(code), 0644); err != nil {
		return fmt.Errorf("failed to save progress for %s: %w", exerciseID, err)
	}
	return nil
}

// LoadProgress returns the saved code for an exercise, "" if none
func LoadProgress(exerciseID string) (string, error) {
	content, err := os.ReadFile(progressPath(exerciseID))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load progress for %s: %w", exerciseID, err)
	}
	return string(content), nil
}

// HasProgress reports whether saved code exists for an exercise
func HasProgress(exerciseID string) bool {
	_, err := os.Stat(progressPath(exerciseID))
	return err == nil
}

// ResetProgress removes the saved code for an exercise. Missing progress is
// not an error.
func ResetProgress(exerciseID string) error {
	if err := os.Remove(progressPath(exerciseID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to reset progress for %s: %w", exerciseID, err)
	}
	return nil
}
