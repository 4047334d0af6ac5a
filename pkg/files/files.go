package files

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	PraxlyDir    = ".praxly"
	LessonsDir   = "lessons"
	ProgressDir  = "progress"
	SettingsFile = "settings.yaml"
)

// InitProjectStructure creates the .praxly workspace in the current
// directory, including a starter lesson.
func InitProjectStructure() error {
	dirs := []string{
		PraxlyDir,
		filepath.Join(PraxlyDir, LessonsDir),
		filepath.Join(PraxlyDir, ProgressDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := writeStarterLesson(); err != nil {
		return err
	}

	return nil
}

// ProjectExists reports whether the current directory holds a workspace
func ProjectExists() bool {
	info, err := os.Stat(PraxlyDir)
	return err == nil && info.IsDir()
}
