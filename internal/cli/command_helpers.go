package cli

import (
	"fmt"
	"os"

	"github.com/praxly/praxly-cli/pkg/files"
	"github.com/praxly/praxly-cli/pkg/models"
)

// CommandContext manages workspace validation and common command context
type CommandContext struct {
	ProjectPath string
	Settings    *models.Settings
	validated   bool
}

// NewCommandContext creates a new command context
func NewCommandContext() (*CommandContext, error) {
	return &CommandContext{
		ProjectPath: files.PraxlyDir,
	}, nil
}

// ValidateProject ensures the workspace is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no .praxly directory found. Run 'praxly init' first")
	}

	c.validated = true
	return nil
}

// LoadSettingsWithDefault loads settings or returns defaults if they cannot be read
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// LessonResolver finds lessons by slug or name
type LessonResolver struct{}

// NewLessonResolver creates a new lesson resolver
func NewLessonResolver() *LessonResolver {
	return &LessonResolver{}
}

// Resolve finds a lesson whose slug or name matches ref
func (r *LessonResolver) Resolve(ref string) (*models.Lesson, error) {
	slugs, err := files.ListLessons()
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}

	for _, slug := range slugs {
		if slug != ref {
			continue
		}
		return files.ReadLesson(slug)
	}

	// Fall back to matching on the lesson's display name.
	for _, slug := range slugs {
		lesson, err := files.ReadLesson(slug)
		if err != nil {
			continue
		}
		if lesson.Name == ref {
			return lesson, nil
		}
	}

	return nil, fmt.Errorf("lesson '%s' not found", ref)
}

// FindExercise resolves an exercise id across all lessons
func (r *LessonResolver) FindExercise(exerciseID string) (*models.Lesson, *models.Exercise, error) {
	slugs, err := files.ListLessons()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list lessons: %w", err)
	}

	for _, slug := range slugs {
		lesson, err := files.ReadLesson(slug)
		if err != nil {
			continue
		}
		if ex, ok := lesson.Exercise(exerciseID); ok {
			return lesson, ex, nil
		}
	}

	return nil, nil, fmt.Errorf("exercise '%s' not found in any lesson", exerciseID)
}
