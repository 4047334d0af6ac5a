package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/praxly/praxly-cli/pkg/models"
	"gopkg.in/yaml.v3"
)

// ReadLesson loads a lesson by slug (filename without extension)
func ReadLesson(slug string) (*models.Lesson, error) {
	absPath := filepath.Join(PraxlyDir, LessonsDir, slug+".yaml")

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read lesson %s: %w", slug, err)
	}

	var lesson models.Lesson
	if err := yaml.Unmarshal(content, &lesson); err != nil {
		return nil, fmt.Errorf("failed to parse lesson %s: %w", slug, err)
	}
	lesson.Slug = slug

	if info, err := os.Stat(absPath); err == nil {
		lesson.Modified = info.ModTime()
	}

	return &lesson, nil
}

// WriteLesson stores a lesson under its slug
func WriteLesson(lesson *models.Lesson) error {
	if lesson.Slug == "" {
		return fmt.Errorf("lesson %q has no slug", lesson.Name)
	}

	data, err := yaml.Marshal(lesson)
	if err != nil {
		return fmt.Errorf("failed to marshal lesson %s: %w", lesson.Slug, err)
	}

	absPath := filepath.Join(PraxlyDir, LessonsDir, lesson.Slug+".yaml")
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return fmt.Errorf("failed to create lessons directory: %w", err)
	}
	if err := os.WriteFile(absPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write lesson %s: %w", lesson.Slug, err)
	}

	return nil
}

// ListLessons returns the available lesson slugs, sorted
func ListLessons() ([]string, error) {
	dir := filepath.Join(PraxlyDir, LessonsDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}

	var slugs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(name, ".yaml"))
	}
	sort.Strings(slugs)

	return slugs, nil
}

func writeStarterLesson() error {
	lesson := &models.Lesson{
		Name:    "Getting Started",
		Slug:    "getting-started",
		Summary: "A first pass through the playground editor.",
		Exercises: []models.Exercise{
			{
				ID:           "hello",
				Title:        "Hello, printer",
				Instructions: "Make the program print a greeting. The editor keeps your progress; press ctrl+r to request a run.",
				InitialCode:  "package main\n\nfunc main() {\n\t// print something friendly\n}\n",
				Language:     "go",
			},
			{
				ID:           "loops",
				Title:        "Counting",
				Instructions: "Print the numbers 1 through 5, one per line.",
				InitialCode:  "package main\n\nfunc main() {\n\tfor i := 1; i <= 5; i++ {\n\t}\n}\n",
				Language:     "go",
			},
		},
	}
	return WriteLesson(lesson)
}
