package cli

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/praxly/praxly-cli/pkg/files"
	"github.com/praxly/praxly-cli/pkg/models"
)

func TestCommandContextValidateProject(t *testing.T) {
	chdir(t, t.TempDir())

	ctx, err := NewCommandContext()
	if err != nil {
		t.Fatalf("NewCommandContext: %v", err)
	}
	if err := ctx.ValidateProject(); err == nil {
		t.Fatal("validation passed without a workspace")
	}

	if err := files.InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure: %v", err)
	}
	if err := ctx.ValidateProject(); err != nil {
		t.Fatalf("validation failed in an initialized workspace: %v", err)
	}
	// Repeat validation is cached.
	if err := ctx.ValidateProject(); err != nil {
		t.Errorf("repeat validation failed: %v", err)
	}
}

func TestCommandContextLoadSettingsWithDefault(t *testing.T) {
	chdir(t, t.TempDir())

	ctx, err := NewCommandContext()
	if err != nil {
		t.Fatalf("NewCommandContext: %v", err)
	}

	got := ctx.LoadSettingsWithDefault()
	if diff := cmp.Diff(models.DefaultSettings(), got); diff != "" {
		t.Errorf("settings without a workspace (-want +got):\n%s", diff)
	}
	if ctx.LoadSettingsWithDefault() != got {
		t.Error("second load returned a different settings instance")
	}
}

func TestLessonResolver(t *testing.T) {
	chdir(t, t.TempDir())
	if err := files.InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure: %v", err)
	}

	r := NewLessonResolver()

	lesson, err := r.Resolve("getting-started")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if lesson.Slug != "getting-started" {
		t.Errorf("resolved slug = %q", lesson.Slug)
	}

	if _, err := r.Resolve("no-such-lesson"); err == nil {
		t.Error("Resolve succeeded for an unknown lesson")
	}

	inLesson, ex, err := r.FindExercise("hello")
	if err != nil {
		t.Fatalf("FindExercise: %v", err)
	}
	if inLesson.Slug != "getting-started" || ex.ID != "hello" {
		t.Errorf("FindExercise = lesson %q exercise %q", inLesson.Slug, ex.ID)
	}

	if _, _, err := r.FindExercise("no-such-exercise"); err == nil {
		t.Error("FindExercise succeeded for an unknown exercise")
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}
