package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/praxly/praxly-cli/internal/cli"
	"github.com/praxly/praxly-cli/pkg/files"
)

var resetLessonSlug string

// NewResetCommand creates the reset command
func NewResetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset <exercise>",
		Short: "Discard saved work for an exercise",
		Long: `Discard saved work, returning an exercise to its starter code.

With --lesson, all of that lesson's exercises are reset instead of a
single exercise.

Examples:
  # Reset one exercise
  praxly reset hello

  # Reset every exercise in a lesson
  praxly reset --lesson getting-started`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			if err := ctx.ValidateProject(); err != nil {
				return err
			}
			if len(args) == 0 && resetLessonSlug == "" {
				return fmt.Errorf("specify an exercise id or --lesson")
			}
			if len(args) > 0 && resetLessonSlug != "" {
				return fmt.Errorf("specify either an exercise id or --lesson, not both")
			}
			return nil
		},
		RunE: runReset,
	}

	cmd.Flags().StringVar(&resetLessonSlug, "lesson", "", "Reset every exercise in this lesson")

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	resolver := cli.NewLessonResolver()

	if resetLessonSlug != "" {
		lesson, err := resolver.Resolve(resetLessonSlug)
		if err != nil {
			return err
		}

		ok, err := cli.Confirm(fmt.Sprintf("Reset all %d exercises in '%s'?", len(lesson.Exercises), lesson.Name), false)
		if err != nil {
			return err
		}
		if !ok {
			cli.PrintInfo("Reset cancelled")
			return nil
		}

		for _, ex := range lesson.Exercises {
			if err := files.ResetProgress(ex.ID); err != nil {
				return fmt.Errorf("failed to reset exercise '%s': %w", ex.ID, err)
			}
		}
		cli.PrintSuccess("Reset %d exercises in '%s'", len(lesson.Exercises), lesson.Name)
		return nil
	}

	exerciseID := args[0]
	lesson, _, err := resolver.FindExercise(exerciseID)
	if err != nil {
		return err
	}
	if !files.HasProgress(exerciseID) {
		cli.PrintInfo("Exercise '%s' has no saved work", exerciseID)
		return nil
	}

	ok, err := cli.Confirm(fmt.Sprintf("Reset exercise '%s' (lesson '%s')?", exerciseID, lesson.Slug), false)
	if err != nil {
		return err
	}
	if !ok {
		cli.PrintInfo("Reset cancelled")
		return nil
	}

	if err := files.ResetProgress(exerciseID); err != nil {
		return fmt.Errorf("failed to reset exercise '%s': %w", exerciseID, err)
	}
	cli.PrintSuccess("Reset exercise '%s'", exerciseID)
	return nil
}
