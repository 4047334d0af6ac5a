package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/praxly/praxly-cli/internal/cli"
	"github.com/praxly/praxly-cli/pkg/files"
	"github.com/praxly/praxly-cli/pkg/models"
)

var showProgress bool

// ShowResult represents the output structure for the show command
type ShowResult struct {
	Lesson    string         `json:"lesson" yaml:"lesson"`
	Slug      string         `json:"slug" yaml:"slug"`
	Summary   string         `json:"summary,omitempty" yaml:"summary,omitempty"`
	Exercises []ExerciseItem `json:"exercises" yaml:"exercises"`
}

// ExerciseItem represents one exercise in the show output
type ExerciseItem struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Language     string `json:"language,omitempty" yaml:"language,omitempty"`
	Instructions string `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	Code         string `json:"code" yaml:"code"`
	InProgress   bool   `json:"in_progress" yaml:"in_progress"`
}

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <lesson> [exercise]",
		Short: "Display a lesson's exercises",
		Long: `Display a lesson's exercises with their instructions and code.

By default each exercise shows its starter code. With --progress, saved
work replaces the starter code where it exists.

Examples:
  # Show a whole lesson
  praxly show getting-started

  # Show a single exercise
  praxly show getting-started hello

  # Show saved work instead of starter code
  praxly show getting-started --progress

  # Output as JSON
  praxly show getting-started -o json`,
		Args: cobra.RangeArgs(1, 2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runShow,
	}

	cmd.Flags().StringP("output", "o", "text", "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&showProgress, "progress", false, "Show saved work where it exists")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	resolver := cli.NewLessonResolver()
	lesson, err := resolver.Resolve(args[0])
	if err != nil {
		return err
	}

	exercises := lesson.Exercises
	if len(args) == 2 {
		ex, ok := lesson.Exercise(args[1])
		if !ok {
			return fmt.Errorf("exercise '%s' not found in lesson '%s'", args[1], lesson.Slug)
		}
		exercises = []models.Exercise{*ex}
	}

	result := ShowResult{
		Lesson:  lesson.Name,
		Slug:    lesson.Slug,
		Summary: lesson.Summary,
	}
	for _, ex := range exercises {
		item := ExerciseItem{
			ID:           ex.ID,
			Title:        ex.Title,
			Language:     ex.Language,
			Instructions: ex.Instructions,
			Code:         ex.InitialCode,
			InProgress:   files.HasProgress(ex.ID),
		}
		if showProgress && item.InProgress {
			if saved, err := files.LoadProgress(ex.ID); err == nil && saved != "" {
				item.Code = saved
			}
		}
		result.Exercises = append(result.Exercises, item)
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	default:
		return outputShowText(cmd, result)
	}
}

func outputShowText(cmd *cobra.Command, result ShowResult) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "# %s (%s)\n", result.Lesson, result.Slug)
	if result.Summary != "" {
		fmt.Fprintln(out, result.Summary)
	}

	for _, ex := range result.Exercises {
		fmt.Fprintf(out, "\n## %s — %s", ex.ID, ex.Title)
		if ex.InProgress {
			fmt.Fprint(out, " (in progress)")
		}
		fmt.Fprintln(out)

		if ex.Instructions != "" {
			fmt.Fprintln(out, ex.Instructions)
		}
		fmt.Fprintln(out, strings.Repeat("-", 40))
		fmt.Fprintln(out, ex.Code)
	}
	return nil
}
