package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/praxly/praxly-cli/internal/cli"
	"github.com/praxly/praxly-cli/pkg/files"
)

// ListResult represents the output structure for the list command
type ListResult struct {
	Lessons []LessonItem `json:"lessons" yaml:"lessons"`
	Count   int          `json:"count" yaml:"count"`
}

// LessonItem represents a single lesson in the list
type LessonItem struct {
	Name      string `json:"name" yaml:"name"`
	Slug      string `json:"slug" yaml:"slug"`
	Summary   string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Exercises int    `json:"exercises" yaml:"exercises"`
	Started   int    `json:"started" yaml:"started"`
}

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List lessons and progress",
		Long: `List all lessons in the current workspace, with exercise counts and
how many exercises have saved progress.

Examples:
  # List all lessons
  praxly list

  # List lessons with JSON output
  praxly list -o json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runList,
	}

	cmd.Flags().StringP("output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	slugs, err := files.ListLessons()
	if err != nil {
		return fmt.Errorf("failed to list lessons: %w", err)
	}

	var result ListResult
	for _, slug := range slugs {
		lesson, err := files.ReadLesson(slug)
		if err != nil {
			cli.PrintWarning("Failed to load lesson %s: %v", slug, err)
			continue
		}

		started := 0
		for _, ex := range lesson.Exercises {
			if files.HasProgress(ex.ID) {
				started++
			}
		}

		result.Lessons = append(result.Lessons, LessonItem{
			Name:      lesson.Name,
			Slug:      lesson.Slug,
			Summary:   lesson.Summary,
			Exercises: len(lesson.Exercises),
			Started:   started,
		})
	}
	result.Count = len(result.Lessons)

	outputFormat, _ := cmd.Flags().GetString("output")
	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	default:
		return outputListText(cmd, result)
	}
}

func outputListText(cmd *cobra.Command, result ListResult) error {
	if result.Count == 0 {
		cli.PrintInfo("No lessons found")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "\nLESSONS")
	fmt.Fprintln(cmd.OutOrStdout(), strings.Repeat("-", 80))

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("Name", "Slug", "Exercises", "Started", "Summary")
	for _, l := range result.Lessons {
		summary := l.Summary
		if summary == "" {
			summary = "-"
		}
		table.Row(l.Name, l.Slug,
			fmt.Sprintf("%d", l.Exercises),
			fmt.Sprintf("%d", l.Started),
			cli.TruncateString(summary, 40))
	}
	table.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d lessons\n", result.Count)
	return nil
}
