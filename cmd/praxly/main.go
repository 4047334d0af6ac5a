package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/praxly/praxly-cli/cmd/commands"
	"github.com/praxly/praxly-cli/internal/cli"
	"github.com/praxly/praxly-cli/pkg/files"
	"github.com/praxly/praxly-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagQuiet   bool
	flagNoColor bool
	flagYes     bool
)

var rootCmd = &cobra.Command{
	Use:   "praxly",
	Short: "Terminal playground for coding exercises",
	Long:  `Praxly is a terminal playground for working through coding exercises. Lessons are plain YAML files, progress is saved as plain text, and the TUI gives every exercise a synchronized editor.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(flagQuiet, flagNoColor, flagYes)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if !files.ProjectExists() {
			fmt.Fprintf(os.Stderr, "Error: No .praxly directory found in the current directory.\n")
			fmt.Fprintf(os.Stderr, "Please run 'praxly init' first to initialize a workspace.\n")
			os.Exit(1)
		}

		app := tui.NewApp()

		ctx, err := cli.NewCommandContext()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		settings := ctx.LoadSettingsWithDefault()
		if settings.Debug.Enabled || tui.DebugEnabled() {
			logger, cleanup, err := cli.NewDebugLogger(settings.Debug.LogFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: debug logging unavailable: %v\n", err)
			} else {
				defer cleanup()
				app.SetLogger(logger)
			}
		}

		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Praxly workspace",
	Long:  `Creates the .praxly folder structure in the current directory, including a starter lesson`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing Praxly workspace in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize workspace structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		fmt.Println("✓ Created .praxly folder structure")
		fmt.Println("✓ Added the getting-started lesson")
		fmt.Println("\nRun 'praxly' to start the interactive TUI.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Praxly",
	Long:  `Display the current version of the Praxly CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Praxly version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation prompts")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewResetCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("Command execution failed: %v", err)
		os.Exit(1)
	}
}
