package models

import "github.com/praxly/praxly-cli/pkg/editor"

// Settings represents the application configuration
type Settings struct {
	UI     UISettings    `yaml:"ui"`
	Editor editor.Config `yaml:"editor"`
	Debug  DebugSettings `yaml:"debug"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowInstructions bool `yaml:"show_instructions"`
	InstructionsCols int  `yaml:"instructions_cols"`
}

// DebugSettings controls the debug and opt-in tuning flags
type DebugSettings struct {
	Enabled     bool   `yaml:"enabled"`
	EventTuning bool   `yaml:"event_tuning"`
	LogFile     string `yaml:"log_file"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		UI: UISettings{
			ShowInstructions: true,
			InstructionsCols: 46,
		},
		Editor: editor.DefaultConfig(),
		Debug: DebugSettings{
			Enabled:     false,
			EventTuning: false,
			LogFile:     "praxly-debug.log",
		},
	}
}
