package editor

// Sizing describes the widget height rule: the rendered height for a
// document of L lines is clamp(L*LineUnit+Padding, MinHeight, MaxHeight).
type Sizing struct {
	LineUnit  int `yaml:"line_unit"`
	Padding   int `yaml:"padding"`
	MinHeight int `yaml:"min_height"`
	MaxHeight int `yaml:"max_height"`
}

// DefaultSizing returns the sizing defaults for a terminal surface
func DefaultSizing() Sizing {
	return Sizing{
		LineUnit:  1,
		Padding:   2,
		MinHeight: 3,
		MaxHeight: 24,
	}
}

// HeightFor computes the rendered height for a line count
func (s Sizing) HeightFor(lines int) int {
	if lines < 0 {
		lines = 0
	}
	return clamp(lines*s.LineUnit+s.Padding, s.MinHeight, s.MaxHeight)
}

// Config carries the recognized per-binding options. Zero-value fields take
// the documented defaults; entries in Extra that the widget does not
// recognize are ignored.
//
// Line wrapping is on unless NoWrap is set, so the zero value carries the
// default and an omitted option cannot silently disable wrapping.
type Config struct {
	Mode        string            `yaml:"mode"`
	Theme       string            `yaml:"theme"`
	IndentWidth int               `yaml:"indent_width"`
	NoWrap      bool              `yaml:"no_wrap"`
	Width       int               `yaml:"width"`
	Sizing      Sizing            `yaml:"sizing"`
	KeyBindings map[string]string `yaml:"key_bindings,omitempty"`
	Extra       map[string]any    `yaml:"-"`
}

// DefaultConfig returns the documented defaults
func DefaultConfig() Config {
	return Config{
		Mode:        "plain",
		Theme:       "default",
		IndentWidth: 4,
		Width:       80,
		Sizing:      DefaultSizing(),
	}
}

// normalized fills zero fields with defaults so widget construction and
// height computation never see degenerate values.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Mode == "" {
		c.Mode = def.Mode
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.IndentWidth <= 0 {
		c.IndentWidth = def.IndentWidth
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Sizing == (Sizing{}) {
		c.Sizing = def.Sizing
	}
	if c.Sizing.LineUnit <= 0 {
		c.Sizing.LineUnit = def.Sizing.LineUnit
	}
	if c.Sizing.MinHeight <= 0 {
		c.Sizing.MinHeight = def.Sizing.MinHeight
	}
	if c.Sizing.MaxHeight <= 0 {
		c.Sizing.MaxHeight = def.Sizing.MaxHeight
	}
	if c.Sizing.Padding < 0 {
		c.Sizing.Padding = 0
	}
	return c
}

func clamp(v, low, high int) int {
	if high < low {
		low, high = high, low
	}
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
