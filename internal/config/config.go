// Package config loads the optional hangman.hcl settings file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file read when no path is given.
const DefaultFile = "hangman.hcl"

// UI modes
const (
	ModeConsole = "console"
	ModeTUI     = "tui"
)

// Config represents the complete game configuration
type Config struct {
	WordsFile string      `hcl:"words_file,optional"`
	LogFile   string      `hcl:"log_file,optional"`
	LogLevel  string      `hcl:"log_level,optional"`
	UI        *UISettings `hcl:"ui,block"`
}

// UISettings contains user interface settings. Nil booleans mean "decide
// from whether the terminal is interactive".
type UISettings struct {
	Mode        string `hcl:"mode,optional"`
	ClearScreen *bool  `hcl:"clear_screen,optional"`
	Pause       *bool  `hcl:"pause,optional"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		UI: &UISettings{
			Mode: ModeConsole,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if cfg.UI == nil {
		cfg.UI = defaults.UI
	}
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = defaults.UI.Mode
	}

	return &cfg, nil
}

// Validate checks values that cannot be caught by decoding.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if c.UI != nil && c.UI.Mode != ModeConsole && c.UI.Mode != ModeTUI {
		return fmt.Errorf("invalid ui mode: %s", c.UI.Mode)
	}

	return nil
}

// ClearScreen reports whether the console should be cleared between turns,
// falling back to interactive when unset.
func (c *Config) ClearScreen(interactive bool) bool {
	if c.UI == nil || c.UI.ClearScreen == nil {
		return interactive
	}
	return *c.UI.ClearScreen
}

// Pause reports whether to wait for Enter after a rejected or missed guess,
// falling back to interactive when unset.
func (c *Config) Pause(interactive bool) bool {
	if c.UI == nil || c.UI.Pause == nil {
		return interactive
	}
	return *c.UI.Pause
}

// Template is the commented config written by `hangman config init`.
const Template = `# hangman configuration

# Word list, one word per line. Empty means words.txt next to the binary.
words_file = ""

# Debug log destination. Empty discards log output.
log_file  = ""
log_level = "info"

ui {
  # "console" or "tui"
  mode = "console"

  # Uncomment to override terminal detection.
  # clear_screen = true
  # pause        = true
}
`
