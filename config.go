package attest

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/massalabs/attest/framework"
	"github.com/massalabs/attest/report"
)

// Config controls how Run reports results. The zero value writes uncolored
// results to stdout unless stdout is a terminal.
type Config struct {
	// Title is shown in the header of the HTML report and the table.
	Title string `yaml:"title"`

	// Run and Skip are regular expressions selecting tests by name. A test
	// runs if it matches any Run pattern (or none are given) and no Skip
	// pattern.
	Run  []string `yaml:"run"`
	Skip []string `yaml:"skip"`

	// Color is "auto", "always" or "never".
	Color report.ColorMode `yaml:"color"`

	// Debug enables run-level debug logging and stack output for failed tests.
	Debug bool `yaml:"debug"`

	// Table prints a summary table after the run.
	Table bool `yaml:"table"`

	// ReportDir, if set, is where the HTML report is written.
	ReportDir string `yaml:"reportDir"`

	// JSONFile, if set, is where the JSON form of the results is written.
	JSONFile string `yaml:"jsonFile"`

	// ServePort, if nonzero, is a port on which the HTML report is served
	// while the run is in progress.
	ServePort int `yaml:"servePort"`

	// Output receives console output. Defaults to os.Stdout.
	Output io.Writer `yaml:"-"`

	// Handler, if set, receives results as they happen so that the report can
	// be watched in a browser.
	Handler *report.Handler `yaml:"-"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the color mode and the filter patterns.
func (c Config) Validate() error {
	switch c.Color {
	case "", report.ColorAuto, report.ColorAlways, report.ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q", c.Color)
	}
	if c.ServePort < 0 || c.ServePort > 65535 {
		return fmt.Errorf("invalid port %d", c.ServePort)
	}
	if _, err := c.filters(); err != nil {
		return err
	}
	return nil
}

func (c Config) filters() (framework.RegexFilters, error) {
	return framework.NewRegexFilters(c.Run, c.Skip)
}

func (c Config) output() io.Writer {
	if c.Output == nil {
		return os.Stdout
	}
	return c.Output
}

func (c Config) colorMode() report.ColorMode {
	if c.Color == "" {
		return report.ColorAuto
	}
	return c.Color
}

func (c Config) title() string {
	if c.Title == "" {
		return "attest"
	}
	return c.Title
}
