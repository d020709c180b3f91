package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// AgendaURL is the conference agenda page to scrape.
	AgendaURL string `yaml:"agenda_url"`

	// OutputPath is where the generated .ics file is written.
	OutputPath string `yaml:"output_path"`

	// DataDir holds the snapshot used for run-over-run diffing.
	DataDir string `yaml:"data_dir"`

	// Year is the conference year applied to all parsed dates.
	Year int `yaml:"year"`

	// UTCOffsetHours is the fixed UTC offset of the conference zone.
	// All target dates fall inside one DST regime, so a single offset
	// replaces full timezone-database handling.
	UTCOffsetHours int `yaml:"utc_offset_hours"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AgendaURL:      "https://identiverse.com/idv25/agenda/",
		OutputPath:     "identiverse-2025.ics",
		DataDir:        "~/.local/share/identiverse-calendar",
		Year:           2025,
		UTCOffsetHours: -7,
	}
}

// Load reads a YAML config file, filling unset fields from Default.
// An empty path returns Default unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Fields the file set to zero values fall back to defaults
	def := Default()
	if cfg.AgendaURL == "" {
		cfg.AgendaURL = def.AgendaURL
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = def.OutputPath
	}
	if cfg.DataDir == "" {
		cfg.DataDir = def.DataDir
	}
	if cfg.Year == 0 {
		cfg.Year = def.Year
	}
	if cfg.UTCOffsetHours == 0 {
		cfg.UTCOffsetHours = def.UTCOffsetHours
	}

	return cfg, nil
}

// Zone returns the fixed-offset location for the configured offset.
func (c *Config) Zone() *time.Location {
	if c.UTCOffsetHours == -7 {
		return time.FixedZone("PDT", -7*60*60)
	}
	return time.FixedZone(fmt.Sprintf("UTC%+d", c.UTCOffsetHours), c.UTCOffsetHours*60*60)
}
