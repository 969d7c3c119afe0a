package app

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/shrimpsizemoose/trekker/logger"
)

type Config struct {
	Gradebook struct {
		DefaultCSV string `toml:"default_csv"`
		ChartPath  string `toml:"chart_path"`
	} `toml:"gradebook"`

	Energy struct {
		DataDir   string `toml:"data_dir"`
		OutputDir string `toml:"output_dir"`
	} `toml:"energy"`

	Library struct {
		DataFile string `toml:"data_file"`
	} `toml:"library"`

	Weather struct {
		DataFile   string `toml:"data_file"`
		OutputDir  string `toml:"output_dir"`
		SampleDays int    `toml:"sample_days"`
		SampleSeed int64  `toml:"sample_seed"`
	} `toml:"weather"`

	Display struct {
		TimestampFormat string `toml:"timestamp_format"`
	} `toml:"display"`
}

// LoadConfig reads the shared config.toml. A missing file is fine, the
// tools fall back to defaults so labs run out of the box.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Info.Printf("Config file %s not found, using defaults", path)
		config := &Config{}
		config.applyDefaults()
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(
			"error reading config file %s\n> Error: %w\n> Content:\n%s",
			path,
			err,
			string(data),
		)
	}

	config.applyDefaults()
	logger.Debug.Printf("Loaded config: %+v", config)

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Gradebook.ChartPath == "" {
		c.Gradebook.ChartPath = "marks_histogram.png"
	}
	if c.Energy.DataDir == "" {
		c.Energy.DataDir = "data"
	}
	if c.Energy.OutputDir == "" {
		c.Energy.OutputDir = "output"
	}
	if c.Library.DataFile == "" {
		c.Library.DataFile = "books_catalog.json"
	}
	if c.Weather.DataFile == "" {
		c.Weather.DataFile = "weather.csv"
	}
	if c.Weather.OutputDir == "" {
		c.Weather.OutputDir = "output"
	}
	if c.Weather.SampleDays == 0 {
		c.Weather.SampleDays = 365
	}
	if c.Weather.SampleSeed == 0 {
		c.Weather.SampleSeed = 42
	}
	if c.Display.TimestampFormat == "" {
		c.Display.TimestampFormat = "2006-01-02 15:04:05"
	}
}
