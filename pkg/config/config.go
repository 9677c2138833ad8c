// Package config loads preprocessing settings. Sources apply in order:
// built-in defaults, an optional YAML file, then HRPREP_* environment
// variables. Command-line flags are applied by the caller on top.
package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/dataprep"
)

// EnvPrefix prefixes every environment variable, e.g. HRPREP_INPUT_PATH.
const EnvPrefix = "HRPREP"

// Config is the full set of run settings.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Report   ReportConfig   `yaml:"report"`
	Features FeaturesConfig `yaml:"features"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// InputConfig locates the raw CSV.
type InputConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig locates the cleaned outputs. An empty ParquetPath skips the
// Parquet copy.
type OutputConfig struct {
	Path        string `yaml:"path"`
	ParquetPath string `yaml:"parquet_path" split_words:"true"`
}

// ReportConfig controls the correlation outputs. Empty paths disable them.
type ReportConfig struct {
	HeatmapPath  string  `yaml:"heatmap_path" split_words:"true"`
	WorkbookPath string  `yaml:"workbook_path" split_words:"true"`
	WidthIn      float64 `yaml:"width_in" split_words:"true"`
	HeightIn     float64 `yaml:"height_in" split_words:"true"`
}

// FeaturesConfig tunes feature derivation and scaling.
type FeaturesConfig struct {
	ScaleColumns []string  `yaml:"scale_columns" split_words:"true"`
	AgeBins      []float64 `yaml:"age_bins" split_words:"true"`
	AgeLabels    []string  `yaml:"age_labels" split_words:"true"`
}

// LoggingConfig selects the log level (debug, info, warn, error) and
// format (text, json).
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	age := dataprep.DefaultAgeBuckets()
	return Config{
		Input:  InputConfig{Path: "WA_Fn-UseC_-HR-Employee-Attrition.csv"},
		Output: OutputConfig{Path: "WA_Fn-UseC_-HR-Employee-Attrition_CLEANED.csv"},
		Report: ReportConfig{
			HeatmapPath: "correlation_heatmap.png",
			WidthIn:     12,
			HeightIn:    8,
		},
		Features: FeaturesConfig{
			ScaleColumns: dataprep.DefaultScaleColumns(),
			AgeBins:      age.Edges,
			AgeLabels:    age.Labels,
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to load config from env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read config file")
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(err, "failed to parse config file %s", path)
	}
	return nil
}

// AgeBuckets returns the configured AgeGroup bins.
func (c *Config) AgeBuckets() dataprep.Buckets {
	return dataprep.Buckets{Edges: c.Features.AgeBins, Labels: c.Features.AgeLabels}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input.Path) == "" {
		return errors.New("input.path is required")
	}
	if strings.TrimSpace(c.Output.Path) == "" {
		return errors.New("output.path is required")
	}
	if c.Report.HeatmapPath != "" && (c.Report.WidthIn <= 0 || c.Report.HeightIn <= 0) {
		return errors.Errorf("report size %gx%g must be positive", c.Report.WidthIn, c.Report.HeightIn)
	}

	if err := c.AgeBuckets().Validate(); err != nil {
		return errors.Wrap(err, "features.age_bins/age_labels")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return errors.Errorf("unknown logging.format %q", c.Logging.Format)
	}
	return nil
}
