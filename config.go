package shufflerooster

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/sanodmendis/ShuffleRooster/rng"
)

// EnvPrefix is the prefix of environment variables read by LoadConfig,
// e.g. SHUFFLEROOSTER_GROUP_SIZE or SHUFFLEROOSTER_OUTPUT_FORMAT.
const EnvPrefix = "SHUFFLEROOSTER"

// OutputConfig controls where and how grouped rosters are written.
type OutputConfig struct {
	// Format is the output file format: csv, xlsx, pdf or json.
	Format string `yaml:"format" envconfig:"FORMAT" validate:"required,oneof=csv xlsx pdf json"`

	// Dir is the directory output files are written to.
	Dir string `yaml:"dir" envconfig:"DIR"`

	// Prefix starts generated file names: <prefix>_<timestamp>.<format>.
	Prefix string `yaml:"prefix" envconfig:"PREFIX" validate:"required,excludesall=/\\"`

	// PDFTitle is the heading printed on PDF output.
	PDFTitle string `yaml:"pdfTitle" envconfig:"PDF_TITLE" validate:"max=120"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" envconfig:"LEVEL" validate:"required,oneof=debug info warn warning error"`

	// Format is text or json.
	Format string `yaml:"format" envconfig:"FORMAT" validate:"required,oneof=text json"`
}

// MetricsConfig controls the Prometheus textfile written after each run.
type MetricsConfig struct {
	// Textfile is the path of the node-exporter textfile. Empty disables metrics output.
	Textfile string `yaml:"textfile" envconfig:"TEXTFILE"`

	// Namespace prefixes every metric name.
	Namespace string `yaml:"namespace" envconfig:"NAMESPACE" validate:"required"`
}

// Config is the configuration for the command-line front end.
type Config struct {
	// GroupSize is the number of records per group. 0 means ask at run time.
	GroupSize int `yaml:"groupSize" envconfig:"GROUP_SIZE" validate:"gte=0"`

	// Seed makes grouping reproducible. Decimal numbers are used as-is; any
	// other text is hashed. Empty means a fresh random seed per run.
	Seed string `yaml:"seed" envconfig:"SEED"`

	// DisableShuffle buckets records in input order.
	DisableShuffle bool `yaml:"disableShuffle" envconfig:"DISABLE_SHUFFLE"`

	// GroupColumn names the group id column in output files.
	GroupColumn string `yaml:"groupColumn" envconfig:"GROUP_COLUMN" validate:"required"`

	// Output controls output files.
	Output OutputConfig `yaml:"output" envconfig:"OUTPUT"`

	// Logging controls log output.
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`

	// Metrics controls the metrics textfile.
	Metrics MetricsConfig `yaml:"metrics" envconfig:"METRICS"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		GroupSize:   0, // ask
		GroupColumn: DefaultGroupColumn,
		Output: OutputConfig{
			Format:   "xlsx",
			Dir:      ".",
			Prefix:   "grouped",
			PDFTitle: "Student Groups",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Namespace: "shufflerooster",
		},
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.GroupColumn == "" {
		cfg.GroupColumn = defaults.GroupColumn
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = defaults.Output.Format
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = defaults.Output.Dir
	}
	if cfg.Output.Prefix == "" {
		cfg.Output.Prefix = defaults.Output.Prefix
	}
	if cfg.Output.PDFTitle == "" {
		cfg.Output.PDFTitle = defaults.Output.PDFTitle
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaults.Logging.Format
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = defaults.Metrics.Namespace
	}
	// Note: GroupSize 0 and an empty Seed are meaningful, so no defaults are applied
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration.
//
// Struct tag rules run first, followed by rules that span fields.
//
// Returns:
//   - error: Wraps ErrInvalidConfig describing the first violated rule
func (cfg *Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q (value %v)", ErrInvalidConfig, fe.Namespace(), fe.Tag(), fe.Value())
		}

		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// Rule 1: GroupColumn must contain a visible name
	if strings.TrimSpace(cfg.GroupColumn) == "" {
		return fmt.Errorf("%w: GroupColumn must not be blank", ErrInvalidConfig)
	}

	// Rule 2: output directory must be a directory if it exists
	if info, err := os.Stat(cfg.Output.Dir); err == nil && !info.IsDir() {
		return fmt.Errorf("%w: Output.Dir %q is not a directory", ErrInvalidConfig, cfg.Output.Dir)
	}

	return nil
}

// ValidateWithWarnings logs settings that are valid but probably unintended.
//
// Parameters:
//   - logger: Logger for warnings
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.GroupSize == 1 {
		logger.Warn("group size 1 puts every record in its own group", "groupSize", cfg.GroupSize)
	}

	if seed := strings.TrimSpace(cfg.Seed); seed != "" {
		if _, err := strconv.ParseUint(seed, 10, 64); err != nil {
			logger.Info("seed is not a number, using its hash", "seed", seed)
		}
	}
}

// Options converts the grouping settings into Grouper/Session options.
func (cfg *Config) Options() []Option {
	opts := []Option{
		WithShuffle(!cfg.DisableShuffle),
		WithGroupColumn(cfg.GroupColumn),
	}
	if seed, ok := rng.ParseSeed(cfg.Seed); ok {
		opts = append(opts, WithSeed(seed))
	}

	return opts
}

// LoadConfig reads a YAML file, applies SHUFFLEROOSTER_* environment
// overrides, fills defaults and validates the result.
//
// Parameters:
//   - path: YAML file path; empty skips the file
//
// Returns:
//   - Config: Loaded configuration
//   - error: Read, parse or validation failure
//
// Example:
//
//	cfg, err := shufflerooster.LoadConfig("shufflerooster.yaml")
//	if err != nil { /* handle */ }
//	s := shufflerooster.NewSession(cfg.Options()...)
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: failed to parse config file: %w", ErrInvalidConfig, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: failed to load config from env: %w", ErrInvalidConfig, err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
