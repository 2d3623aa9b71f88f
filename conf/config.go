package conf

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Defaults applied by New before any file or environment overlay.
const (
	DefaultModel         = "gemini-2.5-flash"
	DefaultInputDir      = "./student_submissions"
	DefaultOutputCSV     = "grades.csv"
	DefaultDPI           = 300
	DefaultMaxImageWidth = 2000
	DefaultListenAddr    = ":8080"
	DefaultLogLevel      = "info"
)

var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

// Config carries everything the grading tool needs. It is built once
// at startup and handed to the component constructors; no package
// reads the process environment after that.
type Config struct {
	APIKey string
	Model  string

	InputDir  string
	OutputCSV string

	// DPI used when rasterizing PDF pages. 300 keeps embedded QR
	// codes decodable at typical print/scan quality.
	DPI float64

	// MaxImageWidth caps page images before they are sent to the
	// model. 0 disables downscaling.
	MaxImageWidth int

	// Rubric overrides the built-in grading prompt when non-empty.
	Rubric string

	ListenAddr string

	LogLevel string
	LogFile  string
}

// New returns a Config populated with defaults only.
func New() Config {
	return Config{
		Model:         DefaultModel,
		InputDir:      DefaultInputDir,
		OutputCSV:     DefaultOutputCSV,
		DPI:           DefaultDPI,
		MaxImageWidth: DefaultMaxImageWidth,
		ListenAddr:    DefaultListenAddr,
		LogLevel:      DefaultLogLevel,
	}
}

// FromEnv builds a Config from defaults overlaid with the process
// environment. Callers that want .env support load it first (the
// binaries do, via godotenv).
func FromEnv() Config {
	cfg := New()
	cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	overlayEnv(&cfg.Model, "GRADER_MODEL")
	overlayEnv(&cfg.InputDir, "GRADER_INPUT_DIR")
	overlayEnv(&cfg.OutputCSV, "GRADER_OUTPUT_CSV")
	overlayEnv(&cfg.ListenAddr, "GRADER_LISTEN_ADDR")
	overlayEnv(&cfg.LogLevel, "GRADER_LOG_LEVEL")
	overlayEnv(&cfg.LogFile, "GRADER_LOG_FILE")
	if v := os.Getenv("GRADER_DPI"); v != "" {
		if dpi, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.DPI = dpi
		}
	}
	if v := os.Getenv("GRADER_MAX_IMAGE_WIDTH"); v != "" {
		if w, err := strconv.Atoi(v); err == nil {
			cfg.MaxImageWidth = w
		}
	}
	return cfg
}

func overlayEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// LoadTOML overlays cfg with values from a grader.toml file. Only keys
// present in the file replace the current values. The rubric may be
// given inline (rubric) or as a path (rubric_file) whose content
// replaces the built-in prompt.
func (cfg *Config) LoadTOML(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	x := struct {
		Model         *string  `toml:"model"`
		InputDir      *string  `toml:"input_dir"`
		OutputCSV     *string  `toml:"output_csv"`
		DPI           *float64 `toml:"dpi"`
		MaxImageWidth *int     `toml:"max_image_width"`
		Rubric        *string  `toml:"rubric"`
		RubricFile    *string  `toml:"rubric_file"`
		ListenAddr    *string  `toml:"listen_addr"`
		LogLevel      *string  `toml:"log_level"`
		LogFile       *string  `toml:"log_file"`
	}{}

	if err := toml.Unmarshal(content, &x); err != nil {
		return fmt.Errorf("failed to unmarshal config file '%s': %w", path, err)
	}

	overlay(&cfg.Model, x.Model)
	overlay(&cfg.InputDir, x.InputDir)
	overlay(&cfg.OutputCSV, x.OutputCSV)
	overlay(&cfg.ListenAddr, x.ListenAddr)
	overlay(&cfg.LogLevel, x.LogLevel)
	overlay(&cfg.LogFile, x.LogFile)
	if x.DPI != nil {
		cfg.DPI = *x.DPI
	}
	if x.MaxImageWidth != nil {
		cfg.MaxImageWidth = *x.MaxImageWidth
	}
	overlay(&cfg.Rubric, x.Rubric)
	if x.RubricFile != nil {
		rubric, err := os.ReadFile(*x.RubricFile)
		if err != nil {
			return fmt.Errorf("failed to read rubric file '%s': %w", *x.RubricFile, err)
		}
		cfg.Rubric = string(rubric)
	}
	return nil
}

func overlay(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// Validate reports startup-fatal problems. A missing API key means the
// process must exit before any submission is touched.
func (cfg Config) Validate() error {
	if cfg.APIKey == "" {
		return ErrMissingAPIKey
	}
	if cfg.DPI <= 0 {
		return fmt.Errorf("render dpi must be positive, got %v", cfg.DPI)
	}
	if cfg.MaxImageWidth < 0 {
		return fmt.Errorf("max image width must not be negative, got %d", cfg.MaxImageWidth)
	}
	return nil
}
