package ui

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"digitpad/internal/drawing"
	"digitpad/internal/model"
	"digitpad/internal/preprocess"

	"fyne.io/fyne/v2"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	configFile = ".digitpad.json"

	VariantMinimal      = "minimal"
	VariantProfessional = "professional"

	envModel    = "DIGITPAD_MODEL"
	envMetadata = "DIGITPAD_METADATA"
	envLibrary  = "DIGITPAD_ORT_LIB"
	envVariant  = "DIGITPAD_VARIANT"
)

func DefaultConfig() *Config {
	return &Config{
		Variant:       VariantMinimal,
		ModelPath:     "digit_recognition.onnx",
		CanvasSize:    drawing.DefaultSize,
		BrushRadius:   drawing.DefaultBrushRadius,
		CropToContent: true,
		PadRatio:      preprocess.DefaultOptions().PadRatio,
	}
}

// LoadConfig reads ~/.digitpad.json, then applies overrides from the
// environment and an optional .env file in the working directory.
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "locating home directory")
	}
	if err := loadDotenv(); err != nil {
		log.Printf("Failed to load .env: %v", err)
	}
	return LoadConfigFrom(filepath.Join(home, configFile))
}

// loadDotenv reads .env files into the process environment. Missing files
// are not an error.
func loadDotenv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func LoadConfigFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.path = path

	file, err := os.Open(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.Wrap(err, "opening config file")
	default:
		defer file.Close()
		if err := json.NewDecoder(file).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "decoding config file")
		}
	}

	onDisk := *cfg
	cfg.onDisk = &onDisk

	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

// SaveConfig writes the window geometry back on top of the values that were
// read from disk. Environment overrides and derived paths stay out of the file.
func SaveConfig(cfg *Config) error {
	if cfg.path == "" {
		return errors.New("config has no file path")
	}

	out := *cfg
	if cfg.onDisk != nil {
		out = *cfg.onDisk
		out.WindowWidth, out.WindowHeight = cfg.WindowWidth, cfg.WindowHeight
	}

	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling config")
	}

	return errors.Wrap(os.WriteFile(cfg.path, data, 0644), "writing config file")
}

func (cfg *Config) applyEnv() {
	for env, field := range map[string]*string{
		envModel:    &cfg.ModelPath,
		envMetadata: &cfg.MetadataPath,
		envLibrary:  &cfg.LibraryPath,
		envVariant:  &cfg.Variant,
	} {
		if v := os.Getenv(env); v != "" {
			*field = v
		}
	}
}

func (cfg *Config) normalize() {
	cfg.Variant = strings.ToLower(strings.TrimSpace(cfg.Variant))
	if cfg.Variant != VariantMinimal && cfg.Variant != VariantProfessional {
		log.Printf("Unknown variant %q, using %s", cfg.Variant, VariantMinimal)
		cfg.Variant = VariantMinimal
	}
	if cfg.CanvasSize <= 0 {
		cfg.CanvasSize = drawing.DefaultSize
	}
	if cfg.BrushRadius <= 0 {
		cfg.BrushRadius = drawing.DefaultBrushRadius
	}
	if cfg.PadRatio < 0 {
		cfg.PadRatio = 0
	}
	if cfg.MetadataPath == "" && cfg.ModelPath != "" {
		cfg.MetadataPath = strings.TrimSuffix(cfg.ModelPath, filepath.Ext(cfg.ModelPath)) + ".json"
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		size := defaultWindowSize(cfg.Variant)
		cfg.WindowWidth, cfg.WindowHeight = size.Width, size.Height
	}
}

func defaultWindowSize(variant string) fyne.Size {
	if variant == VariantProfessional {
		return fyne.NewSize(780, 560)
	}
	return fyne.NewSize(350, 500)
}

func (cfg *Config) ModelConfig() model.Config {
	return model.Config{
		ModelPath:    cfg.ModelPath,
		MetadataPath: cfg.MetadataPath,
		LibraryPath:  cfg.LibraryPath,
	}
}

func (cfg *Config) PreprocessOptions() preprocess.Options {
	opts := preprocess.DefaultOptions()
	opts.CropToContent = cfg.CropToContent
	opts.PadRatio = cfg.PadRatio
	return opts
}
