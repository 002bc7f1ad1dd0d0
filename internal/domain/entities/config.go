package entities

import (
	"fmt"
	"strings"
)

// Алгоритмы сжатия изображений
const (
	BackendStdlib  = "stdlib"
	BackendImaging = "imaging"
)

// Config представляет конфигурацию приложения
type Config struct {
	UI          UIConfig          `yaml:"ui"`
	Compression CompressionConfig `yaml:"compression"`
	Output      OutputConfig      `yaml:"output"`
}

// UIConfig оформление и размеры области предпросмотра
type UIConfig struct {
	Title            string `yaml:"title"`
	BackgroundColor  string `yaml:"background_color"`
	ForegroundColor  string `yaml:"foreground_color"`
	ButtonColor      string `yaml:"button_color"`
	ButtonHoverColor string `yaml:"button_hover_color"`
	BorderColor      string `yaml:"border_color"`
	PreviewWidth     int    `yaml:"preview_width"`
	PreviewHeight    int    `yaml:"preview_height"`
}

// CompressionConfig настройки сжатия
type CompressionConfig struct {
	Backend         string `yaml:"backend"`
	DefaultQuality  int    `yaml:"default_quality"` // Качество в процентах (0-100)
	OutputDirectory string `yaml:"output_directory"`
	OutputPrefix    string `yaml:"output_prefix"`
	// Предупреждать, что для PNG качество не влияет на результат
	WarnLosslessQuality bool `yaml:"warn_lossless_quality"`
}

// OutputConfig настройки журнала
type OutputConfig struct {
	LogLevel       string `yaml:"log_level"`
	LogToFile      bool   `yaml:"log_to_file"`
	LogFileName    string `yaml:"log_file_name"`
	LogMaxSizeMB   int    `yaml:"log_max_size_mb"`
	LogMaxBackups  int    `yaml:"log_max_backups"`
	LogMaxAgeDays  int    `yaml:"log_max_age_days"`
	LogCompress    bool   `yaml:"log_compress"`
	ShowLogInPanel bool   `yaml:"show_log_in_panel"`
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Title:            "Image Compressor",
			BackgroundColor:  "#252C35",
			ForegroundColor:  "#FFFFFF",
			ButtonColor:      "#3264C8",
			ButtonHoverColor: "#4678DC",
			BorderColor:      "#505050",
			PreviewWidth:     DefaultPreviewWidth,
			PreviewHeight:    DefaultPreviewHeight,
		},
		Compression: CompressionConfig{
			Backend:             BackendStdlib,
			DefaultQuality:      DefaultQualityPercent,
			OutputDirectory:     ".",
			OutputPrefix:        DefaultOutputPrefix,
			WarnLosslessQuality: true,
		},
		Output: OutputConfig{
			LogLevel:       "info",
			LogToFile:      true,
			LogFileName:    "compressor.log",
			LogMaxSizeMB:   10,
			LogMaxBackups:  3,
			LogMaxAgeDays:  30,
			LogCompress:    false,
			ShowLogInPanel: true,
		},
	}
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Compression.DefaultQuality < MinQualityPercent || c.Compression.DefaultQuality > MaxQualityPercent {
		return &InvalidQualityInputError{Input: fmt.Sprint(c.Compression.DefaultQuality)}
	}

	if c.UI.PreviewWidth <= 0 || c.UI.PreviewHeight <= 0 {
		return fmt.Errorf("%w: область предпросмотра %dx%d", ErrInvalidDimensions, c.UI.PreviewWidth, c.UI.PreviewHeight)
	}

	switch strings.ToLower(c.Compression.Backend) {
	case BackendStdlib, BackendImaging:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBackend, c.Compression.Backend)
	}

	if c.Compression.OutputPrefix == "" {
		return ErrInvalidOutputPrefix
	}

	return nil
}

// PreviewBox рамка предпросмотра
func (c *UIConfig) PreviewBox() PreviewDimensions {
	return PreviewDimensions{Width: c.PreviewWidth, Height: c.PreviewHeight}
}
