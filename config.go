package diag

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sink kinds accepted in Config.Sink.
const (
	SinkStderr  = "stderr"
	SinkConsole = "console"
	SinkFile    = "file"
	SinkZap     = "zap"
)

// Config selects the process diagnostics sink. The severity threshold is
// deliberately absent: it is fixed at build time and cannot be configured
// here. Only the destination and its presentation are runtime choices.
type Config struct {
	// Sink is one of stderr, console, file, zap.
	Sink string `yaml:"sink"`
	// File is the log file path; required when Sink is "file".
	File string `yaml:"file"`
	// Color is auto, always or never; used by the console sink.
	Color string `yaml:"color"`
}

// DefaultConfig returns the configuration used when no file exists: plain
// lines on stderr.
func DefaultConfig() Config {
	return Config{
		Sink:  SinkStderr,
		Color: string(ColorAuto),
	}
}

// LoadConfig reads a YAML diagnostics config. A missing file is not an
// error; defaults are returned so a bare install works without setup.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Sink == "" {
		cfg.Sink = SinkStderr
	}
	if cfg.Color == "" {
		cfg.Color = string(ColorAuto)
	}
	return cfg, nil
}

// Apply builds the configured sink and installs it as the process sink.
// Call once at startup, before anything logs.
func (c Config) Apply() error {
	switch c.Sink {
	case SinkStderr, "":
		SetSink(WriterSink{W: os.Stderr})
	case SinkConsole:
		SetSink(NewConsoleSink(os.Stderr, ColorMode(c.Color)))
	case SinkFile:
		if c.File == "" {
			return fmt.Errorf("sink %q requires a file path", SinkFile)
		}
		s, err := NewFileSink(c.File)
		if err != nil {
			return err
		}
		SetSink(s)
	case SinkZap:
		s, err := NewDevelopmentZapSink()
		if err != nil {
			return err
		}
		SetSink(s)
	default:
		return fmt.Errorf("unknown sink %q (expected stderr, console, file or zap)", c.Sink)
	}
	return nil
}
