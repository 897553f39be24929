// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"fasta/internal/logging"
)

// EnvConfigPath names a config file used when --config is not given.
const EnvConfigPath = "FASTA_CONFIG"

// Config holds the tool settings a config file may provide.
type Config struct {
	LogLevel     string
	LogTimestamp bool
	NoColor      bool
	Output       string
	KeepGoing    bool
	NoHeader     bool
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Output:   "text",
	}
}

// fileConfig uses pointers so absent keys keep their defaults.
type fileConfig struct {
	LogLevel     *string `toml:"log_level" yaml:"log_level"`
	LogTimestamp *bool   `toml:"log_timestamp" yaml:"log_timestamp"`
	NoColor      *bool   `toml:"no_color" yaml:"no_color"`
	Output       *string `toml:"output" yaml:"output"`
	KeepGoing    *bool   `toml:"keep_going" yaml:"keep_going"`
	NoHeader     *bool   `toml:"no_header" yaml:"no_header"`
}

// Load reads path (TOML, or YAML for .yaml/.yml) over the defaults. An empty
// path falls back to $FASTA_CONFIG, and to the defaults when that is unset.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfigPath))
	}
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(path, &raw)
	default:
		err = decodeTOML(path, &raw)
	}
	if err != nil {
		return Config{}, err
	}

	if raw.LogLevel != nil {
		cfg.LogLevel = strings.TrimSpace(*raw.LogLevel)
	}
	if raw.LogTimestamp != nil {
		cfg.LogTimestamp = *raw.LogTimestamp
	}
	if raw.NoColor != nil {
		cfg.NoColor = *raw.NoColor
	}
	if raw.Output != nil {
		cfg.Output = strings.TrimSpace(*raw.Output)
	}
	if raw.KeepGoing != nil {
		cfg.KeepGoing = *raw.KeepGoing
	}
	if raw.NoHeader != nil {
		cfg.NoHeader = *raw.NoHeader
	}
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeTOML(path string, out *fileConfig) error {
	meta, err := toml.DecodeFile(path, out)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

func decodeYAML(path string, out *fileConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}

func Validate(cfg Config) error {
	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("invalid log_level %q", cfg.LogLevel)
	}
	if strings.TrimSpace(cfg.Output) == "" {
		return errors.New("output must not be empty")
	}
	return nil
}
