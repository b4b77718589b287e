// Package config loads the optional ambient run configuration. The
// positional CLI arguments are the contract; the YAML file only tunes
// logging and instrumentation and is entirely optional.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvVar names an explicit config path. When set, the file must exist.
const EnvVar = "COSTAR_CONFIG"

// DefaultPath is consulted when EnvVar is unset; missing is fine.
const DefaultPath = "costar.yaml"

// Run is the ambient configuration shared by the three tools.
type Run struct {
	LogLevel    string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	MetricsFile string `yaml:"metrics_file" validate:"omitempty,filepath"`
}

var validate = validator.New()

func defaults() *Run {
	return &Run{LogLevel: "info"}
}

// Load reads the run config from $COSTAR_CONFIG or ./costar.yaml.
// An absent default file yields defaults; an absent explicit file,
// unparsable YAML, or a value failing validation is an error.
func Load() (*Run, error) {
	path := os.Getenv(EnvVar)
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return defaults(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
