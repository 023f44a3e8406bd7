package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for a simulation run
type Config struct {
	UseParallel   bool   `json:"use_parallel" yaml:"use_parallel"`
	Workers       int    `json:"workers" yaml:"workers"`
	UseMemoryPool bool   `json:"use_memory_pool" yaml:"use_memory_pool"`
	DetectCycles  bool   `json:"detect_cycles" yaml:"detect_cycles"`
	HistorySize   int    `json:"history_size" yaml:"history_size"`
	RevivalPolicy string `json:"revival_policy" yaml:"revival_policy"`
	LogLevel      string `json:"log_level" yaml:"log_level"`
	ProgressEvery int    `json:"progress_every" yaml:"progress_every"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		UseParallel:   true,
		Workers:       runtime.NumCPU(),
		UseMemoryPool: true,
		DetectCycles:  true,
		HistorySize:   16, // Longest cycle period that can be fast-forwarded
		RevivalPolicy: "discovery",
		LogLevel:      "info",
		ProgressEvery: 1000,
	}
}

// WorkerCount returns the number of stepping workers the config asks for
func (c Config) WorkerCount() int {
	if !c.UseParallel || c.Workers < 1 {
		return 1
	}
	return c.Workers
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
