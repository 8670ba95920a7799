// Package config loads the optional YAML run configuration. The CLI
// takes only the dataset and model paths; everything else — split
// ratio and seed, featurizer size, trainer hyperparameters, stopwords,
// run-history location — comes from this file or its defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/kabar/pkg/kabar/internalerr"
)

// DefaultPath is the config file looked up next to the working
// directory when none is given.
const DefaultPath = "kabar.yaml"

// Config is the run-level configuration.
type Config struct {
	Split struct {
		TestRatio float64 `yaml:"test_ratio"`
		Seed      int64   `yaml:"seed"`
	} `yaml:"split"`
	Featurizer struct {
		Dims int `yaml:"dims"`
	} `yaml:"featurizer"`
	Trainer struct {
		LearningRate float64 `yaml:"learning_rate"`
		Epochs       int     `yaml:"epochs"`
		BatchSize    int     `yaml:"batch_size"`
	} `yaml:"trainer"`
	Stopwords []string `yaml:"stopwords"`
	RunsDB    string   `yaml:"runs_db"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	var c Config
	c.Split.TestRatio = 0.2
	c.Split.Seed = 42
	c.Featurizer.Dims = 8192
	c.Trainer.LearningRate = 0.1
	c.Trainer.Epochs = 30
	c.Trainer.BatchSize = 32
	c.RunsDB = "training_runs.db"
	return c
}

// Load reads the configuration from path. A missing file is not an
// error; defaults are returned. Fields absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Split.TestRatio <= 0 || c.Split.TestRatio >= 1 {
		return fmt.Errorf("%w: split test_ratio must be in (0, 1)", internalerr.ErrInvalidConfig)
	}
	if c.Featurizer.Dims <= 0 {
		return fmt.Errorf("%w: featurizer dims must be positive", internalerr.ErrInvalidConfig)
	}
	if c.Trainer.Epochs <= 0 {
		return fmt.Errorf("%w: trainer epochs must be positive", internalerr.ErrInvalidConfig)
	}
	return nil
}
