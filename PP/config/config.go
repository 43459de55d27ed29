// Package config loads benchmark settings from YAML and validates them
// before anything reaches the benchmark packages.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/iyisakuma/pp-bench/PP/parallel"
	"github.com/iyisakuma/pp-bench/PP/params"
	"github.com/iyisakuma/pp-bench/PP/parity"
)

var ErrInvalid = errors.New("invalid configuration")

type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`
}

// Config is the full set of benchmark settings. Zero-valued fields fall
// back to the selected class.
type Config struct {
	Class        string         `yaml:"class" validate:"required,oneof=S W A B"`
	CorpusPath   string         `yaml:"corpus_path"`
	StringLength int            `yaml:"string_length" validate:"gte=0"`
	Threads      []int          `yaml:"threads" validate:"omitempty,dive,gte=0"`
	Repetitions  map[string]int `yaml:"repetitions" validate:"omitempty,dive,keys,oneof=map set array bitmask popcount strings flat flat-threads,endkeys,gte=1"`
	Variants     []string       `yaml:"variants" validate:"omitempty,dive,oneof=map set array bitmask popcount"`
	Reducer      string         `yaml:"reducer" validate:"omitempty,oneof=waitgroup channel atomic errgroup"`
	Verify       bool           `yaml:"verify"`
	ExpectedHits *int           `yaml:"expected_hits" validate:"omitempty,gte=0"`
	MetricsAddr  string         `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
	Log          LogConfig      `yaml:"log"`
}

func Default() Config {
	return Config{
		Class:   "S",
		Reducer: parallel.NameWaitGroup,
		Verify:  true,
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads path over Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field and returns one error listing all problems.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s fails %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// ClassParams returns the selected class with the config's overrides
// applied.
func (c *Config) ClassParams() (params.Class, error) {
	class, err := params.Lookup(c.Class)
	if err != nil {
		return params.Class{}, err
	}
	if c.StringLength > 0 {
		class.StringLength = c.StringLength
	}
	if len(c.Threads) > 0 {
		class.Threads = append([]int(nil), c.Threads...)
	}
	if len(c.Repetitions) > 0 {
		reps := make(map[string]int, len(class.Repetitions)+len(c.Repetitions))
		for k, v := range class.Repetitions {
			reps[k] = v
		}
		for k, v := range c.Repetitions {
			reps[k] = v
		}
		class.Repetitions = reps
	}
	return class, nil
}

// Degrees converts the thread counts of the selected class.
func (c *Config) Degrees() ([]parallel.Degree, error) {
	class, err := c.ClassParams()
	if err != nil {
		return nil, err
	}
	return parallel.Threads(class.Threads)
}

// SelectedVariants resolves Variants; empty selects every variant.
func (c *Config) SelectedVariants() ([]parity.Variant, error) {
	if len(c.Variants) == 0 {
		return parity.Variants(), nil
	}
	out := make([]parity.Variant, 0, len(c.Variants))
	for _, name := range c.Variants {
		v, err := parity.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// SelectedReducer resolves Reducer.
func (c *Config) SelectedReducer() (parallel.Reducer, error) {
	return parallel.ReducerByName(c.Reducer)
}
