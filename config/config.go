// Package config loads genetic.Options from a configuration file, the
// environment and optional .env files.
//
// Precedence, highest first: MEMETIC_* environment variables (including those
// set by .env files), the configuration file, genetic.DefaultOptions.
//
// Recognised keys:
//
//	population_size       even integer ≥ 2
//	mutation_probability  real in [0,1]
//	generations           integer ≥ 1
//	selection             ranked | tournament
//	tournament_size       integer ≥ 0 (0 = population_size/5)
//	seed                  integer
//	local_search          swap | two_opt | none
//	workers               integer ≥ 0
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/memetic/genetic"
	"github.com/katalvlaran/memetic/tsp"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. MEMETIC_GENERATIONS.
const EnvPrefix = "MEMETIC"

// ErrUnknownLocalSearch is returned for a local_search value with no
// implementation. It also matches genetic.ErrInvalidConfiguration.
var ErrUnknownLocalSearch = fmt.Errorf("%w: unknown local search", genetic.ErrInvalidConfiguration)

// File mirrors the configuration keys.
type File struct {
	PopulationSize      int     `mapstructure:"population_size"`
	MutationProbability float64 `mapstructure:"mutation_probability"`
	Generations         int     `mapstructure:"generations"`
	Selection           string  `mapstructure:"selection"`
	TournamentSize      int     `mapstructure:"tournament_size"`
	Seed                int64   `mapstructure:"seed"`
	LocalSearch         string  `mapstructure:"local_search"`
	Workers             int     `mapstructure:"workers"`
}

// Load reads path (YAML, JSON or TOML by extension; empty for none), applies
// envFiles with godotenv (variables already set are not overridden) and
// MEMETIC_* overrides, and returns validated options.
func Load(path string, envFiles ...string) (genetic.Options, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return genetic.Options{}, fmt.Errorf("config: load env files %v: %w", envFiles, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return genetic.Options{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return genetic.Options{}, fmt.Errorf("config: decode: %w", err)
	}

	return f.Options()
}

// Options converts f into validated genetic.Options.
func (f File) Options() (genetic.Options, error) {
	sel, err := genetic.ParseSelectionStrategy(f.Selection)
	if err != nil {
		return genetic.Options{}, fmt.Errorf("config: selection: %w", err)
	}
	ls, ok := tsp.LocalSearchByName(strings.ToLower(strings.TrimSpace(f.LocalSearch)))
	if !ok {
		return genetic.Options{}, fmt.Errorf("config: local_search %q: %w", f.LocalSearch, ErrUnknownLocalSearch)
	}

	opts := genetic.Options{
		PopulationSize:      f.PopulationSize,
		MutationProbability: f.MutationProbability,
		Generations:         f.Generations,
		Selection:           sel,
		TournamentSize:      f.TournamentSize,
		Seed:                f.Seed,
		LocalSearch:         ls,
		Workers:             f.Workers,
	}
	if err = opts.Validate(); err != nil {
		return genetic.Options{}, fmt.Errorf("config: %w", err)
	}

	return opts, nil
}

// setDefaults registers every key so that AutomaticEnv can override keys the
// file does not mention.
func setDefaults(v *viper.Viper) {
	d := genetic.DefaultOptions()
	v.SetDefault("population_size", d.PopulationSize)
	v.SetDefault("mutation_probability", d.MutationProbability)
	v.SetDefault("generations", d.Generations)
	v.SetDefault("selection", d.Selection.String())
	v.SetDefault("tournament_size", d.TournamentSize)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("local_search", d.LocalSearch.Name())
	v.SetDefault("workers", d.Workers)
}

// IsNotFound reports whether err stems from a missing configuration file.
func IsNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}
