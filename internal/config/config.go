package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	GA          struct {
		PopulationSize  int32   `env:"POPULATION_SIZE" envDefault:"50"`
		MaxGenerations  int32   `env:"MAX_GENERATIONS" envDefault:"100"`
		MutationRate    float64 `env:"MUTATION_RATE" envDefault:"0.1"`
		ElitismFraction float64 `env:"ELITISM_FRACTION" envDefault:"0.2"`
	} `envPrefix:"GA_"`
	Output struct {
		Pretty bool `env:"PRETTY" envDefault:"true"`
	} `envPrefix:"OUTPUT_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// only return the first error to keep the log readable
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
