package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, int32(50), cfg.GA.PopulationSize)
	assert.Equal(t, int32(100), cfg.GA.MaxGenerations)
	assert.Equal(t, 0.1, cfg.GA.MutationRate)
	assert.Equal(t, 0.2, cfg.GA.ElitismFraction)
	assert.True(t, cfg.Output.Pretty)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("GA_POPULATION_SIZE", "20")
	t.Setenv("GA_MAX_GENERATIONS", "250")
	t.Setenv("GA_MUTATION_RATE", "0.05")
	t.Setenv("GA_ELITISM_FRACTION", "0.4")
	t.Setenv("OUTPUT_PRETTY", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, int32(20), cfg.GA.PopulationSize)
	assert.Equal(t, int32(250), cfg.GA.MaxGenerations)
	assert.Equal(t, 0.05, cfg.GA.MutationRate)
	assert.Equal(t, 0.4, cfg.GA.ElitismFraction)
	assert.False(t, cfg.Output.Pretty)
}
