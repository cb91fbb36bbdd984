package scheduler

import "github.com/schedulify/backend/internal/domain"

// Fixed weekly grid: 6 working days of 8 slots each, one of which is the
// lunch break on every day. That leaves 42 cells a week that can hold lessons.
const (
	daysPerWeek     = 6
	slotsPerDay     = 8
	totalCells      = daysPerWeek * slotsPerDay
	assignableCells = totalCells - daysPerWeek
)

// Individual: one candidate timetable together with its most recent score.
type Individual struct {
	cells   []domain.Cell // arena of totalCells cells, indexed by cellIndex
	fitness float64
}

// Genetic algorithm parameters.
type Parameters struct {
	PopulationSize  int32   // number of individuals per generation
	MaxGenerations  int32   // fixed generation budget, no early termination
	MutationRate    float64 // probability of one swap mutation per child
	ElitismFraction float64 // fraction of the ranked population carried over unchanged
}

func DefaultParameters() *Parameters {
	return &Parameters{
		PopulationSize:  50,
		MaxGenerations:  100,
		MutationRate:    0.1,
		ElitismFraction: 0.2,
	}
}

// Result of one optimization run. UnplacedHours reports how many requested
// weekly hours did not fit into the grid; truncation is not an error.
type Result struct {
	Schedule      domain.Schedule
	Fitness       float64
	UnplacedHours int32
}
