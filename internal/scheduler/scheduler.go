package scheduler

import (
	"context"
	"errors"
	"math/rand"
	"sort"

	"github.com/samber/lo"
	"github.com/schedulify/backend/internal/domain"
	"github.com/schedulify/backend/internal/utils"
)

// Scheduler runs one genetic optimization over the weekly grid. Subjects and
// rooms are read-only input; every random decision goes through rng, so a
// fixed seed reproduces the whole run.
type Scheduler struct {
	parameters *Parameters
	subjects   []*domain.Subject
	rooms      []*domain.Room
	rng        *rand.Rand
}

func New(parameters *Parameters, subjects []*domain.Subject, rooms []*domain.Room, rng *rand.Rand) (*Scheduler, error) {
	if parameters == nil {
		parameters = DefaultParameters()
	}

	if parameters.PopulationSize <= 0 {
		return nil, errors.New("population size must be positive")
	}
	if parameters.MaxGenerations <= 0 {
		return nil, errors.New("generation count must be positive")
	}
	if parameters.MutationRate < 0 || parameters.MutationRate > 1 {
		return nil, errors.New("mutation rate must be within [0, 1]")
	}
	if parameters.ElitismFraction <= 0 || parameters.ElitismFraction > 1 {
		return nil, errors.New("elitism fraction must be within (0, 1]")
	}

	if rng == nil {
		rng = utils.NewRand(0)
	}

	return &Scheduler{
		parameters: parameters,
		subjects:   subjects,
		rooms:      rooms,
		rng:        rng,
	}, nil
}

// Schedule runs the generational loop to completion and returns the best
// timetable found. The context is checked once per generation; apart from
// cancellation there is nothing that can fail here.
func (s *Scheduler) Schedule(ctx context.Context) (*Result, error) {
	populationSize := int(s.parameters.PopulationSize)

	// seed the initial population
	pop := make([]*Individual, populationSize)
	for i := range pop {
		pop[i] = s.randomIndividual()
	}

	eliteCount := int(float64(populationSize) * s.parameters.ElitismFraction)
	if eliteCount < 1 {
		eliteCount = 1
	}

	for gen := 0; gen < int(s.parameters.MaxGenerations); gen++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for _, ind := range pop {
			s.calcFitness(ind)
		}

		// rank by fitness, ties keep their population order
		sort.SliceStable(pop, func(i, j int) bool {
			return pop[i].fitness > pop[j].fitness
		})

		// keep the elite unchanged, refill the rest through
		// selection, crossover and mutation
		newPop := make([]*Individual, 0, populationSize)
		newPop = append(newPop, pop[:eliteCount]...)

		for len(newPop) < populationSize {
			p1 := s.selectByRoulette(pop)
			p2 := s.selectByRoulette(pop)

			child := s.uniformCrossover(p1, p2)
			s.mutate(child)

			newPop = append(newPop, child)
		}

		pop = newPop
	}

	// the head of the final population is the top elite of the last
	// completed evaluation, i.e. the best timetable of the whole run
	best := pop[0]

	return &Result{
		Schedule:      toSchedule(best.cells),
		Fitness:       best.fitness,
		UnplacedHours: s.unplacedHours(),
	}, nil
}

// unplacedHours reports by how much the requested weekly hours exceed the
// grid capacity. The surplus is silently left out of the timetable; callers
// that care can warn about it.
func (s *Scheduler) unplacedHours() int32 {
	requested := lo.SumBy(s.subjects, func(subject *domain.Subject) int32 {
		return subject.HoursPerWeek
	})
	if requested <= assignableCells {
		return 0
	}
	return requested - assignableCells
}
