package scheduler

import (
	"math"

	"github.com/schedulify/backend/internal/domain"
)

const (
	baseFitness     = 100.0
	conflictPenalty = 10.0
)

/**
 * Fitness of one candidate timetable:
 * fitness = base - conflictPenalty * instructorConflicts - loadVariance
 * where:
 * 		1. instructorConflicts counts, for every assigned cell, on how many
 * 		   other days the same instructor teaches at the same time slot
 * 		2. loadVariance is the population variance of the six daily lesson
 * 		   counts (used to spread the teaching load across the week)
 * Note that the conflict term flags an instructor recurring at the same clock
 * time on different days; two lessons of one instructor in different slots of
 * the same day are not penalized.
 */
func (s *Scheduler) calcFitness(ind *Individual) {
	fitness := baseFitness

	for day := 0; day < daysPerWeek; day++ {
		for slot := 0; slot < slotsPerDay; slot++ {
			cell := ind.cells[cellIndex(day, slot)]
			if cell.Kind != domain.CellAssigned {
				continue
			}

			for other := 0; other < daysPerWeek; other++ {
				if other == day {
					continue
				}
				otherCell := ind.cells[cellIndex(other, slot)]
				if otherCell.Kind == domain.CellAssigned && otherCell.Assignment.Instructor == cell.Assignment.Instructor {
					fitness -= conflictPenalty
				}
			}
		}
	}

	// daily load balance
	loads := make([]float64, daysPerWeek)
	for day := 0; day < daysPerWeek; day++ {
		for slot := 0; slot < slotsPerDay; slot++ {
			if ind.cells[cellIndex(day, slot)].Kind == domain.CellAssigned {
				loads[day]++
			}
		}
	}

	mean := 0.0
	for _, load := range loads {
		mean += load
	}
	mean /= daysPerWeek

	variance := 0.0
	for _, load := range loads {
		variance += math.Pow(load-mean, 2)
	}
	variance /= daysPerWeek

	ind.fitness = fitness - variance
}

// selectByRoulette picks one parent with probability proportional to its
// clamped non-negative fitness. pop must already be ranked: when every score
// is non-positive the wheel degenerates to the best individual.
func (s *Scheduler) selectByRoulette(pop []*Individual) *Individual {
	sumFit := 0.0
	for _, ind := range pop {
		sumFit += math.Max(0, ind.fitness)
	}
	if sumFit == 0 {
		return pop[0]
	}

	pick := s.rng.Float64() * sumFit
	for _, ind := range pop {
		pick -= math.Max(0, ind.fitness)
		if pick <= 0 {
			return ind
		}
	}

	// theoretically unreachable
	return pop[len(pop)-1]
}

// uniformCrossover builds one child, taking every cell from either parent
// with equal probability. No repair is attempted afterwards: a child may
// duplicate or lose placements, which only fitness pressure corrects over the
// generations.
func (s *Scheduler) uniformCrossover(p1, p2 *Individual) *Individual {
	cells := make([]domain.Cell, totalCells)
	for i := range cells {
		if s.rng.Float64() < 0.5 {
			cells[i] = cloneCell(p1.cells[i])
		} else {
			cells[i] = cloneCell(p2.cells[i])
		}
	}
	return &Individual{cells: cells}
}

// mutate swaps the contents of two randomly chosen non-lunch cells. Both
// draws are taken with replacement, so the swap may hit the same cell twice
// and do nothing.
func (s *Scheduler) mutate(ind *Individual) {
	if s.rng.Float64() >= s.parameters.MutationRate {
		return
	}

	free := assignableCellIndexes()
	i := free[s.rng.Intn(len(free))]
	j := free[s.rng.Intn(len(free))]
	ind.cells[i], ind.cells[j] = ind.cells[j], ind.cells[i]
}
