package scheduler

import "github.com/schedulify/backend/internal/domain"

// cellIndex maps (day, slot) to a position in the fixed 48-cell arena.
func cellIndex(day, slot int) int {
	return day*slotsPerDay + slot
}

func isLunchSlot(slot int) bool {
	return slot == domain.LunchSlotIndex
}

// assignableCellIndexes returns the arena positions that may hold lessons,
// i.e. every cell except the lunch break of each day.
func assignableCellIndexes() []int {
	indexes := make([]int, 0, assignableCells)
	for day := 0; day < daysPerWeek; day++ {
		for slot := 0; slot < slotsPerDay; slot++ {
			if isLunchSlot(slot) {
				continue
			}
			indexes = append(indexes, cellIndex(day, slot))
		}
	}
	return indexes
}

// newEmptyCells returns a fresh arena with the lunch mask already applied.
// Operators only ever touch assignable positions, so the lunch cells written
// here are never overwritten afterwards.
func newEmptyCells() []domain.Cell {
	cells := make([]domain.Cell, totalCells)
	for i := range cells {
		if isLunchSlot(i % slotsPerDay) {
			cells[i] = domain.Cell{Kind: domain.CellLunchBreak}
		} else {
			cells[i] = domain.Cell{Kind: domain.CellEmpty}
		}
	}
	return cells
}

// cloneCell deep-copies a cell so that a child never aliases its parent's
// assignment.
func cloneCell(cell domain.Cell) domain.Cell {
	if cell.Assignment != nil {
		assignment := *cell.Assignment
		cell.Assignment = &assignment
	}
	return cell
}

// toSchedule converts the arena into the day → slot → cell document shape.
func toSchedule(cells []domain.Cell) domain.Schedule {
	schedule := make(domain.Schedule, daysPerWeek)
	for d, day := range domain.Days {
		row := make(map[domain.TimeSlot]domain.Cell, slotsPerDay)
		for t, slot := range domain.TimeSlots {
			row[slot] = cloneCell(cells[cellIndex(d, t)])
		}
		schedule[day] = row
	}
	return schedule
}
