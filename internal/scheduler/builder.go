package scheduler

import (
	"github.com/samber/lo"
	"github.com/schedulify/backend/internal/domain"
)

// randomIndividual builds one candidate timetable: shuffle the assignable
// cells, then let each subject claim its weekly hours off the shuffled list in
// subject order. Once the list is exhausted the remaining subjects simply get
// fewer cells, so overbooked input degrades silently instead of failing.
func (s *Scheduler) randomIndividual() *Individual {
	cells := newEmptyCells()

	free := assignableCellIndexes()
	s.rng.Shuffle(len(free), func(i, j int) {
		free[i], free[j] = free[j], free[i]
	})

	next := 0
	for _, subject := range s.subjects {
		for hour := int32(0); hour < subject.HoursPerWeek && next < len(free); hour++ {
			cells[free[next]] = domain.Cell{
				Kind: domain.CellAssigned,
				Assignment: &domain.Assignment{
					SubjectID:   subject.ID,
					SubjectName: subject.Name,
					Instructor:  subject.Instructor,
					SubjectType: subject.Type,
					Room:        s.assignRoom(subject.Type),
				},
			}
			next++
		}
	}

	return &Individual{cells: cells}
}

// assignRoom picks a room label for a subject type: practicals want a
// laboratory, theory wants a classroom, anything else can go anywhere. When no
// room of the wanted type exists the first room of the pool is used anyway; a
// mismatched room is still better than none.
func (s *Scheduler) assignRoom(subjectType domain.SubjectType) string {
	if len(s.rooms) == 0 {
		return domain.RoomUnassigned
	}

	candidates := s.rooms
	switch subjectType {
	case domain.SubjectPractical:
		candidates = lo.Filter(s.rooms, func(room *domain.Room, _ int) bool {
			return room.Type == domain.RoomLaboratory
		})
	case domain.SubjectTheory:
		candidates = lo.Filter(s.rooms, func(room *domain.Room, _ int) bool {
			return room.Type == domain.RoomClassroom
		})
	}

	if len(candidates) == 0 {
		return s.rooms[0].Label
	}

	return candidates[s.rng.Intn(len(candidates))].Label
}
