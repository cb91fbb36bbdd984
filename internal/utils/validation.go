package utils

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/schedulify/backend/internal/domain"
)

// ValidateGenerationRequest performs the cross-field checks that struct tags
// cannot express. Struct-level validation (required fields, enum values,
// positive hours) is expected to have run already.
func ValidateGenerationRequest(request *domain.GenerationRequest) error {
	seenSubjects := make(map[string]bool)
	for i, subject := range request.Subjects {
		if seenSubjects[subject.ID] {
			return fmt.Errorf("subject %d reuses the id %q", i+1, subject.ID)
		}
		seenSubjects[subject.ID] = true
	}

	seenRooms := make(map[string]bool)
	for i, room := range request.Rooms {
		if seenRooms[room.Label] {
			return fmt.Errorf("room %d reuses the label %q", i+1, room.Label)
		}
		seenRooms[room.Label] = true
	}

	return nil
}

// RequestedHours sums the weekly hours over all subjects of a request.
func RequestedHours(subjects []domain.Subject) int32 {
	return lo.SumBy(subjects, func(subject domain.Subject) int32 {
		return subject.HoursPerWeek
	})
}
