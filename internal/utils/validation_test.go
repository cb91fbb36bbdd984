package utils

import (
	"testing"

	"github.com/schedulify/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidateGenerationRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		request := &domain.GenerationRequest{
			Subjects: []domain.Subject{
				{ID: "s1", Name: "Algorithms", Instructor: "alice", Type: domain.SubjectTheory, HoursPerWeek: 4},
				{ID: "s2", Name: "Networks Lab", Instructor: "bob", Type: domain.SubjectPractical, HoursPerWeek: 2},
			},
			Rooms: []domain.Room{
				{Label: "C-101", Type: domain.RoomClassroom},
				{Label: "L-201", Type: domain.RoomLaboratory},
			},
		}
		assert.NoError(t, ValidateGenerationRequest(request))
	})

	t.Run("duplicate subject id", func(t *testing.T) {
		request := &domain.GenerationRequest{
			Subjects: []domain.Subject{
				{ID: "s1", Name: "Algorithms", Instructor: "alice", Type: domain.SubjectTheory, HoursPerWeek: 4},
				{ID: "s1", Name: "Databases", Instructor: "bob", Type: domain.SubjectTheory, HoursPerWeek: 3},
			},
		}
		assert.ErrorContains(t, ValidateGenerationRequest(request), "s1")
	})

	t.Run("duplicate room label", func(t *testing.T) {
		request := &domain.GenerationRequest{
			Rooms: []domain.Room{
				{Label: "C-101", Type: domain.RoomClassroom},
				{Label: "C-101", Type: domain.RoomLaboratory},
			},
		}
		assert.ErrorContains(t, ValidateGenerationRequest(request), "C-101")
	})
}

func TestRequestedHours(t *testing.T) {
	subjects := []domain.Subject{
		{ID: "s1", HoursPerWeek: 4},
		{ID: "s2", HoursPerWeek: 3},
	}
	assert.Equal(t, int32(7), RequestedHours(subjects))
	assert.Equal(t, int32(0), RequestedHours(nil))
}
