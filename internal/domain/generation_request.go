package domain

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

type TimetableMetadata struct {
	Name         string `json:"name" mapstructure:"name" validate:"required"`
	Semester     string `json:"semester" mapstructure:"semester"`
	Department   string `json:"department" mapstructure:"department"`
	AcademicYear string `json:"academicYear" mapstructure:"academicYear"`
}

// GenerationRequest is the input document of one optimization run: what to
// schedule, where it may happen, and how to label the resulting timetable.
type GenerationRequest struct {
	Metadata TimetableMetadata `json:"metadata" mapstructure:"metadata"`
	Subjects []Subject         `json:"subjects" mapstructure:"subjects" validate:"dive"`
	Rooms    []Room            `json:"rooms" mapstructure:"rooms" validate:"dive"`
}

// GenerationRequestFromJSON reads a request document from disk. The document
// is unmarshalled into a generic map first so that unknown keys are tolerated.
func GenerationRequestFromJSON(path string) (*GenerationRequest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read input file: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("cannot parse input file: %w", err)
	}

	request := &GenerationRequest{}
	if err := mapstructure.Decode(raw, request); err != nil {
		return nil, fmt.Errorf("cannot decode input file: %w", err)
	}

	return request, nil
}
