package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationRequestFromJSON(t *testing.T) {
	document := `{
		"metadata": {
			"name": "CSE Semester 5",
			"semester": "5",
			"department": "Computer Science",
			"academicYear": "2025-2026"
		},
		"subjects": [
			{"id": "s1", "name": "Algorithms", "instructor": "alice", "type": "theory", "hoursPerWeek": 4},
			{"id": "s2", "name": "Networks Lab", "instructor": "bob", "type": "practical", "hoursPerWeek": 2}
		],
		"rooms": [
			{"label": "C-101", "type": "classroom"},
			{"label": "L-201", "type": "laboratory"}
		]
	}`

	path := filepath.Join(t.TempDir(), "request.json")
	require.NoError(t, os.WriteFile(path, []byte(document), 0666))

	request, err := GenerationRequestFromJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "CSE Semester 5", request.Metadata.Name)
	require.Len(t, request.Subjects, 2)
	assert.Equal(t, SubjectPractical, request.Subjects[1].Type)
	assert.Equal(t, int32(4), request.Subjects[0].HoursPerWeek)
	require.Len(t, request.Rooms, 2)
	assert.Equal(t, RoomLaboratory, request.Rooms[1].Type)
}

func TestGenerationRequestFromJSONMissingFile(t *testing.T) {
	_, err := GenerationRequestFromJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "cannot read input file")
}

func TestGenerationRequestFromJSONMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0666))

	_, err := GenerationRequestFromJSON(path)
	assert.ErrorContains(t, err, "cannot parse input file")
}
