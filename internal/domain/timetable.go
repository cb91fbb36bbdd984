package domain

import "time"

// Day labels in week order. The order is significant: the engine iterates days
// in this order and the load-balance score is computed over it.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
)

var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// TimeSlot labels one of the eight teaching periods of a day.
type TimeSlot string

var TimeSlots = []TimeSlot{
	"09:00-10:00",
	"10:00-11:00",
	"11:00-12:00",
	"12:00-13:00",
	"13:00-14:00",
	"14:00-15:00",
	"15:00-16:00",
	"16:00-17:00",
}

// LunchSlotIndex is the position of the lunch break within TimeSlots. The
// break sits at the same position on every day of the week.
const LunchSlotIndex = 4

type CellKind string

const (
	CellEmpty      CellKind = "empty"
	CellLunchBreak CellKind = "lunchBreak"
	CellAssigned   CellKind = "assigned"
)

type Assignment struct {
	SubjectID   string      `json:"subjectID"`
	SubjectName string      `json:"subjectName"`
	Instructor  string      `json:"instructor"`
	SubjectType SubjectType `json:"subjectType"`
	Room        string      `json:"room"`
}

type Cell struct {
	Kind       CellKind    `json:"kind"`
	Assignment *Assignment `json:"assignment,omitempty"` // nil unless Kind is CellAssigned
}

// Schedule is the serialization shape of a generated timetable: day → slot →
// cell content.
type Schedule map[Day]map[TimeSlot]Cell

// Timetable is the document handed back to the caller. Persisting it is the
// caller's concern, not the engine's.
type Timetable struct {
	Name          string    `json:"name"`
	Semester      string    `json:"semester"`
	Department    string    `json:"department"`
	AcademicYear  string    `json:"academicYear"`
	Fitness       float64   `json:"fitness"`
	UnplacedHours int32     `json:"unplacedHours"`
	Schedule      Schedule  `json:"schedule"`
	CreatedAt     time.Time `json:"createdAt"`
}
