package domain

type RoomType string

const (
	RoomClassroom  RoomType = "classroom"
	RoomLaboratory RoomType = "laboratory"
	RoomAuditorium RoomType = "auditorium"
)

// RoomUnassigned is the room label used when no room could be resolved for an
// assignment, e.g. when the caller supplied no rooms at all.
const RoomUnassigned = "unassigned"

type Room struct {
	Label string   `json:"label" mapstructure:"label" validate:"required"`
	Type  RoomType `json:"type" mapstructure:"type" validate:"required,oneof=classroom laboratory auditorium"`
}
