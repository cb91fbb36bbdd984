package domain

type SubjectType string

const (
	SubjectTheory    SubjectType = "theory"
	SubjectPractical SubjectType = "practical"
	SubjectTutorial  SubjectType = "tutorial"
)

type Subject struct {
	ID           string      `json:"id" mapstructure:"id" validate:"required"`
	Name         string      `json:"name" mapstructure:"name" validate:"required"`
	Instructor   string      `json:"instructor" mapstructure:"instructor" validate:"required"`
	Type         SubjectType `json:"type" mapstructure:"type" validate:"required,oneof=theory practical tutorial"`
	HoursPerWeek int32       `json:"hoursPerWeek" mapstructure:"hoursPerWeek" validate:"required,gt=0"`
}
