package domain

import "time"

// Page is a content record attached to a section. SpecificAttributes
// carries free-form JSON the gateway stores without interpreting.
type Page struct {
	ID                 string
	Name               string
	Description        string
	SectionID          string
	Category           string
	SpecificAttributes string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
