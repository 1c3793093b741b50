package domain

import "time"

// Section groups pages under a titled heading.
type Section struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
