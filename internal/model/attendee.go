package model

import "time"

type Attendee struct {
	ID               int       `json:"id" db:"id"`
	EventID          int       `json:"-" db:"event_id"`
	Name             string    `json:"name" db:"name"`
	ExcludeFromSplit bool      `json:"excludeFromSplit" db:"exclude_from_split"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}

type UpdateAttendeeParams struct {
	Name             *string
	ExcludeFromSplit *bool
}
