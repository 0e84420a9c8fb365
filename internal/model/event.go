package model

import "time"

type Event struct {
	ID          int        `json:"-" db:"id"`
	PublicID    string     `json:"id" db:"public_id"`
	Title       string     `json:"title" db:"title"`
	StartsAt    time.Time  `json:"startsAt" db:"starts_at"`
	Location    *string    `json:"location,omitempty" db:"location"`
	MapsURL     *string    `json:"mapsUrl,omitempty" db:"maps_url"`
	Description *string    `json:"description,omitempty" db:"description"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty" db:"cancelled_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// IsCancelled reports whether the event was soft-cancelled. Child rows
// survive cancellation so attendees can still settle up.
func (e *Event) IsCancelled() bool {
	return e.CancelledAt != nil
}

type UpdateEventParams struct {
	Title       *string
	StartsAt    *time.Time
	Location    *string
	MapsURL     *string
	Description *string
}

// EventSummary is the dashboard header payload: headline counts plus
// the running expense total.
type EventSummary struct {
	AttendeeCount  int   `json:"attendeeCount"`
	ExpenseCount   int   `json:"expenseCount"`
	TotalCents     int64 `json:"totalCents"`
	ItemCount      int   `json:"itemCount"`
	PurchasedCount int   `json:"purchasedCount"`
}
