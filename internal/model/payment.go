package model

import "time"

// PaymentStatus of a recorded settlement.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusConfirmed:
		return true
	}
	return false
}

// Payment records a settlement from one attendee to another. At most
// one row exists per (event, from, to) pair; recording the same pair
// again updates the row in place.
type Payment struct {
	ID             int           `json:"id" db:"id"`
	EventID        int           `json:"-" db:"event_id"`
	FromAttendeeID int           `json:"fromAttendeeId" db:"from_attendee_id"`
	ToAttendeeID   int           `json:"toAttendeeId" db:"to_attendee_id"`
	AmountCents    int64         `json:"amountCents" db:"amount_cents"`
	Status         PaymentStatus `json:"status" db:"status"`
	CreatedAt      time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time     `json:"updatedAt" db:"updated_at"`

	FromName *string `json:"fromName,omitempty" db:"-"`
	ToName   *string `json:"toName,omitempty" db:"-"`
}
