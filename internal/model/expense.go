package model

import "time"

// Expense amounts are integer centavos. Summing and splitting in minor
// units keeps event totals exact no matter how many small expenses pile up.
type Expense struct {
	ID          int       `json:"id" db:"id"`
	EventID     int       `json:"-" db:"event_id"`
	PayerID     *int      `json:"payerId,omitempty" db:"payer_id"`
	Description string    `json:"description" db:"description"`
	AmountCents int64     `json:"amountCents" db:"amount_cents"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	PayerName           *string  `json:"payerName,omitempty" db:"-"`
	ReceiptURLs         []string `json:"receiptUrls" db:"-"`
	ExcludedAttendeeIDs []int    `json:"excludedAttendeeIds" db:"-"`
}

type UpdateExpenseParams struct {
	Description *string
	AmountCents *int64
	PayerID     *int
	// ClearPayer removes the payer attribution; the amount then counts
	// toward the event total but toward nobody's paid figure.
	ClearPayer bool
}

type Receipt struct {
	ID         int       `json:"id" db:"id"`
	ExpenseID  int       `json:"expenseId" db:"expense_id"`
	URL        string    `json:"url" db:"url"`
	ObjectName string    `json:"-" db:"object_name"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
