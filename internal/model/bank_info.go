package model

import "time"

// BankInfo holds an attendee's transfer details for display and copy
// only; the service never initiates transfers. CLABE is the 18-digit
// Mexican interbank account code.
type BankInfo struct {
	ID            int       `json:"id" db:"id"`
	AttendeeID    int       `json:"attendeeId" db:"attendee_id"`
	HolderName    string    `json:"holderName" db:"holder_name"`
	BankName      string    `json:"bankName" db:"bank_name"`
	CLABE         string    `json:"clabe" db:"clabe"`
	AccountNumber *string   `json:"accountNumber,omitempty" db:"account_number"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}
