// Package settle computes the per-attendee balance sheet for an event.
// It is pure arithmetic over already-fetched rows and cannot fail.
package settle

// Expense carries the minimal expense fields the computation needs.
type Expense struct {
	AmountCents int64
	PayerID     *int
}

// Attendee carries the minimal attendee fields the computation needs.
type Attendee struct {
	ID       int
	Name     string
	Excluded bool
}

// Payment is a recorded settlement. Only confirmed payments move
// balances; pending ones are informational.
type Payment struct {
	FromID      int
	ToID        int
	AmountCents int64
	Confirmed   bool
}

// Balance is one non-excluded attendee's line on the sheet.
// OwedCents is the same equal share for every line. BalanceCents is
// PaidCents - OwedCents, shifted by confirmed settlements.
type Balance struct {
	AttendeeID   int    `json:"attendeeId"`
	Name         string `json:"name"`
	PaidCents    int64  `json:"paidCents"`
	OwedCents    int64  `json:"owedCents"`
	BalanceCents int64  `json:"balanceCents"`
}

// Suggestion is a debtor-to-creditor transfer that would settle debts.
type Suggestion struct {
	FromAttendeeID int   `json:"fromAttendeeId"`
	ToAttendeeID   int   `json:"toAttendeeId"`
	AmountCents    int64 `json:"amountCents"`
}

// Sheet is the full balance report for an event.
type Sheet struct {
	TotalCents     int64        `json:"totalCents"`
	PerPersonCents int64        `json:"perPersonCents"`
	Balances       []Balance    `json:"balances"`
	Settlements    []Suggestion `json:"settlements"`
}

// Compute builds the balance sheet.
//
// The total is the sum of all expense amounts, whether or not a payer
// is attributed. The equal share divides the total by the count of
// attendees not flagged exclude_from_split, short-circuiting to 0 when
// no one is eligible. An expense with no payer raises the total but
// nobody's paid figure; an expense paid by an excluded attendee does
// the same, since excluded attendees have no line on the sheet.
func Compute(expenses []Expense, attendees []Attendee, payments []Payment) Sheet {
	sheet := Sheet{
		Balances:    make([]Balance, 0),
		Settlements: make([]Suggestion, 0),
	}

	eligible := make([]Attendee, 0, len(attendees))
	for _, a := range attendees {
		if !a.Excluded {
			eligible = append(eligible, a)
		}
	}

	paidBy := make(map[int]int64, len(eligible))
	for _, e := range expenses {
		sheet.TotalCents += e.AmountCents
		if e.PayerID != nil {
			paidBy[*e.PayerID] += e.AmountCents
		}
	}

	if len(eligible) == 0 {
		return sheet
	}

	// Equal share in whole centavos; the sub-centavo remainder is not
	// redistributed.
	sheet.PerPersonCents = sheet.TotalCents / int64(len(eligible))

	inSheet := make(map[int]bool, len(eligible))
	for _, a := range eligible {
		inSheet[a.ID] = true
	}

	sentBy := make(map[int]int64)
	receivedBy := make(map[int]int64)
	for _, p := range payments {
		if !p.Confirmed {
			continue
		}
		sentBy[p.FromID] += p.AmountCents
		receivedBy[p.ToID] += p.AmountCents
	}

	for _, a := range eligible {
		paid := paidBy[a.ID]
		balance := paid - sheet.PerPersonCents + sentBy[a.ID] - receivedBy[a.ID]
		sheet.Balances = append(sheet.Balances, Balance{
			AttendeeID:   a.ID,
			Name:         a.Name,
			PaidCents:    paid,
			OwedCents:    sheet.PerPersonCents,
			BalanceCents: balance,
		})
	}

	sheet.Settlements = suggest(sheet.Balances)
	return sheet
}

// suggest matches debtors with creditors greedily so the number of
// transfers stays small: each pass settles min(debt, credit) and
// advances whichever side hit zero. Input order is preserved, which
// keeps the output deterministic for a given attendee ordering.
func suggest(balances []Balance) []Suggestion {
	debtors := make([]Balance, 0)
	creditors := make([]Balance, 0)
	for _, b := range balances {
		if b.BalanceCents < 0 {
			debtors = append(debtors, b)
		} else if b.BalanceCents > 0 {
			creditors = append(creditors, b)
		}
	}

	suggestions := make([]Suggestion, 0)
	owes := make(map[int]int64, len(debtors))
	owed := make(map[int]int64, len(creditors))
	for _, d := range debtors {
		owes[d.AttendeeID] = -d.BalanceCents
	}
	for _, c := range creditors {
		owed[c.AttendeeID] = c.BalanceCents
	}

	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := debtors[i].AttendeeID
		creditor := creditors[j].AttendeeID

		amount := owes[debtor]
		if owed[creditor] < amount {
			amount = owed[creditor]
		}

		if amount > 0 {
			suggestions = append(suggestions, Suggestion{
				FromAttendeeID: debtor,
				ToAttendeeID:   creditor,
				AmountCents:    amount,
			})
		}

		owes[debtor] -= amount
		owed[creditor] -= amount

		if owes[debtor] == 0 {
			i++
		}
		if owed[creditor] == 0 {
			j++
		}
	}

	return suggestions
}
