package service

import (
	"context"

	"asada-api/internal/model"
	"asada-api/internal/repository"
	"asada-api/internal/settle"
)

type BalanceService interface {
	SheetByEventPublicID(ctx context.Context, eventPublicID string) (*settle.Sheet, error)
}

type BalanceServiceImpl struct {
	eventRepo    repository.EventRepository
	attendeeRepo repository.AttendeeRepository
	expenseRepo  repository.ExpenseRepository
	paymentRepo  repository.PaymentRepository
}

func NewBalanceService(
	eventRepo repository.EventRepository,
	attendeeRepo repository.AttendeeRepository,
	expenseRepo repository.ExpenseRepository,
	paymentRepo repository.PaymentRepository,
) BalanceService {
	return &BalanceServiceImpl{
		eventRepo:    eventRepo,
		attendeeRepo: attendeeRepo,
		expenseRepo:  expenseRepo,
		paymentRepo:  paymentRepo,
	}
}

func (s *BalanceServiceImpl) SheetByEventPublicID(ctx context.Context, eventPublicID string) (*settle.Sheet, error) {
	event, err := s.eventRepo.FindByPublicID(ctx, eventPublicID)
	if err != nil {
		return nil, err
	}

	attendees, err := s.attendeeRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	sheet := settle.Compute(toSettleExpenses(expenses), toSettleAttendees(attendees), toSettlePayments(payments))
	return &sheet, nil
}

func toSettleExpenses(expenses []*model.Expense) []settle.Expense {
	out := make([]settle.Expense, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, settle.Expense{
			AmountCents: e.AmountCents,
			PayerID:     e.PayerID,
		})
	}
	return out
}

func toSettleAttendees(attendees []*model.Attendee) []settle.Attendee {
	out := make([]settle.Attendee, 0, len(attendees))
	for _, a := range attendees {
		out = append(out, settle.Attendee{
			ID:       a.ID,
			Name:     a.Name,
			Excluded: a.ExcludeFromSplit,
		})
	}
	return out
}

func toSettlePayments(payments []*model.Payment) []settle.Payment {
	out := make([]settle.Payment, 0, len(payments))
	for _, p := range payments {
		out = append(out, settle.Payment{
			FromID:      p.FromAttendeeID,
			ToID:        p.ToAttendeeID,
			AmountCents: p.AmountCents,
			Confirmed:   p.Status == model.PaymentStatusConfirmed,
		})
	}
	return out
}
