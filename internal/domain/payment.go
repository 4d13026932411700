package domain

import (
	"strings"
	"time"
)

// Payment is a monetary settlement tied to exactly one booking. It never
// mutates its booking, and the amount is deliberately not checked against
// the booking's computed price: that consistency is the caller's call.
type Payment struct {
	id        string
	booking   *Booking
	amount    float64
	createdAt time.Time
	status    PaymentStatus
}

// NewPayment creates a pending payment for the given booking.
func NewPayment(id string, booking *Booking, amount float64) (*Payment, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewInvalidArgumentError("payment ID is required")
	}
	if booking == nil {
		return nil, NewInvalidArgumentError("booking is required")
	}
	if amount <= 0 {
		return nil, NewInvalidArgumentError("payment amount must be positive")
	}
	return &Payment{
		id:        id,
		booking:   booking,
		amount:    amount,
		createdAt: time.Now().UTC(),
		status:    PaymentStatusPending,
	}, nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() string { return p.id }

// Booking returns the booking this payment settles.
func (p *Payment) Booking() *Booking { return p.booking }

// Amount returns the payment amount.
func (p *Payment) Amount() float64 { return p.amount }

// CreatedAt returns the creation timestamp.
func (p *Payment) CreatedAt() time.Time { return p.createdAt }

// Status returns the current payment status.
func (p *Payment) Status() PaymentStatus { return p.status }

// Process transitions the payment to COMPLETED. Processing an
// already-completed payment is rejected; a FAILED payment may be retried.
func (p *Payment) Process() error {
	if !p.status.CanTransitionTo(PaymentStatusCompleted) {
		return NewInvalidStateError("payment already completed")
	}
	p.status = PaymentStatusCompleted
	return nil
}

// MarkFailed transitions the payment to FAILED from any state, including
// COMPLETED. Idempotent, never errors.
func (p *Payment) MarkFailed() {
	p.status = PaymentStatusFailed
}
