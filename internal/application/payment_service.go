package application

import (
	"fmt"
	"sync"

	"github.com/grandplaza/hotel-reservation/internal/domain"
	"go.uber.org/zap"
)

// PaymentService orchestrates payment creation, processing, and validation.
// Domain failures are normalized into InvalidPaymentError; nil arguments are
// rejected with the same kind directly at the boundary.
type PaymentService struct {
	mu     sync.Mutex
	logger *zap.Logger
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(logger *zap.Logger) *PaymentService {
	return &PaymentService{logger: logger}
}

// CreatePayment creates a pending payment for the given booking. The amount
// is not checked against the booking's computed price; callers wanting that
// consistency use CalculateBookingPrice first.
func (s *PaymentService) CreatePayment(id string, booking *domain.Booking, amount float64) (*domain.Payment, error) {
	if booking == nil {
		return nil, NewInvalidPaymentError("booking is required", nil)
	}
	if amount <= 0 {
		return nil, NewInvalidPaymentError("payment amount must be positive", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	payment, err := domain.NewPayment(id, booking, amount)
	if err != nil {
		return nil, NewInvalidPaymentError(fmt.Sprintf("failed to create payment: %v", err), err)
	}

	s.logger.Info("payment created",
		zap.String("payment_id", payment.ID()),
		zap.String("booking_id", booking.ID()),
		zap.Float64("amount", amount),
	)
	return payment, nil
}

// ProcessPayment transitions a payment to COMPLETED.
func (s *PaymentService) ProcessPayment(payment *domain.Payment) error {
	if payment == nil {
		return NewInvalidPaymentError("payment is required", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := payment.Process(); err != nil {
		return NewInvalidPaymentError(fmt.Sprintf("failed to process payment: %v", err), err)
	}

	s.logger.Info("payment processed",
		zap.String("payment_id", payment.ID()),
		zap.String("booking_id", payment.Booking().ID()),
	)
	return nil
}

// MarkPaymentFailed transitions a payment to FAILED from any state.
func (s *PaymentService) MarkPaymentFailed(payment *domain.Payment) error {
	if payment == nil {
		return NewInvalidPaymentError("payment is required", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	payment.MarkFailed()
	s.logger.Info("payment marked as failed",
		zap.String("payment_id", payment.ID()),
	)
	return nil
}

// ValidatePayment reports whether the payment exists and has completed.
// A nil payment is simply not valid; no error is raised.
func (s *PaymentService) ValidatePayment(payment *domain.Payment) bool {
	if payment == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return payment.Status() == domain.PaymentStatusCompleted
}
