package application

import (
	"fmt"
	"sync"
	"time"

	"github.com/grandplaza/hotel-reservation/internal/domain"
	"go.uber.org/zap"
)

// BookingService orchestrates booking creation and cancellation. Domain
// failures are normalized into InvalidBookingError so callers at the
// boundary catch a single error kind.
//
// Mutating operations are serialized under one mutex: the availability
// check and flip inside booking construction must not interleave when the
// HTTP front-end brings concurrent callers.
type BookingService struct {
	mu     sync.Mutex
	logger *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(logger *zap.Logger) *BookingService {
	return &BookingService{logger: logger}
}

// CreateBooking constructs a confirmed booking for the given customer and
// room. On success the room is reserved and the booking appended to the
// customer's history; on failure nothing changes.
func (s *BookingService) CreateBooking(id string, customer *domain.Customer, room *domain.Room, checkIn, checkOut time.Time) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := domain.NewBooking(id, customer, room, checkIn, checkOut)
	if err != nil {
		return nil, NewInvalidBookingError(fmt.Sprintf("failed to create booking: %v", err), err)
	}

	s.logger.Info("booking created",
		zap.String("booking_id", booking.ID()),
		zap.String("customer_id", customer.ID()),
		zap.String("room_number", room.Number()),
		zap.Float64("total_price", booking.TotalPrice()),
	)
	return booking, nil
}

// CancelBooking cancels a confirmed booking and releases its room.
func (s *BookingService) CancelBooking(booking *domain.Booking) error {
	if booking == nil {
		return NewInvalidBookingError("booking is required", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := booking.Cancel(); err != nil {
		return NewInvalidBookingError(fmt.Sprintf("failed to cancel booking: %v", err), err)
	}

	s.logger.Info("booking cancelled",
		zap.String("booking_id", booking.ID()),
		zap.String("room_number", booking.Room().Number()),
	)
	return nil
}

// CalculateBookingPrice returns the booking's total at the room's current
// nightly rate.
func (s *BookingService) CalculateBookingPrice(booking *domain.Booking) (float64, error) {
	if booking == nil {
		return 0, NewInvalidBookingError("booking is required", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return booking.TotalPrice(), nil
}
