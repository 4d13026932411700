package domain

import (
	"strings"
	"time"
)

// Booking binds one customer to one room for a date range. Check-out is
// exclusive and must be strictly after check-in. Everything except the
// status is immutable once created.
//
// The customer and room references are shared, not owned: both entities
// outlive any individual booking, and the total price always reflects the
// room's current nightly rate.
type Booking struct {
	id       string
	customer *Customer
	room     *Room
	checkIn  time.Time
	checkOut time.Time
	status   BookingStatus
}

// NewBooking creates a confirmed booking. Validation runs in full before any
// mutation: on success the room is reserved and the booking is appended to
// the customer's history atomically; on failure nothing changes.
func NewBooking(id string, customer *Customer, room *Room, checkIn, checkOut time.Time) (*Booking, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewInvalidArgumentError("booking ID is required")
	}
	if customer == nil {
		return nil, NewInvalidArgumentError("customer is required")
	}
	if room == nil {
		return nil, NewInvalidArgumentError("room is required")
	}
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return nil, NewInvalidArgumentError("check-out date must be after check-in date")
	}

	b := &Booking{
		id:       id,
		customer: customer,
		room:     room,
		checkIn:  checkIn,
		checkOut: checkOut,
		status:   BookingStatusConfirmed,
	}

	if err := room.reserve(); err != nil {
		return nil, err
	}
	customer.addBooking(b)
	return b, nil
}

// ID returns the booking's unique identifier.
func (b *Booking) ID() string { return b.id }

// Customer returns the customer who made the booking.
func (b *Booking) Customer() *Customer { return b.customer }

// Room returns the booked room.
func (b *Booking) Room() *Room { return b.room }

// CheckIn returns the check-in date.
func (b *Booking) CheckIn() time.Time { return b.checkIn }

// CheckOut returns the exclusive check-out date.
func (b *Booking) CheckOut() time.Time { return b.checkOut }

// Status returns the current booking status.
func (b *Booking) Status() BookingStatus { return b.status }

// Nights returns the whole-day difference between check-out and check-in.
// Never negative: construction enforces checkOut > checkIn.
func (b *Booking) Nights() int {
	return int(b.checkOut.Sub(b.checkIn).Hours() / 24)
}

// TotalPrice returns nights times the room's current nightly rate. Rate
// edits after construction retroactively change the total.
func (b *Booking) TotalPrice() float64 {
	return float64(b.Nights()) * b.room.NightlyPrice()
}

// Cancel transitions the booking to CANCELLED and releases the room.
// Cancelling twice is rejected; the booking stays in the customer's history.
func (b *Booking) Cancel() error {
	if !b.status.CanTransitionTo(BookingStatusCancelled) {
		return NewInvalidStateError("booking is already cancelled")
	}
	b.status = BookingStatusCancelled
	b.room.release()
	return nil
}
