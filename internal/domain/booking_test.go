package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestNewBooking(t *testing.T) {
	customer := mustCustomer(t, "CUST001", "Alice", "alice@example.com")
	room := mustRoom(t, "101", RoomTypeSingle, 100.0)

	booking, err := NewBooking("BOOK001", customer, room, date(t, "2024-01-01"), date(t, "2024-01-04"))
	require.NoError(t, err)

	assert.Equal(t, "BOOK001", booking.ID())
	assert.Same(t, customer, booking.Customer())
	assert.Same(t, room, booking.Room())
	assert.Equal(t, BookingStatusConfirmed, booking.Status())

	// Construction atomically reserves the room and records the booking.
	assert.False(t, room.IsAvailable())
	assert.Equal(t, 1, customer.BookingCount())
}

func TestNewBooking_Validation(t *testing.T) {
	customer := mustCustomer(t, "CUST001", "Alice", "alice@example.com")
	room := mustRoom(t, "101", RoomTypeSingle, 100.0)
	checkIn := date(t, "2024-01-01")
	checkOut := date(t, "2024-01-04")

	tests := []struct {
		name     string
		id       string
		customer *Customer
		room     *Room
		checkIn  time.Time
		checkOut time.Time
	}{
		{"empty ID", "", customer, room, checkIn, checkOut},
		{"nil customer", "BOOK001", nil, room, checkIn, checkOut},
		{"nil room", "BOOK001", customer, nil, checkIn, checkOut},
		{"zero check-in", "BOOK001", customer, room, time.Time{}, checkOut},
		{"zero check-out", "BOOK001", customer, room, checkIn, time.Time{}},
		{"check-out before check-in", "BOOK001", customer, room, checkOut, checkIn},
		{"check-out equals check-in", "BOOK001", customer, room, checkIn, checkIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBooking(tt.id, tt.customer, tt.room, tt.checkIn, tt.checkOut)
			require.Error(t, err)
			assert.True(t, IsInvalidArgument(err))

			// All-or-nothing: rejected construction leaves no trace.
			assert.True(t, room.IsAvailable())
			assert.Equal(t, 0, customer.BookingCount())
		})
	}
}

func TestNewBooking_UnavailableRoom(t *testing.T) {
	customer := mustCustomer(t, "CUST001", "Alice", "alice@example.com")
	other := mustCustomer(t, "CUST002", "Bob", "bob@example.com")
	room := mustRoom(t, "101", RoomTypeSingle, 100.0)

	_, err := NewBooking("BOOK001", customer, room, date(t, "2024-01-01"), date(t, "2024-01-04"))
	require.NoError(t, err)

	_, err = NewBooking("BOOK002", other, room, date(t, "2024-02-01"), date(t, "2024-02-04"))
	require.Error(t, err)
	assert.True(t, IsInvalidState(err))
	assert.Equal(t, 0, other.BookingCount(), "failed construction must not touch the customer")
}

func TestBooking_TotalPrice(t *testing.T) {
	customer := mustCustomer(t, "CUST001", "Alice", "alice@example.com")
	room := mustRoom(t, "101", RoomTypeSingle, 100.0)

	booking, err := NewBooking("BOOK001", customer, room, date(t, "2024-01-01"), date(t, "2024-01-04"))
	require.NoError(t, err)

	assert.Equal(t, 3, booking.Nights())
	assert.Equal(t, 300.0, booking.TotalPrice())
}

func TestBooking_TotalPrice_TracksCurrentRate(t *testing.T) {
	customer := mustCustomer(t, "CUST001", "Alice", "alice@example.com")
	room := mustRoom(t, "101", RoomTypeSingle, 100.0)

	booking, err := NewBooking("BOOK001", customer, room, date(t, "2024-01-01"), date(t, "2024-01-03"))
	require.NoError(t, err)
	require.Equal(t, 200.0, booking.TotalPrice())

	// The rate is not snapshotted: edits retroactively change the total.
	require.NoError(t, room.SetNightlyPrice(150.0))
	assert.Equal(t, 300.0, booking.TotalPrice())
}

func TestBooking_Cancel(t *testing.T) {
	customer := mustCustomer(t, "CUST001", "Alice", "alice@example.com")
	room := mustRoom(t, "101", RoomTypeSingle, 100.0)

	booking, err := NewBooking("BOOK001", customer, room, date(t, "2024-01-01"), date(t, "2024-01-04"))
	require.NoError(t, err)
	require.False(t, room.IsAvailable())

	require.NoError(t, booking.Cancel())
	assert.Equal(t, BookingStatusCancelled, booking.Status())
	assert.True(t, room.IsAvailable())

	// Cancelling twice is rejected and changes nothing.
	err = booking.Cancel()
	require.Error(t, err)
	assert.True(t, IsInvalidState(err))
	assert.Equal(t, BookingStatusCancelled, booking.Status())
	assert.True(t, room.IsAvailable())
}

func TestBooking_RebookAfterCancel(t *testing.T) {
	customer := mustCustomer(t, "CUST001", "Alice", "alice@example.com")
	room := mustRoom(t, "101", RoomTypeSingle, 100.0)

	first, err := NewBooking("BOOK001", customer, room, date(t, "2024-01-01"), date(t, "2024-01-04"))
	require.NoError(t, err)
	require.NoError(t, first.Cancel())

	second, err := NewBooking("BOOK002", customer, room, date(t, "2024-02-01"), date(t, "2024-02-04"))
	require.NoError(t, err)
	assert.Equal(t, BookingStatusConfirmed, second.Status())
	assert.Equal(t, 2, customer.BookingCount())
}

func TestBookingStatus_Transitions(t *testing.T) {
	assert.True(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusCancelled))
	assert.False(t, BookingStatusCancelled.CanTransitionTo(BookingStatusConfirmed))
	assert.False(t, BookingStatusConfirmed.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())
	assert.True(t, BookingStatusConfirmed.IsValid())
	assert.False(t, BookingStatus("PENDING").IsValid())
}
