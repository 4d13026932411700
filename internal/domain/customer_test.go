package domain

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCustomer(t *testing.T, id, name, email string) *Customer {
	t.Helper()
	customer, err := NewCustomer(id, name, email)
	require.NoError(t, err)
	return customer
}

func TestNewCustomer(t *testing.T) {
	customer := mustCustomer(t, "CUST001", "Alice", "alice@example.com")

	assert.Equal(t, "CUST001", customer.ID())
	assert.Equal(t, "Alice", customer.Name())
	assert.Equal(t, "alice@example.com", customer.Email())
	assert.Equal(t, 0, customer.BookingCount())
}

func TestNewCustomer_Validation(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		cname string
		email string
	}{
		{"empty ID", "", "Alice", "alice@example.com"},
		{"blank name", "CUST001", "  ", "alice@example.com"},
		{"email without separator", "CUST001", "Alice", "alice.example.com"},
		{"empty email", "CUST001", "Alice", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCustomer(tt.id, tt.cname, tt.email)
			require.Error(t, err)
			assert.True(t, IsInvalidArgument(err))
		})
	}
}

func TestCustomer_BookingsHistoryIsAppendOnly(t *testing.T) {
	customer := mustCustomer(t, "CUST001", "Alice", "alice@example.com")
	room := mustRoom(t, "101", RoomTypeSingle, 100.0)

	booking, err := NewBooking("BOOK001", customer, room, date(t, "2024-01-01"), date(t, "2024-01-04"))
	require.NoError(t, err)
	require.Equal(t, 1, customer.BookingCount())

	// Cancellation does not remove the booking from the history.
	require.NoError(t, booking.Cancel())
	assert.Equal(t, 1, customer.BookingCount())

	history := slices.Collect(customer.Bookings())
	require.Len(t, history, 1)
	assert.Same(t, booking, history[0])
}
