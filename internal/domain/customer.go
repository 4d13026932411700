package domain

import (
	"iter"
	"strings"
)

// Customer is a registered guest. The booking list is append-only history:
// cancelled bookings stay in it, and the customer never controls a booking's
// lifecycle.
type Customer struct {
	id       string
	name     string
	email    string
	bookings []*Booking
}

// NewCustomer creates a customer with validated identity fields.
func NewCustomer(id, name, email string) (*Customer, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewInvalidArgumentError("customer ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, NewInvalidArgumentError("customer name is required")
	}
	if !strings.Contains(email, "@") {
		return nil, NewInvalidArgumentError("invalid email format")
	}
	return &Customer{
		id:    id,
		name:  name,
		email: email,
	}, nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() string { return c.id }

// Name returns the customer's display name.
func (c *Customer) Name() string { return c.name }

// Email returns the customer's email address.
func (c *Customer) Email() string { return c.email }

// Bookings iterates over the customer's booking history in creation order.
// The iterator is a read-only view; the list itself cannot be mutated
// through it.
func (c *Customer) Bookings() iter.Seq[*Booking] {
	return func(yield func(*Booking) bool) {
		for _, b := range c.bookings {
			if !yield(b) {
				return
			}
		}
	}
}

// BookingCount returns the number of bookings in the customer's history.
func (c *Customer) BookingCount() int {
	return len(c.bookings)
}

// addBooking appends to the booking history. Only booking construction
// calls this.
func (c *Customer) addBooking(b *Booking) {
	c.bookings = append(c.bookings, b)
}
