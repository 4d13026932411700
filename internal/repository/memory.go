// Package repository provides the in-memory bookkeeping the HTTP front-end
// keeps about customers, bookings, and payments. The domain core tracks no
// global lists; these stores mirror its state the way an operator dashboard
// would, and are safe for concurrent use.
package repository

import (
	"fmt"
	"sync"

	"github.com/grandplaza/hotel-reservation/internal/domain"
)

// page slices a list 1-based; out-of-range pages yield an empty slice.
func page[T any](items []T, pageNum, limit int) []T {
	if pageNum <= 0 {
		pageNum = 1
	}
	if limit <= 0 {
		limit = 20
	}
	start := (pageNum - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// CustomerStore holds registered customers in insertion order.
type CustomerStore struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Customer
	ordered []*domain.Customer
}

// NewCustomerStore constructs an empty customer store.
func NewCustomerStore() *CustomerStore {
	return &CustomerStore{byID: make(map[string]*domain.Customer)}
}

// Add registers a customer, rejecting duplicate identifiers.
func (s *CustomerStore) Add(c *domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[c.ID()]; exists {
		return fmt.Errorf("customer %s already registered", c.ID())
	}
	s.byID[c.ID()] = c
	s.ordered = append(s.ordered, c)
	return nil
}

// Get fetches a customer by identifier.
func (s *CustomerStore) Get(id string) (*domain.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byID[id]
	return c, ok
}

// List returns a page of customers in registration order plus the total count.
func (s *CustomerStore) List(pageNum, limit int) ([]*domain.Customer, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return page(s.ordered, pageNum, limit), len(s.ordered)
}

// BookingStore holds created bookings in insertion order.
type BookingStore struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Booking
	ordered []*domain.Booking
}

// NewBookingStore constructs an empty booking store.
func NewBookingStore() *BookingStore {
	return &BookingStore{byID: make(map[string]*domain.Booking)}
}

// Add records a booking, rejecting duplicate identifiers.
func (s *BookingStore) Add(b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[b.ID()]; exists {
		return fmt.Errorf("booking %s already recorded", b.ID())
	}
	s.byID[b.ID()] = b
	s.ordered = append(s.ordered, b)
	return nil
}

// Get fetches a booking by identifier.
func (s *BookingStore) Get(id string) (*domain.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.byID[id]
	return b, ok
}

// List returns a page of bookings in creation order plus the total count.
func (s *BookingStore) List(pageNum, limit int) ([]*domain.Booking, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return page(s.ordered, pageNum, limit), len(s.ordered)
}

// PaymentStore holds created payments in insertion order.
type PaymentStore struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Payment
	ordered []*domain.Payment
}

// NewPaymentStore constructs an empty payment store.
func NewPaymentStore() *PaymentStore {
	return &PaymentStore{byID: make(map[string]*domain.Payment)}
}

// Add records a payment, rejecting duplicate identifiers.
func (s *PaymentStore) Add(p *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[p.ID()]; exists {
		return fmt.Errorf("payment %s already recorded", p.ID())
	}
	s.byID[p.ID()] = p
	s.ordered = append(s.ordered, p)
	return nil
}

// Get fetches a payment by identifier.
func (s *PaymentStore) Get(id string) (*domain.Payment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	return p, ok
}

// List returns a page of payments in creation order plus the total count.
func (s *PaymentStore) List(pageNum, limit int) ([]*domain.Payment, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return page(s.ordered, pageNum, limit), len(s.ordered)
}
