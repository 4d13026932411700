package domain

import (
	"fmt"
	"strings"
	"sync"
)

// RoomType represents the category of a hotel room.
type RoomType string

const (
	RoomTypeSingle RoomType = "SINGLE"
	RoomTypeDouble RoomType = "DOUBLE"
	RoomTypeSuite  RoomType = "SUITE"
)

// IsValid returns true if the room type is recognized.
func (t RoomType) IsValid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite:
		return true
	}
	return false
}

// String returns the string representation of the room type.
func (t RoomType) String() string {
	return string(t)
}

// ParseRoomType converts a string to a RoomType, returning an error if invalid.
// Matching is case-insensitive.
func ParseRoomType(s string) (RoomType, error) {
	t := RoomType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", NewInvalidArgumentError(fmt.Sprintf("invalid room type: %s", s))
	}
	return t, nil
}

// Room is a single inventory unit of the hotel. The room number is fixed at
// construction; type and nightly rate may be edited by an operator, while
// availability flips only through booking and cancellation. The mutable
// fields are guarded by the room's own lock: operator edits arrive
// concurrently with availability queries and price reads.
type Room struct {
	number string

	mu           sync.RWMutex
	roomType     RoomType
	nightlyPrice float64
	available    bool
}

// NewRoom creates an available room with validated fields.
func NewRoom(number string, roomType RoomType, nightlyPrice float64) (*Room, error) {
	if strings.TrimSpace(number) == "" {
		return nil, NewInvalidArgumentError("room number is required")
	}
	if !roomType.IsValid() {
		return nil, NewInvalidArgumentError(fmt.Sprintf("invalid room type: %s", roomType))
	}
	if nightlyPrice <= 0 {
		return nil, NewInvalidArgumentError("nightly price must be positive")
	}
	return &Room{
		number:       number,
		roomType:     roomType,
		nightlyPrice: nightlyPrice,
		available:    true,
	}, nil
}

// Number returns the room's unique number.
func (r *Room) Number() string { return r.number }

// Type returns the room's category.
func (r *Room) Type() RoomType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.roomType
}

// NightlyPrice returns the current price per night.
func (r *Room) NightlyPrice() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nightlyPrice
}

// IsAvailable returns true if the room is currently bookable.
func (r *Room) IsAvailable() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.available
}

// SetType changes the room's category.
func (r *Room) SetType(t RoomType) error {
	if !t.IsValid() {
		return NewInvalidArgumentError(fmt.Sprintf("invalid room type: %s", t))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roomType = t
	return nil
}

// SetNightlyPrice changes the price per night. Existing bookings recompute
// their totals against the new rate; the rate is not snapshotted.
func (r *Room) SetNightlyPrice(price float64) error {
	if price <= 0 {
		return NewInvalidArgumentError("nightly price must be positive")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nightlyPrice = price
	return nil
}

// reserve marks the room unavailable. Only booking construction calls this.
func (r *Room) reserve() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.available {
		return NewInvalidStateError(fmt.Sprintf("room %s is already booked", r.number))
	}
	r.available = false
	return nil
}

// release marks the room available again after a cancellation.
func (r *Room) release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.available = true
}
