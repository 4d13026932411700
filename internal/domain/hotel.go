package domain

import (
	"fmt"
	"iter"
	"strings"
	"sync"
)

// Hotel is the aggregate root for room inventory. It owns its rooms
// exclusively; rooms are added, never removed. The collection is guarded so
// an operator adding inventory cannot interleave with availability queries;
// availability flips themselves are serialized by the booking service.
type Hotel struct {
	mu       sync.RWMutex
	id       string
	name     string
	location string
	rooms    []*Room
}

// NewHotel creates a hotel with an empty room collection.
func NewHotel(id, name, location string) (*Hotel, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewInvalidArgumentError("hotel ID is required")
	}
	return &Hotel{
		id:       id,
		name:     name,
		location: location,
	}, nil
}

// ID returns the hotel's unique identifier.
func (h *Hotel) ID() string { return h.id }

// Name returns the hotel's display name.
func (h *Hotel) Name() string { return h.name }

// Location returns the hotel's location.
func (h *Hotel) Location() string { return h.location }

// AddRoom appends a room to the inventory. Room numbers must be unique
// within the hotel.
func (h *Hotel) AddRoom(room *Room) error {
	if room == nil {
		return NewInvalidArgumentError("room is required")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, existing := range h.rooms {
		if existing.number == room.number {
			return NewInvalidArgumentError(fmt.Sprintf("room %s already exists", room.number))
		}
	}
	h.rooms = append(h.rooms, room)
	return nil
}

// Rooms iterates over all rooms in insertion order. The iterator is a
// read-only view over owned storage; callers cannot grow or reorder the
// collection through it.
func (h *Hotel) Rooms() iter.Seq[*Room] {
	return func(yield func(*Room) bool) {
		for _, r := range h.snapshot() {
			if !yield(r) {
				return
			}
		}
	}
}

// snapshot copies the room slice under the read lock so iteration never
// races an AddRoom append.
func (h *Hotel) snapshot() []*Room {
	h.mu.RLock()
	defer h.mu.RUnlock()
	rooms := make([]*Room, len(h.rooms))
	copy(rooms, h.rooms)
	return rooms
}

// AvailableRooms iterates over rooms of the given type that are currently
// available, in insertion order. The query is non-destructive: it does not
// reserve anything.
func (h *Hotel) AvailableRooms(t RoomType) iter.Seq[*Room] {
	return func(yield func(*Room) bool) {
		for _, r := range h.snapshot() {
			if r.IsAvailable() && r.Type() == t {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// FindRoom looks up a room by number.
func (h *Hotel) FindRoom(number string) (*Room, bool) {
	for _, r := range h.snapshot() {
		if r.number == number {
			return r, true
		}
	}
	return nil, false
}

// RoomCount returns the total number of rooms.
func (h *Hotel) RoomCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms)
}

// CountByType returns room counts grouped by room type.
func (h *Hotel) CountByType() map[RoomType]int {
	counts := make(map[RoomType]int)
	for _, r := range h.snapshot() {
		counts[r.Type()]++
	}
	return counts
}
