package handler

import (
	"time"

	"github.com/grandplaza/hotel-reservation/internal/domain"
)

// dateLayout is the wire format for check-in/check-out dates.
const dateLayout = "2006-01-02"

// RoomDTO is the API representation of a room.
type RoomDTO struct {
	Number       string  `json:"number"`
	Type         string  `json:"type"`
	NightlyPrice float64 `json:"nightly_price"`
	Available    bool    `json:"available"`
}

func toRoomDTO(r *domain.Room) RoomDTO {
	return RoomDTO{
		Number:       r.Number(),
		Type:         r.Type().String(),
		NightlyPrice: r.NightlyPrice(),
		Available:    r.IsAvailable(),
	}
}

// HotelDTO is the API representation of the hotel and its inventory summary.
type HotelDTO struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Location    string         `json:"location"`
	TotalRooms  int            `json:"total_rooms"`
	RoomsByType map[string]int `json:"rooms_by_type"`
}

func toHotelDTO(h *domain.Hotel) HotelDTO {
	byType := make(map[string]int)
	for t, n := range h.CountByType() {
		byType[t.String()] = n
	}
	return HotelDTO{
		ID:          h.ID(),
		Name:        h.Name(),
		Location:    h.Location(),
		TotalRooms:  h.RoomCount(),
		RoomsByType: byType,
	}
}

// CustomerDTO is the API representation of a customer.
type CustomerDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	BookingCount int    `json:"booking_count"`
}

func toCustomerDTO(c *domain.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           c.ID(),
		Name:         c.Name(),
		Email:        c.Email(),
		BookingCount: c.BookingCount(),
	}
}

// BookingDTO is the API representation of a booking.
type BookingDTO struct {
	ID           string  `json:"id"`
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	RoomNumber   string  `json:"room_number"`
	RoomType     string  `json:"room_type"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	Nights       int     `json:"nights"`
	TotalPrice   float64 `json:"total_price"`
	Status       string  `json:"status"`
}

func toBookingDTO(b *domain.Booking) BookingDTO {
	return BookingDTO{
		ID:           b.ID(),
		CustomerID:   b.Customer().ID(),
		CustomerName: b.Customer().Name(),
		RoomNumber:   b.Room().Number(),
		RoomType:     b.Room().Type().String(),
		CheckIn:      b.CheckIn().Format(dateLayout),
		CheckOut:     b.CheckOut().Format(dateLayout),
		Nights:       b.Nights(),
		TotalPrice:   b.TotalPrice(),
		Status:       b.Status().String(),
	}
}

// PaymentDTO is the API representation of a payment.
type PaymentDTO struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toPaymentDTO(p *domain.Payment) PaymentDTO {
	return PaymentDTO{
		ID:        p.ID(),
		BookingID: p.Booking().ID(),
		Amount:    p.Amount(),
		Status:    p.Status().String(),
		CreatedAt: p.CreatedAt(),
	}
}
