package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/grandplaza/hotel-reservation/internal/application"
	"github.com/grandplaza/hotel-reservation/internal/domain"
	"github.com/grandplaza/hotel-reservation/internal/identity"
	"github.com/grandplaza/hotel-reservation/internal/repository"
	"github.com/grandplaza/hotel-reservation/internal/response"
)

// BookingHandler handles HTTP requests for booking operations. Customer and
// room references are resolved through the front-end's own bookkeeping; the
// core receives entities, never identifiers to look up.
type BookingHandler struct {
	service   *application.BookingService
	hotel     *domain.Hotel
	customers *repository.CustomerStore
	bookings  *repository.BookingStore
	ids       identity.Generator
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(
	service *application.BookingService,
	hotel *domain.Hotel,
	customers *repository.CustomerStore,
	bookings *repository.BookingStore,
	ids identity.Generator,
) *BookingHandler {
	return &BookingHandler{
		service:   service,
		hotel:     hotel,
		customers: customers,
		bookings:  bookings,
		ids:       ids,
	}
}

// RegisterRoutes registers booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/api/v1/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.GET("/:id/price", h.GetBookingPrice)
		bookings.POST("/:id/cancel", h.CancelBooking)
	}
}

// CreateBookingRequest is the request body for creating a booking. Dates use
// the yyyy-MM-dd form.
type CreateBookingRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	RoomNumber string `json:"room_number" binding:"required"`
	CheckIn    string `json:"check_in" binding:"required"`
	CheckOut   string `json:"check_out" binding:"required"`
}

// CreateBooking handles POST /api/v1/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	customer, ok := h.customers.Get(req.CustomerID)
	if !ok {
		response.NotFound(c, fmt.Sprintf("customer %s not found", req.CustomerID))
		return
	}
	room, ok := h.hotel.FindRoom(req.RoomNumber)
	if !ok {
		response.NotFound(c, fmt.Sprintf("room %s not found", req.RoomNumber))
		return
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		response.BadRequest(c, "check_in must use the yyyy-MM-dd format")
		return
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		response.BadRequest(c, "check_out must use the yyyy-MM-dd format")
		return
	}

	booking, err := h.service.CreateBooking(h.ids.NextID(), customer, room, checkIn, checkOut)
	if err != nil {
		response.Error(c, err)
		return
	}

	// A rejected Add must not strand the reservation: cancel so the room
	// is released before reporting the failure.
	if err := h.bookings.Add(booking); err != nil {
		_ = h.service.CancelBooking(booking)
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, toBookingDTO(booking))
}

// ListBookings handles GET /api/v1/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	page, limit := parsePagination(c)
	bookings, total := h.bookings.List(page, limit)

	dtos := make([]BookingDTO, len(bookings))
	for i, b := range bookings {
		dtos[i] = toBookingDTO(b)
	}
	response.Paginated(c, dtos, total, page, limit)
}

// GetBooking handles GET /api/v1/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, ok := h.bookings.Get(c.Param("id"))
	if !ok {
		response.NotFound(c, fmt.Sprintf("booking %s not found", c.Param("id")))
		return
	}
	response.Success(c, toBookingDTO(booking))
}

// GetBookingPrice handles GET /api/v1/bookings/:id/price. The total always
// reflects the room's current nightly rate.
func (h *BookingHandler) GetBookingPrice(c *gin.Context) {
	booking, ok := h.bookings.Get(c.Param("id"))
	if !ok {
		response.NotFound(c, fmt.Sprintf("booking %s not found", c.Param("id")))
		return
	}

	price, err := h.service.CalculateBookingPrice(booking)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"booking_id": booking.ID(), "total_price": price})
}

// CancelBooking handles POST /api/v1/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	booking, ok := h.bookings.Get(c.Param("id"))
	if !ok {
		response.NotFound(c, fmt.Sprintf("booking %s not found", c.Param("id")))
		return
	}

	if err := h.service.CancelBooking(booking); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toBookingDTO(booking))
}
