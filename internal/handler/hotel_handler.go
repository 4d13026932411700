package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/grandplaza/hotel-reservation/internal/domain"
	"github.com/grandplaza/hotel-reservation/internal/response"
)

// HotelHandler handles HTTP requests for hotel and room inventory operations.
type HotelHandler struct {
	hotel *domain.Hotel
}

// NewHotelHandler creates a new HotelHandler.
func NewHotelHandler(hotel *domain.Hotel) *HotelHandler {
	return &HotelHandler{hotel: hotel}
}

// RegisterRoutes registers hotel and room routes on the given router group.
func (h *HotelHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/v1/hotel", h.GetHotel)

	rooms := r.Group("/api/v1/rooms")
	{
		rooms.POST("", h.AddRoom)
		rooms.GET("", h.ListRooms)
		rooms.GET("/available", h.ListAvailableRooms)
		rooms.PATCH("/:number", h.UpdateRoom)
	}
}

// AddRoomRequest is the request body for adding a room.
type AddRoomRequest struct {
	Number       string  `json:"number" binding:"required"`
	Type         string  `json:"type" binding:"required"`
	NightlyPrice float64 `json:"nightly_price" binding:"required"`
}

// UpdateRoomRequest is the request body for editing a room's type or rate.
type UpdateRoomRequest struct {
	Type         *string  `json:"type"`
	NightlyPrice *float64 `json:"nightly_price"`
}

// GetHotel handles GET /api/v1/hotel.
func (h *HotelHandler) GetHotel(c *gin.Context) {
	response.Success(c, toHotelDTO(h.hotel))
}

// AddRoom handles POST /api/v1/rooms.
func (h *HotelHandler) AddRoom(c *gin.Context) {
	var req AddRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	roomType, err := domain.ParseRoomType(req.Type)
	if err != nil {
		response.Error(c, err)
		return
	}

	room, err := domain.NewRoom(req.Number, roomType, req.NightlyPrice)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.hotel.AddRoom(room); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toRoomDTO(room))
}

// ListRooms handles GET /api/v1/rooms.
func (h *HotelHandler) ListRooms(c *gin.Context) {
	dtos := make([]RoomDTO, 0, h.hotel.RoomCount())
	for room := range h.hotel.Rooms() {
		dtos = append(dtos, toRoomDTO(room))
	}
	response.Success(c, dtos)
}

// ListAvailableRooms handles GET /api/v1/rooms/available?type=SINGLE.
func (h *HotelHandler) ListAvailableRooms(c *gin.Context) {
	roomType, err := domain.ParseRoomType(c.Query("type"))
	if err != nil {
		response.Error(c, err)
		return
	}

	dtos := make([]RoomDTO, 0)
	for room := range h.hotel.AvailableRooms(roomType) {
		dtos = append(dtos, toRoomDTO(room))
	}
	response.Success(c, dtos)
}

// UpdateRoom handles PATCH /api/v1/rooms/:number (operator edits to type
// and nightly rate).
func (h *HotelHandler) UpdateRoom(c *gin.Context) {
	room, ok := h.hotel.FindRoom(c.Param("number"))
	if !ok {
		response.NotFound(c, fmt.Sprintf("room %s not found", c.Param("number")))
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.Type != nil {
		roomType, err := domain.ParseRoomType(*req.Type)
		if err != nil {
			response.Error(c, err)
			return
		}
		if err := room.SetType(roomType); err != nil {
			response.Error(c, err)
			return
		}
	}
	if req.NightlyPrice != nil {
		if err := room.SetNightlyPrice(*req.NightlyPrice); err != nil {
			response.Error(c, err)
			return
		}
	}

	response.Success(c, toRoomDTO(room))
}

// parsePagination reads page/limit query parameters with defaults.
func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return page, limit
}
