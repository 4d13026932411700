package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/grandplaza/hotel-reservation/internal/domain"
	"github.com/grandplaza/hotel-reservation/internal/identity"
	"github.com/grandplaza/hotel-reservation/internal/repository"
	"github.com/grandplaza/hotel-reservation/internal/response"
)

// CustomerHandler handles HTTP requests for customer registration.
type CustomerHandler struct {
	customers *repository.CustomerStore
	ids       identity.Generator
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customers *repository.CustomerStore, ids identity.Generator) *CustomerHandler {
	return &CustomerHandler{customers: customers, ids: ids}
}

// RegisterRoutes registers customer routes on the given router group.
func (h *CustomerHandler) RegisterRoutes(r *gin.RouterGroup) {
	customers := r.Group("/api/v1/customers")
	{
		customers.POST("", h.RegisterCustomer)
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.GET("/:id/bookings", h.ListCustomerBookings)
	}
}

// RegisterCustomerRequest is the request body for registering a customer.
type RegisterCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// RegisterCustomer handles POST /api/v1/customers.
func (h *CustomerHandler) RegisterCustomer(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	customer, err := domain.NewCustomer(h.ids.NextID(), req.Name, req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.customers.Add(customer); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, toCustomerDTO(customer))
}

// ListCustomers handles GET /api/v1/customers.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	page, limit := parsePagination(c)
	customers, total := h.customers.List(page, limit)

	dtos := make([]CustomerDTO, len(customers))
	for i, cust := range customers {
		dtos[i] = toCustomerDTO(cust)
	}
	response.Paginated(c, dtos, total, page, limit)
}

// GetCustomer handles GET /api/v1/customers/:id.
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, ok := h.customers.Get(c.Param("id"))
	if !ok {
		response.NotFound(c, fmt.Sprintf("customer %s not found", c.Param("id")))
		return
	}
	response.Success(c, toCustomerDTO(customer))
}

// ListCustomerBookings handles GET /api/v1/customers/:id/bookings. It
// returns the customer's full booking history, cancelled entries included.
func (h *CustomerHandler) ListCustomerBookings(c *gin.Context) {
	customer, ok := h.customers.Get(c.Param("id"))
	if !ok {
		response.NotFound(c, fmt.Sprintf("customer %s not found", c.Param("id")))
		return
	}

	dtos := make([]BookingDTO, 0, customer.BookingCount())
	for b := range customer.Bookings() {
		dtos = append(dtos, toBookingDTO(b))
	}
	response.Success(c, dtos)
}
