package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/grandplaza/hotel-reservation/internal/application"
	"github.com/grandplaza/hotel-reservation/internal/identity"
	"github.com/grandplaza/hotel-reservation/internal/repository"
	"github.com/grandplaza/hotel-reservation/internal/response"
)

// PaymentHandler handles HTTP requests for payment operations.
type PaymentHandler struct {
	service  *application.PaymentService
	bookings *repository.BookingStore
	payments *repository.PaymentStore
	ids      identity.Generator
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(
	service *application.PaymentService,
	bookings *repository.BookingStore,
	payments *repository.PaymentStore,
	ids identity.Generator,
) *PaymentHandler {
	return &PaymentHandler{
		service:  service,
		bookings: bookings,
		payments: payments,
		ids:      ids,
	}
}

// RegisterRoutes registers payment routes on the given router group.
func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/api/v1/payments")
	{
		payments.POST("", h.CreatePayment)
		payments.GET("", h.ListPayments)
		payments.GET("/:id", h.GetPayment)
		payments.POST("/:id/process", h.ProcessPayment)
		payments.POST("/:id/fail", h.FailPayment)
		payments.GET("/:id/valid", h.ValidatePayment)
	}
}

// CreatePaymentRequest is the request body for creating a payment. The
// amount is taken as given; it is not reconciled with the booking's price.
type CreatePaymentRequest struct {
	BookingID string  `json:"booking_id" binding:"required"`
	Amount    float64 `json:"amount"`
}

// CreatePayment handles POST /api/v1/payments.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	booking, ok := h.bookings.Get(req.BookingID)
	if !ok {
		response.NotFound(c, fmt.Sprintf("booking %s not found", req.BookingID))
		return
	}

	payment, err := h.service.CreatePayment(h.ids.NextID(), booking, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.payments.Add(payment); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, toPaymentDTO(payment))
}

// ListPayments handles GET /api/v1/payments.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	page, limit := parsePagination(c)
	payments, total := h.payments.List(page, limit)

	dtos := make([]PaymentDTO, len(payments))
	for i, p := range payments {
		dtos[i] = toPaymentDTO(p)
	}
	response.Paginated(c, dtos, total, page, limit)
}

// GetPayment handles GET /api/v1/payments/:id.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, ok := h.payments.Get(c.Param("id"))
	if !ok {
		response.NotFound(c, fmt.Sprintf("payment %s not found", c.Param("id")))
		return
	}
	response.Success(c, toPaymentDTO(payment))
}

// ProcessPayment handles POST /api/v1/payments/:id/process.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	payment, ok := h.payments.Get(c.Param("id"))
	if !ok {
		response.NotFound(c, fmt.Sprintf("payment %s not found", c.Param("id")))
		return
	}

	if err := h.service.ProcessPayment(payment); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toPaymentDTO(payment))
}

// FailPayment handles POST /api/v1/payments/:id/fail.
func (h *PaymentHandler) FailPayment(c *gin.Context) {
	payment, ok := h.payments.Get(c.Param("id"))
	if !ok {
		response.NotFound(c, fmt.Sprintf("payment %s not found", c.Param("id")))
		return
	}

	if err := h.service.MarkPaymentFailed(payment); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toPaymentDTO(payment))
}

// ValidatePayment handles GET /api/v1/payments/:id/valid. Unknown payments
// are reported as not valid rather than an error.
func (h *PaymentHandler) ValidatePayment(c *gin.Context) {
	payment, _ := h.payments.Get(c.Param("id"))
	response.Success(c, gin.H{"valid": h.service.ValidatePayment(payment)})
}
