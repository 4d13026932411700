// Package response provides the JSON envelope and the mapping from domain
// error kinds to HTTP status codes.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grandplaza/hotel-reservation/internal/domain"
)

// Envelope is the uniform response body shape.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      *ErrorBody  `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ErrorBody carries the error message to the client.
type ErrorBody struct {
	Message string `json:"message"`
}

// Pagination describes a paginated list response.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Success writes a 200 response with the given payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 response with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// Paginated writes a 200 response with a paginated list payload.
func Paginated(c *gin.Context, items interface{}, total, page, limit int) {
	c.JSON(http.StatusOK, Envelope{
		Success:    true,
		Data:       items,
		Pagination: &Pagination{Total: total, Page: page, Limit: limit},
	})
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: &ErrorBody{Message: message}})
}

// NotFound writes a 404 response with the given message.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Envelope{Success: false, Error: &ErrorBody{Message: message}})
}

// Error maps a service or domain error to an HTTP status: lifecycle-state
// conflicts become 409, everything else the caller sent wrong becomes 400.
func Error(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if domain.IsInvalidState(err) {
		status = http.StatusConflict
	}
	c.JSON(status, Envelope{Success: false, Error: &ErrorBody{Message: err.Error()}})
}
