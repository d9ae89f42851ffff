package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HFrancia/AlumnosTKD3/pkg/apperrors"
)

// Response is the uniform acknowledgement envelope: a success flag plus
// a human-readable message, with optional payload.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ── success responses ──

// OK writes a 200 acknowledgement.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created writes a 201 acknowledgement.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ── error responses ──

// Error writes a failure acknowledgement with an explicit status.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Response{
		Success: false,
		Message: message,
	})
}

// BadRequest writes a 400 failure.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound writes a 404 failure.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict writes a 409 failure.
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalError writes a 500 failure.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Error interno del servidor")
}

// FromError maps a kinded service error onto the HTTP status the kind
// implies. The handler layer owns the mapping, not the services.
func FromError(c *gin.Context, err error) {
	switch apperrors.KindOf(err) {
	case apperrors.Validation:
		BadRequest(c, err.Error())
	case apperrors.NotFound:
		NotFound(c, err.Error())
	case apperrors.Conflict:
		Conflict(c, err.Error())
	default:
		InternalError(c)
	}
}
