package utils

import (
	"net/http"

	"github.com/Govind-619/PaySphere/metrics"
	"github.com/gin-gonic/gin"
)

// ErrorBody is the envelope carried by every error response.
type ErrorBody struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// OK sends a 200 response with a bare projection body
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with a bare projection body
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Error sends an error response in the gateway envelope
func Error(c *gin.Context, status int, code, description string) {
	metrics.RecordAPIError(code)
	c.JSON(status, gin.H{"error": ErrorBody{Code: code, Description: description}})
}

// RespondAppError sends an AppError in the gateway envelope
func RespondAppError(c *gin.Context, err *AppError) {
	if err.Err != nil {
		LogError("%s: %v", err.Code, err.Err)
	}
	Error(c, err.Status, err.Code, err.Description)
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, description string) {
	Error(c, http.StatusBadRequest, ErrCodeBadRequest, description)
}

// Unauthorized sends a 401 Unauthorized response
func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, ErrCodeAuthentication, "Invalid API credentials")
}

// NotFound sends a 404 Not Found response
func NotFound(c *gin.Context, description string) {
	Error(c, http.StatusNotFound, ErrCodeNotFound, description)
}

// InternalServerError sends a 500 Internal Server Error response
func InternalServerError(c *gin.Context, description string) {
	Error(c, http.StatusInternalServerError, ErrCodeInternal, description)
}
