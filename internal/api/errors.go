package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"utility-calculator/internal/calculator"
)

const timestampLayout = "2006-01-02T15:04:05.000"

// ErrorResponse is the body of every failed request.
//
// Example:
//
//	{
//	  "timestamp": "2026-10-16T14:05:09.120",
//	  "error": "Invalid value for parameter: weight",
//	  "expectedType": "double"
//	}
type ErrorResponse struct {
	Timestamp      string   `json:"timestamp,omitempty"`
	Error          string   `json:"error"`
	ExpectedType   string   `json:"expectedType,omitempty"`
	Details        string   `json:"details,omitempty"`
	AllowedMethods []string `json:"allowedMethods,omitempty"`
	RequestID      string   `json:"request_id,omitempty"`
}

// ParseError reports a path, query or body value that could not be converted
// to the type an endpoint expects.
type ParseError struct {
	Param    string
	Expected string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid value for parameter %s: %v", e.Param, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

const malformedBodyMessage = "Invalid or malformed JSON input"

var errMalformedBody = errors.New("malformed JSON body")

func (h *Handler) newError(c *gin.Context, msg string) ErrorResponse {
	return ErrorResponse{
		Timestamp: h.clock().Format(timestampLayout),
		Error:     msg,
		RequestID: requestID(c),
	}
}

// writeError maps err onto a status code and payload and aborts the request.
func (h *Handler) writeError(c *gin.Context, err error) {
	var (
		perr *ParseError
		verr *calculator.ValidationError
	)

	switch {
	case errors.As(err, &perr):
		body := h.newError(c, "Invalid value for parameter: "+perr.Param)
		body.ExpectedType = perr.Expected
		c.AbortWithStatusJSON(http.StatusBadRequest, body)
	case errors.Is(err, errMalformedBody):
		c.AbortWithStatusJSON(http.StatusBadRequest, h.newError(c, malformedBodyMessage))
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusBadRequest, h.newError(c, verr.Error()))
	default:
		h.log.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", requestID(c)),
			zap.Error(err),
		)
		body := h.newError(c, "Unexpected error occurred")
		body.Details = err.Error()
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	}
}

// notFound answers a missing store position. It is a payload, not a fault.
func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

func (h *Handler) noRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, h.newError(c, fmt.Sprintf("No handler found for %s %s", c.Request.Method, c.Request.URL.Path)))
}

func (h *Handler) noMethod(c *gin.Context) {
	body := h.newError(c, "HTTP method not allowed")
	if allow := c.Writer.Header().Get("Allow"); allow != "" {
		for _, m := range strings.Split(allow, ",") {
			body.AllowedMethods = append(body.AllowedMethods, strings.TrimSpace(m))
		}
	}
	c.JSON(http.StatusMethodNotAllowed, body)
}

// recovered turns a panic into the generic 500 payload.
func (h *Handler) recovered(c *gin.Context, rec any) {
	body := h.newError(c, "Unexpected error occurred")
	body.Details = fmt.Sprint(rec)
	c.AbortWithStatusJSON(http.StatusInternalServerError, body)
}

func nowFunc(clock calculator.Clock) calculator.Clock {
	if clock == nil {
		return time.Now
	}
	return clock
}
