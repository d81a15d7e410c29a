package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"utility-calculator/internal/calculator"
	"utility-calculator/internal/models"
)

type CalculateRequest struct {
	Expression string `json:"expression" binding:"required"`
}

type CalculateResponse struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
}

// Calculate evaluates an arithmetic expression and stores it in the history.
func (h *Handler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			h.respond(c, "expression", nil, &calculator.ValidationError{Field: "expression", Reason: "is required"})
			return
		}
		h.respond(c, "expression", nil, errMalformedBody)
		return
	}

	expression := strings.TrimSpace(req.Expression)
	result, err := calculator.Evaluate(expression, h.limits.ExpressionMaxLen)
	if err != nil {
		h.respond(c, "expression", nil, err)
		return
	}

	if h.history != nil {
		if _, err := h.history.Save(c.Request.Context(), expression, result); err != nil {
			h.respond(c, "expression", nil, err)
			return
		}
	}
	h.respond(c, "expression", CalculateResponse{Expression: expression, Result: result}, nil)
}

// Calculations lists stored expressions, newest first.
func (h *Handler) Calculations(c *gin.Context) {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if h.history == nil {
		c.JSON(http.StatusOK, []models.Calculation{})
		return
	}
	calcs, err := h.history.Recent(c.Request.Context(), limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, calcs)
}
