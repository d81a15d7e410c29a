package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"utility-calculator/internal/calculator"
	"utility-calculator/internal/config"
	"utility-calculator/internal/metrics"
	"utility-calculator/internal/storage"
	"utility-calculator/internal/store"
)

type Handler struct {
	users   *store.Users
	history *storage.History
	clock   calculator.Clock
	limits  config.LimitsConfig
	log     *zap.Logger
}

func NewHandler(deps Deps) *Handler {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	users := deps.Users
	if users == nil {
		users = store.NewUsers()
	}
	return &Handler{
		users:   users,
		history: deps.History,
		clock:   nowFunc(deps.Clock),
		limits:  deps.Limits,
		log:     log,
	}
}

// respond writes a calculator result, or the mapped error when err is set.
func (h *Handler) respond(c *gin.Context, name string, v any, err error) {
	if err != nil {
		metrics.Calculations.WithLabelValues(name, "error").Inc()
		h.writeError(c, err)
		return
	}
	metrics.Calculations.WithLabelValues(name, "ok").Inc()
	c.JSON(http.StatusOK, v)
}

func (h *Handler) Age(c *gin.Context) {
	dob, err := calculator.ParseDate(c.Param("dob"))
	if err != nil {
		h.respond(c, "age", nil, &ParseError{Param: "dob", Expected: "date", Err: err})
		return
	}
	h.respond(c, "age", calculator.Age(dob, h.clock()), nil)
}

func (h *Handler) BMI(c *gin.Context) {
	weight, err := paramFloat(c, "weight")
	if err != nil {
		h.respond(c, "bmi", nil, err)
		return
	}
	height, err := paramFloat(c, "height")
	if err != nil {
		h.respond(c, "bmi", nil, err)
		return
	}
	res, err := calculator.BMI(weight, height)
	h.respond(c, "bmi", res, err)
}

func (h *Handler) EMI(c *gin.Context) {
	amount, err := paramFloat(c, "amount")
	if err != nil {
		h.respond(c, "emi", nil, err)
		return
	}
	rate, err := paramFloat(c, "rate")
	if err != nil {
		h.respond(c, "emi", nil, err)
		return
	}
	years, err := paramInt(c, "years")
	if err != nil {
		h.respond(c, "emi", nil, err)
		return
	}
	res, err := calculator.EMI(amount, rate, years)
	h.respond(c, "emi", res, err)
}

func (h *Handler) Celsius(c *gin.Context) {
	celsius, err := paramFloat(c, "c")
	if err != nil {
		h.respond(c, "celsius", nil, err)
		return
	}
	h.respond(c, "celsius", calculator.CelsiusToFahrenheit(celsius), nil)
}

func (h *Handler) Password(c *gin.Context) {
	h.respond(c, "password", calculator.PasswordStrength(c.Param("text")), nil)
}

// Fibonacci reports n <= 0 inline in a 200 payload.
func (h *Handler) Fibonacci(c *gin.Context) {
	n, err := paramInt(c, "n")
	if err != nil {
		h.respond(c, "fibonacci", nil, err)
		return
	}
	h.respond(c, "fibonacci", calculator.Fibonacci(n, h.limits.FibonacciMax), nil)
}

func (h *Handler) Palindrome(c *gin.Context) {
	h.respond(c, "palindrome", calculator.Palindrome(c.Param("value")), nil)
}

func (h *Handler) Prime(c *gin.Context) {
	n, err := paramInt64(c, "number")
	if err != nil {
		h.respond(c, "prime", nil, err)
		return
	}
	res, err := calculator.CheckPrime(n, h.limits.PrimeMax)
	h.respond(c, "prime", res, err)
}

func (h *Handler) Words(c *gin.Context) {
	n, err := paramInt64(c, "number")
	if err != nil {
		h.respond(c, "words", nil, err)
		return
	}
	h.respond(c, "words", calculator.NumberToWords(n), nil)
}

func (h *Handler) DateTime(c *gin.Context) {
	h.respond(c, "datetime", calculator.DateTime(h.clock()), nil)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
