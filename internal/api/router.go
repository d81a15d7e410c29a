package api

import (
	"cmp"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"utility-calculator/internal/calculator"
	"utility-calculator/internal/config"
	"utility-calculator/internal/storage"
	"utility-calculator/internal/store"
)

const serviceName = "utility-calculator"

type Deps struct {
	Users        *store.Users
	History      *storage.History
	Clock        calculator.Clock
	Limits       config.LimitsConfig
	Log          *zap.Logger
	AllowOrigins []string
}

// NewRouter wires every endpoint onto a gin engine.
func NewRouter(deps Deps) *gin.Engine {
	h := NewHandler(deps)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		RequestID(),
		ginzap.Ginzap(h.log, time.RFC3339, true),
		ginzap.CustomRecoveryWithZap(h.log, true, h.recovered),
		Metrics(),
		cors.New(corsConfig(deps.AllowOrigins)),
	)
	r.NoRoute(h.noRoute)
	r.NoMethod(h.noMethod)

	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/index", indexHandler(r))

	api := r.Group("/api")
	{
		api.GET("/age/:dob", h.Age)
		api.GET("/bmi/:weight/:height", h.BMI)
		api.GET("/emi/:amount/:rate/:years", h.EMI)
		api.GET("/convert/celsius/:c", h.Celsius)
		api.GET("/password/:text", h.Password)
		api.GET("/fibonacci/:n", h.Fibonacci)
		api.GET("/palindrome/:value", h.Palindrome)
		api.GET("/prime/:number", h.Prime)
		api.GET("/words/:number", h.Words)
		api.GET("/datetime", h.DateTime)

		api.POST("/calculate", h.Calculate)
		api.GET("/calculations", h.Calculations)

		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:index", h.GetUser)
		api.PUT("/users/:index", h.UpdateUser)
		api.DELETE("/users/:index", h.DeleteUser)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:  []string{"Origin", "Content-Type", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

type endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// indexHandler lists the registered routes.
func indexHandler(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := r.Routes()
		endpoints := make([]endpoint, 0, len(routes))
		for _, rt := range routes {
			endpoints = append(endpoints, endpoint{Method: rt.Method, Path: rt.Path})
		}
		slices.SortFunc(endpoints, func(a, b endpoint) int {
			if n := cmp.Compare(a.Path, b.Path); n != 0 {
				return n
			}
			return cmp.Compare(a.Method, b.Method)
		})
		c.JSON(http.StatusOK, gin.H{"service": serviceName, "endpoints": endpoints})
	}
}
