package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	db "github.com/Elisbrown/Restaurant-POS-sub001/db/sqlc"
	"github.com/Elisbrown/Restaurant-POS-sub001/token"
	"github.com/Elisbrown/Restaurant-POS-sub001/util"
	"github.com/Elisbrown/Restaurant-POS-sub001/worker"
)

// Server serves HTTP requests for the point of sale service.
type Server struct {
	config          util.Config
	store           db.Store
	tokenMaker      token.Maker
	taskDistributor worker.TaskDistributor
	router          *gin.Engine
}

// NewServer creates a new HTTP server and sets up routing.
func NewServer(config util.Config, store db.Store, taskDistributor worker.TaskDistributor) (*Server, error) {
	tokenMaker, err := token.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	if GetGlobalCasbinEnforcer() == nil {
		if err := InitCasbin("casbin"); err != nil {
			return nil, fmt.Errorf("cannot initialize casbin: %w", err)
		}
	}

	server := &Server{
		config:          config,
		store:           store,
		tokenMaker:      tokenMaker,
		taskDistributor: taskDistributor,
	}

	server.setupRouter()
	return server, nil
}

func (server *Server) setupRouter() {
	if server.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(CORSMiddleware(server.config.AllowedOrigins))
	router.Use(RequestTracingMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(PrometheusMiddleware())

	rateLimiter := NewRateLimiter(DefaultRateLimiterConfig())
	router.Use(rateLimiter.IPMiddleware())

	// Global timeout so a stuck query cannot pin a goroutine forever.
	router.Use(TimeoutMiddleware(30 * time.Second))

	router.GET("/metrics", MetricsHandler())
	router.GET("/health", server.healthCheck)
	router.GET("/ready", server.readinessCheck)

	v1 := router.Group("/v1")

	authPublicGroup := v1.Group("/auth")
	authPublicGroup.Use(rateLimiter.SensitiveAPIMiddleware(10))
	authPublicGroup.POST("/login", server.loginUser)
	authPublicGroup.POST("/refresh", server.renewAccessToken)

	// Everything below requires a valid access token; route-level
	// permissions come from the casbin policy.
	authRoutes := v1.Group("/").
		Use(authMiddleware(server.tokenMaker)).
		Use(rateLimiter.UserMiddleware()).
		Use(server.CasbinMiddleware())

	authRoutes.GET("/tables", server.listTables)
	authRoutes.POST("/tables", server.createTable)
	authRoutes.GET("/tables/:id", server.getTable)
	authRoutes.PUT("/tables/:id", server.updateTable)
	authRoutes.DELETE("/tables/:id", server.deleteTable)
	authRoutes.PATCH("/tables/:id/status", server.updateTableStatus)
	authRoutes.POST("/tables/merge", server.mergeTables)

	authRoutes.POST("/orders", server.createOrder)
	authRoutes.GET("/orders", server.listOrders)
	authRoutes.GET("/orders/:id", server.getOrder)
	authRoutes.GET("/orders/:id/items", server.listOrderItems)
	authRoutes.PATCH("/orders/:id/status", server.updateOrderStatus)
	authRoutes.POST("/orders/:id/split", server.splitOrder)
	authRoutes.GET("/orders/:id/payments", server.listOrderPayments)

	authRoutes.POST("/payments", server.recordPayment)
	authRoutes.GET("/payments", server.listPayments)
	authRoutes.GET("/payments/:id", server.getPayment)
	authRoutes.POST("/payments/:id/refund", server.refundPayment)

	authRoutes.GET("/activities", server.listActivities)

	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// GetRouter returns the gin router for creating http.Server
func (server *Server) GetRouter() *gin.Engine {
	return server.router
}

// healthCheck is a basic liveness probe.
// GET /health
func (server *Server) healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "restaurant-pos-api",
	})
}

// readinessCheck verifies the database dependency.
// GET /ready
func (server *Server) readinessCheck(ctx *gin.Context) {
	if err := server.store.Ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database connection failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"service":  "restaurant-pos-api",
		"database": "connected",
	})
}

// errorResponse creates an error response.
// For 4xx client errors: returns the actual error message
// For 5xx server errors: use internalError() instead to avoid leaking details
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// internalError logs the actual error and returns a safe generic message.
func internalError(ctx *gin.Context, err error) gin.H {
	_ = ctx.Error(err)

	log.Error().
		Err(err).
		Str("request_id", GetRequestID(ctx)).
		Str("path", ctx.Request.URL.Path).
		Str("method", ctx.Request.Method).
		Msg("internal server error")

	return gin.H{"error": "internal server error"}
}
