package routes

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"riderservice/configs"
	"riderservice/controllers"
	"riderservice/middlewares"
	"riderservice/repository"
	"riderservice/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// RegisterRoutes wires the request pipeline. Middleware order is fixed:
// every request is audited first, then measured, then admission-controlled,
// so the audit trail covers requests later rejected for quota.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	riderRepo := repository.NewRiderRepository(db)
	logRepo := repository.NewLogRepository(db)

	riderSvc := services.NewRiderService(riderRepo)
	tripSvc := services.NewTripService(cfg.TripServiceURL, cfg.TripTimeout)

	riderCtrl := controllers.NewRiderController(riderSvc, tripSvc)

	// Admission policies: one keyed limiter per policy, injected here.
	defaultLimit := middlewares.NewRateLimiter(cfg.RateLimitDefault)
	listLimit := middlewares.NewRateLimiter(cfg.RateLimitDefault)
	createLimit := middlewares.NewRateLimiter(cfg.RateLimitCreate)

	// Janitors evict idle client buckets for the life of the process;
	// there is no server shutdown path, so the channel is never closed.
	janitorDone := make(chan struct{})
	for _, rl := range []*middlewares.RateLimiter{defaultLimit, listLimit, createLimit} {
		rl.StartJanitor(janitorDone, 2*time.Minute)
	}

	// Catch-all: a panic anywhere below still yields a structured 500.
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Printf("ERROR: unhandled: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"details": fmt.Sprint(err),
		})
	}))
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.AuditMiddleware(logRepo))
	r.Use(middlewares.MetricsMiddleware())

	r.GET("/", middlewares.RateLimit(defaultLimit), func(c *gin.Context) {
		c.String(http.StatusOK, "Rider Microservice is running! Try /v1/riders or /health")
	})
	r.GET("/health", middlewares.RateLimit(defaultLimit), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", middlewares.RateLimit(defaultLimit), gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.GET("/riders", middlewares.RateLimit(listLimit), riderCtrl.List)
		v1.POST("/riders", middlewares.RateLimit(createLimit), riderCtrl.Create)
		v1.GET("/riders/:id", middlewares.RateLimit(defaultLimit), riderCtrl.Get)
		v1.PUT("/riders/:id", middlewares.RateLimit(defaultLimit), riderCtrl.Update)
		v1.DELETE("/riders/:id", middlewares.RateLimit(defaultLimit), riderCtrl.Delete)
		v1.GET("/riders/:id/trips", middlewares.RateLimit(defaultLimit), riderCtrl.TripsForRider)
	}
}
