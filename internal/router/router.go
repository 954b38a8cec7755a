package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/sanjeevani/coordination-api/internal/handler"
	authHandler "github.com/sanjeevani/coordination-api/internal/handler/auth"
	donorHandler "github.com/sanjeevani/coordination-api/internal/handler/donor"
	organHandler "github.com/sanjeevani/coordination-api/internal/handler/organ"
	requestHandler "github.com/sanjeevani/coordination-api/internal/handler/request"
	stockHandler "github.com/sanjeevani/coordination-api/internal/handler/stock"
	"github.com/sanjeevani/coordination-api/internal/middleware"
	"github.com/sanjeevani/coordination-api/internal/model"
)

type Config struct {
	RateLimit     rate.Limit
	RateBurst     int
	CORS          middleware.CORSConfig
	MetricsPrefix string
}

type Router struct {
	engine   *gin.Engine
	auth     *middleware.AuthMiddleware
	h        *handler.Handler
	authH    *authHandler.Handler
	stockH   *stockHandler.Handler
	organH   *organHandler.Handler
	requestH *requestHandler.Handler
	donorH   *donorHandler.Handler
	registry *prometheus.Registry
	metrics  *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	h *handler.Handler,
	authH *authHandler.Handler,
	stockH *stockHandler.Handler,
	organH *organHandler.Handler,
	requestH *requestHandler.Handler,
	donorH *donorHandler.Handler,
	cfg Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	registry := prometheus.NewRegistry()
	metrics := newRouterMetrics(registry, cfg.MetricsPrefix)

	r := &Router{
		engine:   engine,
		auth:     auth,
		h:        h,
		authH:    authH,
		stockH:   stockH,
		organH:   organH,
		requestH: requestH,
		donorH:   donorH,
		registry: registry,
		metrics:  metrics,
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.metricsMiddleware(),
	)
	engine.Use(middleware.CORS(cfg.CORS))

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  cfg.RateLimit,
			Burst: cfg.RateBurst,
		})
		engine.Use(limiter.RateLimit())
	}

	return r
}

func (r *Router) Setup() {
	r.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))

	api := r.engine.Group("/api/v1")
	api.Use(func(c *gin.Context) {
		c.Header("X-API-Version", "1.0")
		c.Next()
	})

	health := api.Group("/health")
	{
		health.GET("/live", r.h.LivenessCheck)
		health.GET("/ready", r.h.ReadinessCheck)
	}

	// Public routes: login/register and anonymous emergency submission
	r.authH.RegisterRoutes(api)
	r.requestH.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	r.authH.RegisterProtectedRoutes(protected)
	r.stockH.RegisterRoutes(protected)
	r.organH.RegisterRoutes(protected)
	r.requestH.RegisterRoutes(protected)

	hospital := protected.Group("")
	hospital.Use(r.auth.RequireRole(model.RoleHospital))
	r.stockH.RegisterHospitalRoutes(hospital)
	r.organH.RegisterHospitalRoutes(hospital)
	r.requestH.RegisterHospitalRoutes(hospital)

	donors := protected.Group("")
	donors.Use(r.auth.RequireRole(model.RoleDonor))
	r.donorH.RegisterRoutes(donors)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func newRouterMetrics(registry *prometheus.Registry, prefix string) *routerMetrics {
	if prefix == "" {
		prefix = "sanjeevani"
	}
	m := &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
	registry.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)
	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
