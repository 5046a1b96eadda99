package api

import (
	"context"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/KdbAzizul/rescuemesh-sos-service/cache"
	"github.com/KdbAzizul/rescuemesh-sos-service/external/disaster"
	"github.com/KdbAzizul/rescuemesh-sos-service/external/matching"
	"github.com/KdbAzizul/rescuemesh-sos-service/logmodule"
	"github.com/KdbAzizul/rescuemesh-sos-service/messaging"
	"github.com/KdbAzizul/rescuemesh-sos-service/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.SOSStore

	// Match list cache
	cache *cache.Cache

	// Matching trigger channel
	publisher messaging.Publisher

	// External services
	disasterClient disaster.Disaster
	matchingClient matching.Matching

	// job pool enqueuer
	background *machinery.Server
}

// NewServer new instance of server
func NewServer(
	sosStore store.SOSStore,
	matchCache *cache.Cache,
	publisher messaging.Publisher,
	disasterClient disaster.Disaster,
	matchingClient matching.Matching,
	background *machinery.Server) *Server {
	return &Server{
		store:          sosStore,
		cache:          matchCache,
		publisher:      publisher,
		disasterClient: disasterClient,
		matchingClient: matchingClient,
		background:     background,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api/sos")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.POST("", s.createRequest)
		requestRoute.GET("", s.listRequests)
		requestRoute.GET("/:requestID", s.getRequest)
		requestRoute.PUT("/:requestID/status", s.updateRequestStatus)
		requestRoute.POST("/:requestID/trigger-matching", s.triggerMatching)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/retrigger-stale", s.adminRetriggerStale)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiToken := c.GetHeader("Api-Token")
		if apiToken == "" || apiToken != key {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func (s *Server) healthz(c *gin.Context) {
	databaseStatus := "healthy"
	if err := s.store.Ping(); err != nil {
		databaseStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.cache == nil {
		redisStatus = "unhealthy"
	} else if err := s.cache.Ping(); err != nil {
		redisStatus = "unhealthy"
	}

	status := "healthy"
	statusCode := http.StatusOK
	switch {
	case databaseStatus == "unhealthy":
		// the store is the source of truth; without it the service is down
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	case redisStatus == "unhealthy":
		status = "degraded"
	}

	c.JSON(statusCode, gin.H{
		"status":    status,
		"service":   "sos-service",
		"version":   viper.GetString("server.version"),
		"timestamp": time.Now().UTC(),
		"checks": gin.H{
			"database": databaseStatus,
			"redis":    redisStatus,
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
