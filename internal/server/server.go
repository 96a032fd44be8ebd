package server

import (
	"io"

	"github.com/aistrugglebus/contact-api/internal/api/handlers"
	"github.com/aistrugglebus/contact-api/internal/api/middleware"
	"github.com/aistrugglebus/contact-api/internal/config"
	"github.com/aistrugglebus/contact-api/internal/db"
	"github.com/aistrugglebus/contact-api/internal/ratelimit"
	"github.com/aistrugglebus/contact-api/internal/repository"
	"github.com/aistrugglebus/contact-api/internal/server/routes"
	"github.com/aistrugglebus/contact-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	db     *db.Database
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, database *db.Database) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Our request logger replaces gin's
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()
	router.Use(handlers.Recovery())

	return &Server{
		router: router,
		cfg:    cfg,
		db:     database,
	}
}

// Init wires middleware, dependencies, and routes.
func (s *Server) Init() error {
	// Contact submissions share one budget across instances when Redis is
	// configured; otherwise counters are process-local.
	var limiter ratelimit.Limiter
	if s.cfg.RedisAddr != "" {
		limiter = ratelimit.NewRedisLimiter(redis.NewClient(&redis.Options{
			Addr: s.cfg.RedisAddr,
		}))
	} else {
		limiter = ratelimit.NewMemoryLimiter()
	}

	contactRepo := repository.NewContactRepository(s.db.DB)
	notifier := service.NewEmailService(s.cfg.ResendAPIKey, s.cfg.EmailFrom, s.cfg.EmailTo)

	s.router.Use(middleware.RequestLogger())
	s.router.Use(middleware.CORS(s.cfg.Environment, s.cfg.AllowedOrigins))
	s.router.Use(middleware.SecurityHeaders())
	s.router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   10,
		Burst: 20,
	}))

	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(contactRepo, notifier, limiter),
		Health:  handlers.NewHealthHandler(contactRepo),
	}
	routes.Setup(s.router, h)

	return nil
}

// Start starts the server
func (s *Server) Start() error {
	return s.router.Run(":" + s.cfg.Port)
}
