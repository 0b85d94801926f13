package server

import (
	"fmt"
	"net/http"
	"time"

	"techmart/internal/cart"
	"techmart/internal/catalog"
	"techmart/internal/chat"
	"techmart/internal/checkout"
	"techmart/internal/config"
	custommiddleware "techmart/internal/middleware"
	"techmart/internal/session"
	"techmart/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config      *config.Config
	logger      *zap.Logger
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, catalogStore *catalog.Store, sessions *session.Store) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.Env == "development"))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Rate limiting is optional: only wired when Redis is configured, and it
	// fails open on Redis errors either way.
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		logger.Info("Rate limiting enabled", zap.String("redis_addr", cfg.Redis.Addr))
	}

	// Initialize services
	cartManager := cart.NewManager(catalogStore)
	dispatcher := chat.NewDispatcher(catalogStore, cartManager, logger)
	checkoutService := checkout.NewService()

	// Initialize handlers
	catalogHandler := transport.NewCatalogHandler(catalogStore, logger)
	chatHandler := transport.NewChatHandler(dispatcher, logger)
	cartHandler := transport.NewCartHandler(cartManager, logger)
	checkoutHandler := transport.NewCheckoutHandler(checkoutService, logger)
	sessionHandler := transport.NewSessionHandler(logger)

	// Every storefront route runs inside the visitor's session
	router.Group(func(r chi.Router) {
		if redisClient != nil {
			r.Use(custommiddleware.RateLimitMiddleware(redisClient, cfg.Session.CookieName, custommiddleware.RateLimitConfig{
				RequestsPerWindow: cfg.RateLimit.Requests,
				Window:            cfg.RateLimit.Window,
				KeyPrefix:         "rate_limit",
			}, logger))
		}
		r.Use(custommiddleware.SessionMiddleware(sessions, cfg.Session.CookieName, logger))

		catalogHandler.RegisterRoutes(r)
		chatHandler.RegisterRoutes(r)
		cartHandler.RegisterRoutes(r)
		checkoutHandler.RegisterRoutes(r)
		sessionHandler.RegisterRoutes(r)
	})

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:      cfg,
		logger:      logger,
		redisClient: redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
