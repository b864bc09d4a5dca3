package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mintmarket/marketplace/internal/api/middleware"
	"github.com/mintmarket/marketplace/internal/api/rest"
	"github.com/mintmarket/marketplace/internal/auth"
	"github.com/mintmarket/marketplace/internal/ledger"
	"github.com/mintmarket/marketplace/internal/logger"
	"github.com/mintmarket/marketplace/internal/minting"
	"github.com/mintmarket/marketplace/internal/providers/ethereum"
	"github.com/mintmarket/marketplace/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug          bool
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
	ServiceName    string
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	store      store.Store
	auth       *auth.Service
	tokens     *auth.TokenIssuer
	ledger     *ledger.Ledger
	minting    *minting.Service
	chain      ethereum.MarketplaceClient
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, st store.Store, authService *auth.Service, tokens *auth.TokenIssuer, ld *ledger.Ledger, mint *minting.Service, chain ethereum.MarketplaceClient) *Server {
	return &Server{
		config:  cfg,
		store:   st,
		auth:    authService,
		tokens:  tokens,
		ledger:  ld,
		minting: mint,
		chain:   chain,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS(s.config.AllowedOrigins))

	handler := rest.NewHandler(s.config.ServiceName, s.auth, s.store, s.ledger, s.minting, s.chain)
	rest.SetupRoutes(router, handler, s.tokens, s.store)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
