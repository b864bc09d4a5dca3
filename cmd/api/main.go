package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mintmarket/marketplace/internal/adapter"
	"github.com/mintmarket/marketplace/internal/api/server"
	"github.com/mintmarket/marketplace/internal/auth"
	"github.com/mintmarket/marketplace/internal/config"
	"github.com/mintmarket/marketplace/internal/ledger"
	"github.com/mintmarket/marketplace/internal/logger"
	"github.com/mintmarket/marketplace/internal/minting"
	"github.com/mintmarket/marketplace/internal/providers/ethereum"
	"github.com/mintmarket/marketplace/internal/providers/ipfs"
	"github.com/mintmarket/marketplace/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Service:   "api",
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting marketplace API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database schema", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()

	// Wallet authentication
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, clock)
	authService := auth.NewService(dataStore, auth.NewSignatureVerifier(), auth.NewNonceStore(dataStore, clock), tokens)

	// Chain client for reads and unsigned transaction building
	chainID, err := cfg.Ethereum.ChainID.EVMChainID()
	if err != nil {
		logger.FatalCtx(ctx, "Invalid chain id", zap.Error(err), zap.String("chain", string(cfg.Ethereum.ChainID)))
	}
	ethDialer := adapter.NewEthClientDialer()
	ethClient, err := ethDialer.Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial Ethereum RPC", zap.Error(err), zap.String("rpc_url", cfg.Ethereum.RPCURL))
	}
	defer ethClient.Close()
	chainClient, err := ethereum.NewClient(cfg.Ethereum.ChainID, chainID,
		cfg.Ethereum.MarketplaceAddress, cfg.Ethereum.CollectionAddress, ethClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create chain client", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to Ethereum RPC", zap.String("chain", string(cfg.Ethereum.ChainID)))

	// IPFS pinning for mint request metadata
	pinner, err := ipfs.NewPinner(ipfs.Config{
		APIURL:    cfg.IPFS.APIURL,
		APIKey:    cfg.IPFS.APIKey,
		APISecret: cfg.IPFS.APISecret,
		Gateway:   cfg.IPFS.Gateway,
	}, adapter.NewHTTPClient(30*time.Second), adapter.NewJSON())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create IPFS pinner", zap.Error(err))
	}

	listingLedger := ledger.New(dataStore, clock)
	mintingService := minting.New(dataStore, pinner, chainClient, clock)

	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		ServiceName:    "marketplace-api",
	}

	srv := server.New(serverConfig, dataStore, authService, tokens, listingLedger, mintingService, chainClient)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
