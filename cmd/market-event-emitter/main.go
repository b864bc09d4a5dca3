package main

import (
	"context"
	"errors"
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
	"github.com/mintmarket/marketplace/internal/config"
	"github.com/mintmarket/marketplace/internal/emitter"
	"github.com/mintmarket/marketplace/internal/logger"
	"github.com/mintmarket/marketplace/internal/providers/ethereum"
	"github.com/mintmarket/marketplace/internal/providers/jetstream"
	"github.com/mintmarket/marketplace/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	config.ChdirRepoRoot()
	cfg, err := config.LoadEmitterConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Service:   "market-event-emitter",
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting market event emitter")

	// Connect to database (block cursor persistence)
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	dataStore := store.NewPGStore(db)
	logger.InfoCtx(ctx, "Connected to database")

	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()

	// Ethereum WebSocket client
	chainID, err := cfg.Ethereum.ChainID.EVMChainID()
	if err != nil {
		logger.FatalCtx(ctx, "Invalid chain id", zap.Error(err), zap.String("chain", string(cfg.Ethereum.ChainID)))
	}
	ethDialer := adapter.NewEthClientDialer()
	ethClient, err := ethDialer.Dial(ctx, cfg.Ethereum.WebSocketURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial Ethereum WebSocket", zap.Error(err), zap.String("websocket_url", cfg.Ethereum.WebSocketURL))
	}
	chainClient, err := ethereum.NewClient(cfg.Ethereum.ChainID, chainID,
		cfg.Ethereum.MarketplaceAddress, cfg.Ethereum.CollectionAddress, ethClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create chain client", zap.Error(err))
	}

	// NATS publisher
	natsPublisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, natsJS, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer natsPublisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS JetStream")

	// Marketplace event subscriber
	marketSubscriber, err := ethereum.NewSubscriber(ethereum.SubscriberConfig{
		WebSocketURL:       cfg.Ethereum.WebSocketURL,
		Chain:              cfg.Ethereum.ChainID,
		MarketplaceAddress: cfg.Ethereum.MarketplaceAddress,
	}, chainClient)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create marketplace subscriber", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to Ethereum WebSocket")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	eventEmitter := emitter.NewEmitter(
		marketSubscriber,
		natsPublisher,
		dataStore,
		emitter.Config{
			Chain:           cfg.Ethereum.ChainID,
			StartBlock:      cfg.Ethereum.StartBlock,
			CursorSaveFreq:  2,                // Save every 2 blocks
			CursorSaveDelay: 30 * time.Second, // Or every 30 seconds
			WorkerPoolSize:  cfg.Worker.WorkerPoolSize,
			WorkerQueueSize: cfg.Worker.WorkerQueueSize,
		},
		clock,
	)
	defer eventEmitter.Close()

	errCh := make(chan error, 1)
	go func() {
		if err := eventEmitter.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case <-natsPublisher.CloseChan():
		logger.InfoCtx(ctx, "NATS connection closed unexpectedly")
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "emitter"))
		cancel()
	}

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	logger.Info("Market event emitter stopped")
}
