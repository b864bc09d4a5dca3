package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/mintmarket/marketplace/internal/domain"
	"github.com/mintmarket/marketplace/internal/logger"
	"github.com/mintmarket/marketplace/internal/messaging"
)

// SubscriberConfig holds the configuration for marketplace event subscription
type SubscriberConfig struct {
	WebSocketURL       string       // WebSocket URL (e.g., wss://sepolia.infura.io/ws/v3/YOUR_PROJECT_ID)
	Chain              domain.Chain // e.g., "eip155:11155111" for Sepolia
	MarketplaceAddress string       // marketplace contract to watch
}

type marketSubscriber struct {
	client             MarketplaceClient
	chain              domain.Chain
	marketplaceAddress common.Address
}

// NewSubscriber creates a subscriber for confirmed marketplace contract events
func NewSubscriber(cfg SubscriberConfig, client MarketplaceClient) (messaging.Subscriber, error) {
	if cfg.MarketplaceAddress == "" {
		return nil, fmt.Errorf("marketplace address is required")
	}

	return &marketSubscriber{
		client:             client,
		chain:              cfg.Chain,
		marketplaceAddress: common.HexToAddress(cfg.MarketplaceAddress),
	}, nil
}

// SubscribeEvents subscribes to ListingCreated, ListingSold and
// ListingCancelled logs emitted by the marketplace contract
func (s *marketSubscriber) SubscribeEvents(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
	query := ethereum.FilterQuery{
		Addresses: []common.Address{s.marketplaceAddress},
		Topics: [][]common.Hash{
			{
				listingCreatedEventSignature,
				listingSoldEventSignature,
				listingCancelledEventSignature,
			},
		},
	}
	if fromBlock > 0 {
		query.FromBlock = new(big.Int).SetUint64(fromBlock)
	}

	logs := make(chan types.Log)
	sub, err := s.client.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		return fmt.Errorf("failed to subscribe to filter logs: %w", err)
	}
	defer func() {
		logger.InfoCtx(ctx, "Unsubscribing from marketplace event logs")
		sub.Unsubscribe()
		logger.InfoCtx(ctx, "Unsubscribed from marketplace event logs")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return fmt.Errorf("subscription error: %w", err)
		case vLog := <-logs:
			event, err := s.client.ParseEventLog(ctx, vLog)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error parsing log"))
				continue
			}

			if event == nil {
				continue
			}

			if err := handler(event); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error handling event"))
			}
		}
	}
}

// GetLatestBlock returns the latest block number
func (s *marketSubscriber) GetLatestBlock(ctx context.Context) (uint64, error) {
	header, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

// Close closes the connection
func (s *marketSubscriber) Close() {
	if s.client == nil {
		return
	}

	s.client.Close()
	logger.Info("Ethereum WebSocket connection closed")
}
