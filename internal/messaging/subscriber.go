package messaging

import (
	"context"

	"github.com/mintmarket/marketplace/internal/domain"
)

// EventHandler is called when a new market event is received
type EventHandler func(event *domain.MarketEvent) error

// Subscriber defines the interface for subscribing to marketplace contract
// events as they confirm on chain
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeEvents subscribes to marketplace events
	// fromBlock: starting point for subscription (0 for latest)
	// handler: callback function to process each event
	SubscribeEvents(ctx context.Context, fromBlock uint64, handler EventHandler) error

	// GetLatestBlock returns the latest block number
	GetLatestBlock(ctx context.Context) (uint64, error)

	// Close closes the connection and cleans up resources
	Close()
}
