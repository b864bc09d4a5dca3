package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/mintmarket/marketplace/internal/adapter"
	"github.com/mintmarket/marketplace/internal/domain"
	"github.com/mintmarket/marketplace/internal/logger"
	"github.com/mintmarket/marketplace/internal/reconcile"
	"github.com/mintmarket/marketplace/internal/store"
	"github.com/mintmarket/marketplace/internal/store/schema"
)

// Config holds the configuration for the reconciliation bridge
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int
}

// Bridge consumes confirmed market events from JetStream and applies them to
// the listing ledger through the reconciliation engine
type Bridge interface {
	// Run starts consuming until ctx is cancelled
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	store  store.Store
	engine *reconcile.Engine
	json   adapter.JSON
	config Config
}

// NewBridge creates a new reconciliation bridge
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	st store.Store,
	engine *reconcile.Engine,
	jsonAdapter adapter.JSON,
) (Bridge, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &bridge{
		nc:     nc,
		js:     js,
		store:  st,
		engine: engine,
		json:   jsonAdapter,
		config: cfg,
	}, nil
}

// Run starts the reconciliation bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.Info("Starting reconciliation bridge",
		zap.String("stream", b.config.StreamName),
		zap.String("consumer", b.config.ConsumerName),
	)

	subject := "market.*.>"

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWaitTimeout,
		MaxDeliver:    b.config.MaxDeliver,
		FilterSubject: subject,
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming messages")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down reconciliation bridge")
			return ctx.Err()
		case msg := <-msgChan:
			b.handleMessage(ctx, msg)
		}
	}
}

// handleMessage processes a single NATS message
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	metadata, _ := msg.Metadata()

	var event domain.MarketEvent
	if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal event"))
		// Terminate message for unparseable data
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	deliveries := uint64(1)
	if metadata != nil {
		deliveries = metadata.NumDelivered
	}
	logger.Info("Received event",
		zap.String("eventID", event.EventID),
		zap.String("eventType", string(event.EventType)),
		zap.Uint64("chainListingID", event.ChainListingID),
		zap.String("txHash", event.TxHash),
		zap.Uint64("deliveryCount", deliveries),
	)

	if !event.Valid() {
		logger.Warn("Dropping structurally invalid event",
			zap.String("eventID", event.EventID),
			zap.String("eventType", string(event.EventType)),
		)
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	if err := b.applyEvent(ctx, &event); err != nil {
		if terminal(err) {
			// Rejected by the ledger's own rules, a retry cannot change the
			// outcome. Ack so the event is not redelivered.
			logger.Warn("Event rejected by reconciliation engine",
				zap.String("eventID", event.EventID),
				zap.String("eventType", string(event.EventType)),
				zap.Error(err),
			)
			if err := msg.Ack(); err != nil {
				logger.Error(err, zap.String("message", "Failed to ACK message"))
			}
			return
		}

		logger.Error(err, zap.String("message", "Failed to apply event"))
		// NAK to retry
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

// applyEvent routes the event to the matching engine transition
func (b *bridge) applyEvent(ctx context.Context, event *domain.MarketEvent) error {
	listing, err := b.resolveListing(ctx, event)
	if err != nil {
		return err
	}
	if listing == nil {
		// No ledger listing tracks this chain listing. Chain-only listings
		// created outside this marketplace are not reconciled.
		logger.Warn("No listing matches event, skipping",
			zap.String("eventID", event.EventID),
			zap.Uint64("chainListingID", event.ChainListingID),
		)
		return nil
	}

	eventID := event.EventID
	blockNumber := event.BlockNumber
	raw, err := b.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	switch event.EventType {
	case domain.MarketEventListingCreated:
		_, err = b.engine.BindChainListing(ctx, reconcile.BindInput{
			ListingID:      listing.ID,
			ChainListingID: event.ChainListingID,
			TxHash:         event.TxHash,
			EventID:        &eventID,
			BlockNumber:    &blockNumber,
			Raw:            datatypes.JSON(raw),
		})
	case domain.MarketEventListingSold:
		_, err = b.engine.CompleteSale(ctx, reconcile.SaleInput{
			ListingID:      listing.ID,
			TxHash:         event.TxHash,
			BuyerAddress:   event.Buyer,
			PlatformFeeWei: orZero(event.PlatformFeeWei),
			RoyaltyFeeWei:  orZero(event.RoyaltyFeeWei),
			EventID:        &eventID,
			BlockNumber:    &blockNumber,
			Raw:            datatypes.JSON(raw),
			SoldAt:         event.Timestamp,
		})
	case domain.MarketEventListingCancelled:
		_, err = b.engine.ConfirmCancellation(ctx, reconcile.CancelInput{
			ListingID:   listing.ID,
			TxHash:      event.TxHash,
			EventID:     &eventID,
			BlockNumber: &blockNumber,
			Raw:         datatypes.JSON(raw),
			CancelledAt: event.Timestamp,
		})
	default:
		return fmt.Errorf("unknown event type: %s", event.EventType)
	}

	return err
}

// resolveListing maps a chain event to the ledger listing it affects.
// ListingCreated events precede the chain id binding, so they resolve
// through the asset; later events resolve by the bound chain listing id.
func (b *bridge) resolveListing(ctx context.Context, event *domain.MarketEvent) (*schema.Listing, error) {
	if event.EventType == domain.MarketEventListingCreated {
		asset, err := b.store.GetAssetByToken(ctx,
			domain.NormalizeAddress(event.ContractAddress), event.TokenNumber)
		if err != nil {
			return nil, err
		}
		if asset == nil {
			return nil, nil
		}
		return b.store.GetActiveListingByAsset(ctx, asset.ID)
	}

	return b.store.GetListingByChainID(ctx, event.ChainListingID)
}

// terminal reports whether the engine rejected the event for a reason a
// redelivery cannot fix
func terminal(err error) bool {
	for _, sentinel := range []error{
		domain.ErrInvalidTxHash,
		domain.ErrInvalidAddress,
		domain.ErrInvalidPrice,
		domain.ErrListingNotFound,
		domain.ErrNotActive,
		domain.ErrAlreadyBound,
		domain.ErrFeeSumMismatch,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func orZero(wei string) string {
	if wei == "" {
		return "0"
	}
	return wei
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	b.nc.Close()
}
