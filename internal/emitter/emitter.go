package emitter

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/mintmarket/marketplace/internal/adapter"
	"github.com/mintmarket/marketplace/internal/domain"
	"github.com/mintmarket/marketplace/internal/logger"
	"github.com/mintmarket/marketplace/internal/messaging"
	"github.com/mintmarket/marketplace/internal/store"
)

const (
	defaultWorkerPoolSize  = 20
	defaultWorkerQueueSize = 2048
)

// Config holds the configuration for the market event emitter
type Config struct {
	Chain           domain.Chain
	StartBlock      uint64
	CursorSaveFreq  uint64        // Save cursor every N blocks
	CursorSaveDelay time.Duration // Or save cursor every N seconds
	WorkerPoolSize  int
	WorkerQueueSize int
}

// Emitter subscribes to confirmed marketplace contract events, stamps each
// with a ULID event id and publishes it to the message broker
//
//go:generate mockgen -source=emitter.go -destination=../mocks/emitter.go -package=mocks -mock_names=Emitter=MockEmitter
type Emitter interface {
	// Run starts the event emitter
	Run(ctx context.Context) error
	// Close closes the emitter and cleans up resources
	Close()
}

type emitter struct {
	subscriber messaging.Subscriber
	publisher  messaging.Publisher
	store      store.Store
	config     Config
	clock      adapter.Clock
}

// NewEmitter creates a new market event emitter
func NewEmitter(
	sub messaging.Subscriber,
	pub messaging.Publisher,
	st store.Store,
	cfg Config,
	clock adapter.Clock,
) Emitter {
	return &emitter{
		subscriber: sub,
		publisher:  pub,
		store:      st,
		config:     cfg,
		clock:      clock,
	}
}

// Run starts the event emitter
func (e *emitter) Run(ctx context.Context) error {
	startBlock, err := e.resolveStartBlock(ctx)
	if err != nil {
		return err
	}

	poolSize := e.config.WorkerPoolSize
	if poolSize == 0 {
		poolSize = defaultWorkerPoolSize
	}
	queueSize := e.config.WorkerQueueSize
	if queueSize == 0 {
		queueSize = defaultWorkerQueueSize
	}

	pool := pond.NewPool(
		poolSize,
		pond.WithQueueSize(queueSize),
		pond.WithContext(ctx),
	)
	defer func() {
		pool.StopAndWait()
		logger.InfoCtx(ctx, "Emitter worker pool shutdown complete",
			zap.Uint64("submitted", pool.SubmittedTasks()),
			zap.Uint64("completed", pool.CompletedTasks()),
			zap.Uint64("failed", pool.FailedTasks()))
	}()

	errCh := make(chan error, 1)

	go func() {
		logger.InfoCtx(ctx, "Starting event subscription",
			zap.String("chain", string(e.config.Chain)),
			zap.Uint64("from_block", startBlock))

		lastSavedBlock := uint64(0)
		lastSaveTime := e.clock.Now()

		// The handler runs serially in the subscription loop; only the
		// publish itself is fanned out to the pool.
		handler := func(event *domain.MarketEvent) error {
			event.EventID = ulid.MustNewDefault(e.clock.Now()).String()

			if !event.Valid() {
				logger.WarnCtx(ctx, "Dropping malformed market event",
					zap.String("event_id", event.EventID),
					zap.String("tx_hash", event.TxHash))
				return nil
			}

			ev := event
			pool.Submit(func() {
				if err := e.publisher.PublishEvent(ctx, ev); err != nil {
					logger.ErrorCtx(ctx, fmt.Errorf("failed to publish event %s: %w", ev.TxHash, err),
						zap.String("event_id", ev.EventID))
				}
			})

			shouldSave := event.BlockNumber-lastSavedBlock >= e.config.CursorSaveFreq ||
				e.clock.Since(lastSaveTime) >= e.config.CursorSaveDelay

			if shouldSave {
				if err := e.store.SetBlockCursor(ctx, string(e.config.Chain), event.BlockNumber); err != nil {
					logger.ErrorCtx(ctx, fmt.Errorf("failed to save block cursor: %w", err))
				} else {
					lastSavedBlock = event.BlockNumber
					lastSaveTime = e.clock.Now()
				}
			}

			return nil
		}

		if err := e.subscriber.SubscribeEvents(ctx, startBlock, handler); err != nil {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// resolveStartBlock picks the subscription starting point: the configured
// block, else the saved cursor, else the chain head
func (e *emitter) resolveStartBlock(ctx context.Context) (uint64, error) {
	if e.config.StartBlock > 0 {
		logger.InfoCtx(ctx, "Starting from configured block",
			zap.String("chain", string(e.config.Chain)),
			zap.Uint64("block", e.config.StartBlock))
		return e.config.StartBlock, nil
	}

	lastBlock, err := e.store.GetBlockCursor(ctx, string(e.config.Chain))
	if err != nil {
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}
	if lastBlock > 0 {
		logger.InfoCtx(ctx, "Resuming from last processed block",
			zap.String("chain", string(e.config.Chain)),
			zap.Uint64("block", lastBlock+1))
		return lastBlock + 1, nil
	}

	latestBlock, err := e.subscriber.GetLatestBlock(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block number: %w", err)
	}
	logger.InfoCtx(ctx, "Starting from latest block",
		zap.String("chain", string(e.config.Chain)),
		zap.Uint64("block", latestBlock))
	return latestBlock, nil
}

// Close closes the emitter and cleans up resources
func (e *emitter) Close() {
	e.subscriber.Close()
}
