package emitter_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintmarket/marketplace/internal/domain"
	"github.com/mintmarket/marketplace/internal/emitter"
	"github.com/mintmarket/marketplace/internal/logger"
	"github.com/mintmarket/marketplace/internal/messaging"
	"github.com/mintmarket/marketplace/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testEmitterMocks struct {
	ctrl       *gomock.Controller
	subscriber *mocks.MockSubscriber
	publisher  *mocks.MockPublisher
	store      *mocks.MockStore
	clock      *mocks.MockClock
}

func setupTestEmitter(t *testing.T) *testEmitterMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return &testEmitterMocks{
		ctrl:       ctrl,
		subscriber: mocks.NewMockSubscriber(ctrl),
		publisher:  mocks.NewMockPublisher(ctrl),
		store:      mocks.NewMockStore(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}
}

func (tm *testEmitterMocks) newEmitter(cfg emitter.Config) emitter.Emitter {
	return emitter.NewEmitter(tm.subscriber, tm.publisher, tm.store, cfg, tm.clock)
}

func soldEvent(block uint64) *domain.MarketEvent {
	return &domain.MarketEvent{
		Chain:          domain.ChainHardhatLocal,
		EventType:      domain.MarketEventListingSold,
		ChainListingID: 3,
		Buyer:          "0x2222222222222222222222222222222222222222",
		PriceWei:       "1000000000000000000",
		TxHash:         "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef",
		BlockNumber:    block,
		Timestamp:      time.Unix(1700000000, 0),
	}
}

func TestEmitterRunWithStartBlock(t *testing.T) {
	tm := setupTestEmitter(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := tm.newEmitter(emitter.Config{
		Chain:           domain.ChainHardhatLocal,
		StartBlock:      1000,
		CursorSaveFreq:  10,
		CursorSaveDelay: 5 * time.Second,
	})

	now := time.Now()
	tm.clock.EXPECT().Now().Return(now).MinTimes(1)
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	event := soldEvent(1001)

	tm.store.
		EXPECT().
		SetBlockCursor(gomock.Any(), string(domain.ChainHardhatLocal), uint64(1001)).
		Return(nil)

	var published *domain.MarketEvent
	var mu sync.Mutex
	done := make(chan struct{})
	tm.publisher.
		EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *domain.MarketEvent) error {
			mu.Lock()
			published = ev
			mu.Unlock()
			close(done)
			return nil
		})

	tm.subscriber.
		EXPECT().
		SubscribeEvents(gomock.Any(), uint64(1000), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
			require.NoError(t, handler(event))
			select {
			case <-done:
			case <-time.After(time.Second):
				t.Error("event was not published")
			}
			cancel()
			return nil
		})

	err := e.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, published)
	assert.Equal(t, event.TxHash, published.TxHash)
	assert.Len(t, published.EventID, 26)
}

func TestEmitterResumesFromCursor(t *testing.T) {
	tm := setupTestEmitter(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := tm.newEmitter(emitter.Config{
		Chain:           domain.ChainHardhatLocal,
		CursorSaveFreq:  10,
		CursorSaveDelay: 5 * time.Second,
	})

	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	tm.store.EXPECT().GetBlockCursor(gomock.Any(), string(domain.ChainHardhatLocal)).
		Return(uint64(500), nil)

	// Resumes one past the saved cursor
	tm.subscriber.
		EXPECT().
		SubscribeEvents(gomock.Any(), uint64(501), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
			cancel()
			return nil
		})

	err := e.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmitterStartsFromChainHead(t *testing.T) {
	tm := setupTestEmitter(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := tm.newEmitter(emitter.Config{
		Chain:           domain.ChainHardhatLocal,
		CursorSaveFreq:  10,
		CursorSaveDelay: 5 * time.Second,
	})

	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	tm.store.EXPECT().GetBlockCursor(gomock.Any(), string(domain.ChainHardhatLocal)).
		Return(uint64(0), nil)
	tm.subscriber.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(9999), nil)

	tm.subscriber.
		EXPECT().
		SubscribeEvents(gomock.Any(), uint64(9999), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
			cancel()
			return nil
		})

	err := e.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmitterSavesCursor(t *testing.T) {
	tm := setupTestEmitter(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := tm.newEmitter(emitter.Config{
		Chain:           domain.ChainHardhatLocal,
		StartBlock:      1000,
		CursorSaveFreq:  2,
		CursorSaveDelay: time.Hour,
	})

	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	tm.subscriber.
		EXPECT().
		SubscribeEvents(gomock.Any(), uint64(1000), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
			require.NoError(t, handler(soldEvent(1001)))
			require.NoError(t, handler(soldEvent(1003)))
			cancel()
			return nil
		})

	tm.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// 1001 - 0 >= 2 saves; 1003 - 1001 >= 2 saves again
	gomock.InOrder(
		tm.store.EXPECT().SetBlockCursor(gomock.Any(), string(domain.ChainHardhatLocal), uint64(1001)).Return(nil),
		tm.store.EXPECT().SetBlockCursor(gomock.Any(), string(domain.ChainHardhatLocal), uint64(1003)).Return(nil),
	)

	err := e.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmitterDropsMalformedEvents(t *testing.T) {
	tm := setupTestEmitter(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := tm.newEmitter(emitter.Config{
		Chain:           domain.ChainHardhatLocal,
		StartBlock:      1000,
		CursorSaveFreq:  1000,
		CursorSaveDelay: time.Hour,
	})

	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	malformed := soldEvent(1001)
	malformed.TxHash = "not-a-hash"

	tm.subscriber.
		EXPECT().
		SubscribeEvents(gomock.Any(), uint64(1000), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
			require.NoError(t, handler(malformed))
			cancel()
			return nil
		})

	// No PublishEvent expectation; publishing a malformed event fails the test

	err := e.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmitterPropagatesSubscriptionError(t *testing.T) {
	tm := setupTestEmitter(t)

	e := tm.newEmitter(emitter.Config{
		Chain:           domain.ChainHardhatLocal,
		StartBlock:      1000,
		CursorSaveFreq:  10,
		CursorSaveDelay: 5 * time.Second,
	})

	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()

	subErr := errors.New("websocket closed")
	tm.subscriber.
		EXPECT().
		SubscribeEvents(gomock.Any(), uint64(1000), gomock.Any()).
		Return(subErr)

	err := e.Run(context.Background())
	assert.ErrorIs(t, err, subErr)
}

func TestEmitterClose(t *testing.T) {
	tm := setupTestEmitter(t)

	e := tm.newEmitter(emitter.Config{Chain: domain.ChainHardhatLocal})

	tm.subscriber.EXPECT().Close()
	e.Close()
}
