package reconcile

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintmarket/marketplace/internal/domain"
	"github.com/mintmarket/marketplace/internal/mocks"
	"github.com/mintmarket/marketplace/internal/store"
	"github.com/mintmarket/marketplace/internal/store/schema"
)

const (
	testTxHash  = "0x1111111111111111111111111111111111111111111111111111111111111111"
	testTxHash2 = "0x2222222222222222222222222222222222222222222222222222222222222222"
	testBuyer   = "0xabcdef1234567890abcdef1234567890abcdef12"
)

func newTestEngine(t *testing.T) (*Engine, *mocks.MockStore, *mocks.MockClock) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	storeMock := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	return NewEngine(storeMock, clock), storeMock, clock
}

func TestEngine_BindChainListing(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates a valid bind", func(t *testing.T) {
		engine, storeMock, _ := newTestEngine(t)

		chainID := uint64(7)
		storeMock.EXPECT().BindChainListing(ctx, store.BindChainListingInput{
			ListingID:      1,
			ChainListingID: 7,
			TxHash:         testTxHash,
		}).Return(&schema.Listing{ID: 1, ChainListingID: &chainID}, nil)

		listing, err := engine.BindChainListing(ctx, BindInput{
			ListingID:      1,
			ChainListingID: 7,
			TxHash:         testTxHash,
		})
		require.NoError(t, err)
		require.NotNil(t, listing.ChainListingID)
		assert.Equal(t, uint64(7), *listing.ChainListingID)
	})

	t.Run("rejects a malformed tx hash before touching the store", func(t *testing.T) {
		engine, _, _ := newTestEngine(t)

		for _, txHash := range []string{"", "0xdead", "not-a-hash", testTxHash + "00"} {
			_, err := engine.BindChainListing(ctx, BindInput{
				ListingID:      1,
				ChainListingID: 7,
				TxHash:         txHash,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidTxHash, "txHash %q", txHash)
		}
	})

	t.Run("propagates the already-bound conflict", func(t *testing.T) {
		engine, storeMock, _ := newTestEngine(t)

		storeMock.EXPECT().BindChainListing(ctx, gomock.Any()).
			Return(nil, domain.ErrAlreadyBound)

		_, err := engine.BindChainListing(ctx, BindInput{
			ListingID:      1,
			ChainListingID: 8,
			TxHash:         testTxHash2,
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyBound)
	})
}

func TestEngine_CompleteSale(t *testing.T) {
	ctx := context.Background()
	soldAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	activeListing := func(priceWei string) *schema.Listing {
		return &schema.Listing{ID: 1, PriceWei: priceWei, Status: domain.ListingStatusActive}
	}

	t.Run("derives seller proceeds as the exact remainder", func(t *testing.T) {
		engine, storeMock, _ := newTestEngine(t)

		storeMock.EXPECT().GetListingByID(ctx, int64(1)).
			Return(activeListing("1000"), nil)
		storeMock.EXPECT().CompleteSale(ctx, store.CompleteSaleInput{
			ListingID:         1,
			TxHash:            testTxHash,
			BuyerAddress:      testBuyer,
			PlatformFeeWei:    "25",
			RoyaltyFeeWei:     "50",
			SellerProceedsWei: "925",
			SoldAt:            soldAt,
		}).Return(&schema.Listing{ID: 1, Status: domain.ListingStatusSold}, nil)

		listing, err := engine.CompleteSale(ctx, SaleInput{
			ListingID:      1,
			TxHash:         testTxHash,
			BuyerAddress:   testBuyer,
			PlatformFeeWei: "25",
			RoyaltyFeeWei:  "50",
			SoldAt:         soldAt,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ListingStatusSold, listing.Status)
	})

	t.Run("falls back to the clock when the event has no timestamp", func(t *testing.T) {
		engine, storeMock, clock := newTestEngine(t)

		clock.EXPECT().Now().Return(soldAt)
		storeMock.EXPECT().GetListingByID(ctx, int64(1)).
			Return(activeListing("1000"), nil)
		storeMock.EXPECT().CompleteSale(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input store.CompleteSaleInput) (*schema.Listing, error) {
				assert.Equal(t, soldAt, input.SoldAt)
				return &schema.Listing{ID: 1, Status: domain.ListingStatusSold}, nil
			})

		_, err := engine.CompleteSale(ctx, SaleInput{
			ListingID:      1,
			TxHash:         testTxHash,
			BuyerAddress:   testBuyer,
			PlatformFeeWei: "0",
			RoyaltyFeeWei:  "0",
		})
		require.NoError(t, err)
	})

	t.Run("rejects fees exceeding the price", func(t *testing.T) {
		engine, storeMock, _ := newTestEngine(t)

		storeMock.EXPECT().GetListingByID(ctx, int64(1)).
			Return(activeListing("1000"), nil)

		_, err := engine.CompleteSale(ctx, SaleInput{
			ListingID:      1,
			TxHash:         testTxHash,
			BuyerAddress:   testBuyer,
			PlatformFeeWei: "600",
			RoyaltyFeeWei:  "500",
			SoldAt:         soldAt,
		})
		assert.ErrorIs(t, err, domain.ErrFeeSumMismatch)
	})

	t.Run("rejects malformed inputs before touching the store", func(t *testing.T) {
		engine, storeMock, _ := newTestEngine(t)

		_, err := engine.CompleteSale(ctx, SaleInput{
			ListingID:    1,
			TxHash:       "0xnothash",
			BuyerAddress: testBuyer,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTxHash)

		_, err = engine.CompleteSale(ctx, SaleInput{
			ListingID:    1,
			TxHash:       testTxHash,
			BuyerAddress: "0xshort",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidAddress)

		storeMock.EXPECT().GetListingByID(ctx, int64(1)).
			Return(activeListing("1000"), nil)
		_, err = engine.CompleteSale(ctx, SaleInput{
			ListingID:      1,
			TxHash:         testTxHash,
			BuyerAddress:   testBuyer,
			PlatformFeeWei: "abc",
			RoyaltyFeeWei:  "0",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidPrice)
	})

	t.Run("unknown listing fails", func(t *testing.T) {
		engine, storeMock, _ := newTestEngine(t)

		storeMock.EXPECT().GetListingByID(ctx, int64(404)).Return(nil, nil)

		_, err := engine.CompleteSale(ctx, SaleInput{
			ListingID:      404,
			TxHash:         testTxHash,
			BuyerAddress:   testBuyer,
			PlatformFeeWei: "0",
			RoyaltyFeeWei:  "0",
		})
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
	})

	t.Run("propagates the not-active state error", func(t *testing.T) {
		engine, storeMock, _ := newTestEngine(t)

		cancelled := activeListing("1000")
		cancelled.Status = domain.ListingStatusCancelled
		storeMock.EXPECT().GetListingByID(ctx, int64(1)).Return(cancelled, nil)
		storeMock.EXPECT().CompleteSale(ctx, gomock.Any()).
			Return(nil, domain.ErrNotActive)

		_, err := engine.CompleteSale(ctx, SaleInput{
			ListingID:      1,
			TxHash:         testTxHash,
			BuyerAddress:   testBuyer,
			PlatformFeeWei: "0",
			RoyaltyFeeWei:  "0",
			SoldAt:         soldAt,
		})
		assert.ErrorIs(t, err, domain.ErrNotActive)
	})
}

func TestEngine_ConfirmCancellation(t *testing.T) {
	ctx := context.Background()
	cancelledAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("delegates a valid confirmation", func(t *testing.T) {
		engine, storeMock, _ := newTestEngine(t)

		storeMock.EXPECT().ConfirmCancellation(ctx, store.ConfirmCancellationInput{
			ListingID:   1,
			TxHash:      testTxHash,
			CancelledAt: cancelledAt,
		}).Return(&schema.Listing{ID: 1, Status: domain.ListingStatusCancelled}, nil)

		listing, err := engine.ConfirmCancellation(ctx, CancelInput{
			ListingID:   1,
			TxHash:      testTxHash,
			CancelledAt: cancelledAt,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ListingStatusCancelled, listing.Status)
	})

	t.Run("rejects a malformed tx hash", func(t *testing.T) {
		engine, _, _ := newTestEngine(t)

		_, err := engine.ConfirmCancellation(ctx, CancelInput{
			ListingID: 1,
			TxHash:    "0xbad",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTxHash)
	})
}
