// Package reconcile applies confirmed chain events to the listing ledger.
// A listing passes through a two-phase existence: off-chain-only-active
// (created, no chain listing id yet) and chain-confirmed-active (id bound).
// The engine drives the transitions active -> sold and active -> cancelled;
// every mutation is idempotent keyed on the confirming transaction hash, so
// redelivered events resolve to no-ops instead of corruption.
package reconcile

import (
	"context"
	"math/big"
	"time"

	"gorm.io/datatypes"

	"github.com/mintmarket/marketplace/internal/adapter"
	"github.com/mintmarket/marketplace/internal/domain"
	"github.com/mintmarket/marketplace/internal/store"
	"github.com/mintmarket/marketplace/internal/store/schema"
)

// BindInput binds an on-chain listing identifier to an off-chain listing
type BindInput struct {
	ListingID      int64
	ChainListingID uint64
	TxHash         string
	EventID        *string
	BlockNumber    *uint64
	Raw            datatypes.JSON
}

// SaleInput records a confirmed sale. PlatformFeeWei and RoyaltyFeeWei come
// from the chain event; seller proceeds are derived as the exact remainder.
type SaleInput struct {
	ListingID      int64
	TxHash         string
	BuyerAddress   string
	PlatformFeeWei string
	RoyaltyFeeWei  string
	EventID        *string
	BlockNumber    *uint64
	Raw            datatypes.JSON
	SoldAt         time.Time
}

// CancelInput records a confirmed on-chain cancellation
type CancelInput struct {
	ListingID   int64
	TxHash      string
	EventID     *string
	BlockNumber *uint64
	Raw         datatypes.JSON
	CancelledAt time.Time
}

// Engine reconciles listing state with confirmed chain events
type Engine struct {
	store store.Store
	clock adapter.Clock
}

// NewEngine creates a new reconciliation engine
func NewEngine(s store.Store, clock adapter.Clock) *Engine {
	return &Engine{store: s, clock: clock}
}

// BindChainListing attaches the on-chain listing id once the creation
// transaction confirms. A duplicate call with the same tx hash is a no-op
// returning the current state; binding a different id to an already-bound
// listing fails with domain.ErrAlreadyBound.
func (e *Engine) BindChainListing(ctx context.Context, input BindInput) (*schema.Listing, error) {
	if !domain.IsValidTxHash(input.TxHash) {
		return nil, domain.ErrInvalidTxHash
	}

	return e.store.BindChainListing(ctx, store.BindChainListingInput{
		ListingID:      input.ListingID,
		ChainListingID: input.ChainListingID,
		TxHash:         input.TxHash,
		EventID:        input.EventID,
		BlockNumber:    input.BlockNumber,
		Raw:            input.Raw,
	})
}

// CompleteSale transitions an active listing to sold: records buyer, tx hash
// and fee breakdown, and transfers asset ownership, all in one transaction.
// Seller proceeds are computed as price minus fees so the three parts sum to
// the price exactly; fees exceeding the price fail with
// domain.ErrFeeSumMismatch.
func (e *Engine) CompleteSale(ctx context.Context, input SaleInput) (*schema.Listing, error) {
	if !domain.IsValidTxHash(input.TxHash) {
		return nil, domain.ErrInvalidTxHash
	}
	if !domain.IsValidAddress(input.BuyerAddress) {
		return nil, domain.ErrInvalidAddress
	}

	listing, err := e.store.GetListingByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, domain.ErrListingNotFound
	}

	platform, err := domain.ParseWei(input.PlatformFeeWei)
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}
	royalty, err := domain.ParseWei(input.RoyaltyFeeWei)
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}
	price, err := domain.ParseWei(listing.PriceWei)
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}

	proceeds := new(big.Int).Sub(price, platform)
	proceeds.Sub(proceeds, royalty)
	if proceeds.Sign() < 0 {
		return nil, domain.ErrFeeSumMismatch
	}

	soldAt := input.SoldAt
	if soldAt.IsZero() {
		soldAt = e.clock.Now()
	}

	return e.store.CompleteSale(ctx, store.CompleteSaleInput{
		ListingID:         input.ListingID,
		TxHash:            input.TxHash,
		BuyerAddress:      input.BuyerAddress,
		PlatformFeeWei:    platform.String(),
		RoyaltyFeeWei:     royalty.String(),
		SellerProceedsWei: proceeds.String(),
		EventID:           input.EventID,
		BlockNumber:       input.BlockNumber,
		Raw:               input.Raw,
		SoldAt:            soldAt,
	})
}

// ConfirmCancellation records the on-chain cancellation transaction. If the
// seller already cancelled off-chain the listing keeps its state and only
// gains the tx hash; a sold listing fails with domain.ErrNotActive.
func (e *Engine) ConfirmCancellation(ctx context.Context, input CancelInput) (*schema.Listing, error) {
	if !domain.IsValidTxHash(input.TxHash) {
		return nil, domain.ErrInvalidTxHash
	}

	cancelledAt := input.CancelledAt
	if cancelledAt.IsZero() {
		cancelledAt = e.clock.Now()
	}

	return e.store.ConfirmCancellation(ctx, store.ConfirmCancellationInput{
		ListingID:   input.ListingID,
		TxHash:      input.TxHash,
		EventID:     input.EventID,
		BlockNumber: input.BlockNumber,
		Raw:         input.Raw,
		CancelledAt: cancelledAt,
	})
}
