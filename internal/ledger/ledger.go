// Package ledger owns the off-chain listing lifecycle. Listings are never
// deleted, only transitioned, so the table is an auditable history of every
// sale and cancellation.
package ledger

import (
	"context"

	"github.com/mintmarket/marketplace/internal/adapter"
	"github.com/mintmarket/marketplace/internal/domain"
	"github.com/mintmarket/marketplace/internal/store"
	"github.com/mintmarket/marketplace/internal/store/schema"
)

// Ledger creates and cancels marketplace listings
type Ledger struct {
	store store.Store
	clock adapter.Clock
}

// New creates a new listing ledger
func New(s store.Store, clock adapter.Clock) *Ledger {
	return &Ledger{store: s, clock: clock}
}

// CreatePending opens a new listing in the off-chain-active phase, before any
// chain transaction confirms. At most one active listing may exist per asset;
// a second attempt fails with domain.ErrAlreadyListed regardless of seller.
func (l *Ledger) CreatePending(ctx context.Context, assetID int64, sellerID int64, priceWei string, priceUSD *string, amount uint64) (*schema.Listing, error) {
	price, err := domain.ParseWei(priceWei)
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}
	if price.Sign() <= 0 {
		return nil, domain.ErrInvalidPrice
	}

	asset, err := l.store.GetAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil || asset.Burned {
		return nil, domain.ErrAssetNotFound
	}
	if asset.OwnerID == nil || *asset.OwnerID != sellerID {
		return nil, domain.ErrNotOwner
	}

	if asset.Standard.SingleEdition() {
		if amount != 1 {
			return nil, domain.ErrInvalidAmount
		}
	} else {
		if amount < 1 || amount > asset.Amount {
			return nil, domain.ErrInvalidAmount
		}
	}

	return l.store.CreateActiveListing(ctx, store.CreateListingInput{
		AssetID:  assetID,
		SellerID: sellerID,
		PriceWei: price.String(),
		PriceUSD: priceUSD,
		Amount:   amount,
	})
}

// Cancel transitions an active listing to cancelled on behalf of its seller.
// Only the seller may cancel (domain.ErrNotOwner) and only while the listing
// is active (domain.ErrNotCancelable).
func (l *Ledger) Cancel(ctx context.Context, listingID int64, actorID int64) (*schema.Listing, error) {
	return l.store.MarkListingCancelled(ctx, listingID, actorID, l.clock.Now())
}

// Get returns a listing by id, domain.ErrListingNotFound if absent
func (l *Ledger) Get(ctx context.Context, listingID int64) (*schema.Listing, error) {
	listing, err := l.store.GetListingByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, domain.ErrListingNotFound
	}
	return listing, nil
}

// List returns listings matching the filter with the total count
func (l *Ledger) List(ctx context.Context, filter store.ListingFilter) ([]schema.Listing, int64, error) {
	return l.store.ListListings(ctx, filter)
}
