package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/mintmarket/marketplace/internal/domain"
	"github.com/mintmarket/marketplace/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

var addrSeq int

// buildTestAddress returns a unique well-formed wallet address per call
func buildTestAddress() string {
	addrSeq++
	return fmt.Sprintf("0x%040x", addrSeq)
}

func buildTestTxHash(n int) string {
	return fmt.Sprintf("0x%064x", n)
}

// buildTestAsset creates a principal-owned asset and returns both
func buildTestAsset(t *testing.T, store Store) (*schema.Principal, *schema.Asset) {
	ctx := context.Background()

	owner, err := store.GetOrCreatePrincipal(ctx, buildTestAddress())
	require.NoError(t, err)

	addrSeq++
	asset, err := store.CreateAsset(ctx, CreateAssetInput{
		ContractAddress: fmt.Sprintf("0x%040x", 0xc0000000+addrSeq),
		TokenNumber:     fmt.Sprintf("%d", addrSeq),
		Standard:        domain.StandardERC721,
		Amount:          1,
		MetadataURI:     fmt.Sprintf("ipfs://QmTest%d", addrSeq),
		OwnerID:         &owner.ID,
		CreatorID:       &owner.ID,
		RoyaltyBps:      500,
	})
	require.NoError(t, err)

	return owner, asset
}

// buildTestListing creates an active listing for a fresh asset
func buildTestListing(t *testing.T, store Store, priceWei string) (*schema.Principal, *schema.Asset, *schema.Listing) {
	ctx := context.Background()

	seller, asset := buildTestAsset(t, store)
	listing, err := store.CreateActiveListing(ctx, CreateListingInput{
		AssetID:  asset.ID,
		SellerID: seller.ID,
		PriceWei: priceWei,
		Amount:   1,
	})
	require.NoError(t, err)

	return seller, asset, listing
}

// =============================================================================
// Test: Principals and nonce lifecycle
// =============================================================================

func testPrincipalLifecycle(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get or create is idempotent and normalizes the address", func(t *testing.T) {
		mixed := "0xAbCdEF1234567890aBcDef1234567890ABCDEF12"

		first, err := store.GetOrCreatePrincipal(ctx, mixed)
		require.NoError(t, err)
		assert.Equal(t, "0xabcdef1234567890abcdef1234567890abcdef12", first.WalletAddress)

		second, err := store.GetOrCreatePrincipal(ctx, mixed)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("lookup by address is case insensitive", func(t *testing.T) {
		address := buildTestAddress()
		created, err := store.GetOrCreatePrincipal(ctx, address)
		require.NoError(t, err)

		found, err := store.GetPrincipalByAddress(ctx, "0X"+created.WalletAddress[2:])
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("unknown principal returns nil without error", func(t *testing.T) {
		found, err := store.GetPrincipalByAddress(ctx, buildTestAddress())
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func testNonceRotation(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("rotate creates the principal on first contact", func(t *testing.T) {
		address := buildTestAddress()

		principal, err := store.RotateNonce(ctx, address, "nonce-one")
		require.NoError(t, err)
		require.NotNil(t, principal.Nonce)
		assert.Equal(t, "nonce-one", *principal.Nonce)
	})

	t.Run("rotate replaces any pending nonce", func(t *testing.T) {
		address := buildTestAddress()

		_, err := store.RotateNonce(ctx, address, "stale")
		require.NoError(t, err)

		principal, err := store.RotateNonce(ctx, address, "fresh")
		require.NoError(t, err)
		require.NotNil(t, principal.Nonce)
		assert.Equal(t, "fresh", *principal.Nonce)
	})
}

func testConsumeNonce(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("matching nonce is consumed and replaced", func(t *testing.T) {
		address := buildTestAddress()
		_, err := store.RotateNonce(ctx, address, "challenge")
		require.NoError(t, err)

		principal, err := store.ConsumeNonce(ctx, address, "challenge", "rotated", now)
		require.NoError(t, err)
		require.NotNil(t, principal.Nonce)
		assert.Equal(t, "rotated", *principal.Nonce)
		require.NotNil(t, principal.LastLoginAt)
		assert.WithinDuration(t, now, *principal.LastLoginAt, time.Second)
	})

	t.Run("the same nonce cannot be consumed twice", func(t *testing.T) {
		address := buildTestAddress()
		_, err := store.RotateNonce(ctx, address, "once")
		require.NoError(t, err)

		_, err = store.ConsumeNonce(ctx, address, "once", "next-1", now)
		require.NoError(t, err)

		_, err = store.ConsumeNonce(ctx, address, "once", "next-2", now)
		assert.ErrorIs(t, err, domain.ErrNoPendingChallenge)
	})

	t.Run("mismatched nonce is rejected and not rotated", func(t *testing.T) {
		address := buildTestAddress()
		_, err := store.RotateNonce(ctx, address, "expected")
		require.NoError(t, err)

		_, err = store.ConsumeNonce(ctx, address, "wrong", "next", now)
		assert.ErrorIs(t, err, domain.ErrNoPendingChallenge)

		principal, err := store.GetPrincipalByAddress(ctx, address)
		require.NoError(t, err)
		require.NotNil(t, principal.Nonce)
		assert.Equal(t, "expected", *principal.Nonce)
	})

	t.Run("unknown address is rejected", func(t *testing.T) {
		_, err := store.ConsumeNonce(ctx, buildTestAddress(), "anything", "next", now)
		assert.ErrorIs(t, err, domain.ErrPrincipalNotFound)
	})
}

func testUpdatePrincipalProfile(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("partial update only touches provided fields", func(t *testing.T) {
		principal, err := store.GetOrCreatePrincipal(ctx, buildTestAddress())
		require.NoError(t, err)

		username := fmt.Sprintf("artist-%d", principal.ID)
		bio := "paints with shaders"
		updated, err := store.UpdatePrincipalProfile(ctx, principal.ID, ProfileUpdate{
			Username: &username,
			Bio:      &bio,
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Username)
		assert.Equal(t, username, *updated.Username)

		avatar := "https://cdn.example.com/a.png"
		updated, err = store.UpdatePrincipalProfile(ctx, principal.ID, ProfileUpdate{
			AvatarURL: &avatar,
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Username)
		assert.Equal(t, username, *updated.Username)
		require.NotNil(t, updated.AvatarURL)
		assert.Equal(t, avatar, *updated.AvatarURL)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		first, err := store.GetOrCreatePrincipal(ctx, buildTestAddress())
		require.NoError(t, err)
		second, err := store.GetOrCreatePrincipal(ctx, buildTestAddress())
		require.NoError(t, err)

		username := fmt.Sprintf("taken-%d", first.ID)
		_, err = store.UpdatePrincipalProfile(ctx, first.ID, ProfileUpdate{Username: &username})
		require.NoError(t, err)

		_, err = store.UpdatePrincipalProfile(ctx, second.ID, ProfileUpdate{Username: &username})
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("unknown principal is rejected", func(t *testing.T) {
		bio := "ghost"
		_, err := store.UpdatePrincipalProfile(ctx, 999999999, ProfileUpdate{Bio: &bio})
		assert.ErrorIs(t, err, domain.ErrPrincipalNotFound)
	})
}

// =============================================================================
// Test: Assets
// =============================================================================

func testAssets(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and fetch by token coordinates", func(t *testing.T) {
		owner, asset := buildTestAsset(t, store)

		found, err := store.GetAssetByToken(ctx, asset.ContractAddress, asset.TokenNumber)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, asset.ID, found.ID)
		require.NotNil(t, found.OwnerID)
		assert.Equal(t, owner.ID, *found.OwnerID)
	})

	t.Run("filter by owner address", func(t *testing.T) {
		owner, asset := buildTestAsset(t, store)

		assets, total, err := store.ListAssets(ctx, AssetFilter{
			OwnerAddress: &owner.WalletAddress,
			Limit:        10,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, assets, 1)
		assert.Equal(t, asset.ID, assets[0].ID)
	})

	t.Run("unknown asset returns nil without error", func(t *testing.T) {
		found, err := store.GetAssetByID(ctx, 999999999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

// =============================================================================
// Test: Listing creation and cancellation
// =============================================================================

func testCreateActiveListing(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("one active listing per asset", func(t *testing.T) {
		seller, asset, _ := buildTestListing(t, store, "1000000000000000000")

		_, err := store.CreateActiveListing(ctx, CreateListingInput{
			AssetID:  asset.ID,
			SellerID: seller.ID,
			PriceWei: "2000000000000000000",
			Amount:   1,
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyListed)
	})

	t.Run("relisting is allowed after cancellation", func(t *testing.T) {
		seller, asset, listing := buildTestListing(t, store, "1000000000000000000")

		_, err := store.MarkListingCancelled(ctx, listing.ID, seller.ID, time.Now().UTC())
		require.NoError(t, err)

		relisted, err := store.CreateActiveListing(ctx, CreateListingInput{
			AssetID:  asset.ID,
			SellerID: seller.ID,
			PriceWei: "500000000000000000",
			Amount:   1,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ListingStatusActive, relisted.Status)
		assert.NotEqual(t, listing.ID, relisted.ID)
	})

	t.Run("unknown asset is rejected", func(t *testing.T) {
		seller, err := store.GetOrCreatePrincipal(ctx, buildTestAddress())
		require.NoError(t, err)

		_, err = store.CreateActiveListing(ctx, CreateListingInput{
			AssetID:  999999999,
			SellerID: seller.ID,
			PriceWei: "1",
			Amount:   1,
		})
		assert.ErrorIs(t, err, domain.ErrAssetNotFound)
	})
}

func testMarkListingCancelled(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("seller can cancel an active listing", func(t *testing.T) {
		seller, _, listing := buildTestListing(t, store, "1000000000000000000")

		cancelled, err := store.MarkListingCancelled(ctx, listing.ID, seller.ID, now)
		require.NoError(t, err)
		assert.Equal(t, domain.ListingStatusCancelled, cancelled.Status)
		require.NotNil(t, cancelled.CancelledAt)
	})

	t.Run("only the seller can cancel", func(t *testing.T) {
		_, _, listing := buildTestListing(t, store, "1000000000000000000")
		stranger, err := store.GetOrCreatePrincipal(ctx, buildTestAddress())
		require.NoError(t, err)

		_, err = store.MarkListingCancelled(ctx, listing.ID, stranger.ID, now)
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})

	t.Run("terminal listings cannot be cancelled again", func(t *testing.T) {
		seller, _, listing := buildTestListing(t, store, "1000000000000000000")

		_, err := store.MarkListingCancelled(ctx, listing.ID, seller.ID, now)
		require.NoError(t, err)

		_, err = store.MarkListingCancelled(ctx, listing.ID, seller.ID, now)
		assert.ErrorIs(t, err, domain.ErrNotCancelable)
	})
}

// =============================================================================
// Test: Chain confirmation transitions
// =============================================================================

func testBindChainListing(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("binds chain id and records the confirmation", func(t *testing.T) {
		_, _, listing := buildTestListing(t, store, "1000000000000000000")
		txHash := buildTestTxHash(1001)

		bound, err := store.BindChainListing(ctx, BindChainListingInput{
			ListingID:      listing.ID,
			ChainListingID: 7,
			TxHash:         txHash,
			Raw:            datatypes.JSON([]byte(`{"listingId":7}`)),
		})
		require.NoError(t, err)
		require.NotNil(t, bound.ChainListingID)
		assert.Equal(t, uint64(7), *bound.ChainListingID)
		require.NotNil(t, bound.ListTxHash)
		assert.Equal(t, txHash, *bound.ListTxHash)

		found, err := store.GetListingByChainID(ctx, 7)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, listing.ID, found.ID)
	})

	t.Run("duplicate delivery of the same tx is a no-op", func(t *testing.T) {
		_, _, listing := buildTestListing(t, store, "1000000000000000000")
		txHash := buildTestTxHash(1002)

		_, err := store.BindChainListing(ctx, BindChainListingInput{
			ListingID:      listing.ID,
			ChainListingID: 8,
			TxHash:         txHash,
		})
		require.NoError(t, err)

		again, err := store.BindChainListing(ctx, BindChainListingInput{
			ListingID:      listing.ID,
			ChainListingID: 8,
			TxHash:         txHash,
		})
		require.NoError(t, err)
		require.NotNil(t, again.ChainListingID)
		assert.Equal(t, uint64(8), *again.ChainListingID)
	})

	t.Run("conflicting chain id on a bound listing is rejected", func(t *testing.T) {
		_, _, listing := buildTestListing(t, store, "1000000000000000000")

		_, err := store.BindChainListing(ctx, BindChainListingInput{
			ListingID:      listing.ID,
			ChainListingID: 9,
			TxHash:         buildTestTxHash(1003),
		})
		require.NoError(t, err)

		_, err = store.BindChainListing(ctx, BindChainListingInput{
			ListingID:      listing.ID,
			ChainListingID: 10,
			TxHash:         buildTestTxHash(1004),
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyBound)
	})

	t.Run("unknown listing is rejected", func(t *testing.T) {
		_, err := store.BindChainListing(ctx, BindChainListingInput{
			ListingID:      999999999,
			ChainListingID: 11,
			TxHash:         buildTestTxHash(1005),
		})
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
	})

	t.Run("one transaction can confirm several listings", func(t *testing.T) {
		_, _, first := buildTestListing(t, store, "1000000000000000000")
		_, _, second := buildTestListing(t, store, "2000000000000000000")
		txHash := buildTestTxHash(1006)

		boundFirst, err := store.BindChainListing(ctx, BindChainListingInput{
			ListingID:      first.ID,
			ChainListingID: 12,
			TxHash:         txHash,
		})
		require.NoError(t, err)
		require.NotNil(t, boundFirst.ChainListingID)
		assert.Equal(t, uint64(12), *boundFirst.ChainListingID)

		boundSecond, err := store.BindChainListing(ctx, BindChainListingInput{
			ListingID:      second.ID,
			ChainListingID: 13,
			TxHash:         txHash,
		})
		require.NoError(t, err)
		require.NotNil(t, boundSecond.ChainListingID)
		assert.Equal(t, uint64(13), *boundSecond.ChainListingID)
	})
}

func testCompleteSale(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("sale records fees, buyer, and transfers ownership atomically", func(t *testing.T) {
		_, asset, listing := buildTestListing(t, store, "1000000000000000000")
		buyerAddress := buildTestAddress()
		txHash := buildTestTxHash(2001)

		sold, err := store.CompleteSale(ctx, CompleteSaleInput{
			ListingID:         listing.ID,
			TxHash:            txHash,
			BuyerAddress:      buyerAddress,
			PlatformFeeWei:    "25000000000000000",
			RoyaltyFeeWei:     "50000000000000000",
			SellerProceedsWei: "925000000000000000",
			SoldAt:            now,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ListingStatusSold, sold.Status)
		require.NotNil(t, sold.SaleTxHash)
		assert.Equal(t, txHash, *sold.SaleTxHash)
		require.NotNil(t, sold.PlatformFeeWei)
		assert.Equal(t, "25000000000000000", *sold.PlatformFeeWei)
		require.NotNil(t, sold.SellerProceedsWei)
		assert.Equal(t, "925000000000000000", *sold.SellerProceedsWei)

		buyer, err := store.GetPrincipalByAddress(ctx, buyerAddress)
		require.NoError(t, err)
		require.NotNil(t, buyer)
		require.NotNil(t, sold.BuyerID)
		assert.Equal(t, buyer.ID, *sold.BuyerID)

		transferred, err := store.GetAssetByID(ctx, asset.ID)
		require.NoError(t, err)
		require.NotNil(t, transferred.OwnerID)
		assert.Equal(t, buyer.ID, *transferred.OwnerID)
	})

	t.Run("duplicate sale confirmation is a no-op", func(t *testing.T) {
		_, _, listing := buildTestListing(t, store, "1000000000000000000")
		txHash := buildTestTxHash(2002)

		input := CompleteSaleInput{
			ListingID:         listing.ID,
			TxHash:            txHash,
			BuyerAddress:      buildTestAddress(),
			PlatformFeeWei:    "0",
			RoyaltyFeeWei:     "0",
			SellerProceedsWei: "1000000000000000000",
			SoldAt:            now,
		}
		_, err := store.CompleteSale(ctx, input)
		require.NoError(t, err)

		again, err := store.CompleteSale(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, domain.ListingStatusSold, again.Status)
	})

	t.Run("sale against a cancelled listing is rejected", func(t *testing.T) {
		seller, _, listing := buildTestListing(t, store, "1000000000000000000")

		_, err := store.MarkListingCancelled(ctx, listing.ID, seller.ID, now)
		require.NoError(t, err)

		_, err = store.CompleteSale(ctx, CompleteSaleInput{
			ListingID:         listing.ID,
			TxHash:            buildTestTxHash(2003),
			BuyerAddress:      buildTestAddress(),
			PlatformFeeWei:    "0",
			RoyaltyFeeWei:     "0",
			SellerProceedsWei: "1000000000000000000",
			SoldAt:            now,
		})
		assert.ErrorIs(t, err, domain.ErrNotActive)
	})
}

func testConfirmCancellation(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("active listing is cancelled with tx hash", func(t *testing.T) {
		_, _, listing := buildTestListing(t, store, "1000000000000000000")
		txHash := buildTestTxHash(3001)

		cancelled, err := store.ConfirmCancellation(ctx, ConfirmCancellationInput{
			ListingID:   listing.ID,
			TxHash:      txHash,
			CancelledAt: now,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ListingStatusCancelled, cancelled.Status)
		require.NotNil(t, cancelled.CancelTxHash)
		assert.Equal(t, txHash, *cancelled.CancelTxHash)
	})

	t.Run("confirmation after off-chain cancellation only records the tx", func(t *testing.T) {
		seller, _, listing := buildTestListing(t, store, "1000000000000000000")

		_, err := store.MarkListingCancelled(ctx, listing.ID, seller.ID, now)
		require.NoError(t, err)

		txHash := buildTestTxHash(3002)
		confirmed, err := store.ConfirmCancellation(ctx, ConfirmCancellationInput{
			ListingID:   listing.ID,
			TxHash:      txHash,
			CancelledAt: now.Add(time.Minute),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ListingStatusCancelled, confirmed.Status)
		require.NotNil(t, confirmed.CancelTxHash)
		assert.Equal(t, txHash, *confirmed.CancelTxHash)
	})

	t.Run("cancellation of a sold listing is rejected", func(t *testing.T) {
		_, _, listing := buildTestListing(t, store, "1000000000000000000")

		_, err := store.CompleteSale(ctx, CompleteSaleInput{
			ListingID:         listing.ID,
			TxHash:            buildTestTxHash(3003),
			BuyerAddress:      buildTestAddress(),
			PlatformFeeWei:    "0",
			RoyaltyFeeWei:     "0",
			SellerProceedsWei: "1000000000000000000",
			SoldAt:            now,
		})
		require.NoError(t, err)

		_, err = store.ConfirmCancellation(ctx, ConfirmCancellationInput{
			ListingID:   listing.ID,
			TxHash:      buildTestTxHash(3004),
			CancelledAt: now,
		})
		assert.ErrorIs(t, err, domain.ErrNotActive)
	})

	t.Run("duplicate cancellation confirmation is a no-op", func(t *testing.T) {
		_, _, listing := buildTestListing(t, store, "1000000000000000000")
		txHash := buildTestTxHash(3005)

		input := ConfirmCancellationInput{
			ListingID:   listing.ID,
			TxHash:      txHash,
			CancelledAt: now,
		}
		_, err := store.ConfirmCancellation(ctx, input)
		require.NoError(t, err)

		again, err := store.ConfirmCancellation(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, domain.ListingStatusCancelled, again.Status)
	})
}

// =============================================================================
// Test: Listing filters
// =============================================================================

func testListListings(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("filter by status and seller", func(t *testing.T) {
		seller, _, listing := buildTestListing(t, store, "1000000000000000000")

		active := domain.ListingStatusActive
		listings, total, err := store.ListListings(ctx, ListingFilter{
			Status:        &active,
			SellerAddress: &seller.WalletAddress,
			Limit:         10,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, listings, 1)
		assert.Equal(t, listing.ID, listings[0].ID)
	})

	t.Run("filter by price range", func(t *testing.T) {
		seller, _, _ := buildTestListing(t, store, "5000000000000000000")

		minPrice := "4000000000000000000"
		maxPrice := "6000000000000000000"
		listings, total, err := store.ListListings(ctx, ListingFilter{
			SellerAddress: &seller.WalletAddress,
			MinPriceWei:   &minPrice,
			MaxPriceWei:   &maxPrice,
			Limit:         10,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, listings, 1)

		tooLow := "6000000000000000001"
		_, total, err = store.ListListings(ctx, ListingFilter{
			SellerAddress: &seller.WalletAddress,
			MinPriceWei:   &tooLow,
			Limit:         10,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})
}

// =============================================================================
// Test: Mint requests
// =============================================================================

func testMintRequests(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	createRequest := func(t *testing.T) (*schema.Principal, *schema.MintRequest) {
		artist, err := store.GetOrCreatePrincipal(ctx, buildTestAddress())
		require.NoError(t, err)

		request, err := store.CreateMintRequest(ctx, CreateMintRequestInput{
			ArtistID:    artist.ID,
			Title:       "Genesis",
			ArtworkURL:  "ipfs://QmArtwork",
			Standard:    domain.StandardERC721,
			EditionSize: 1,
			RoyaltyBps:  500,
		})
		require.NoError(t, err)
		assert.Equal(t, schema.MintRequestStatusPending, request.Status)
		return artist, request
	}

	t.Run("approve then mint creates the asset", func(t *testing.T) {
		artist, request := createRequest(t)
		reviewer, err := store.GetOrCreatePrincipal(ctx, buildTestAddress())
		require.NoError(t, err)

		metadataURI := "ipfs://QmMeta"
		approved, err := store.ReviewMintRequest(ctx, request.ID, reviewer.ID, true, nil, &metadataURI, now)
		require.NoError(t, err)
		assert.Equal(t, schema.MintRequestStatusApproved, approved.Status)

		addrSeq++
		minted, asset, err := store.MarkMintRequestMinted(ctx, request.ID, buildTestTxHash(4001), CreateAssetInput{
			ContractAddress: fmt.Sprintf("0x%040x", 0xd0000000+addrSeq),
			TokenNumber:     "1",
			Standard:        domain.StandardERC721,
			Amount:          1,
			MetadataURI:     metadataURI,
			OwnerID:         &artist.ID,
			CreatorID:       &artist.ID,
			RoyaltyBps:      500,
		})
		require.NoError(t, err)
		assert.Equal(t, schema.MintRequestStatusMinted, minted.Status)
		require.NotNil(t, minted.AssetID)
		assert.Equal(t, asset.ID, *minted.AssetID)
		require.NotNil(t, asset.OwnerID)
		assert.Equal(t, artist.ID, *asset.OwnerID)
	})

	t.Run("rejected request cannot be minted", func(t *testing.T) {
		_, request := createRequest(t)
		reviewer, err := store.GetOrCreatePrincipal(ctx, buildTestAddress())
		require.NoError(t, err)

		note := "artwork link is broken"
		rejected, err := store.ReviewMintRequest(ctx, request.ID, reviewer.ID, false, &note, nil, now)
		require.NoError(t, err)
		assert.Equal(t, schema.MintRequestStatusRejected, rejected.Status)

		_, _, err = store.MarkMintRequestMinted(ctx, request.ID, buildTestTxHash(4002), CreateAssetInput{
			ContractAddress: buildTestAddress(),
			TokenNumber:     "1",
			Standard:        domain.StandardERC721,
			Amount:          1,
			MetadataURI:     "ipfs://QmMeta",
		})
		assert.ErrorIs(t, err, domain.ErrMintRequestNotApproved)
	})

	t.Run("a request can only be reviewed once", func(t *testing.T) {
		_, request := createRequest(t)
		reviewer, err := store.GetOrCreatePrincipal(ctx, buildTestAddress())
		require.NoError(t, err)

		_, err = store.ReviewMintRequest(ctx, request.ID, reviewer.ID, true, nil, nil, now)
		require.NoError(t, err)

		_, err = store.ReviewMintRequest(ctx, request.ID, reviewer.ID, false, nil, nil, now)
		assert.ErrorIs(t, err, domain.ErrMintRequestNotReviewable)
	})

	t.Run("filter by artist and status", func(t *testing.T) {
		artist, request := createRequest(t)

		pending := schema.MintRequestStatusPending
		requests, total, err := store.ListMintRequests(ctx, MintRequestFilter{
			ArtistID: &artist.ID,
			Status:   &pending,
			Limit:    10,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, requests, 1)
		assert.Equal(t, request.ID, requests[0].ID)
	})
}

// RunStoreTests runs the shared store test suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"PrincipalLifecycle", testPrincipalLifecycle},
		{"NonceRotation", testNonceRotation},
		{"ConsumeNonce", testConsumeNonce},
		{"UpdatePrincipalProfile", testUpdatePrincipalProfile},
		{"Assets", testAssets},
		{"CreateActiveListing", testCreateActiveListing},
		{"MarkListingCancelled", testMarkListingCancelled},
		{"BindChainListing", testBindChainListing},
		{"CompleteSale", testCompleteSale},
		{"ConfirmCancellation", testConfirmCancellation},
		{"ListListings", testListListings},
		{"MintRequests", testMintRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
