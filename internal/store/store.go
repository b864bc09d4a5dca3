package store

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/mintmarket/marketplace/internal/domain"
	"github.com/mintmarket/marketplace/internal/store/schema"
)

// CreateAssetInput holds the fields for creating an asset record
type CreateAssetInput struct {
	ContractAddress string
	TokenNumber     string
	Standard        domain.Standard
	Amount          uint64
	Name            *string
	Description     *string
	ImageURL        *string
	MetadataURI     string
	OwnerID         *int64
	CreatorID       *int64
	RoyaltyBps      uint32
	MintTxHash      *string
	BlockNumber     *uint64
}

// AssetFilter holds the filters for listing assets
type AssetFilter struct {
	OwnerAddress   *string
	CreatorAddress *string
	Standard       *domain.Standard
	IncludeBurned  bool
	Limit          int
	Offset         int
}

// CreateListingInput holds the fields for opening a listing
type CreateListingInput struct {
	AssetID  int64
	SellerID int64
	PriceWei string
	PriceUSD *string
	Amount   uint64
}

// ListingFilter holds the filters for browsing listings
type ListingFilter struct {
	Status        *domain.ListingStatus
	SellerAddress *string
	Standard      *domain.Standard
	MinPriceWei   *string
	MaxPriceWei   *string
	Limit         int
	Offset        int
}

// BindChainListingInput binds a confirmed on-chain listing to its off-chain row
type BindChainListingInput struct {
	ListingID      int64
	ChainListingID uint64
	TxHash         string
	EventID        *string
	BlockNumber    *uint64
	Raw            datatypes.JSON
}

// CompleteSaleInput finalizes a confirmed sale. The fee values are integral
// minor units and must already sum to the listing price.
type CompleteSaleInput struct {
	ListingID         int64
	TxHash            string
	BuyerAddress      string
	PlatformFeeWei    string
	RoyaltyFeeWei     string
	SellerProceedsWei string
	EventID           *string
	BlockNumber       *uint64
	Raw               datatypes.JSON
	SoldAt            time.Time
}

// ConfirmCancellationInput records a chain-confirmed listing cancellation
type ConfirmCancellationInput struct {
	ListingID   int64
	TxHash      string
	EventID     *string
	BlockNumber *uint64
	Raw         datatypes.JSON
	CancelledAt time.Time
}

// ProfileUpdate holds optional profile mutations; nil fields are untouched
type ProfileUpdate struct {
	Username  *string
	Bio       *string
	AvatarURL *string
}

// CreateMintRequestInput holds the fields for submitting a mint request
type CreateMintRequestInput struct {
	ArtistID            int64
	Title               string
	Description         *string
	ArtworkURL          string
	Standard            domain.Standard
	EditionSize         uint64
	RoyaltyBps          uint32
	MetadataName        *string
	MetadataDescription *string
	MetadataAttributes  datatypes.JSON
}

// MintRequestFilter holds the filters for listing mint requests
type MintRequestFilter struct {
	ArtistID *int64
	Status   *schema.MintRequestStatus
	Limit    int
	Offset   int
}

// Store defines the interface for database operations.
//
// Methods that transition listing or asset state run as a single database
// transaction with row-level locks, so the single-active-listing and
// fee-sum invariants hold under concurrent callers and survive a crash
// between steps.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetPrincipalByID retrieves a principal by primary key, nil if absent
	GetPrincipalByID(ctx context.Context, id int64) (*schema.Principal, error)
	// GetPrincipalByAddress retrieves a principal by canonical address, nil if absent
	GetPrincipalByAddress(ctx context.Context, address string) (*schema.Principal, error)
	// GetOrCreatePrincipal loads or creates the principal for an address
	GetOrCreatePrincipal(ctx context.Context, address string) (*schema.Principal, error)
	// RotateNonce loads or creates the principal and overwrites its nonce.
	// Only the latest issued nonce is valid.
	RotateNonce(ctx context.Context, address string, nonce string) (*schema.Principal, error)
	// ConsumeNonce atomically compares the stored nonce against the given
	// value and replaces it with a fresh one, recording the login time.
	// Returns domain.ErrNoPendingChallenge when no nonce is set or the value
	// does not match; two concurrent calls cannot both succeed.
	ConsumeNonce(ctx context.Context, address string, nonce string, replacement string, loginAt time.Time) (*schema.Principal, error)
	// UpdatePrincipalProfile applies optional profile mutations.
	// Returns domain.ErrUsernameTaken on a username collision.
	UpdatePrincipalProfile(ctx context.Context, id int64, update ProfileUpdate) (*schema.Principal, error)

	// CreateAsset inserts a new asset row
	CreateAsset(ctx context.Context, input CreateAssetInput) (*schema.Asset, error)
	// GetAssetByID retrieves an asset by primary key, nil if absent
	GetAssetByID(ctx context.Context, id int64) (*schema.Asset, error)
	// GetAssetByToken retrieves an asset by (contract, token number), nil if absent
	GetAssetByToken(ctx context.Context, contractAddress string, tokenNumber string) (*schema.Asset, error)
	// ListAssets retrieves assets matching the filter plus the total count
	ListAssets(ctx context.Context, filter AssetFilter) ([]schema.Asset, int64, error)

	// CreateActiveListing opens a listing. Returns domain.ErrAlreadyListed
	// when an active listing already exists for the asset.
	CreateActiveListing(ctx context.Context, input CreateListingInput) (*schema.Listing, error)
	// GetListingByID retrieves a listing by primary key, nil if absent
	GetListingByID(ctx context.Context, id int64) (*schema.Listing, error)
	// GetListingByChainID retrieves a listing by its on-chain id, nil if absent
	GetListingByChainID(ctx context.Context, chainListingID uint64) (*schema.Listing, error)
	// GetActiveListingByAsset retrieves the single active listing for an
	// asset, nil if there is none
	GetActiveListingByAsset(ctx context.Context, assetID int64) (*schema.Listing, error)
	// ListListings retrieves listings matching the filter plus the total count
	ListListings(ctx context.Context, filter ListingFilter) ([]schema.Listing, int64, error)
	// MarkListingCancelled performs a seller-initiated cancellation.
	// Returns domain.ErrNotOwner or domain.ErrNotCancelable.
	MarkListingCancelled(ctx context.Context, listingID int64, sellerID int64, at time.Time) (*schema.Listing, error)
	// BindChainListing binds a confirmed on-chain listing id. Idempotent for
	// a duplicate tx hash; domain.ErrAlreadyBound when a different chain id
	// is already bound; domain.ErrNotActive on terminal listings.
	BindChainListing(ctx context.Context, input BindChainListingInput) (*schema.Listing, error)
	// CompleteSale transitions a listing to sold, records the fee breakdown
	// and transfers asset ownership to the buyer in one transaction.
	// Idempotent for a duplicate tx hash; domain.ErrNotActive otherwise.
	CompleteSale(ctx context.Context, input CompleteSaleInput) (*schema.Listing, error)
	// ConfirmCancellation records a chain-confirmed cancellation, cancelling
	// the listing when it is still active. Idempotent for a duplicate tx hash.
	ConfirmCancellation(ctx context.Context, input ConfirmCancellationInput) (*schema.Listing, error)

	// CreateMintRequest inserts a pending mint request
	CreateMintRequest(ctx context.Context, input CreateMintRequestInput) (*schema.MintRequest, error)
	// GetMintRequestByID retrieves a mint request by primary key, nil if absent
	GetMintRequestByID(ctx context.Context, id int64) (*schema.MintRequest, error)
	// ListMintRequests retrieves mint requests matching the filter plus the total count
	ListMintRequests(ctx context.Context, filter MintRequestFilter) ([]schema.MintRequest, int64, error)
	// ReviewMintRequest transitions a pending request to approved or
	// rejected. Returns domain.ErrMintRequestNotReviewable otherwise.
	ReviewMintRequest(ctx context.Context, id int64, reviewerID int64, approved bool, note *string, metadataURI *string, at time.Time) (*schema.MintRequest, error)
	// MarkMintRequestMinted transitions an approved request to minted and
	// creates the asset row in one transaction
	MarkMintRequestMinted(ctx context.Context, id int64, txHash string, asset CreateAssetInput) (*schema.MintRequest, *schema.Asset, error)

	// GetBlockCursor retrieves the last processed block number for a chain,
	// zero when no cursor has been saved yet
	GetBlockCursor(ctx context.Context, chain string) (uint64, error)
	// SetBlockCursor stores the last processed block number for a chain
	SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error
}
