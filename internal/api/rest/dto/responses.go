package dto

import (
	"encoding/json"
	"time"

	"github.com/mintmarket/marketplace/internal/domain"
	"github.com/mintmarket/marketplace/internal/providers/ethereum"
)

// ChallengeResponse carries the message the wallet must sign
type ChallengeResponse struct {
	Address string `json:"address"`
	Nonce   string `json:"nonce"`
	Message string `json:"message"`
}

// SessionResponse is the result of a successful login
type SessionResponse struct {
	Token     string            `json:"token"`
	Principal PrincipalResponse `json:"principal"`
}

// PrincipalResponse represents a wallet-backed account
type PrincipalResponse struct {
	ID            int64      `json:"id"`
	WalletAddress string     `json:"wallet_address"`
	Username      *string    `json:"username,omitempty"`
	Bio           *string    `json:"bio,omitempty"`
	AvatarURL     *string    `json:"avatar_url,omitempty"`
	IsArtist      bool       `json:"is_artist"`
	IsAdmin       bool       `json:"is_admin"`
	IsVerified    bool       `json:"is_verified"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// AssetResponse represents a catalogued token
type AssetResponse struct {
	ID              int64           `json:"id"`
	ContractAddress string          `json:"contract_address"`
	TokenNumber     string          `json:"token_number"`
	Standard        domain.Standard `json:"standard"`
	Amount          uint64          `json:"amount"`
	Name            *string         `json:"name,omitempty"`
	Description     *string         `json:"description,omitempty"`
	ImageURL        *string         `json:"image_url,omitempty"`
	MetadataURI     string          `json:"metadata_uri"`
	OwnerID         *int64          `json:"owner_id,omitempty"`
	CreatorID       *int64          `json:"creator_id,omitempty"`
	RoyaltyBps      uint32          `json:"royalty_bps"`
	MintTxHash      *string         `json:"mint_tx_hash,omitempty"`
	Burned          bool            `json:"burned"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// AssetListResponse is a paginated page of assets
type AssetListResponse struct {
	Items  []AssetResponse `json:"items"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// ListingResponse represents a marketplace listing
type ListingResponse struct {
	ID             int64                `json:"id"`
	ChainListingID *uint64              `json:"chain_listing_id,omitempty"`
	AssetID        int64                `json:"asset_id"`
	SellerID       int64                `json:"seller_id"`
	BuyerID        *int64               `json:"buyer_id,omitempty"`
	PriceWei       string               `json:"price_wei"`
	PriceUSD       *string              `json:"price_usd,omitempty"`
	Amount         uint64               `json:"amount"`
	Status         domain.ListingStatus `json:"status"`
	ListTxHash     *string              `json:"list_tx_hash,omitempty"`
	SaleTxHash     *string              `json:"sale_tx_hash,omitempty"`
	CancelTxHash   *string              `json:"cancel_tx_hash,omitempty"`
	PlatformFeeWei *string              `json:"platform_fee_wei,omitempty"`
	RoyaltyFeeWei  *string              `json:"royalty_fee_wei,omitempty"`
	ProceedsWei    *string              `json:"seller_proceeds_wei,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	SoldAt         *time.Time           `json:"sold_at,omitempty"`
	CancelledAt    *time.Time           `json:"cancelled_at,omitempty"`
}

// ListingListResponse is a paginated page of listings
type ListingListResponse struct {
	Items  []ListingResponse `json:"items"`
	Total  int64             `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// CreateListingResponse pairs the opened listing with the unsigned list
// transaction the seller signs to put it on chain. The transaction is
// omitted when building it failed; the listing still exists and the
// wallet may retry.
type CreateListingResponse struct {
	Listing ListingResponse      `json:"listing"`
	ListTx  *ethereum.UnsignedTx `json:"list_tx,omitempty"`
}

// CancelListingResponse pairs the cancelled listing with the unsigned
// cancel transaction, present only for chain-bound listings
type CancelListingResponse struct {
	Listing  ListingResponse      `json:"listing"`
	CancelTx *ethereum.UnsignedTx `json:"cancel_tx,omitempty"`
}

// BuyIntentResponse carries the unsigned purchase transaction, or signals
// that the listing has not been confirmed on chain yet
type BuyIntentResponse struct {
	RequiresOnChainListing bool                 `json:"requires_on_chain_listing"`
	Tx                     *ethereum.UnsignedTx `json:"tx,omitempty"`
}

// ChainListingResponse mirrors the marketplace contract's listing record
type ChainListingResponse struct {
	ChainListingID uint64               `json:"chain_listing_id"`
	Seller         string               `json:"seller"`
	TokenContract  string               `json:"token_contract"`
	TokenNumber    string               `json:"token_number"`
	Amount         uint64               `json:"amount"`
	PriceWei       string               `json:"price_wei"`
	Standard       domain.Standard      `json:"standard"`
	Status         domain.ListingStatus `json:"status"`
	Active         bool                 `json:"active"`
}

// PlatformFeeResponse carries the marketplace platform fee
type PlatformFeeResponse struct {
	PlatformFeeBps uint64 `json:"platform_fee_bps"`
}

// AssetOwnerResponse carries the chain-reported owner and metadata URI
type AssetOwnerResponse struct {
	OwnerAddress string `json:"owner_address"`
	TokenURI     string `json:"token_uri"`
}

// RoyaltyResponse carries the EIP-2981 royalty quote for a sale price
type RoyaltyResponse struct {
	Receiver     string `json:"receiver"`
	RoyaltyWei   string `json:"royalty_wei"`
	SalePriceWei string `json:"sale_price_wei"`
}

// MintRequestResponse represents a mint request
type MintRequestResponse struct {
	ID          int64           `json:"id"`
	ArtistID    int64           `json:"artist_id"`
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	ArtworkURL  string          `json:"artwork_url"`
	Standard    domain.Standard `json:"standard"`
	EditionSize uint64          `json:"edition_size"`
	RoyaltyBps  uint32          `json:"royalty_bps"`
	Attributes  json.RawMessage `json:"attributes,omitempty"`
	MetadataURI *string         `json:"metadata_uri,omitempty"`
	Status      string          `json:"status"`
	ReviewNote  *string         `json:"review_note,omitempty"`
	MintTxHash  *string         `json:"mint_tx_hash,omitempty"`
	AssetID     *int64          `json:"asset_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	ReviewedAt  *time.Time      `json:"reviewed_at,omitempty"`
}

// MintRequestListResponse is a paginated page of mint requests
type MintRequestListResponse struct {
	Items  []MintRequestResponse `json:"items"`
	Total  int64                 `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

// MintTxResponse carries the unsigned mint transaction
type MintTxResponse struct {
	Tx *ethereum.UnsignedTx `json:"tx"`
}

// CompleteMintResponse pairs the minted request with the created asset
type CompleteMintResponse struct {
	Request MintRequestResponse `json:"request"`
	Asset   AssetResponse       `json:"asset"`
}

// HealthResponse is the health check body
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
