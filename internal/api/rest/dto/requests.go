package dto

import "encoding/json"

// ChallengeRequest asks for a sign-in challenge for a wallet address
type ChallengeRequest struct {
	Address string `json:"address" binding:"required"`
}

// LoginRequest presents a signed challenge message
type LoginRequest struct {
	Address   string `json:"address" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// UpdateProfileRequest carries optional profile mutations; absent fields
// are untouched
type UpdateProfileRequest struct {
	Username  *string `json:"username"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

// CreateListingRequest opens a listing for an owned asset
type CreateListingRequest struct {
	AssetID  int64   `json:"asset_id" binding:"required"`
	PriceWei string  `json:"price_wei" binding:"required"`
	PriceUSD *string `json:"price_usd"`
	Amount   uint64  `json:"amount"`
}

// BuyRequest asks for an unsigned purchase transaction for a listing
type BuyRequest struct {
	ListingID int64 `json:"listing_id" binding:"required"`
}

// CreateMintRequestRequest submits an artwork for mint approval
type CreateMintRequestRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description *string         `json:"description"`
	ArtworkURL  string          `json:"artwork_url" binding:"required"`
	Standard    string          `json:"standard" binding:"required"`
	EditionSize uint64          `json:"edition_size"`
	RoyaltyBps  uint32          `json:"royalty_bps"`
	Attributes  json.RawMessage `json:"attributes"`
}

// ReviewMintRequestRequest approves or rejects a pending mint request
type ReviewMintRequestRequest struct {
	Approved *bool   `json:"approved" binding:"required"`
	Note     *string `json:"note"`
}

// CompleteMintRequest reports the confirmed on-chain mint transaction
type CompleteMintRequest struct {
	TxHash          string  `json:"tx_hash" binding:"required"`
	ContractAddress string  `json:"contract_address" binding:"required"`
	TokenNumber     string  `json:"token_number" binding:"required"`
	BlockNumber     *uint64 `json:"block_number"`
}
