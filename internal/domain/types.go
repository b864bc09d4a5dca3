package domain

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainEthereumMainnet Chain = "eip155:1"
	ChainEthereumSepolia Chain = "eip155:11155111"
	ChainHardhatLocal    Chain = "eip155:31337"
)

// IsValidChain checks if a chain is valid
func IsValidChain(chain Chain) bool {
	return chain == ChainEthereumMainnet ||
		chain == ChainEthereumSepolia ||
		chain == ChainHardhatLocal
}

// EVMChainID extracts the numeric chain id from the eip155 reference
func (c Chain) EVMChainID() (uint64, error) {
	ref, ok := strings.CutPrefix(string(c), "eip155:")
	if !ok {
		return 0, ErrInvalidChain
	}
	id, err := strconv.ParseUint(ref, 10, 64)
	if err != nil {
		return 0, ErrInvalidChain
	}
	return id, nil
}

// Standard represents the token contract standard
type Standard string

const (
	StandardERC721  Standard = "erc721"
	StandardERC1155 Standard = "erc1155"
)

// IsValidStandard checks if a token standard is supported
func IsValidStandard(s Standard) bool {
	return s == StandardERC721 || s == StandardERC1155
}

// SingleEdition reports whether the standard only allows one edition per token
func (s Standard) SingleEdition() bool {
	return s == StandardERC721
}

// ListingStatus represents the lifecycle state of a marketplace listing
type ListingStatus string

const (
	ListingStatusActive    ListingStatus = "active"
	ListingStatusSold      ListingStatus = "sold"
	ListingStatusCancelled ListingStatus = "cancelled"
)

// Terminal reports whether the status accepts no further transitions
func (s ListingStatus) Terminal() bool {
	switch s {
	case ListingStatusSold, ListingStatusCancelled:
		return true
	case ListingStatusActive:
		return false
	}
	return false
}

// MarketEventType represents the type of confirmed marketplace contract event
type MarketEventType string

const (
	MarketEventListingCreated   MarketEventType = "listing_created"
	MarketEventListingSold      MarketEventType = "listing_sold"
	MarketEventListingCancelled MarketEventType = "listing_cancelled"
)

// MarketEvent is a normalized, chain-confirmed marketplace contract event.
// This is the standard format published to NATS by the event emitter and
// consumed by the reconciler.
type MarketEvent struct {
	EventID         string          `json:"event_id"` // ULID, assigned at emission
	Chain           Chain           `json:"chain"`
	EventType       MarketEventType `json:"event_type"`
	ChainListingID  uint64          `json:"chain_listing_id"`
	Seller          string          `json:"seller,omitempty"`
	Buyer           string          `json:"buyer,omitempty"`
	ContractAddress string          `json:"contract_address,omitempty"`
	TokenNumber     string          `json:"token_number,omitempty"`
	Standard        Standard        `json:"standard,omitempty"`
	Amount          uint64          `json:"amount,omitempty"`
	PriceWei        string          `json:"price_wei,omitempty"`
	PlatformFeeWei  string          `json:"platform_fee_wei,omitempty"`
	RoyaltyFeeWei   string          `json:"royalty_fee_wei,omitempty"`
	TxHash          string          `json:"tx_hash"`
	BlockNumber     uint64          `json:"block_number"`
	Timestamp       time.Time       `json:"timestamp"`
}

// Valid checks the structural integrity of a market event
func (e *MarketEvent) Valid() bool {
	if !IsValidChain(e.Chain) {
		return false
	}
	if !IsValidTxHash(e.TxHash) {
		return false
	}
	switch e.EventType {
	case MarketEventListingCreated:
		return IsValidAddress(e.Seller) && IsValidAddress(e.ContractAddress) &&
			IsValidWei(e.PriceWei)
	case MarketEventListingSold:
		return IsValidAddress(e.Buyer) && IsValidWei(e.PriceWei)
	case MarketEventListingCancelled:
		return true
	}
	return false
}

var (
	addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	txHashPattern  = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	// 65-byte recoverable signature, hex encoded, 0x prefix optional
	signaturePattern = regexp.MustCompile(`^(0x)?[0-9a-fA-F]{130}$`)
)

// IsValidAddress checks if a string is a well-formed Ethereum address
// (0x prefix plus 40 hex characters, 42 characters total)
func IsValidAddress(address string) bool {
	return addressPattern.MatchString(address)
}

// IsValidTxHash checks if a string is a well-formed transaction hash
// (0x prefix plus 64 hex characters, 66 characters total)
func IsValidTxHash(hash string) bool {
	return txHashPattern.MatchString(hash)
}

// IsValidSignature checks if a string is a well-formed 65-byte recoverable
// signature in hex encoding
func IsValidSignature(signature string) bool {
	return signaturePattern.MatchString(signature)
}

// NormalizeAddress canonicalizes an Ethereum address to lowercase hex.
// Addresses are stored and compared in this form everywhere; checksum
// casing is a display concern only.
func NormalizeAddress(address string) string {
	return strings.ToLower(address)
}

// NormalizeTxHash canonicalizes a transaction hash to lowercase hex
func NormalizeTxHash(hash string) string {
	return strings.ToLower(hash)
}

// IsValidWei checks if a string is a non-negative base-10 integer amount of
// minor currency units. Monetary values are never represented as floats.
func IsValidWei(amount string) bool {
	if amount == "" {
		return false
	}
	n, ok := new(big.Int).SetString(amount, 10)
	return ok && n.Sign() >= 0
}

// ParseWei parses a base-10 wei string into a big integer
func ParseWei(amount string) (*big.Int, error) {
	if !IsValidWei(amount) {
		return nil, ErrInvalidPrice
	}
	n, _ := new(big.Int).SetString(amount, 10)
	return n, nil
}
