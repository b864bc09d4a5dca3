package domain

import "errors"

// Validation errors - malformed input, rejected before touching state
var (
	ErrInvalidAddress           = errors.New("invalid wallet address")
	ErrInvalidTxHash            = errors.New("invalid transaction hash")
	ErrInvalidSignatureEncoding = errors.New("invalid signature encoding")
	ErrInvalidAmount            = errors.New("invalid listing amount")
	ErrInvalidPrice             = errors.New("invalid price")
	ErrInvalidChain             = errors.New("invalid chain identifier")
)

// Authentication errors
var (
	ErrPrincipalNotFound  = errors.New("principal not found")
	ErrNoPendingChallenge = errors.New("no pending challenge")
	ErrSignatureMismatch  = errors.New("signature mismatch")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrNotOwner           = errors.New("actor is not the owner")
	ErrForbidden          = errors.New("insufficient role")
	ErrUsernameTaken      = errors.New("username already taken")
)

// Conflict and state errors - workflow mistakes, never retried
var (
	ErrAlreadyListed  = errors.New("asset already actively listed")
	ErrOwnListing     = errors.New("cannot buy own listing")
	ErrNotCancelable  = errors.New("listing is not cancelable")
	ErrNotActive      = errors.New("listing is not active")
	ErrAlreadyBound   = errors.New("listing already bound to a different chain listing")
	ErrFeeSumMismatch = errors.New("fee breakdown does not sum to price")
)

// Not-found errors
var (
	ErrAssetNotFound       = errors.New("asset not found")
	ErrListingNotFound     = errors.New("listing not found")
	ErrMintRequestNotFound = errors.New("mint request not found")
)

// Mint request workflow errors
var (
	ErrMintRequestNotReviewable = errors.New("mint request is not pending review")
	ErrMintRequestNotApproved   = errors.New("mint request is not approved")
)

// ErrExternalService indicates an upstream collaborator (chain RPC, pinning
// service) was unavailable or timed out. Transient occurrences on read paths
// may be retried with backoff; mutations are never retried automatically.
var ErrExternalService = errors.New("external service unavailable")
