// Package minting implements the artist mint request workflow: submission,
// admin review, metadata pinning, and confirmation of the on-chain mint.
package minting

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/mintmarket/marketplace/internal/adapter"
	"github.com/mintmarket/marketplace/internal/domain"
	"github.com/mintmarket/marketplace/internal/providers/ethereum"
	"github.com/mintmarket/marketplace/internal/providers/ipfs"
	"github.com/mintmarket/marketplace/internal/store"
	"github.com/mintmarket/marketplace/internal/store/schema"
)

// maxRoyaltyBps caps the royalty an artist may request at 10%
const maxRoyaltyBps = 1000

// Service coordinates mint requests across the store, the pinning service,
// and the chain client
type Service struct {
	store  store.Store
	pinner ipfs.Pinner
	chain  ethereum.MarketplaceClient
	clock  adapter.Clock
}

// New creates a new mint request service
func New(s store.Store, pinner ipfs.Pinner, chain ethereum.MarketplaceClient, clock adapter.Clock) *Service {
	return &Service{store: s, pinner: pinner, chain: chain, clock: clock}
}

// SubmitInput holds the fields an artist provides when requesting a mint
type SubmitInput struct {
	ArtistID    int64
	Title       string
	Description *string
	ArtworkURL  string
	Standard    domain.Standard
	EditionSize uint64
	RoyaltyBps  uint32
	Attributes  datatypes.JSON
}

// Submit records a pending mint request for admin review
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*schema.MintRequest, error) {
	if input.Title == "" || input.ArtworkURL == "" {
		return nil, fmt.Errorf("title and artwork URL are required")
	}
	if !domain.IsValidStandard(input.Standard) {
		return nil, fmt.Errorf("unknown token standard: %s", input.Standard)
	}
	if input.Standard.SingleEdition() {
		input.EditionSize = 1
	} else if input.EditionSize < 1 {
		return nil, domain.ErrInvalidAmount
	}
	if input.RoyaltyBps > maxRoyaltyBps {
		return nil, fmt.Errorf("royalty exceeds %d basis points", maxRoyaltyBps)
	}

	return s.store.CreateMintRequest(ctx, store.CreateMintRequestInput{
		ArtistID:            input.ArtistID,
		Title:               input.Title,
		Description:         input.Description,
		ArtworkURL:          input.ArtworkURL,
		Standard:            input.Standard,
		EditionSize:         input.EditionSize,
		RoyaltyBps:          input.RoyaltyBps,
		MetadataName:        &input.Title,
		MetadataDescription: input.Description,
		MetadataAttributes:  input.Attributes,
	})
}

// Get retrieves a mint request. Artists may only view their own requests;
// admins may view any.
func (s *Service) Get(ctx context.Context, id int64, actorID int64, isAdmin bool) (*schema.MintRequest, error) {
	request, err := s.store.GetMintRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrMintRequestNotFound
	}
	if request.ArtistID != actorID && !isAdmin {
		return nil, domain.ErrForbidden
	}
	return request, nil
}

// List retrieves mint requests matching the filter plus the total count
func (s *Service) List(ctx context.Context, filter store.MintRequestFilter) ([]schema.MintRequest, int64, error) {
	return s.store.ListMintRequests(ctx, filter)
}

// assetMetadata is the token metadata document pinned to IPFS, following
// the OpenSea metadata convention
type assetMetadata struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	Attributes  datatypes.JSON    `json:"attributes,omitempty"`
	Properties  *metadataProperty `json:"properties,omitempty"`
}

type metadataProperty struct {
	Creator   string `json:"creator"`
	CreatedAt string `json:"created_at"`
}

// Approve pins the token metadata document and transitions the request to
// approved. The pin happens before the state transition so an approved
// request always carries a metadata URI.
func (s *Service) Approve(ctx context.Context, id int64, reviewerID int64, note *string) (*schema.MintRequest, error) {
	request, err := s.store.GetMintRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrMintRequestNotFound
	}
	if request.Status != schema.MintRequestStatusPending {
		return nil, domain.ErrMintRequestNotReviewable
	}

	artist, err := s.store.GetPrincipalByID(ctx, request.ArtistID)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, domain.ErrPrincipalNotFound
	}

	metadata := assetMetadata{
		Name:       request.Title,
		Image:      request.ArtworkURL,
		Attributes: request.MetadataAttributes,
		Properties: &metadataProperty{
			Creator:   artist.WalletAddress,
			CreatedAt: s.clock.Now().UTC().Format(time.RFC3339),
		},
	}
	if request.Description != nil {
		metadata.Description = *request.Description
	}

	pin, err := s.pinner.PinJSON(ctx, fmt.Sprintf("metadata_%s", request.Title), metadata)
	if err != nil {
		return nil, err
	}

	return s.store.ReviewMintRequest(ctx, id, reviewerID, true, note, &pin.IPFSURL, s.clock.Now())
}

// Reject transitions a pending request to rejected with the reviewer's note
func (s *Service) Reject(ctx context.Context, id int64, reviewerID int64, note *string) (*schema.MintRequest, error) {
	request, err := s.store.GetMintRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrMintRequestNotFound
	}
	if request.Status != schema.MintRequestStatusPending {
		return nil, domain.ErrMintRequestNotReviewable
	}
	return s.store.ReviewMintRequest(ctx, id, reviewerID, false, note, nil, s.clock.Now())
}

// BuildMintTx builds the unsigned mint transaction for an approved request.
// The token is minted directly to the artist's wallet; the minter address
// signs and submits the transaction out of band.
func (s *Service) BuildMintTx(ctx context.Context, id int64, minterAddress string) (*ethereum.UnsignedTx, error) {
	if !domain.IsValidAddress(minterAddress) {
		return nil, domain.ErrInvalidAddress
	}

	request, err := s.store.GetMintRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrMintRequestNotFound
	}
	if request.Status != schema.MintRequestStatusApproved || request.MetadataURI == nil {
		return nil, domain.ErrMintRequestNotApproved
	}

	artist, err := s.store.GetPrincipalByID(ctx, request.ArtistID)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, domain.ErrPrincipalNotFound
	}

	return s.chain.BuildMintTx(ctx, minterAddress, artist.WalletAddress, *request.MetadataURI)
}

// ConfirmMintedInput identifies the confirmed on-chain mint transaction and
// the token it produced
type ConfirmMintedInput struct {
	TxHash          string
	ContractAddress string
	TokenNumber     string
	BlockNumber     *uint64
}

// ConfirmMinted records the confirmed mint: the request transitions to
// minted and the asset enters the catalogue owned by the artist. Both
// writes happen in one transaction.
func (s *Service) ConfirmMinted(ctx context.Context, id int64, input ConfirmMintedInput) (*schema.MintRequest, *schema.Asset, error) {
	if !domain.IsValidTxHash(input.TxHash) {
		return nil, nil, domain.ErrInvalidTxHash
	}
	if !domain.IsValidAddress(input.ContractAddress) {
		return nil, nil, domain.ErrInvalidAddress
	}

	request, err := s.store.GetMintRequestByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if request == nil {
		return nil, nil, domain.ErrMintRequestNotFound
	}
	if request.Status != schema.MintRequestStatusApproved || request.MetadataURI == nil {
		return nil, nil, domain.ErrMintRequestNotApproved
	}

	txHash := domain.NormalizeTxHash(input.TxHash)
	artistID := request.ArtistID

	return s.store.MarkMintRequestMinted(ctx, id, txHash, store.CreateAssetInput{
		ContractAddress: domain.NormalizeAddress(input.ContractAddress),
		TokenNumber:     input.TokenNumber,
		Standard:        request.Standard,
		Amount:          request.EditionSize,
		Name:            &request.Title,
		Description:     request.Description,
		ImageURL:        &request.ArtworkURL,
		MetadataURI:     *request.MetadataURI,
		OwnerID:         &artistID,
		CreatorID:       &artistID,
		RoyaltyBps:      request.RoyaltyBps,
		MintTxHash:      &txHash,
		BlockNumber:     input.BlockNumber,
	})
}
