package dto

import (
	"encoding/json"

	"github.com/mintmarket/marketplace/internal/providers/ethereum"
	"github.com/mintmarket/marketplace/internal/store/schema"
)

// FromPrincipal maps a principal row to its response shape
func FromPrincipal(p *schema.Principal) PrincipalResponse {
	return PrincipalResponse{
		ID:            p.ID,
		WalletAddress: p.WalletAddress,
		Username:      p.Username,
		Bio:           p.Bio,
		AvatarURL:     p.AvatarURL,
		IsArtist:      p.IsArtist,
		IsAdmin:       p.IsAdmin,
		IsVerified:    p.IsVerified,
		LastLoginAt:   p.LastLoginAt,
		CreatedAt:     p.CreatedAt,
	}
}

// FromAsset maps an asset row to its response shape
func FromAsset(a *schema.Asset) AssetResponse {
	return AssetResponse{
		ID:              a.ID,
		ContractAddress: a.ContractAddress,
		TokenNumber:     a.TokenNumber,
		Standard:        a.Standard,
		Amount:          a.Amount,
		Name:            a.Name,
		Description:     a.Description,
		ImageURL:        a.ImageURL,
		MetadataURI:     a.MetadataURI,
		OwnerID:         a.OwnerID,
		CreatorID:       a.CreatorID,
		RoyaltyBps:      a.RoyaltyBps,
		MintTxHash:      a.MintTxHash,
		Burned:          a.Burned,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromAssets maps a page of asset rows
func FromAssets(assets []schema.Asset, total int64, limit, offset int) AssetListResponse {
	items := make([]AssetResponse, 0, len(assets))
	for i := range assets {
		items = append(items, FromAsset(&assets[i]))
	}
	return AssetListResponse{Items: items, Total: total, Limit: limit, Offset: offset}
}

// FromListing maps a listing row to its response shape
func FromListing(l *schema.Listing) ListingResponse {
	return ListingResponse{
		ID:             l.ID,
		ChainListingID: l.ChainListingID,
		AssetID:        l.AssetID,
		SellerID:       l.SellerID,
		BuyerID:        l.BuyerID,
		PriceWei:       l.PriceWei,
		PriceUSD:       l.PriceUSD,
		Amount:         l.Amount,
		Status:         l.Status,
		ListTxHash:     l.ListTxHash,
		SaleTxHash:     l.SaleTxHash,
		CancelTxHash:   l.CancelTxHash,
		PlatformFeeWei: l.PlatformFeeWei,
		RoyaltyFeeWei:  l.RoyaltyFeeWei,
		ProceedsWei:    l.SellerProceedsWei,
		CreatedAt:      l.CreatedAt,
		SoldAt:         l.SoldAt,
		CancelledAt:    l.CancelledAt,
	}
}

// FromListings maps a page of listing rows
func FromListings(listings []schema.Listing, total int64, limit, offset int) ListingListResponse {
	items := make([]ListingResponse, 0, len(listings))
	for i := range listings {
		items = append(items, FromListing(&listings[i]))
	}
	return ListingListResponse{Items: items, Total: total, Limit: limit, Offset: offset}
}

// FromChainListing maps the contract's listing record
func FromChainListing(cl *ethereum.ChainListing, active bool) ChainListingResponse {
	return ChainListingResponse{
		ChainListingID: cl.ChainListingID,
		Seller:         cl.Seller,
		TokenContract:  cl.TokenContract,
		TokenNumber:    cl.TokenNumber,
		Amount:         cl.Amount,
		PriceWei:       cl.PriceWei,
		Standard:       cl.Standard,
		Status:         cl.Status,
		Active:         active,
	}
}

// FromMintRequest maps a mint request row to its response shape
func FromMintRequest(m *schema.MintRequest) MintRequestResponse {
	return MintRequestResponse{
		ID:          m.ID,
		ArtistID:    m.ArtistID,
		Title:       m.Title,
		Description: m.Description,
		ArtworkURL:  m.ArtworkURL,
		Standard:    m.Standard,
		EditionSize: m.EditionSize,
		RoyaltyBps:  m.RoyaltyBps,
		Attributes:  json.RawMessage(m.MetadataAttributes),
		MetadataURI: m.MetadataURI,
		Status:      string(m.Status),
		ReviewNote:  m.ReviewNote,
		MintTxHash:  m.MintTxHash,
		AssetID:     m.AssetID,
		CreatedAt:   m.CreatedAt,
		ReviewedAt:  m.ReviewedAt,
	}
}

// FromMintRequests maps a page of mint request rows
func FromMintRequests(requests []schema.MintRequest, total int64, limit, offset int) MintRequestListResponse {
	items := make([]MintRequestResponse, 0, len(requests))
	for i := range requests {
		items = append(items, FromMintRequest(&requests[i]))
	}
	return MintRequestListResponse{Items: items, Total: total, Limit: limit, Offset: offset}
}
