package rest

import (
	"fmt"

	"github.com/mintmarket/marketplace/internal/domain"
	"github.com/mintmarket/marketplace/internal/store"
	"github.com/mintmarket/marketplace/internal/store/schema"
)

const MAX_PAGE_SIZE = 100

// ListAssetsQueryParams holds query parameters for GET /assets
type ListAssetsQueryParams struct {
	Owner         string `form:"owner"`
	Creator       string `form:"creator"`
	Standard      string `form:"standard"`
	IncludeBurned bool   `form:"include_burned"`

	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ToFilter validates the parameters and converts them to a store filter
func (q *ListAssetsQueryParams) ToFilter() (store.AssetFilter, error) {
	filter := store.AssetFilter{
		IncludeBurned: q.IncludeBurned,
		Limit:         clampLimit(q.Limit),
		Offset:        maxInt(q.Offset, 0),
	}
	if q.Owner != "" {
		if !domain.IsValidAddress(q.Owner) {
			return filter, fmt.Errorf("invalid owner address: %s", q.Owner)
		}
		owner := domain.NormalizeAddress(q.Owner)
		filter.OwnerAddress = &owner
	}
	if q.Creator != "" {
		if !domain.IsValidAddress(q.Creator) {
			return filter, fmt.Errorf("invalid creator address: %s", q.Creator)
		}
		creator := domain.NormalizeAddress(q.Creator)
		filter.CreatorAddress = &creator
	}
	if q.Standard != "" {
		standard := domain.Standard(q.Standard)
		if !domain.IsValidStandard(standard) {
			return filter, fmt.Errorf("unknown token standard: %s", q.Standard)
		}
		filter.Standard = &standard
	}
	return filter, nil
}

// ListListingsQueryParams holds query parameters for GET /marketplace/listings
type ListListingsQueryParams struct {
	Status   string `form:"status"`
	Seller   string `form:"seller"`
	Standard string `form:"standard"`
	MinPrice string `form:"min_price_wei"`
	MaxPrice string `form:"max_price_wei"`

	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ToFilter validates the parameters and converts them to a store filter
func (q *ListListingsQueryParams) ToFilter() (store.ListingFilter, error) {
	filter := store.ListingFilter{
		Limit:  clampLimit(q.Limit),
		Offset: maxInt(q.Offset, 0),
	}
	if q.Status != "" {
		status := domain.ListingStatus(q.Status)
		switch status {
		case domain.ListingStatusActive, domain.ListingStatusSold, domain.ListingStatusCancelled:
			filter.Status = &status
		default:
			return filter, fmt.Errorf("unknown listing status: %s", q.Status)
		}
	}
	if q.Seller != "" {
		if !domain.IsValidAddress(q.Seller) {
			return filter, fmt.Errorf("invalid seller address: %s", q.Seller)
		}
		seller := domain.NormalizeAddress(q.Seller)
		filter.SellerAddress = &seller
	}
	if q.Standard != "" {
		standard := domain.Standard(q.Standard)
		if !domain.IsValidStandard(standard) {
			return filter, fmt.Errorf("unknown token standard: %s", q.Standard)
		}
		filter.Standard = &standard
	}
	if q.MinPrice != "" {
		if !domain.IsValidWei(q.MinPrice) {
			return filter, fmt.Errorf("invalid min price: %s", q.MinPrice)
		}
		filter.MinPriceWei = &q.MinPrice
	}
	if q.MaxPrice != "" {
		if !domain.IsValidWei(q.MaxPrice) {
			return filter, fmt.Errorf("invalid max price: %s", q.MaxPrice)
		}
		filter.MaxPriceWei = &q.MaxPrice
	}
	return filter, nil
}

// ListMintRequestsQueryParams holds query parameters for mint request pages
type ListMintRequestsQueryParams struct {
	Status string `form:"status"`

	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ToFilter validates the parameters and converts them to a store filter.
// The artist scope is applied by the handler, not the query string.
func (q *ListMintRequestsQueryParams) ToFilter() (store.MintRequestFilter, error) {
	filter := store.MintRequestFilter{
		Limit:  clampLimit(q.Limit),
		Offset: maxInt(q.Offset, 0),
	}
	if q.Status != "" {
		status := schema.MintRequestStatus(q.Status)
		switch status {
		case schema.MintRequestStatusPending, schema.MintRequestStatusApproved,
			schema.MintRequestStatusRejected, schema.MintRequestStatusMinted:
			filter.Status = &status
		default:
			return filter, fmt.Errorf("unknown mint request status: %s", q.Status)
		}
	}
	return filter, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > MAX_PAGE_SIZE {
		return MAX_PAGE_SIZE
	}
	return limit
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
