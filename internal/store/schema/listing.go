package schema

import (
	"time"

	"github.com/mintmarket/marketplace/internal/domain"
)

// Listing represents the listings table - an offer to sell an asset.
// Rows are never deleted, only transitioned, preserving an auditable
// history of every sale and cancellation. The partial unique index on
// asset_id enforces at most one active listing per asset even when
// application-level checks race.
type Listing struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ChainListingID is the listing ID assigned by the marketplace contract,
	// bound after the list transaction confirms
	ChainListingID *uint64 `gorm:"column:chain_listing_id;uniqueIndex"`

	AssetID  int64 `gorm:"column:asset_id;not null;index;uniqueIndex:idx_listings_one_active,where:status = 'active'"`
	SellerID int64 `gorm:"column:seller_id;not null;index"`
	BuyerID  *int64 `gorm:"column:buyer_id"`

	// PriceWei is the asking price as a base-10 integer string of minor units
	PriceWei string `gorm:"column:price_wei;not null;type:numeric(78,0)"`
	// PriceUSD is an optional display-currency equivalent, never used in
	// invariant checks
	PriceUSD *string `gorm:"column:price_usd;type:numeric(18,2)"`
	// Amount is the number of editions offered (1 for erc721)
	Amount uint64 `gorm:"column:amount;not null;default:1"`

	Status domain.ListingStatus `gorm:"column:status;not null;default:'active';type:text;index"`

	// Transaction references, bound as confirmations arrive
	ListTxHash   *string `gorm:"column:list_tx_hash;type:text"`
	SaleTxHash   *string `gorm:"column:sale_tx_hash;type:text"`
	CancelTxHash *string `gorm:"column:cancel_tx_hash;type:text"`

	// Fee breakdown in minor units, populated on sale; the three values sum
	// to price_wei exactly
	PlatformFeeWei     *string `gorm:"column:platform_fee_wei;type:numeric(78,0)"`
	RoyaltyFeeWei      *string `gorm:"column:royalty_fee_wei;type:numeric(78,0)"`
	SellerProceedsWei  *string `gorm:"column:seller_proceeds_wei;type:numeric(78,0)"`

	CreatedAt   time.Time  `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
	SoldAt      *time.Time `gorm:"column:sold_at;type:timestamptz"`
	CancelledAt *time.Time `gorm:"column:cancelled_at;type:timestamptz"`

	// Associations
	Asset  Asset      `gorm:"foreignKey:AssetID"`
	Seller Principal  `gorm:"foreignKey:SellerID"`
	Buyer  *Principal `gorm:"foreignKey:BuyerID"`
}

// TableName specifies the table name for the Listing model
func (Listing) TableName() string {
	return "listings"
}
