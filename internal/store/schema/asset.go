package schema

import (
	"time"

	"github.com/mintmarket/marketplace/internal/domain"
)

// Asset represents the assets table - a minted token tracked for ownership
type Asset struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractAddress is the lowercase address of the token contract
	ContractAddress string `gorm:"column:contract_address;not null;type:text;uniqueIndex:idx_assets_contract_token,priority:1"`
	// TokenNumber is the token ID within the contract (string to support very large numbers)
	TokenNumber string `gorm:"column:token_number;not null;type:text;uniqueIndex:idx_assets_contract_token,priority:2"`
	// Standard identifies the token contract type (erc721, erc1155)
	Standard domain.Standard `gorm:"column:standard;not null;type:text"`
	// Amount is the edition count owned (always 1 for erc721)
	Amount uint64 `gorm:"column:amount;not null;default:1"`

	// Metadata
	Name        *string `gorm:"column:name;type:text"`
	Description *string `gorm:"column:description;type:text"`
	ImageURL    *string `gorm:"column:image_url;type:text"`
	// MetadataURI is the content-addressed metadata location (IPFS URI)
	MetadataURI string `gorm:"column:metadata_uri;not null;type:text"`

	// Ownership transfers only through a confirmed sale
	OwnerID   *int64 `gorm:"column:owner_id;index"`
	CreatorID *int64 `gorm:"column:creator_id;index"`

	// RoyaltyBps is the creator royalty in basis points, cached from the contract
	RoyaltyBps uint32 `gorm:"column:royalty_bps;not null;default:0"`

	MintTxHash  *string `gorm:"column:mint_tx_hash;type:text;index"`
	BlockNumber *uint64 `gorm:"column:block_number;type:bigint"`

	Burned bool `gorm:"column:burned;not null;default:false"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Owner    *Principal `gorm:"foreignKey:OwnerID"`
	Creator  *Principal `gorm:"foreignKey:CreatorID"`
	Listings []Listing  `gorm:"foreignKey:AssetID"`
}

// TableName specifies the table name for the Asset model
func (Asset) TableName() string {
	return "assets"
}
