package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/mintmarket/marketplace/internal/domain"
)

// MintRequestStatus represents the review state of a mint request
type MintRequestStatus string

const (
	MintRequestStatusPending  MintRequestStatus = "pending"
	MintRequestStatusApproved MintRequestStatus = "approved"
	MintRequestStatusRejected MintRequestStatus = "rejected"
	MintRequestStatusMinted   MintRequestStatus = "minted"
)

// MintRequest represents the mint_requests table - an artist's submission
// awaiting admin approval before minting
type MintRequest struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`

	ArtistID int64 `gorm:"column:artist_id;not null;index"`

	Title       string  `gorm:"column:title;not null;type:text"`
	Description *string `gorm:"column:description;type:text"`
	// ArtworkURL points at the original artwork, uploaded before submission
	ArtworkURL string `gorm:"column:artwork_url;not null;type:text"`

	Standard    domain.Standard `gorm:"column:standard;not null;type:text;default:'erc721'"`
	EditionSize uint64          `gorm:"column:edition_size;not null;default:1"`
	RoyaltyBps  uint32          `gorm:"column:royalty_bps;not null;default:500"`

	// Metadata fields pinned to IPFS on approval
	MetadataName        *string        `gorm:"column:metadata_name;type:text"`
	MetadataDescription *string        `gorm:"column:metadata_description;type:text"`
	MetadataAttributes  datatypes.JSON `gorm:"column:metadata_attributes;type:jsonb"`
	MetadataURI         *string        `gorm:"column:metadata_uri;type:text"`

	Status MintRequestStatus `gorm:"column:status;not null;type:text;default:'pending';index"`

	ReviewedByID *int64  `gorm:"column:reviewed_by_id"`
	ReviewNote   *string `gorm:"column:review_note;type:text"`

	MintTxHash *string `gorm:"column:mint_tx_hash;type:text"`
	// AssetID links the minted asset once the mint transaction confirms
	AssetID *int64 `gorm:"column:asset_id"`

	CreatedAt  time.Time  `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
	ReviewedAt *time.Time `gorm:"column:reviewed_at;type:timestamptz"`

	// Associations
	Artist     Principal  `gorm:"foreignKey:ArtistID"`
	ReviewedBy *Principal `gorm:"foreignKey:ReviewedByID"`
	Asset      *Asset     `gorm:"foreignKey:AssetID"`
}

// TableName specifies the table name for the MintRequest model
func (MintRequest) TableName() string {
	return "mint_requests"
}
