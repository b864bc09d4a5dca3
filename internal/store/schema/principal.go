package schema

import "time"

// Principal represents the principals table - a wallet-identified actor.
// Rows are created on the first nonce request and never deleted.
type Principal struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// WalletAddress is the canonical lowercase Ethereum address
	WalletAddress string `gorm:"column:wallet_address;not null;uniqueIndex;type:text"`

	// Profile (optional)
	Username  *string `gorm:"column:username;uniqueIndex;type:text"`
	Bio       *string `gorm:"column:bio;type:text"`
	AvatarURL *string `gorm:"column:avatar_url;type:text"`

	// Role flags
	IsArtist   bool `gorm:"column:is_artist;not null;default:false"`
	IsAdmin    bool `gorm:"column:is_admin;not null;default:false"`
	IsVerified bool `gorm:"column:is_verified;not null;default:false"`

	// Nonce is the current single-use authentication challenge. Only the
	// latest value is valid; it is rotated on every issuance and every
	// successful login.
	Nonce *string `gorm:"column:nonce;type:text"`

	LastLoginAt *time.Time `gorm:"column:last_login_at;type:timestamptz"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Principal model
func (Principal) TableName() string {
	return "principals"
}
