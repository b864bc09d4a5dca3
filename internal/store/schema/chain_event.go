package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/mintmarket/marketplace/internal/domain"
)

// ChainEventJournal represents the chain_event_journal table - the
// idempotency ledger for reconciliation. Every externally-reported
// confirmation is recorded here inside the same transaction as the state
// transition it caused; the unique (event_type, tx_hash, listing_id) key
// makes duplicate deliveries detectable while letting one transaction
// confirm several listings (batched contract calls).
type ChainEventJournal struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EventID is a ULID assigned by the emitter, empty for events delivered
	// directly over the REST surface
	EventID *string `gorm:"column:event_id;type:text"`
	// EventType identifies the confirmed contract event
	EventType domain.MarketEventType `gorm:"column:event_type;not null;type:text;uniqueIndex:idx_journal_type_tx_hash,priority:1"`
	// TxHash is the confirming transaction hash, lowercase
	TxHash string `gorm:"column:tx_hash;not null;type:text;uniqueIndex:idx_journal_type_tx_hash,priority:2"`
	// ListingID references the listing the event was applied to
	ListingID int64 `gorm:"column:listing_id;not null;index;uniqueIndex:idx_journal_type_tx_hash,priority:3"`
	// BlockNumber is the block the confirmation was observed in, when known
	BlockNumber *uint64 `gorm:"column:block_number;type:bigint"`
	// Raw contains the normalized event payload for debugging and audit
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Listing Listing `gorm:"foreignKey:ListingID"`
}

// TableName specifies the table name for the ChainEventJournal model
func (ChainEventJournal) TableName() string {
	return "chain_event_journal"
}
