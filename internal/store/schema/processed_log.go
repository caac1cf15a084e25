package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/dsc-protocol/dsc-indexer/internal/domain"
)

// ProcessedLog represents the processed_logs table, the idempotency ledger of applied logs
type ProcessedLog struct {
	// ID is {txHash}-{logIndex}
	ID              string           `gorm:"column:id;primaryKey;type:text"`
	Chain           domain.Chain     `gorm:"column:chain;not null;type:text"`
	EventType       domain.EventType `gorm:"column:event_type;not null;type:text"`
	ContractAddress string           `gorm:"column:contract_address;not null;type:text"`
	TransactionHash string           `gorm:"column:transaction_hash;not null;type:text"`
	LogIndex        uint64           `gorm:"column:log_index;not null;type:bigint"`
	BlockNumber     uint64           `gorm:"column:block_number;not null;type:bigint"`
	BlockHash       *string          `gorm:"column:block_hash;type:text"`
	// Raw is the canonical (RFC 8785) JSON of the decoded event
	Raw         datatypes.JSON `gorm:"column:raw;type:jsonb"`
	ProcessedAt time.Time      `gorm:"column:processed_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ProcessedLog model
func (ProcessedLog) TableName() string {
	return "processed_logs"
}
