package schema

import "time"

// ProtocolStats represents the protocol_stats table. It holds a single row keyed "1"
type ProtocolStats struct {
	ID              string `gorm:"column:id;primaryKey;type:text"`
	TotalMintVolume string `gorm:"column:total_mint_volume;not null;default:0;type:numeric(78,0)"`
	TotalBurnVolume string `gorm:"column:total_burn_volume;not null;default:0;type:numeric(78,0)"`
	// TotalNetMinted is TotalMintVolume - TotalBurnVolume and may be negative
	TotalNetMinted       string    `gorm:"column:total_net_minted;not null;default:0;type:numeric(78,0)"`
	TotalCollateral      string    `gorm:"column:total_collateral;not null;default:0;type:numeric(78,0)"`
	TotalUsers           int64     `gorm:"column:total_users;not null;default:0;type:bigint"`
	LastUpdatedTimestamp int64     `gorm:"column:last_updated_timestamp;not null;type:bigint"`
	CreatedAt            time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt            time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ProtocolStats model
func (ProtocolStats) TableName() string {
	return "protocol_stats"
}
