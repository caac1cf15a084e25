package schema

import "time"

// MonthlyStats represents the monthly_stats table, one row per UTC calendar month with activity
type MonthlyStats struct {
	// ID is the month in YYYY-MM form
	ID                  string `gorm:"column:id;primaryKey;type:text"`
	Year                int    `gorm:"column:year;not null"`
	Month               int    `gorm:"column:month;not null"`
	MintVolume          string `gorm:"column:mint_volume;not null;default:0;type:numeric(78,0)"`
	BurnVolume          string `gorm:"column:burn_volume;not null;default:0;type:numeric(78,0)"`
	NetMintVolume       string `gorm:"column:net_mint_volume;not null;default:0;type:numeric(78,0)"`
	CollateralDeposited string `gorm:"column:collateral_deposited;not null;default:0;type:numeric(78,0)"`
	CollateralRedeemed  string `gorm:"column:collateral_redeemed;not null;default:0;type:numeric(78,0)"`
	NetCollateral       string `gorm:"column:net_collateral;not null;default:0;type:numeric(78,0)"`
	NewUsers            int64  `gorm:"column:new_users;not null;default:0;type:bigint"`
	ActiveUsers         int64  `gorm:"column:active_users;not null;default:0;type:bigint"`
	// Timestamp is the block time of the event that created the bucket
	Timestamp int64     `gorm:"column:timestamp;not null;type:bigint"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the MonthlyStats model
func (MonthlyStats) TableName() string {
	return "monthly_stats"
}

// MonthlyActiveUser marks that a user was active in a month. Existence is its only state
type MonthlyActiveUser struct {
	// ID is {monthId}-{address}
	ID          string    `gorm:"column:id;primaryKey;type:text"`
	UserAddress string    `gorm:"column:user_address;not null;type:text"`
	Month       string    `gorm:"column:month;not null;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the MonthlyActiveUser model
func (MonthlyActiveUser) TableName() string {
	return "monthly_active_users"
}
