package schema

import "time"

// User represents the users table, one row per address that ever interacted with the protocol
type User struct {
	// ID is the lowercase hex address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// TotalDeposited is collateral deposited minus collateral redeemed, floored at zero
	TotalDeposited string `gorm:"column:total_deposited;not null;default:0;type:numeric(78,0)"`
	// TotalMinted is the cumulative DSC minted to this address
	TotalMinted string `gorm:"column:total_minted;not null;default:0;type:numeric(78,0)"`
	// TotalBurned is the cumulative DSC burned from this address
	TotalBurned string `gorm:"column:total_burned;not null;default:0;type:numeric(78,0)"`
	// FirstInteractionTimestamp is the block time of the first event referencing this address
	FirstInteractionTimestamp int64 `gorm:"column:first_interaction_timestamp;not null;type:bigint"`
	// LastInteractionTimestamp is the block time of the latest event referencing this address
	LastInteractionTimestamp int64     `gorm:"column:last_interaction_timestamp;not null;type:bigint"`
	CreatedAt                time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt                time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
