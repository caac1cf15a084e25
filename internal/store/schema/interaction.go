package schema

import "time"

// Interaction records are insert-only. Each is keyed by {txHash}-{logIndex}
// of the log that produced it.

// Mint represents the mints table
type Mint struct {
	ID              string    `gorm:"column:id;primaryKey;type:text"`
	UserAddress     string    `gorm:"column:user_address;not null;type:text"`
	Amount          string    `gorm:"column:amount;not null;type:numeric(78,0)"`
	Timestamp       int64     `gorm:"column:timestamp;not null;type:bigint"`
	BlockNumber     uint64    `gorm:"column:block_number;not null;type:bigint"`
	TransactionHash string    `gorm:"column:transaction_hash;not null;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Mint model
func (Mint) TableName() string {
	return "mints"
}

// Burn represents the burns table
type Burn struct {
	ID              string    `gorm:"column:id;primaryKey;type:text"`
	UserAddress     string    `gorm:"column:user_address;not null;type:text"`
	Amount          string    `gorm:"column:amount;not null;type:numeric(78,0)"`
	Timestamp       int64     `gorm:"column:timestamp;not null;type:bigint"`
	BlockNumber     uint64    `gorm:"column:block_number;not null;type:bigint"`
	TransactionHash string    `gorm:"column:transaction_hash;not null;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Burn model
func (Burn) TableName() string {
	return "burns"
}

// CollateralDeposit represents the collateral_deposits table
type CollateralDeposit struct {
	ID              string    `gorm:"column:id;primaryKey;type:text"`
	UserAddress     string    `gorm:"column:user_address;not null;type:text"`
	Token           string    `gorm:"column:token;not null;type:text"`
	Amount          string    `gorm:"column:amount;not null;type:numeric(78,0)"`
	Timestamp       int64     `gorm:"column:timestamp;not null;type:bigint"`
	BlockNumber     uint64    `gorm:"column:block_number;not null;type:bigint"`
	TransactionHash string    `gorm:"column:transaction_hash;not null;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CollateralDeposit model
func (CollateralDeposit) TableName() string {
	return "collateral_deposits"
}

// CollateralRedemption represents the collateral_redemptions table
type CollateralRedemption struct {
	ID          string `gorm:"column:id;primaryKey;type:text"`
	UserAddress string `gorm:"column:user_address;not null;type:text"`
	// Recipient is the redeemedTo address, it differs from UserAddress on liquidations
	Recipient       *string   `gorm:"column:recipient;type:text"`
	Token           string    `gorm:"column:token;not null;type:text"`
	Amount          string    `gorm:"column:amount;not null;type:numeric(78,0)"`
	Timestamp       int64     `gorm:"column:timestamp;not null;type:bigint"`
	BlockNumber     uint64    `gorm:"column:block_number;not null;type:bigint"`
	TransactionHash string    `gorm:"column:transaction_hash;not null;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CollateralRedemption model
func (CollateralRedemption) TableName() string {
	return "collateral_redemptions"
}
