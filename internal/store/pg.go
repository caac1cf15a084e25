package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dsc-protocol/dsc-indexer/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// MaxIdleConns must not exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// aggregateLockKey is the advisory lock held by every unit of work
const aggregateLockKey int64 = 0x64736300

// WithTx runs fn inside a database transaction.
// Units of work run one at a time across processes: the aggregates are read,
// changed and written back, and a brand-new user must be seen by exactly one writer
func (s *pgStore) WithTx(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// released on commit or rollback
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", aggregateLockKey).Error; err != nil {
			return fmt.Errorf("failed to acquire aggregate lock: %w", err)
		}
		return fn(&pgStore{db: tx})
	})
}

// first loads a single row into dest, reporting false when it does not exist
func (s *pgStore) first(ctx context.Context, dest interface{}, id string) (bool, error) {
	err := s.db.WithContext(ctx).Where("id = ?", id).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// insertOnce inserts a row keyed by id, leaving an existing row untouched
func (s *pgStore) insertOnce(ctx context.Context, value interface{}) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(value).Error
}

// GetUser retrieves a user by address
func (s *pgStore) GetUser(ctx context.Context, address string) (*schema.User, error) {
	var user schema.User
	found, err := s.first(ctx, &user, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

// UpsertUser creates or replaces a user
func (s *pgStore) UpsertUser(ctx context.Context, user *schema.User) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_deposited",
			"total_minted",
			"total_burned",
			"first_interaction_timestamp",
			"last_interaction_timestamp",
			"updated_at",
		}),
	}).Create(user).Error
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

var userOrderColumns = map[string]string{
	"id":                        "id",
	"totalDeposited":            "total_deposited",
	"totalMinted":               "total_minted",
	"totalBurned":               "total_burned",
	"firstInteractionTimestamp": "first_interaction_timestamp",
	"lastInteractionTimestamp":  "last_interaction_timestamp",
}

// ListUsers pages through users
func (s *pgStore) ListUsers(ctx context.Context, filter UserFilter) ([]schema.User, error) {
	column, ok := userOrderColumns[filter.OrderBy]
	if !ok {
		column = "id"
	}

	var users []schema.User
	err := s.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: isDesc(filter.OrderDirection)}).
		Order("id ASC").
		Limit(normalizeLimit(filter.Limit)).
		Offset(normalizeOffset(filter.Offset)).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CountUsers returns the number of users
func (s *pgStore) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&schema.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// GetProtocolStats retrieves the protocol stats singleton
func (s *pgStore) GetProtocolStats(ctx context.Context, id string) (*schema.ProtocolStats, error) {
	var stats schema.ProtocolStats
	found, err := s.first(ctx, &stats, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get protocol stats: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &stats, nil
}

// UpsertProtocolStats creates or replaces the protocol stats
func (s *pgStore) UpsertProtocolStats(ctx context.Context, stats *schema.ProtocolStats) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_mint_volume",
			"total_burn_volume",
			"total_net_minted",
			"total_collateral",
			"total_users",
			"last_updated_timestamp",
			"updated_at",
		}),
	}).Create(stats).Error
	if err != nil {
		return fmt.Errorf("failed to upsert protocol stats: %w", err)
	}
	return nil
}

// GetMonthlyStats retrieves a monthly bucket
func (s *pgStore) GetMonthlyStats(ctx context.Context, id string) (*schema.MonthlyStats, error) {
	var stats schema.MonthlyStats
	found, err := s.first(ctx, &stats, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly stats: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &stats, nil
}

// UpsertMonthlyStats creates or replaces a monthly bucket
func (s *pgStore) UpsertMonthlyStats(ctx context.Context, stats *schema.MonthlyStats) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"mint_volume",
			"burn_volume",
			"net_mint_volume",
			"collateral_deposited",
			"collateral_redeemed",
			"net_collateral",
			"new_users",
			"active_users",
			"updated_at",
		}),
	}).Create(stats).Error
	if err != nil {
		return fmt.Errorf("failed to upsert monthly stats: %w", err)
	}
	return nil
}

// ListMonthlyStats pages through monthly buckets ordered by month
func (s *pgStore) ListMonthlyStats(ctx context.Context, filter MonthlyStatsFilter) ([]schema.MonthlyStats, error) {
	var stats []schema.MonthlyStats
	err := s.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: isDesc(filter.OrderDirection)}).
		Limit(normalizeLimit(filter.Limit)).
		Offset(normalizeOffset(filter.Offset)).
		Find(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly stats: %w", err)
	}
	return stats, nil
}

// GetMonthlyActiveUser retrieves an active user marker
func (s *pgStore) GetMonthlyActiveUser(ctx context.Context, id string) (*schema.MonthlyActiveUser, error) {
	var marker schema.MonthlyActiveUser
	found, err := s.first(ctx, &marker, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly active user: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &marker, nil
}

// CreateMonthlyActiveUser creates an active user marker
func (s *pgStore) CreateMonthlyActiveUser(ctx context.Context, marker *schema.MonthlyActiveUser) error {
	if err := s.insertOnce(ctx, marker); err != nil {
		return fmt.Errorf("failed to create monthly active user: %w", err)
	}
	return nil
}

// CountMonthlyActiveUsers counts the markers of a month
func (s *pgStore) CountMonthlyActiveUsers(ctx context.Context, monthID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.MonthlyActiveUser{}).Where("month = ?", monthID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count monthly active users: %w", err)
	}
	return count, nil
}

// CreateMint inserts a mint record
func (s *pgStore) CreateMint(ctx context.Context, mint *schema.Mint) error {
	if err := s.insertOnce(ctx, mint); err != nil {
		return fmt.Errorf("failed to create mint: %w", err)
	}
	return nil
}

// CreateBurn inserts a burn record
func (s *pgStore) CreateBurn(ctx context.Context, burn *schema.Burn) error {
	if err := s.insertOnce(ctx, burn); err != nil {
		return fmt.Errorf("failed to create burn: %w", err)
	}
	return nil
}

// CreateCollateralDeposit inserts a deposit record
func (s *pgStore) CreateCollateralDeposit(ctx context.Context, deposit *schema.CollateralDeposit) error {
	if err := s.insertOnce(ctx, deposit); err != nil {
		return fmt.Errorf("failed to create collateral deposit: %w", err)
	}
	return nil
}

// CreateCollateralRedemption inserts a redemption record
func (s *pgStore) CreateCollateralRedemption(ctx context.Context, redemption *schema.CollateralRedemption) error {
	if err := s.insertOnce(ctx, redemption); err != nil {
		return fmt.Errorf("failed to create collateral redemption: %w", err)
	}
	return nil
}

var interactionOrderColumns = map[string]string{
	OrderByTimestamp:   "timestamp",
	OrderByAmount:      "amount",
	OrderByBlockNumber: "block_number",
}

// interactionQuery applies filter to a query over one of the interaction tables
func (s *pgStore) interactionQuery(ctx context.Context, filter InteractionFilter, hasToken bool) *gorm.DB {
	query := s.db.WithContext(ctx)

	if filter.User != nil {
		query = query.Where("user_address = ?", *filter.User)
	}
	if hasToken && filter.Token != nil {
		query = query.Where("token = ?", *filter.Token)
	}
	if filter.TimestampGte != nil {
		query = query.Where("timestamp >= ?", *filter.TimestampGte)
	}
	if filter.TimestampLte != nil {
		query = query.Where("timestamp <= ?", *filter.TimestampLte)
	}

	column, ok := interactionOrderColumns[filter.OrderBy]
	if !ok {
		column = "timestamp"
	}
	desc := isDesc(filter.OrderDirection)

	return query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc}).
		Limit(normalizeLimit(filter.Limit)).
		Offset(normalizeOffset(filter.Offset))
}

// ListMints queries mint records
func (s *pgStore) ListMints(ctx context.Context, filter InteractionFilter) ([]schema.Mint, error) {
	var mints []schema.Mint
	if err := s.interactionQuery(ctx, filter, false).Find(&mints).Error; err != nil {
		return nil, fmt.Errorf("failed to list mints: %w", err)
	}
	return mints, nil
}

// ListBurns queries burn records
func (s *pgStore) ListBurns(ctx context.Context, filter InteractionFilter) ([]schema.Burn, error) {
	var burns []schema.Burn
	if err := s.interactionQuery(ctx, filter, false).Find(&burns).Error; err != nil {
		return nil, fmt.Errorf("failed to list burns: %w", err)
	}
	return burns, nil
}

// ListCollateralDeposits queries deposit records
func (s *pgStore) ListCollateralDeposits(ctx context.Context, filter InteractionFilter) ([]schema.CollateralDeposit, error) {
	var deposits []schema.CollateralDeposit
	if err := s.interactionQuery(ctx, filter, true).Find(&deposits).Error; err != nil {
		return nil, fmt.Errorf("failed to list collateral deposits: %w", err)
	}
	return deposits, nil
}

// ListCollateralRedemptions queries redemption records
func (s *pgStore) ListCollateralRedemptions(ctx context.Context, filter InteractionFilter) ([]schema.CollateralRedemption, error) {
	var redemptions []schema.CollateralRedemption
	if err := s.interactionQuery(ctx, filter, true).Find(&redemptions).Error; err != nil {
		return nil, fmt.Errorf("failed to list collateral redemptions: %w", err)
	}
	return redemptions, nil
}

// SumInteractions totals every interaction table over the window in one round trip
func (s *pgStore) SumInteractions(ctx context.Context, window TimeRange) (*InteractionSums, error) {
	var row struct {
		MintVolume          string
		BurnVolume          string
		CollateralDeposited string
		CollateralRedeemed  string
		DistinctUsers       int64
	}

	err := s.db.WithContext(ctx).Raw(`
		WITH interactions AS (
			SELECT 'mint' AS kind, user_address, amount, timestamp FROM mints
			UNION ALL
			SELECT 'burn', user_address, amount, timestamp FROM burns
			UNION ALL
			SELECT 'deposit', user_address, amount, timestamp FROM collateral_deposits
			UNION ALL
			SELECT 'redeem', user_address, amount, timestamp FROM collateral_redemptions
		)
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE kind = 'mint'), 0)::text    AS mint_volume,
			COALESCE(SUM(amount) FILTER (WHERE kind = 'burn'), 0)::text    AS burn_volume,
			COALESCE(SUM(amount) FILTER (WHERE kind = 'deposit'), 0)::text AS collateral_deposited,
			COALESCE(SUM(amount) FILTER (WHERE kind = 'redeem'), 0)::text  AS collateral_redeemed,
			COUNT(DISTINCT user_address)                                   AS distinct_users
		FROM interactions
		WHERE (@from::bigint IS NULL OR timestamp >= @from::bigint)
		  AND (@to::bigint IS NULL OR timestamp < @to::bigint)
	`, map[string]interface{}{"from": window.From, "to": window.To}).Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum interactions: %w", err)
	}

	return &InteractionSums{
		MintVolume:          row.MintVolume,
		BurnVolume:          row.BurnVolume,
		CollateralDeposited: row.CollateralDeposited,
		CollateralRedeemed:  row.CollateralRedeemed,
		DistinctUsers:       row.DistinctUsers,
	}, nil
}

// IsLogProcessed reports whether a log was already applied
func (s *pgStore) IsLogProcessed(ctx context.Context, id string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.ProcessedLog{}).Where("id = ?", id).Limit(1).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check processed log: %w", err)
	}
	return count > 0, nil
}

// MarkLogProcessed records an applied log
func (s *pgStore) MarkLogProcessed(ctx context.Context, log *schema.ProcessedLog) error {
	if err := s.insertOnce(ctx, log); err != nil {
		return fmt.Errorf("failed to mark log processed: %w", err)
	}
	return nil
}
