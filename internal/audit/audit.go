// Package audit recomputes the stored aggregates from the interaction records and reports drift.
package audit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
	"github.com/dsc-protocol/dsc-indexer/internal/store"
	"github.com/dsc-protocol/dsc-indexer/internal/store/schema"
)

// DEFAULT_WORKERS bounds the months checked concurrently
const DEFAULT_WORKERS = 4

const pageSize = 1000

// EntityProtocolStats names the protocol stats singleton in a Mismatch
const EntityProtocolStats = "protocolStats"

// Mismatch is an aggregate field that disagrees with what the interaction records imply
type Mismatch struct {
	// Entity is EntityProtocolStats or a month id
	Entity   string `json:"entity"`
	Field    string `json:"field"`
	Stored   string `json:"stored"`
	Expected string `json:"expected"`
}

// Report is the outcome of a read-only consistency check
type Report struct {
	CheckedMonths int        `json:"checkedMonths"`
	Mismatches    []Mismatch `json:"mismatches"`
}

// Merge folds other into r
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.CheckedMonths += other.CheckedMonths
	r.Mismatches = append(r.Mismatches, other.Mismatches...)
}

// Consistent reports whether no mismatch was found
func (r *Report) Consistent() bool {
	return len(r.Mismatches) == 0
}

// Auditor checks the aggregates against the interaction records. It never writes
//
//go:generate mockgen -source=audit.go -destination=../mocks/auditor.go -package=mocks -mock_names=Auditor=MockAuditor
type Auditor interface {
	// AuditProtocol checks the protocol stats singleton against every interaction record
	AuditProtocol(ctx context.Context) (*Report, error)
	// AuditMonths checks every monthly bucket against the interaction records of its month
	AuditMonths(ctx context.Context) (*Report, error)
}

type auditor struct {
	store   store.Store
	workers int
}

// NewAuditor creates an auditor reading from s
func NewAuditor(s store.Store, workers int) Auditor {
	if workers <= 0 {
		workers = DEFAULT_WORKERS
	}
	return &auditor{store: s, workers: workers}
}

func (a *auditor) AuditProtocol(ctx context.Context) (*Report, error) {
	sums, err := a.store.SumInteractions(ctx, store.TimeRange{})
	if err != nil {
		return nil, fmt.Errorf("failed to sum interactions: %w", err)
	}
	users, err := a.store.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	stats, err := a.store.GetProtocolStats(ctx, domain.PROTOCOL_STATS_ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get protocol stats: %w", err)
	}
	if stats == nil {
		stats = &schema.ProtocolStats{ID: domain.PROTOCOL_STATS_ID}
	}

	mint, err := decimal("totalMintVolume", stats.TotalMintVolume)
	if err != nil {
		return nil, err
	}
	burn, err := decimal("totalBurnVolume", stats.TotalBurnVolume)
	if err != nil {
		return nil, err
	}
	deposited, err := decimal("collateralDeposited", sums.CollateralDeposited)
	if err != nil {
		return nil, err
	}
	redeemed, err := decimal("collateralRedeemed", sums.CollateralRedeemed)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	check := checker{entity: EntityProtocolStats, report: report}

	check.amount("totalMintVolume", stats.TotalMintVolume, sums.MintVolume)
	check.amount("totalBurnVolume", stats.TotalBurnVolume, sums.BurnVolume)
	check.amount("totalNetMinted", stats.TotalNetMinted, domain.SignedDiff(mint, burn))
	// equal only while no redemption was ever clamped
	expectedCollateral := "0"
	if !deposited.Lt(redeemed) {
		expectedCollateral = new(uint256.Int).Sub(deposited, redeemed).Dec()
	}
	check.amount("totalCollateral", stats.TotalCollateral, expectedCollateral)
	check.count("totalUsers", stats.TotalUsers, users)

	return report, nil
}

func (a *auditor) AuditMonths(ctx context.Context) (*Report, error) {
	var months []schema.MonthlyStats
	for offset := 0; ; offset += pageSize {
		page, err := a.store.ListMonthlyStats(ctx, store.MonthlyStatsFilter{
			OrderDirection: "asc",
			Limit:          pageSize,
			Offset:         offset,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list monthly stats: %w", err)
		}
		months = append(months, page...)
		if len(page) < pageSize {
			break
		}
	}

	pool := pond.NewResultPool[[]Mismatch](a.workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for _, month := range months {
		group.SubmitErr(func() ([]Mismatch, error) {
			return a.auditMonth(ctx, month)
		})
	}

	results, err := group.Wait()
	if err != nil {
		return nil, err
	}

	report := &Report{CheckedMonths: len(months)}
	for _, mismatches := range results {
		report.Mismatches = append(report.Mismatches, mismatches...)
	}

	logger.InfoCtx(ctx, "Audited monthly stats",
		zap.Int("months", report.CheckedMonths),
		zap.Int("mismatches", len(report.Mismatches)))

	return report, nil
}

func (a *auditor) auditMonth(ctx context.Context, month schema.MonthlyStats) ([]Mismatch, error) {
	start := time.Date(month.Year, time.Month(month.Month), 1, 0, 0, 0, 0, time.UTC)
	from := start.Unix()
	to := start.AddDate(0, 1, 0).Unix()

	sums, err := a.store.SumInteractions(ctx, store.TimeRange{From: &from, To: &to})
	if err != nil {
		return nil, fmt.Errorf("failed to sum interactions for %s: %w", month.ID, err)
	}
	active, err := a.store.CountMonthlyActiveUsers(ctx, month.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active users for %s: %w", month.ID, err)
	}

	report := &Report{}
	check := checker{entity: month.ID, report: report}

	check.text("id", month.ID, domain.MonthID(from))
	check.amount("mintVolume", month.MintVolume, sums.MintVolume)
	check.amount("burnVolume", month.BurnVolume, sums.BurnVolume)
	check.amount("collateralDeposited", month.CollateralDeposited, sums.CollateralDeposited)
	check.amount("collateralRedeemed", month.CollateralRedeemed, sums.CollateralRedeemed)
	check.count("activeUsers", month.ActiveUsers, active)
	check.count("activeUserInteractions", month.ActiveUsers, sums.DistinctUsers)
	if month.NewUsers > month.ActiveUsers {
		check.count("newUsers", month.NewUsers, month.ActiveUsers)
	}

	return report.Mismatches, nil
}

type checker struct {
	entity string
	report *Report
}

func (c checker) text(field, stored, expected string) {
	if stored != expected {
		c.report.Mismatches = append(c.report.Mismatches, Mismatch{
			Entity:   c.entity,
			Field:    field,
			Stored:   stored,
			Expected: expected,
		})
	}
}

// amount compares decimals, empty reads as zero
func (c checker) amount(field, stored, expected string) {
	if stored == "" {
		stored = "0"
	}
	if expected == "" {
		expected = "0"
	}
	c.text(field, stored, expected)
}

func (c checker) count(field string, stored, expected int64) {
	c.text(field, strconv.FormatInt(stored, 10), strconv.FormatInt(expected, 10))
}

func decimal(field, value string) (*uint256.Int, error) {
	if value == "" {
		return new(uint256.Int), nil
	}
	v, err := uint256.FromDecimal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s %q: %w", field, value, err)
	}
	return v, nil
}
