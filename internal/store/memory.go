package store

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/holiman/uint256"

	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/store/schema"
)

// memoryState is the full dataset. Rows are stored by value so a shallow map copy is a snapshot
type memoryState struct {
	users         map[string]schema.User
	protocolStats map[string]schema.ProtocolStats
	monthlyStats  map[string]schema.MonthlyStats
	activeUsers   map[string]schema.MonthlyActiveUser
	mints         map[string]schema.Mint
	burns         map[string]schema.Burn
	deposits      map[string]schema.CollateralDeposit
	redemptions   map[string]schema.CollateralRedemption
	processedLogs map[string]schema.ProcessedLog
	keyValues     map[string]string
}

func newMemoryState() *memoryState {
	return &memoryState{
		users:         make(map[string]schema.User),
		protocolStats: make(map[string]schema.ProtocolStats),
		monthlyStats:  make(map[string]schema.MonthlyStats),
		activeUsers:   make(map[string]schema.MonthlyActiveUser),
		mints:         make(map[string]schema.Mint),
		burns:         make(map[string]schema.Burn),
		deposits:      make(map[string]schema.CollateralDeposit),
		redemptions:   make(map[string]schema.CollateralRedemption),
		processedLogs: make(map[string]schema.ProcessedLog),
		keyValues:     make(map[string]string),
	}
}

func (m *memoryState) clone() *memoryState {
	return &memoryState{
		users:         maps.Clone(m.users),
		protocolStats: maps.Clone(m.protocolStats),
		monthlyStats:  maps.Clone(m.monthlyStats),
		activeUsers:   maps.Clone(m.activeUsers),
		mints:         maps.Clone(m.mints),
		burns:         maps.Clone(m.burns),
		deposits:      maps.Clone(m.deposits),
		redemptions:   maps.Clone(m.redemptions),
		processedLogs: maps.Clone(m.processedLogs),
		keyValues:     maps.Clone(m.keyValues),
	}
}

// memoryStore is a Store kept in process memory. Transactions work on a snapshot
// that replaces the live state on commit.
//
// It backs the aggregation, executor and audit tests and is not wired into any binary.
// Each WithTx copies every table and holds the store lock until fn returns, so units of
// work are serialized and cost grows with the dataset
type memoryStore struct {
	mu    *sync.Mutex
	state *memoryState
	inTx  bool
}

// NewMemoryStore creates an empty in-memory store for tests and fixtures.
// Production code uses NewPGStore
func NewMemoryStore() Store {
	return &memoryStore{mu: &sync.Mutex{}, state: newMemoryState()}
}

func (s *memoryStore) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// WithTx runs fn against a snapshot and publishes it when fn succeeds
func (s *memoryStore) WithTx(ctx context.Context, fn func(tx Store) error) error {
	if s.inTx {
		// nested units of work share the outer snapshot
		return fn(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	tx := &memoryStore{mu: s.mu, state: snapshot, inTx: true}
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.state = snapshot
	return nil
}

func (s *memoryStore) GetUser(ctx context.Context, address string) (*schema.User, error) {
	defer s.lock()()
	user, ok := s.state.users[address]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *memoryStore) UpsertUser(ctx context.Context, user *schema.User) error {
	defer s.lock()()
	now := time.Now().UTC()
	if existing, ok := s.state.users[user.ID]; ok {
		user.CreatedAt = existing.CreatedAt
	} else if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	s.state.users[user.ID] = *user
	return nil
}

func (s *memoryStore) ListUsers(ctx context.Context, filter UserFilter) ([]schema.User, error) {
	defer s.lock()()

	users := make([]schema.User, 0, len(s.state.users))
	for _, user := range s.state.users {
		users = append(users, user)
	}

	key := func(u schema.User) interface{} {
		switch filter.OrderBy {
		case "totalDeposited":
			return amountOf(u.TotalDeposited)
		case "totalMinted":
			return amountOf(u.TotalMinted)
		case "totalBurned":
			return amountOf(u.TotalBurned)
		case "firstInteractionTimestamp":
			return u.FirstInteractionTimestamp
		case "lastInteractionTimestamp":
			return u.LastInteractionTimestamp
		}
		return u.ID
	}

	desc := isDesc(filter.OrderDirection)
	sort.SliceStable(users, func(i, j int) bool {
		c := compareKeys(key(users[i]), key(users[j]))
		if c == 0 {
			return users[i].ID < users[j].ID
		}
		if desc {
			return c > 0
		}
		return c < 0
	})

	return page(users, filter.Limit, filter.Offset), nil
}

func (s *memoryStore) CountUsers(ctx context.Context) (int64, error) {
	defer s.lock()()
	return int64(len(s.state.users)), nil
}

func (s *memoryStore) GetProtocolStats(ctx context.Context, id string) (*schema.ProtocolStats, error) {
	defer s.lock()()
	stats, ok := s.state.protocolStats[id]
	if !ok {
		return nil, nil
	}
	return &stats, nil
}

func (s *memoryStore) UpsertProtocolStats(ctx context.Context, stats *schema.ProtocolStats) error {
	defer s.lock()()
	stats.UpdatedAt = time.Now().UTC()
	if stats.CreatedAt.IsZero() {
		stats.CreatedAt = stats.UpdatedAt
	}
	s.state.protocolStats[stats.ID] = *stats
	return nil
}

func (s *memoryStore) GetMonthlyStats(ctx context.Context, id string) (*schema.MonthlyStats, error) {
	defer s.lock()()
	stats, ok := s.state.monthlyStats[id]
	if !ok {
		return nil, nil
	}
	return &stats, nil
}

func (s *memoryStore) UpsertMonthlyStats(ctx context.Context, stats *schema.MonthlyStats) error {
	defer s.lock()()
	if existing, ok := s.state.monthlyStats[stats.ID]; ok {
		// the bucket timestamp is fixed at creation
		stats.Timestamp = existing.Timestamp
		stats.CreatedAt = existing.CreatedAt
	}
	stats.UpdatedAt = time.Now().UTC()
	if stats.CreatedAt.IsZero() {
		stats.CreatedAt = stats.UpdatedAt
	}
	s.state.monthlyStats[stats.ID] = *stats
	return nil
}

func (s *memoryStore) ListMonthlyStats(ctx context.Context, filter MonthlyStatsFilter) ([]schema.MonthlyStats, error) {
	defer s.lock()()

	stats := make([]schema.MonthlyStats, 0, len(s.state.monthlyStats))
	for _, m := range s.state.monthlyStats {
		stats = append(stats, m)
	}
	desc := isDesc(filter.OrderDirection)
	sort.Slice(stats, func(i, j int) bool {
		if desc {
			return stats[i].ID > stats[j].ID
		}
		return stats[i].ID < stats[j].ID
	})

	return page(stats, filter.Limit, filter.Offset), nil
}

func (s *memoryStore) GetMonthlyActiveUser(ctx context.Context, id string) (*schema.MonthlyActiveUser, error) {
	defer s.lock()()
	marker, ok := s.state.activeUsers[id]
	if !ok {
		return nil, nil
	}
	return &marker, nil
}

func (s *memoryStore) CreateMonthlyActiveUser(ctx context.Context, marker *schema.MonthlyActiveUser) error {
	defer s.lock()()
	insertOnce(s.state.activeUsers, marker.ID, *marker)
	return nil
}

func (s *memoryStore) CountMonthlyActiveUsers(ctx context.Context, monthID string) (int64, error) {
	defer s.lock()()
	var count int64
	for _, marker := range s.state.activeUsers {
		if marker.Month == monthID {
			count++
		}
	}
	return count, nil
}

func (s *memoryStore) CreateMint(ctx context.Context, mint *schema.Mint) error {
	defer s.lock()()
	insertOnce(s.state.mints, mint.ID, *mint)
	return nil
}

func (s *memoryStore) CreateBurn(ctx context.Context, burn *schema.Burn) error {
	defer s.lock()()
	insertOnce(s.state.burns, burn.ID, *burn)
	return nil
}

func (s *memoryStore) CreateCollateralDeposit(ctx context.Context, deposit *schema.CollateralDeposit) error {
	defer s.lock()()
	insertOnce(s.state.deposits, deposit.ID, *deposit)
	return nil
}

func (s *memoryStore) CreateCollateralRedemption(ctx context.Context, redemption *schema.CollateralRedemption) error {
	defer s.lock()()
	insertOnce(s.state.redemptions, redemption.ID, *redemption)
	return nil
}

// interactionView exposes the filterable columns shared by interaction records
type interactionView struct {
	id          string
	user        string
	token       *string
	amount      string
	timestamp   int64
	blockNumber uint64
}

func mintView(m schema.Mint) interactionView {
	return interactionView{m.ID, m.UserAddress, nil, m.Amount, m.Timestamp, m.BlockNumber}
}

func burnView(b schema.Burn) interactionView {
	return interactionView{b.ID, b.UserAddress, nil, b.Amount, b.Timestamp, b.BlockNumber}
}

func depositView(d schema.CollateralDeposit) interactionView {
	return interactionView{d.ID, d.UserAddress, &d.Token, d.Amount, d.Timestamp, d.BlockNumber}
}

func redemptionView(r schema.CollateralRedemption) interactionView {
	return interactionView{r.ID, r.UserAddress, &r.Token, r.Amount, r.Timestamp, r.BlockNumber}
}

func selectInteractions[T any](rows map[string]T, view func(T) interactionView, filter InteractionFilter) []T {
	var selected []T
	for _, row := range rows {
		v := view(row)
		if filter.User != nil && v.user != *filter.User {
			continue
		}
		if filter.Token != nil && v.token != nil && *v.token != *filter.Token {
			continue
		}
		if filter.TimestampGte != nil && v.timestamp < *filter.TimestampGte {
			continue
		}
		if filter.TimestampLte != nil && v.timestamp > *filter.TimestampLte {
			continue
		}
		selected = append(selected, row)
	}

	key := func(v interactionView) interface{} {
		switch filter.OrderBy {
		case OrderByAmount:
			return amountOf(v.amount)
		case OrderByBlockNumber:
			return v.blockNumber
		}
		return v.timestamp
	}

	desc := isDesc(filter.OrderDirection)
	sort.SliceStable(selected, func(i, j int) bool {
		a, b := view(selected[i]), view(selected[j])
		c := compareKeys(key(a), key(b))
		if c == 0 {
			if desc {
				return a.id > b.id
			}
			return a.id < b.id
		}
		if desc {
			return c > 0
		}
		return c < 0
	})

	result := page(selected, filter.Limit, filter.Offset)
	if result == nil {
		return []T{}
	}
	return result
}

func (s *memoryStore) ListMints(ctx context.Context, filter InteractionFilter) ([]schema.Mint, error) {
	defer s.lock()()
	return selectInteractions(s.state.mints, mintView, filter), nil
}

func (s *memoryStore) ListBurns(ctx context.Context, filter InteractionFilter) ([]schema.Burn, error) {
	defer s.lock()()
	return selectInteractions(s.state.burns, burnView, filter), nil
}

func (s *memoryStore) ListCollateralDeposits(ctx context.Context, filter InteractionFilter) ([]schema.CollateralDeposit, error) {
	defer s.lock()()
	return selectInteractions(s.state.deposits, depositView, filter), nil
}

func (s *memoryStore) ListCollateralRedemptions(ctx context.Context, filter InteractionFilter) ([]schema.CollateralRedemption, error) {
	defer s.lock()()
	return selectInteractions(s.state.redemptions, redemptionView, filter), nil
}

func (s *memoryStore) SumInteractions(ctx context.Context, window TimeRange) (*InteractionSums, error) {
	defer s.lock()()

	users := make(map[string]struct{})
	inWindow := func(v interactionView) bool {
		if window.From != nil && v.timestamp < *window.From {
			return false
		}
		if window.To != nil && v.timestamp >= *window.To {
			return false
		}
		users[v.user] = struct{}{}
		return true
	}

	var err error
	sum := func(total *uint256.Int, amount string) {
		v, perr := domain.ParseAmount(amount)
		if perr != nil {
			err = perr
			return
		}
		total.Add(total, v)
	}

	mint, burn, deposit, redeem := new(uint256.Int), new(uint256.Int), new(uint256.Int), new(uint256.Int)
	for _, m := range s.state.mints {
		if inWindow(mintView(m)) {
			sum(mint, m.Amount)
		}
	}
	for _, b := range s.state.burns {
		if inWindow(burnView(b)) {
			sum(burn, b.Amount)
		}
	}
	for _, d := range s.state.deposits {
		if inWindow(depositView(d)) {
			sum(deposit, d.Amount)
		}
	}
	for _, r := range s.state.redemptions {
		if inWindow(redemptionView(r)) {
			sum(redeem, r.Amount)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to sum interactions: %w", err)
	}

	return &InteractionSums{
		MintVolume:          mint.Dec(),
		BurnVolume:          burn.Dec(),
		CollateralDeposited: deposit.Dec(),
		CollateralRedeemed:  redeem.Dec(),
		DistinctUsers:       int64(len(users)),
	}, nil
}

func (s *memoryStore) IsLogProcessed(ctx context.Context, id string) (bool, error) {
	defer s.lock()()
	_, ok := s.state.processedLogs[id]
	return ok, nil
}

func (s *memoryStore) MarkLogProcessed(ctx context.Context, log *schema.ProcessedLog) error {
	defer s.lock()()
	if log.ProcessedAt.IsZero() {
		log.ProcessedAt = time.Now().UTC()
	}
	insertOnce(s.state.processedLogs, log.ID, *log)
	return nil
}

func (s *memoryStore) GetBlockCursor(ctx context.Context, chain string) (uint64, error) {
	defer s.lock()()
	value, ok := s.state.keyValues[blockCursorKey(chain)]
	if !ok {
		return 0, nil
	}
	var blockNumber uint64
	if _, err := fmt.Sscan(value, &blockNumber); err != nil {
		return 0, fmt.Errorf("failed to parse block cursor: %w", err)
	}
	return blockNumber, nil
}

func (s *memoryStore) SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error {
	defer s.lock()()
	s.state.keyValues[blockCursorKey(chain)] = fmt.Sprintf("%d", blockNumber)
	return nil
}

func insertOnce[T any](rows map[string]T, id string, row T) {
	if _, exists := rows[id]; exists {
		return
	}
	rows[id] = row
}

func page[T any](rows []T, limit, offset int) []T {
	limit, offset = normalizeLimit(limit), normalizeOffset(offset)
	if offset >= len(rows) {
		return nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

// amountOf parses a stored amount, treating malformed values as zero for ordering
func amountOf(amount string) *uint256.Int {
	v, err := domain.ParseAmount(amount)
	if err != nil {
		return new(uint256.Int)
	}
	return v
}

func compareKeys(a, b interface{}) int {
	switch av := a.(type) {
	case *uint256.Int:
		return av.Cmp(b.(*uint256.Int))
	case int64:
		bv := b.(int64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case uint64:
		bv := b.(uint64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case string:
		bv := b.(string)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	}
	return 0
}
