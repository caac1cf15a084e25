package indexer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/dsc-protocol/dsc-indexer/internal/adapter"
	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
	"github.com/dsc-protocol/dsc-indexer/internal/store"
	"github.com/dsc-protocol/dsc-indexer/internal/store/schema"
)

// Processor applies protocol events to the aggregate store
//
//go:generate mockgen -source=processor.go -destination=../mocks/processor.go -package=mocks -mock_names=Processor=MockProcessor
type Processor interface {
	// Process applies a single event in one unit of work. It reports false when the
	// log was already applied, in which case nothing changes.
	Process(ctx context.Context, event *domain.ProtocolEvent) (bool, error)
}

// Config holds the aggregation settings
type Config struct {
	NewUserCutoff NewUserCutoff
}

type processor struct {
	store    store.Store
	jcs      adapter.JCS
	ledger   *UserLedger
	protocol *ProtocolAggregator
	monthly  *MonthlyAggregator
}

// NewProcessor creates a processor writing to s
func NewProcessor(s store.Store, jcs adapter.JCS, cfg Config) Processor {
	return &processor{
		store:    s,
		jcs:      jcs,
		ledger:   NewUserLedger(),
		protocol: NewProtocolAggregator(),
		monthly:  NewMonthlyAggregator(cfg.NewUserCutoff),
	}
}

func (p *processor) Process(ctx context.Context, event *domain.ProtocolEvent) (bool, error) {
	if event == nil {
		return false, fmt.Errorf("%w: nil event", domain.ErrInvalidEventShape)
	}

	amount, err := domain.ParseAmount(event.Amount)
	if err != nil {
		return false, err
	}
	if !event.Valid() {
		return false, fmt.Errorf("%w: %s %s", domain.ErrInvalidEventShape, event.EventType, event.LogID())
	}

	raw, err := p.jcs.Canonicalize(event)
	if err != nil {
		return false, fmt.Errorf("failed to canonicalize event: %w", err)
	}

	logID := event.LogID()
	applied := false
	err = p.store.WithTx(ctx, func(tx store.Store) error {
		processed, err := tx.IsLogProcessed(ctx, logID)
		if err != nil {
			return fmt.Errorf("failed to check processed log %s: %w", logID, err)
		}
		if processed {
			return nil
		}

		switch event.EventType {
		case domain.EventTypeTransfer:
			err = p.handleTransfer(ctx, tx, event, amount)
		case domain.EventTypeCollateralDeposited:
			err = p.handleCollateralDeposited(ctx, tx, event, amount)
		case domain.EventTypeCollateralRedeemed:
			err = p.handleCollateralRedeemed(ctx, tx, event, amount)
		}
		if err != nil {
			return err
		}

		if err := tx.MarkLogProcessed(ctx, &schema.ProcessedLog{
			ID:              logID,
			Chain:           event.Chain,
			EventType:       event.EventType,
			ContractAddress: strings.ToLower(event.ContractAddress),
			TransactionHash: strings.ToLower(event.TxHash),
			LogIndex:        event.LogIndex,
			BlockNumber:     event.BlockNumber,
			BlockHash:       event.BlockHash,
			Raw:             datatypes.JSON(raw),
		}); err != nil {
			return fmt.Errorf("failed to mark log %s processed: %w", logID, err)
		}

		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if !applied {
		logger.DebugCtx(ctx, "Skipped already processed log", zap.String("logID", logID))
	}
	return applied, nil
}

// handleTransfer applies the supply side of a DSC transfer. Minting and burning are
// independent branches, transfers between two holders leave the aggregates alone
func (p *processor) handleTransfer(ctx context.Context, tx store.Store, event *domain.ProtocolEvent, amount *uint256.Int) error {
	timestamp := event.UnixTimestamp()

	if event.IsMint() {
		address := domain.NormalizeAddress(*event.ToAddress)
		user, _, err := p.ledger.GetOrCreate(ctx, tx, address, timestamp)
		if err != nil {
			return err
		}

		if err := tx.CreateMint(ctx, &schema.Mint{
			ID:              event.LogID(),
			UserAddress:     address,
			Amount:          amount.Dec(),
			Timestamp:       timestamp,
			BlockNumber:     event.BlockNumber,
			TransactionHash: strings.ToLower(event.TxHash),
		}); err != nil {
			return fmt.Errorf("failed to create mint: %w", err)
		}

		minted, err := parseStored("totalMinted", user.TotalMinted)
		if err != nil {
			return err
		}
		if minted, err = add("totalMinted", minted, amount); err != nil {
			return err
		}
		user.TotalMinted = minted.Dec()

		if err := p.applyAggregates(ctx, tx, user, timestamp, Deltas{Mint: amount}); err != nil {
			return err
		}
	}

	if event.IsBurn() {
		address := domain.NormalizeAddress(*event.FromAddress)
		user, _, err := p.ledger.GetOrCreate(ctx, tx, address, timestamp)
		if err != nil {
			return err
		}

		if err := tx.CreateBurn(ctx, &schema.Burn{
			ID:              event.LogID(),
			UserAddress:     address,
			Amount:          amount.Dec(),
			Timestamp:       timestamp,
			BlockNumber:     event.BlockNumber,
			TransactionHash: strings.ToLower(event.TxHash),
		}); err != nil {
			return fmt.Errorf("failed to create burn: %w", err)
		}

		burned, err := parseStored("totalBurned", user.TotalBurned)
		if err != nil {
			return err
		}
		if burned, err = add("totalBurned", burned, amount); err != nil {
			return err
		}
		user.TotalBurned = burned.Dec()

		if err := p.applyAggregates(ctx, tx, user, timestamp, Deltas{Burn: amount}); err != nil {
			return err
		}
	}

	return nil
}

func (p *processor) handleCollateralDeposited(ctx context.Context, tx store.Store, event *domain.ProtocolEvent, amount *uint256.Int) error {
	timestamp := event.UnixTimestamp()
	address := domain.NormalizeAddress(*event.UserAddress)

	user, _, err := p.ledger.GetOrCreate(ctx, tx, address, timestamp)
	if err != nil {
		return err
	}

	if err := tx.CreateCollateralDeposit(ctx, &schema.CollateralDeposit{
		ID:              event.LogID(),
		UserAddress:     address,
		Token:           domain.NormalizeAddress(*event.TokenAddress),
		Amount:          amount.Dec(),
		Timestamp:       timestamp,
		BlockNumber:     event.BlockNumber,
		TransactionHash: strings.ToLower(event.TxHash),
	}); err != nil {
		return fmt.Errorf("failed to create collateral deposit: %w", err)
	}

	deposited, err := parseStored(FieldTotalDeposited, user.TotalDeposited)
	if err != nil {
		return err
	}
	if deposited, err = add(FieldTotalDeposited, deposited, amount); err != nil {
		return err
	}
	user.TotalDeposited = deposited.Dec()

	return p.applyAggregates(ctx, tx, user, timestamp, Deltas{Deposit: amount})
}

func (p *processor) handleCollateralRedeemed(ctx context.Context, tx store.Store, event *domain.ProtocolEvent, amount *uint256.Int) error {
	timestamp := event.UnixTimestamp()
	address := domain.NormalizeAddress(*event.FromAddress)

	user, _, err := p.ledger.GetOrCreate(ctx, tx, address, timestamp)
	if err != nil {
		return err
	}

	var recipient *string
	if event.ToAddress != nil {
		to := domain.NormalizeAddress(*event.ToAddress)
		recipient = &to
	}

	if err := tx.CreateCollateralRedemption(ctx, &schema.CollateralRedemption{
		ID:              event.LogID(),
		UserAddress:     address,
		Recipient:       recipient,
		Token:           domain.NormalizeAddress(*event.TokenAddress),
		Amount:          amount.Dec(),
		Timestamp:       timestamp,
		BlockNumber:     event.BlockNumber,
		TransactionHash: strings.ToLower(event.TxHash),
	}); err != nil {
		return fmt.Errorf("failed to create collateral redemption: %w", err)
	}

	deposited, err := parseStored(FieldTotalDeposited, user.TotalDeposited)
	if err != nil {
		return err
	}
	user.TotalDeposited = subClamped(ctx, FieldTotalDeposited, address, deposited, amount).Dec()

	return p.applyAggregates(ctx, tx, user, timestamp, Deltas{Redeem: amount})
}

// applyAggregates saves the mutated user, then folds the deltas into the protocol and monthly stats
func (p *processor) applyAggregates(ctx context.Context, tx store.Store, user *schema.User, timestamp int64, d Deltas) error {
	touch(user, timestamp)
	if err := tx.UpsertUser(ctx, user); err != nil {
		return fmt.Errorf("failed to save user %s: %w", user.ID, err)
	}

	if err := p.protocol.Apply(ctx, tx, timestamp, d); err != nil {
		return err
	}

	return p.monthly.Apply(ctx, tx, timestamp, user.ID, d)
}

// IsPermanent reports errors that no retry of the same event can fix
func IsPermanent(err error) bool {
	return errors.Is(err, domain.ErrInvalidAmount) ||
		errors.Is(err, domain.ErrInvalidEventShape) ||
		errors.Is(err, domain.ErrUserNotFound) ||
		errors.Is(err, domain.ErrAmountOverflow)
}
