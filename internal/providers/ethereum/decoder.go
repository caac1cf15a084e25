package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/dsc-protocol/dsc-indexer/internal/block"
	"github.com/dsc-protocol/dsc-indexer/internal/domain"
)

// protocolABI declares the three events the indexer consumes.
// The DSC token emits Transfer, the engine emits the collateral events
const protocolABI = `[
	{"type":"event","name":"Transfer","anonymous":false,"inputs":[
		{"name":"from","type":"address","indexed":true},
		{"name":"to","type":"address","indexed":true},
		{"name":"value","type":"uint256","indexed":false}]},
	{"type":"event","name":"CollateralDeposited","anonymous":false,"inputs":[
		{"name":"user","type":"address","indexed":true},
		{"name":"tokenCollateralAddress","type":"address","indexed":true},
		{"name":"amount","type":"uint256","indexed":true}]},
	{"type":"event","name":"CollateralRedeemed","anonymous":false,"inputs":[
		{"name":"redeemedFrom","type":"address","indexed":true},
		{"name":"redeemedTo","type":"address","indexed":true},
		{"name":"amount","type":"uint256","indexed":false},
		{"name":"token","type":"address","indexed":true}]}
]`

var (
	parsedABI = mustParseABI()

	transferEvent            = parsedABI.Events["Transfer"]
	collateralDepositedEvent = parsedABI.Events["CollateralDeposited"]
	collateralRedeemedEvent  = parsedABI.Events["CollateralRedeemed"]

	// Event signatures
	transferEventSignature            = transferEvent.ID
	collateralDepositedEventSignature = collateralDepositedEvent.ID
	collateralRedeemedEventSignature  = collateralRedeemedEvent.ID
)

func mustParseABI() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(protocolABI))
	if err != nil {
		panic(fmt.Sprintf("invalid protocol abi: %v", err))
	}
	return parsed
}

// EventSignatures returns the topic0 of every event the decoder understands
func EventSignatures() []common.Hash {
	return []common.Hash{
		transferEventSignature,
		collateralDepositedEventSignature,
		collateralRedeemedEventSignature,
	}
}

// Contracts identifies the deployed protocol contracts.
// A zero address disables the emitter check for the events that contract owns
type Contracts struct {
	DSC    common.Address
	Engine common.Address
}

// Addresses returns the non-zero contract addresses for log filtering
func (c Contracts) Addresses() []common.Address {
	var addresses []common.Address
	for _, a := range []common.Address{c.DSC, c.Engine} {
		if a != (common.Address{}) {
			addresses = append(addresses, a)
		}
	}
	return addresses
}

// Decoder turns raw logs into protocol events
type Decoder struct {
	chainID       domain.Chain
	contracts     Contracts
	blockProvider block.BlockProvider
}

// NewDecoder creates a decoder; blockProvider supplies block timestamps
func NewDecoder(chainID domain.Chain, contracts Contracts, blockProvider block.BlockProvider) *Decoder {
	return &Decoder{chainID: chainID, contracts: contracts, blockProvider: blockProvider}
}

// Decode validates the log against its event layout and returns the typed event.
// It fails with domain.ErrUnknownEvent, domain.ErrInvalidEventShape or domain.ErrUnexpectedContract
// when the log is not a well formed protocol event
func (d *Decoder) Decode(ctx context.Context, vLog types.Log) (*domain.ProtocolEvent, error) {
	if len(vLog.Topics) == 0 {
		return nil, fmt.Errorf("%w: anonymous log", domain.ErrUnknownEvent)
	}

	var (
		ev    abi.Event
		owner common.Address
	)
	switch vLog.Topics[0] {
	case transferEventSignature:
		ev, owner = transferEvent, d.contracts.DSC
	case collateralDepositedEventSignature:
		ev, owner = collateralDepositedEvent, d.contracts.Engine
	case collateralRedeemedEventSignature:
		ev, owner = collateralRedeemedEvent, d.contracts.Engine
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownEvent, vLog.Topics[0].Hex())
	}

	if owner != (common.Address{}) && vLog.Address != owner {
		return nil, fmt.Errorf("%w: %s emitted by %s", domain.ErrUnexpectedContract, ev.Name, vLog.Address.Hex())
	}

	values, err := unpackLog(ev, vLog)
	if err != nil {
		return nil, err
	}

	timestamp, err := d.blockProvider.GetBlockTimestamp(ctx, vLog.BlockNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get block timestamp: %w", err)
	}

	blockHash := vLog.BlockHash.Hex()
	event := &domain.ProtocolEvent{
		Chain:           d.chainID,
		ContractAddress: lowerHex(vLog.Address),
		TxHash:          strings.ToLower(vLog.TxHash.Hex()),
		BlockNumber:     vLog.BlockNumber,
		BlockHash:       &blockHash,
		Timestamp:       timestamp.UTC(),
		LogIndex:        uint64(vLog.Index),
	}

	switch ev.Name {
	case "Transfer":
		event.EventType = domain.EventTypeTransfer
		event.FromAddress = addressValue(values, "from")
		event.ToAddress = addressValue(values, "to")
		event.Amount = amountValue(values, "value")
	case "CollateralDeposited":
		event.EventType = domain.EventTypeCollateralDeposited
		event.UserAddress = addressValue(values, "user")
		event.TokenAddress = addressValue(values, "tokenCollateralAddress")
		event.Amount = amountValue(values, "amount")
	case "CollateralRedeemed":
		event.EventType = domain.EventTypeCollateralRedeemed
		event.FromAddress = addressValue(values, "redeemedFrom")
		event.ToAddress = addressValue(values, "redeemedTo")
		event.TokenAddress = addressValue(values, "token")
		event.Amount = amountValue(values, "amount")
	}

	return event, nil
}

// unpackLog checks topic count and data length against the event inputs and unpacks them by name
func unpackLog(ev abi.Event, vLog types.Log) (map[string]interface{}, error) {
	var indexed abi.Arguments
	for _, input := range ev.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	nonIndexed := ev.Inputs.NonIndexed()

	if len(vLog.Topics) != len(indexed)+1 {
		return nil, fmt.Errorf("%w: %s expected %d topics, got %d",
			domain.ErrInvalidEventShape, ev.Name, len(indexed)+1, len(vLog.Topics))
	}
	if len(vLog.Data) != 32*len(nonIndexed) {
		return nil, fmt.Errorf("%w: %s expected %d bytes of data, got %d",
			domain.ErrInvalidEventShape, ev.Name, 32*len(nonIndexed), len(vLog.Data))
	}

	for i, input := range indexed {
		if input.Type.T == abi.AddressTy && !isPaddedAddress(vLog.Topics[i+1]) {
			return nil, fmt.Errorf("%w: %s topic %s is not an address", domain.ErrInvalidEventShape, ev.Name, input.Name)
		}
	}

	values := make(map[string]interface{}, len(ev.Inputs))
	if len(nonIndexed) > 0 {
		if err := nonIndexed.UnpackIntoMap(values, vLog.Data); err != nil {
			return nil, fmt.Errorf("%w: %s data: %v", domain.ErrInvalidEventShape, ev.Name, err)
		}
	}
	if err := abi.ParseTopicsIntoMap(values, indexed, vLog.Topics[1:]); err != nil {
		return nil, fmt.Errorf("%w: %s topics: %v", domain.ErrInvalidEventShape, ev.Name, err)
	}

	return values, nil
}

func isPaddedAddress(topic common.Hash) bool {
	for _, b := range topic[:common.HashLength-common.AddressLength] {
		if b != 0 {
			return false
		}
	}
	return true
}

func addressValue(values map[string]interface{}, name string) *string {
	address, ok := values[name].(common.Address)
	if !ok {
		return nil
	}
	hex := lowerHex(address)
	return &hex
}

func amountValue(values map[string]interface{}, name string) string {
	amount, ok := values[name].(*big.Int)
	if !ok || amount == nil {
		return ""
	}
	return amount.String()
}

func lowerHex(address common.Address) string {
	return strings.ToLower(address.Hex())
}
