package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainEthereumMainnet Chain = "eip155:1"
	ChainEthereumSepolia Chain = "eip155:11155111"
	ChainAnvil           Chain = "eip155:31337"
)

// IsValidChain checks if a chain is valid
func IsValidChain(chain Chain) bool {
	return chain == ChainEthereumMainnet ||
		chain == ChainEthereumSepolia ||
		chain == ChainAnvil
}

// EventType represents the type of protocol event
type EventType string

const (
	EventTypeTransfer            EventType = "transfer"
	EventTypeCollateralDeposited EventType = "collateral_deposited"
	EventTypeCollateralRedeemed  EventType = "collateral_redeemed"
)

// IsValidEventType checks if an event type is one the indexer handles
func IsValidEventType(eventType EventType) bool {
	return eventType == EventTypeTransfer ||
		eventType == EventTypeCollateralDeposited ||
		eventType == EventTypeCollateralRedeemed
}

// ProtocolEvent represents a decoded DSC protocol event
// This is the standard format published to NATS
type ProtocolEvent struct {
	Chain           Chain     `json:"chain"`                   // e.g., "eip155:1"
	EventType       EventType `json:"event_type"`              // transfer, collateral_deposited, collateral_redeemed
	ContractAddress string    `json:"contract_address"`        // emitting contract
	FromAddress     *string   `json:"from_address,omitempty"`  // Transfer.from, CollateralRedeemed.redeemedFrom
	ToAddress       *string   `json:"to_address,omitempty"`    // Transfer.to, CollateralRedeemed.redeemedTo
	UserAddress     *string   `json:"user_address,omitempty"`  // CollateralDeposited.user
	TokenAddress    *string   `json:"token_address,omitempty"` // collateral token
	Amount          string    `json:"amount"`                  // uint256 in decimal
	TxHash          string    `json:"tx_hash"`                 // transaction hash
	BlockNumber     uint64    `json:"block_number"`            // block number
	BlockHash       *string   `json:"block_hash,omitempty"`    // block hash (optional)
	Timestamp       time.Time `json:"timestamp"`               // block timestamp
	LogIndex        uint64    `json:"log_index"`               // log index in the block
}

// Valid checks the event carries the fields its type requires
func (e *ProtocolEvent) Valid() bool {
	if !IsValidEventType(e.EventType) || e.TxHash == "" || e.Timestamp.IsZero() {
		return false
	}

	if _, err := ParseAmount(e.Amount); err != nil {
		return false
	}

	switch e.EventType {
	case EventTypeTransfer:
		return validAddress(e.FromAddress) && validAddress(e.ToAddress)
	case EventTypeCollateralDeposited:
		return validAddress(e.UserAddress) && validAddress(e.TokenAddress)
	case EventTypeCollateralRedeemed:
		return validAddress(e.FromAddress) && validAddress(e.TokenAddress)
	}

	return false
}

// LogID returns the identifier of the log that produced the event: {txHash}-{logIndex}
func (e *ProtocolEvent) LogID() string {
	return LogID(e.TxHash, e.LogIndex)
}

// UnixTimestamp returns the block timestamp in unix seconds
func (e *ProtocolEvent) UnixTimestamp() int64 {
	return e.Timestamp.Unix()
}

// IsMint reports whether a transfer creates supply
func (e *ProtocolEvent) IsMint() bool {
	return e.EventType == EventTypeTransfer && e.FromAddress != nil && *e.FromAddress == ETHEREUM_ZERO_ADDRESS
}

// IsBurn reports whether a transfer destroys supply
func (e *ProtocolEvent) IsBurn() bool {
	return e.EventType == EventTypeTransfer && e.ToAddress != nil && *e.ToAddress == ETHEREUM_ZERO_ADDRESS
}

// LogID builds the interaction and processed-log identifier
func LogID(txHash string, logIndex uint64) string {
	return fmt.Sprintf("%s-%d", strings.ToLower(txHash), logIndex)
}

// MonthID returns the UTC calendar month identifier (YYYY-MM) of a unix timestamp
func MonthID(timestamp int64) string {
	return time.Unix(timestamp, 0).UTC().Format(MONTH_ID_LAYOUT)
}

// MonthStart returns the first second of the UTC calendar month containing timestamp
func MonthStart(timestamp int64) int64 {
	t := time.Unix(timestamp, 0).UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).Unix()
}

// IsMonthID reports whether id is a well-formed YYYY-MM month identifier
func IsMonthID(id string) bool {
	t, err := time.Parse(MONTH_ID_LAYOUT, id)
	return err == nil && t.Format(MONTH_ID_LAYOUT) == id
}

// IsAddress reports whether address is a 20-byte hex address
func IsAddress(address string) bool {
	return common.IsHexAddress(address)
}

// ActiveUserMarkerID returns the id of the per-user-per-month marker
func ActiveUserMarkerID(monthID, address string) string {
	return fmt.Sprintf("%s-%s", monthID, address)
}

// NormalizeAddress normalizes an address to lowercase hex
func NormalizeAddress(address string) string {
	return strings.ToLower(common.HexToAddress(address).Hex())
}

// NormalizeAddresses normalizes a list of addresses in place
func NormalizeAddresses(addresses []string) []string {
	for i, address := range addresses {
		addresses[i] = NormalizeAddress(address)
	}
	return addresses
}

// ParseAmount parses a decimal uint256 amount
func ParseAmount(amount string) (*uint256.Int, error) {
	if amount == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	v, err := uint256.FromDecimal(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidAmount, amount, err)
	}
	return v, nil
}

// SignedDiff renders a - b as a signed decimal. Net volumes go negative when
// more is burned or redeemed than was seen minted or deposited
func SignedDiff(a, b *uint256.Int) string {
	if a.Lt(b) {
		return "-" + new(uint256.Int).Sub(b, a).Dec()
	}
	return new(uint256.Int).Sub(a, b).Dec()
}

func validAddress(address *string) bool {
	return address != nil && common.IsHexAddress(*address)
}
