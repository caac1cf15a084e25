package dto

import (
	"strconv"

	"github.com/dsc-protocol/dsc-indexer/internal/store/schema"
)

// InteractionResponse represents a mint, burn, collateral deposit or collateral redemption.
// Token is absent on mints and burns, Recipient is only set on redemptions
type InteractionResponse struct {
	ID              string  `json:"id"`
	User            string  `json:"user"`
	Token           *string `json:"token,omitempty"`
	Recipient       *string `json:"recipient,omitempty"`
	Amount          string  `json:"amount"`
	Timestamp       string  `json:"timestamp"`
	BlockNumber     string  `json:"block_number"`
	TransactionHash string  `json:"transaction_hash"`
}

// InteractionListResponse represents a page of interactions of one kind
type InteractionListResponse struct {
	Interactions []InteractionResponse `json:"items"`
	Offset       *int                  `json:"offset,omitempty"`
}

func newInteraction(id, user, amount string, timestamp int64, blockNumber uint64, txHash string) InteractionResponse {
	return InteractionResponse{
		ID:              id,
		User:            user,
		Amount:          amount,
		Timestamp:       strconv.FormatInt(timestamp, 10),
		BlockNumber:     strconv.FormatUint(blockNumber, 10),
		TransactionHash: txHash,
	}
}

func MapMintToDTO(m *schema.Mint) InteractionResponse {
	return newInteraction(m.ID, m.UserAddress, m.Amount, m.Timestamp, m.BlockNumber, m.TransactionHash)
}

func MapBurnToDTO(b *schema.Burn) InteractionResponse {
	return newInteraction(b.ID, b.UserAddress, b.Amount, b.Timestamp, b.BlockNumber, b.TransactionHash)
}

func MapCollateralDepositToDTO(d *schema.CollateralDeposit) InteractionResponse {
	r := newInteraction(d.ID, d.UserAddress, d.Amount, d.Timestamp, d.BlockNumber, d.TransactionHash)
	token := d.Token
	r.Token = &token
	return r
}

func MapCollateralRedemptionToDTO(c *schema.CollateralRedemption) InteractionResponse {
	r := newInteraction(c.ID, c.UserAddress, c.Amount, c.Timestamp, c.BlockNumber, c.TransactionHash)
	token := c.Token
	r.Token = &token
	r.Recipient = c.Recipient
	return r
}
