package dto

import (
	"strconv"

	"github.com/dsc-protocol/dsc-indexer/internal/store/schema"
)

// ProtocolStatsResponse represents the protocol-wide totals. Amounts are decimal strings
type ProtocolStatsResponse struct {
	ID                   string `json:"id"`
	TotalMintVolume      string `json:"total_mint_volume"`
	TotalBurnVolume      string `json:"total_burn_volume"`
	TotalNetMinted       string `json:"total_net_minted"`
	TotalCollateral      string `json:"total_collateral"`
	TotalUsers           string `json:"total_users"`
	LastUpdatedTimestamp string `json:"last_updated_timestamp"`
}

// MonthlyStatsResponse represents one calendar month bucket
type MonthlyStatsResponse struct {
	ID                  string `json:"id"`
	Year                int    `json:"year"`
	Month               int    `json:"month"`
	MintVolume          string `json:"mint_volume"`
	BurnVolume          string `json:"burn_volume"`
	NetMintVolume       string `json:"net_mint_volume"`
	CollateralDeposited string `json:"collateral_deposited"`
	CollateralRedeemed  string `json:"collateral_redeemed"`
	NetCollateral       string `json:"net_collateral"`
	NewUsers            string `json:"new_users"`
	ActiveUsers         string `json:"active_users"`
	Timestamp           string `json:"timestamp"`
}

// MonthlyStatsListResponse represents a page of monthly buckets
type MonthlyStatsListResponse struct {
	MonthlyStats []MonthlyStatsResponse `json:"items"`
	Offset       *int                   `json:"offset,omitempty"` // offset of the next page, absent on the last page
}

// MapProtocolStatsToDTO maps a protocol stats row to its response
func MapProtocolStatsToDTO(stats *schema.ProtocolStats) *ProtocolStatsResponse {
	return &ProtocolStatsResponse{
		ID:                   stats.ID,
		TotalMintVolume:      stats.TotalMintVolume,
		TotalBurnVolume:      stats.TotalBurnVolume,
		TotalNetMinted:       stats.TotalNetMinted,
		TotalCollateral:      stats.TotalCollateral,
		TotalUsers:           strconv.FormatInt(stats.TotalUsers, 10),
		LastUpdatedTimestamp: strconv.FormatInt(stats.LastUpdatedTimestamp, 10),
	}
}

// MapMonthlyStatsToDTO maps a monthly stats row to its response
func MapMonthlyStatsToDTO(stats *schema.MonthlyStats) *MonthlyStatsResponse {
	return &MonthlyStatsResponse{
		ID:                  stats.ID,
		Year:                stats.Year,
		Month:               stats.Month,
		MintVolume:          stats.MintVolume,
		BurnVolume:          stats.BurnVolume,
		NetMintVolume:       stats.NetMintVolume,
		CollateralDeposited: stats.CollateralDeposited,
		CollateralRedeemed:  stats.CollateralRedeemed,
		NetCollateral:       stats.NetCollateral,
		NewUsers:            strconv.FormatInt(stats.NewUsers, 10),
		ActiveUsers:         strconv.FormatInt(stats.ActiveUsers, 10),
		Timestamp:           strconv.FormatInt(stats.Timestamp, 10),
	}
}
