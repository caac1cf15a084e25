package domain

const (
	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// PROTOCOL_STATS_ID is the id of the singleton protocol stats record
	PROTOCOL_STATS_ID = "1"

	// MONTH_ID_LAYOUT formats a UTC time into a monthly stats id
	MONTH_ID_LAYOUT = "2006-01"
)
