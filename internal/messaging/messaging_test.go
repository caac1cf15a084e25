package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dsc-protocol/dsc-indexer/internal/domain"
)

func TestSubject(t *testing.T) {
	tests := []struct {
		name     string
		event    domain.ProtocolEvent
		expected string
	}{
		{
			name:     "mainnet transfer",
			event:    domain.ProtocolEvent{Chain: domain.ChainEthereumMainnet, EventType: domain.EventTypeTransfer},
			expected: "events.eip155_1.transfer",
		},
		{
			name:     "sepolia redemption",
			event:    domain.ProtocolEvent{Chain: domain.ChainEthereumSepolia, EventType: domain.EventTypeCollateralRedeemed},
			expected: "events.eip155_11155111.collateral_redeemed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Subject(&tt.event))
		})
	}
}
