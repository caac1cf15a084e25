package ethereum

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
	"github.com/dsc-protocol/dsc-indexer/internal/mocks"
)

var (
	dscAddress    = common.HexToAddress("0x00000000000000000000000000000000000000d5")
	engineAddress = common.HexToAddress("0x00000000000000000000000000000000000000e1")
	userAddress   = common.HexToAddress("0x1111111111111111111111111111111111111111")
	otherAddress  = common.HexToAddress("0x2222222222222222222222222222222222222222")
	wethAddress   = common.HexToAddress("0x3333333333333333333333333333333333333333")
	blockTimeUTC  = time.Unix(1710460800, 0).UTC()
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func addressTopic(a common.Address) common.Hash {
	return common.BytesToHash(a.Bytes())
}

func amountWord(v int64) []byte {
	return common.LeftPadBytes(big.NewInt(v).Bytes(), 32)
}

func transferLog(from, to common.Address, value int64, blockNumber uint64, index uint) types.Log {
	return types.Log{
		Address:     dscAddress,
		Topics:      []common.Hash{transferEventSignature, addressTopic(from), addressTopic(to)},
		Data:        amountWord(value),
		BlockNumber: blockNumber,
		TxHash:      common.HexToHash("0xAA"),
		Index:       index,
	}
}

func depositLog(user, token common.Address, amount int64, blockNumber uint64, index uint) types.Log {
	return types.Log{
		Address:     engineAddress,
		Topics:      []common.Hash{collateralDepositedEventSignature, addressTopic(user), addressTopic(token), common.BigToHash(big.NewInt(amount))},
		BlockNumber: blockNumber,
		TxHash:      common.HexToHash("0xBB"),
		Index:       index,
	}
}

func redeemLog(from, to, token common.Address, amount int64, blockNumber uint64, index uint) types.Log {
	return types.Log{
		Address:     engineAddress,
		Topics:      []common.Hash{collateralRedeemedEventSignature, addressTopic(from), addressTopic(to), addressTopic(token)},
		Data:        amountWord(amount),
		BlockNumber: blockNumber,
		TxHash:      common.HexToHash("0xCC"),
		Index:       index,
	}
}

func lower(a common.Address) string {
	return lowerHex(a)
}

func TestDecoder_Decode(t *testing.T) {
	zero := common.Address{}

	tests := []struct {
		name       string
		log        types.Log
		expectErr  error
		needsBlock bool
		validate   func(*testing.T, *domain.ProtocolEvent)
	}{
		{
			name:       "mint transfer",
			log:        transferLog(zero, userAddress, 5000, 10, 0),
			needsBlock: true,
			validate: func(t *testing.T, e *domain.ProtocolEvent) {
				assert.Equal(t, domain.EventTypeTransfer, e.EventType)
				assert.Equal(t, domain.ETHEREUM_ZERO_ADDRESS, *e.FromAddress)
				assert.Equal(t, lower(userAddress), *e.ToAddress)
				assert.Equal(t, "5000", e.Amount)
				assert.True(t, e.IsMint())
				assert.Equal(t, lower(dscAddress), e.ContractAddress)
				assert.Equal(t, blockTimeUTC, e.Timestamp)
				assert.Equal(t, domain.ChainEthereumSepolia, e.Chain)
			},
		},
		{
			name:       "collateral deposited with indexed amount",
			log:        depositLog(userAddress, wethAddress, 42, 11, 3),
			needsBlock: true,
			validate: func(t *testing.T, e *domain.ProtocolEvent) {
				assert.Equal(t, domain.EventTypeCollateralDeposited, e.EventType)
				assert.Equal(t, lower(userAddress), *e.UserAddress)
				assert.Equal(t, lower(wethAddress), *e.TokenAddress)
				assert.Equal(t, "42", e.Amount)
				assert.Equal(t, uint64(3), e.LogIndex)
			},
		},
		{
			name:       "collateral redeemed",
			log:        redeemLog(userAddress, otherAddress, wethAddress, 7, 12, 1),
			needsBlock: true,
			validate: func(t *testing.T, e *domain.ProtocolEvent) {
				assert.Equal(t, domain.EventTypeCollateralRedeemed, e.EventType)
				assert.Equal(t, lower(userAddress), *e.FromAddress)
				assert.Equal(t, lower(otherAddress), *e.ToAddress)
				assert.Equal(t, lower(wethAddress), *e.TokenAddress)
				assert.Equal(t, "7", e.Amount)
			},
		},
		{
			name:      "unknown topic",
			log:       types.Log{Address: dscAddress, Topics: []common.Hash{common.HexToHash("0x01")}},
			expectErr: domain.ErrUnknownEvent,
		},
		{
			name:      "anonymous log",
			log:       types.Log{Address: dscAddress},
			expectErr: domain.ErrUnknownEvent,
		},
		{
			name: "erc721 shaped transfer has one topic too many",
			log: func() types.Log {
				l := transferLog(userAddress, otherAddress, 1, 10, 0)
				l.Topics = append(l.Topics, common.BigToHash(big.NewInt(1)))
				l.Data = nil
				return l
			}(),
			expectErr: domain.ErrInvalidEventShape,
		},
		{
			name: "short data",
			log: func() types.Log {
				l := transferLog(userAddress, otherAddress, 1, 10, 0)
				l.Data = l.Data[:16]
				return l
			}(),
			expectErr: domain.ErrInvalidEventShape,
		},
		{
			name: "address topic with dirty high bytes",
			log: func() types.Log {
				l := transferLog(userAddress, otherAddress, 1, 10, 0)
				l.Topics[1] = common.HexToHash("0xff00000000000000000000001111111111111111111111111111111111111111")
				return l
			}(),
			expectErr: domain.ErrInvalidEventShape,
		},
		{
			name: "transfer from the engine",
			log: func() types.Log {
				l := transferLog(userAddress, otherAddress, 1, 10, 0)
				l.Address = engineAddress
				return l
			}(),
			expectErr: domain.ErrUnexpectedContract,
		},
		{
			name: "deposit from the token",
			log: func() types.Log {
				l := depositLog(userAddress, wethAddress, 1, 10, 0)
				l.Address = dscAddress
				return l
			}(),
			expectErr: domain.ErrUnexpectedContract,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			blockProvider := mocks.NewMockBlockProvider(ctrl)
			if tt.needsBlock {
				blockProvider.EXPECT().GetBlockTimestamp(gomock.Any(), tt.log.BlockNumber).Return(blockTimeUTC, nil)
			}

			decoder := NewDecoder(domain.ChainEthereumSepolia, Contracts{DSC: dscAddress, Engine: engineAddress}, blockProvider)
			event, err := decoder.Decode(context.Background(), tt.log)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, event)
				return
			}
			require.NoError(t, err)
			require.True(t, event.Valid())
			tt.validate(t, event)
		})
	}
}

func TestDecoder_Decode_NoContractCheckWhenUnconfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blockProvider := mocks.NewMockBlockProvider(ctrl)
	blockProvider.EXPECT().GetBlockTimestamp(gomock.Any(), uint64(10)).Return(blockTimeUTC, nil)

	l := transferLog(userAddress, otherAddress, 1, 10, 0)
	l.Address = otherAddress

	event, err := NewDecoder(domain.ChainAnvil, Contracts{}, blockProvider).Decode(context.Background(), l)
	require.NoError(t, err)
	assert.Equal(t, lower(otherAddress), event.ContractAddress)
}

func TestDecoder_Decode_BlockTimestampError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blockProvider := mocks.NewMockBlockProvider(ctrl)
	blockProvider.EXPECT().GetBlockTimestamp(gomock.Any(), uint64(10)).Return(time.Time{}, errors.New("rpc down"))

	_, err := NewDecoder(domain.ChainAnvil, Contracts{}, blockProvider).
		Decode(context.Background(), transferLog(userAddress, otherAddress, 1, 10, 0))
	assert.ErrorContains(t, err, "rpc down")
}

type testClientMocks struct {
	ctrl          *gomock.Controller
	ethClient     *mocks.MockEthClient
	blockProvider *mocks.MockBlockProvider
	client        EthereumClient
}

func setupClient(t *testing.T, pageSize uint64) *testClientMocks {
	ctrl := gomock.NewController(t)
	ethClient := mocks.NewMockEthClient(ctrl)
	blockProvider := mocks.NewMockBlockProvider(ctrl)

	return &testClientMocks{
		ctrl:          ctrl,
		ethClient:     ethClient,
		blockProvider: blockProvider,
		client: NewClient(ClientConfig{
			ChainID:     domain.ChainEthereumSepolia,
			Contracts:   Contracts{DSC: dscAddress, Engine: engineAddress},
			LogPageSize: pageSize,
		}, ethClient, blockProvider),
	}
}

func rangeOf(q ethereum.FilterQuery) (uint64, uint64) {
	return q.FromBlock.Uint64(), q.ToBlock.Uint64()
}

func TestClient_FilterLogs_Pages(t *testing.T) {
	tm := setupClient(t, 100)
	defer tm.ctrl.Finish()

	var ranges [][2]uint64
	tm.ethClient.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
			from, to := rangeOf(q)
			ranges = append(ranges, [2]uint64{from, to})
			assert.Equal(t, []common.Address{dscAddress, engineAddress}, q.Addresses)
			assert.Len(t, q.Topics[0], 3)
			return []types.Log{transferLog(userAddress, otherAddress, 1, from, 0)}, nil
		}).Times(3)

	logs, err := tm.client.FilterLogs(context.Background(), 1, 250)
	require.NoError(t, err)
	assert.Len(t, logs, 3)
	assert.Equal(t, [][2]uint64{{1, 100}, {101, 200}, {201, 250}}, ranges)
}

func TestClient_FilterLogs_HalvesOnTooManyResults(t *testing.T) {
	tm := setupClient(t, 100)
	defer tm.ctrl.Finish()

	var ranges [][2]uint64
	tm.ethClient.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
			from, to := rangeOf(q)
			ranges = append(ranges, [2]uint64{from, to})
			if to-from+1 > 50 {
				return nil, errors.New("query returned more than 10000 results")
			}
			return nil, nil
		}).AnyTimes()

	_, err := tm.client.FilterLogs(context.Background(), 0, 99)
	require.NoError(t, err)
	assert.Equal(t, [][2]uint64{{0, 99}, {0, 49}, {50, 99}}, ranges)
}

func TestClient_FilterLogs_FailsOnSingleBlockOverflow(t *testing.T) {
	tm := setupClient(t, 2)
	defer tm.ctrl.Finish()

	tm.ethClient.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("too many results")).Times(2)

	_, err := tm.client.FilterLogs(context.Background(), 5, 6)
	assert.ErrorContains(t, err, "single block 5")
}

func TestClient_FilterLogs_OtherError(t *testing.T) {
	tm := setupClient(t, 100)
	defer tm.ctrl.Finish()

	tm.ethClient.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := tm.client.FilterLogs(context.Background(), 0, 10)
	assert.ErrorContains(t, err, "connection reset")
}

func TestClient_FilterLogs_SortsByBlockAndIndex(t *testing.T) {
	tm := setupClient(t, 1000)
	defer tm.ctrl.Finish()

	tm.ethClient.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return([]types.Log{
		transferLog(userAddress, otherAddress, 1, 5, 2),
		transferLog(userAddress, otherAddress, 1, 4, 9),
		transferLog(userAddress, otherAddress, 1, 5, 0),
	}, nil)

	logs, err := tm.client.FilterLogs(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, uint64(4), logs[0].BlockNumber)
	assert.Equal(t, uint(0), logs[1].Index)
	assert.Equal(t, uint(2), logs[2].Index)
}

func TestClient_GetProtocolEvents(t *testing.T) {
	tm := setupClient(t, 1000)
	defer tm.ctrl.Finish()

	bad := transferLog(userAddress, otherAddress, 1, 21, 1)
	bad.Data = nil

	tm.ethClient.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return([]types.Log{
		transferLog(common.Address{}, userAddress, 100, 20, 0),
		bad,
		depositLog(userAddress, wethAddress, 5, 21, 2),
	}, nil)
	tm.blockProvider.EXPECT().GetBlockTimestamp(gomock.Any(), gomock.Any()).Return(blockTimeUTC, nil).AnyTimes()

	events, err := tm.client.GetProtocolEvents(context.Background(), 20, 21)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.True(t, events[0].IsMint())
	assert.Equal(t, domain.EventTypeCollateralDeposited, events[1].EventType)
}

func TestClient_GetProtocolEvents_TimestampFailure(t *testing.T) {
	tm := setupClient(t, 1000)
	defer tm.ctrl.Finish()

	tm.ethClient.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return([]types.Log{
		transferLog(common.Address{}, userAddress, 100, 20, 0),
	}, nil)
	tm.blockProvider.EXPECT().GetBlockTimestamp(gomock.Any(), uint64(20)).Return(time.Time{}, errors.New("header not found"))

	_, err := tm.client.GetProtocolEvents(context.Background(), 20, 20)
	assert.ErrorContains(t, err, "header not found")
}

func TestBlockFetcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ethClient := mocks.NewMockEthClient(ctrl)
	fetcher := NewEthereumBlockFetcher(ethClient)

	ethClient.EXPECT().HeaderByNumber(gomock.Any(), nil).Return(&types.Header{Number: big.NewInt(99)}, nil)
	latest, err := fetcher.FetchLatestBlock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(99), latest)

	ethClient.EXPECT().HeaderByNumber(gomock.Any(), big.NewInt(7)).Return(&types.Header{Number: big.NewInt(7), Time: 1710460800}, nil)
	ts, err := fetcher.FetchBlockTimestamp(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, blockTimeUTC, ts)
}
