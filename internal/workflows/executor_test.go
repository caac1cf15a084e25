package workflows_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"

	"github.com/dsc-protocol/dsc-indexer/internal/audit"
	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
	"github.com/dsc-protocol/dsc-indexer/internal/mocks"
	"github.com/dsc-protocol/dsc-indexer/internal/workflows"
)

// testExecutorMocks contains all the mocks needed for testing the executor
type testExecutorMocks struct {
	ctrl             *gomock.Controller
	ethClient        *mocks.MockEthereumClient
	processor        *mocks.MockProcessor
	auditor          *mocks.MockAuditor
	temporalActivity *mocks.MockActivity
	executor         workflows.Executor
}

// setupTestExecutor creates all the mocks and executor for testing
func setupTestExecutor(t *testing.T) *testExecutorMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testExecutorMocks{
		ctrl:             ctrl,
		ethClient:        mocks.NewMockEthereumClient(ctrl),
		processor:        mocks.NewMockProcessor(ctrl),
		auditor:          mocks.NewMockAuditor(ctrl),
		temporalActivity: mocks.NewMockActivity(ctrl),
	}

	tm.executor = workflows.NewExecutor(tm.ethClient, tm.processor, tm.auditor, tm.temporalActivity)
	return tm
}

func TestExecutor_GetLatestBlock(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.ethClient.EXPECT().BlockNumber(gomock.Any()).Return(uint64(6_000_000), nil)
	block, err := m.executor.GetLatestBlock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(6_000_000), block)

	m.ethClient.EXPECT().BlockNumber(gomock.Any()).Return(uint64(0), errors.New("dial tcp: i/o timeout"))
	_, err = m.executor.GetLatestBlock(context.Background())
	assert.ErrorContains(t, err, "failed to get latest block")
}

func TestExecutor_FetchProtocolEvents(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	events := []domain.ProtocolEvent{mintAt(10), mintAt(11)}
	m.ethClient.EXPECT().GetProtocolEvents(gomock.Any(), uint64(10), uint64(19)).Return(events, nil)

	got, err := m.executor.FetchProtocolEvents(context.Background(), 10, 19)
	require.NoError(t, err)
	assert.Equal(t, events, got)
}

func TestExecutor_FetchProtocolEvents_InvalidRange(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	_, err := m.executor.FetchProtocolEvents(context.Background(), 20, 19)
	require.Error(t, err)

	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.True(t, appErr.NonRetryable())
}

func TestExecutor_FetchProtocolEvents_Error(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	rpcErr := errors.New("header not found")
	m.ethClient.EXPECT().GetProtocolEvents(gomock.Any(), uint64(1), uint64(2)).Return(nil, rpcErr)

	_, err := m.executor.FetchProtocolEvents(context.Background(), 1, 2)
	assert.ErrorIs(t, err, rpcErr)
}

func TestExecutor_ApplyProtocolEvents(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	events := []domain.ProtocolEvent{mintAt(1), mintAt(2), mintAt(3)}
	gomock.InOrder(
		m.processor.EXPECT().Process(gomock.Any(), &events[0]).Return(true, nil),
		m.processor.EXPECT().Process(gomock.Any(), &events[1]).Return(false, nil),
		m.processor.EXPECT().Process(gomock.Any(), &events[2]).Return(true, nil),
	)

	result, err := m.executor.ApplyProtocolEvents(context.Background(), events)
	require.NoError(t, err)
	assert.Equal(t, &workflows.ApplyResult{Applied: 2, Duplicates: 1, LastBlock: 3}, result)
}

func TestExecutor_ApplyProtocolEvents_Heartbeat(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	events := make([]domain.ProtocolEvent, 250)
	for i := range events {
		events[i] = mintAt(uint64(i + 1))
	}

	m.processor.EXPECT().Process(gomock.Any(), gomock.Any()).Return(true, nil).Times(250)
	m.temporalActivity.EXPECT().RecordHeartbeat(gomock.Any(), 100)
	m.temporalActivity.EXPECT().RecordHeartbeat(gomock.Any(), 200)

	result, err := m.executor.ApplyProtocolEvents(context.Background(), events)
	require.NoError(t, err)
	assert.Equal(t, 250, result.Applied)
	assert.Equal(t, uint64(250), result.LastBlock)
}

func TestExecutor_ApplyProtocolEvents_PermanentError(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	events := []domain.ProtocolEvent{mintAt(1), mintAt(2)}
	m.processor.EXPECT().Process(gomock.Any(), gomock.Any()).Return(false, domain.ErrInvalidEventShape)

	_, err := m.executor.ApplyProtocolEvents(context.Background(), events)
	require.Error(t, err)

	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.True(t, appErr.NonRetryable())
	assert.Equal(t, "InvalidProtocolEvent", appErr.Type())
	assert.ErrorIs(t, err, domain.ErrInvalidEventShape)
}

func TestExecutor_ApplyProtocolEvents_TransientError(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	dbErr := errors.New("deadlock detected")
	events := []domain.ProtocolEvent{mintAt(1), mintAt(2)}
	gomock.InOrder(
		m.processor.EXPECT().Process(gomock.Any(), gomock.Any()).Return(true, nil),
		m.processor.EXPECT().Process(gomock.Any(), gomock.Any()).Return(false, dbErr),
	)

	_, err := m.executor.ApplyProtocolEvents(context.Background(), events)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)

	var appErr *temporal.ApplicationError
	assert.False(t, errors.As(err, &appErr))
}

func TestExecutor_Audit(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	totals := &audit.Report{}
	months := &audit.Report{CheckedMonths: 3}
	m.auditor.EXPECT().AuditProtocol(gomock.Any()).Return(totals, nil)
	m.auditor.EXPECT().AuditMonths(gomock.Any()).Return(months, nil)

	got, err := m.executor.AuditProtocolTotals(context.Background())
	require.NoError(t, err)
	assert.Same(t, totals, got)

	got, err = m.executor.AuditMonthlyStats(context.Background())
	require.NoError(t, err)
	assert.Same(t, months, got)

	storeErr := errors.New("too many connections")
	m.auditor.EXPECT().AuditProtocol(gomock.Any()).Return(nil, storeErr)
	m.auditor.EXPECT().AuditMonths(gomock.Any()).Return(nil, storeErr)

	_, err = m.executor.AuditProtocolTotals(context.Background())
	assert.ErrorIs(t, err, storeErr)
	_, err = m.executor.AuditMonthlyStats(context.Background())
	assert.ErrorIs(t, err, storeErr)
}
