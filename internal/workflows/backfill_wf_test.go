package workflows_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
	"github.com/dsc-protocol/dsc-indexer/internal/mocks/workflowmocks"
	"github.com/dsc-protocol/dsc-indexer/internal/workflows"
)

// BackfillWorkflowTestSuite is the test suite for the block range backfill workflow
type BackfillWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env        *testsuite.TestWorkflowEnvironment
	ctrl       *gomock.Controller
	executor   *workflowmocks.MockCoreExecutor
	workerCore workflows.WorkerCore
}

// SetupTest is called before each test
func (s *BackfillWorkflowTestSuite) SetupTest() {
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.env = s.NewTestWorkflowEnvironment()
	s.ctrl = gomock.NewController(s.T())
	s.executor = workflowmocks.NewMockCoreExecutor(s.ctrl)
	s.workerCore = workflows.NewWorkerCore(s.executor, workflows.WorkerCoreConfig{
		EthereumChainID:  domain.ChainEthereumSepolia,
		DefaultChunkSize: 100,
	})
}

// TearDownTest is called after each test
func (s *BackfillWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

// TestBackfillWorkflowTestSuite runs the test suite
func TestBackfillWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(BackfillWorkflowTestSuite))
}

func stringPtr(s string) *string {
	return &s
}

func mintAt(block uint64) domain.ProtocolEvent {
	return domain.ProtocolEvent{
		Chain:           domain.ChainEthereumSepolia,
		EventType:       domain.EventTypeTransfer,
		ContractAddress: "0x1000000000000000000000000000000000000001",
		FromAddress:     stringPtr(domain.ETHEREUM_ZERO_ADDRESS),
		ToAddress:       stringPtr("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		Amount:          "1",
		TxHash:          fmt.Sprintf("0x%064x", block),
		BlockNumber:     block,
		Timestamp:       time.Unix(1710460800+int64(block)*12, 0).UTC(),
	}
}

func (s *BackfillWorkflowTestSuite) TestIndexBlockRange_Chunks() {
	first := []domain.ProtocolEvent{mintAt(3), mintAt(7)}
	last := []domain.ProtocolEvent{mintAt(21)}

	s.env.OnActivity(s.executor.FetchProtocolEvents, mock.Anything, uint64(0), uint64(9)).Return(first, nil).Once()
	s.env.OnActivity(s.executor.FetchProtocolEvents, mock.Anything, uint64(10), uint64(19)).Return([]domain.ProtocolEvent{}, nil).Once()
	s.env.OnActivity(s.executor.FetchProtocolEvents, mock.Anything, uint64(20), uint64(24)).Return(last, nil).Once()

	s.env.OnActivity(s.executor.ApplyProtocolEvents, mock.Anything, first).
		Return(&workflows.ApplyResult{Applied: 2, LastBlock: 7}, nil).Once()
	s.env.OnActivity(s.executor.ApplyProtocolEvents, mock.Anything, last).
		Return(&workflows.ApplyResult{Duplicates: 1, LastBlock: 21}, nil).Once()

	s.env.ExecuteWorkflow(s.workerCore.IndexBlockRange, workflows.BlockRange{From: 0, To: 24, ChunkSize: 10})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var result workflows.BackfillResult
	s.NoError(s.env.GetWorkflowResult(&result))
	s.Equal(workflows.BackfillResult{
		FromBlock:  0,
		ToBlock:    24,
		Chunks:     3,
		Events:     3,
		Applied:    2,
		Duplicates: 1,
	}, result)
}

func (s *BackfillWorkflowTestSuite) TestIndexBlockRange_UpToChainHead() {
	events := []domain.ProtocolEvent{mintAt(12)}

	s.env.OnActivity(s.executor.GetLatestBlock, mock.Anything).Return(uint64(15), nil).Once()
	// the configured default chunk covers the whole range
	s.env.OnActivity(s.executor.FetchProtocolEvents, mock.Anything, uint64(5), uint64(15)).Return(events, nil).Once()
	s.env.OnActivity(s.executor.ApplyProtocolEvents, mock.Anything, events).
		Return(&workflows.ApplyResult{Applied: 1, LastBlock: 12}, nil).Once()

	s.env.ExecuteWorkflow(s.workerCore.IndexBlockRange, workflows.BlockRange{From: 5})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var result workflows.BackfillResult
	s.NoError(s.env.GetWorkflowResult(&result))
	s.Equal(uint64(15), result.ToBlock)
	s.Equal(1, result.Chunks)
	s.Equal(1, result.Applied)
}

func (s *BackfillWorkflowTestSuite) TestIndexBlockRange_SingleBlock() {
	s.env.OnActivity(s.executor.FetchProtocolEvents, mock.Anything, uint64(42), uint64(42)).Return([]domain.ProtocolEvent{}, nil).Once()

	s.env.ExecuteWorkflow(s.workerCore.IndexBlockRange, workflows.BlockRange{From: 42, To: 42, ChunkSize: 10})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var result workflows.BackfillResult
	s.NoError(s.env.GetWorkflowResult(&result))
	s.Equal(1, result.Chunks)
	s.Equal(0, result.Events)
}

func (s *BackfillWorkflowTestSuite) TestIndexBlockRange_InvalidRange() {
	s.env.ExecuteWorkflow(s.workerCore.IndexBlockRange, workflows.BlockRange{From: 100, To: 50})

	s.True(s.env.IsWorkflowCompleted())
	err := s.env.GetWorkflowError()
	s.Error(err)

	var appErr *temporal.ApplicationError
	s.True(errors.As(err, &appErr))
	s.Equal("InvalidBlockRange", appErr.Type())
}

func (s *BackfillWorkflowTestSuite) TestIndexBlockRange_LatestBlockError() {
	s.env.OnActivity(s.executor.GetLatestBlock, mock.Anything).Return(uint64(0), errors.New("rpc unavailable"))

	s.env.ExecuteWorkflow(s.workerCore.IndexBlockRange, workflows.BlockRange{From: 1})

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

func (s *BackfillWorkflowTestSuite) TestIndexBlockRange_FetchError() {
	s.env.OnActivity(s.executor.FetchProtocolEvents, mock.Anything, uint64(0), uint64(9)).
		Return(nil, errors.New("query returned more than 10000 results"))

	s.env.ExecuteWorkflow(s.workerCore.IndexBlockRange, workflows.BlockRange{From: 0, To: 30, ChunkSize: 10})

	s.True(s.env.IsWorkflowCompleted())
	err := s.env.GetWorkflowError()
	s.Error(err)
	s.Contains(err.Error(), "query returned more than 10000 results")
}

func (s *BackfillWorkflowTestSuite) TestIndexBlockRange_ApplyErrorStopsBackfill() {
	events := []domain.ProtocolEvent{mintAt(2)}

	s.env.OnActivity(s.executor.FetchProtocolEvents, mock.Anything, uint64(0), uint64(9)).Return(events, nil).Once()
	s.env.OnActivity(s.executor.ApplyProtocolEvents, mock.Anything, events).
		Return(nil, temporal.NewNonRetryableApplicationError("failed to apply event", "InvalidProtocolEvent", domain.ErrInvalidAmount)).Once()

	s.env.ExecuteWorkflow(s.workerCore.IndexBlockRange, workflows.BlockRange{From: 0, To: 30, ChunkSize: 10})

	s.True(s.env.IsWorkflowCompleted())
	err := s.env.GetWorkflowError()
	s.Error(err)

	var appErr *temporal.ApplicationError
	s.True(errors.As(err, &appErr))
	s.Equal("InvalidProtocolEvent", appErr.Type())
}

func TestWorkflowIDs(t *testing.T) {
	backfill := workflows.BackfillWorkflowID()
	audit := workflows.AuditWorkflowID()

	assert.True(t, strings.HasPrefix(backfill, "backfill-"))
	assert.Len(t, backfill, len("backfill-")+26)
	assert.True(t, strings.HasPrefix(audit, "audit-"))
	assert.Len(t, audit, len("audit-")+26)
	assert.NotEqual(t, backfill, workflows.BackfillWorkflowID())
}
