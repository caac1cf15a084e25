package workflows

import (
	"github.com/oklog/ulid/v2"
	"go.temporal.io/sdk/workflow"

	"github.com/dsc-protocol/dsc-indexer/internal/audit"
	"github.com/dsc-protocol/dsc-indexer/internal/domain"
)

const (
	// TaskQueueCore is the task queue served by the core worker
	TaskQueueCore = "dsc-indexer-core"

	DEFAULT_CHUNK_SIZE = 10_000
)

// BlockRange is the input of IndexBlockRange. To = 0 means the chain head at start time
type BlockRange struct {
	From      uint64 `json:"from"`
	To        uint64 `json:"to"`
	ChunkSize uint64 `json:"chunkSize"`
}

// BackfillResult summarizes an IndexBlockRange run
type BackfillResult struct {
	FromBlock  uint64 `json:"fromBlock"`
	ToBlock    uint64 `json:"toBlock"`
	Chunks     int    `json:"chunks"`
	Events     int    `json:"events"`
	Applied    int    `json:"applied"`
	Duplicates int    `json:"duplicates"`
}

// WorkerCore defines the workflows hosted by the core worker
//
//go:generate mockgen -source=worker.go -destination=../mocks/workflowmocks/worker_core.go -package=workflowmocks -mock_names=WorkerCore=MockCoreWorker
type WorkerCore interface {
	// IndexBlockRange replays the protocol events of a historical block range through the aggregation core
	IndexBlockRange(ctx workflow.Context, blockRange BlockRange) (*BackfillResult, error)

	// AuditProtocolStats checks the aggregates against the interaction records without writing
	AuditProtocolStats(ctx workflow.Context) (*audit.Report, error)
}

type WorkerCoreConfig struct {
	// EthereumChainID is the chain the backfill reads from
	EthereumChainID domain.Chain
	// DefaultChunkSize is used when a BlockRange carries no chunk size
	DefaultChunkSize uint64
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	config   WorkerCoreConfig
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor, config WorkerCoreConfig) WorkerCore {
	if config.DefaultChunkSize == 0 {
		config.DefaultChunkSize = DEFAULT_CHUNK_SIZE
	}
	return &workerCore{
		executor: executor,
		config:   config,
	}
}

// BackfillWorkflowID returns a fresh id for an IndexBlockRange run
func BackfillWorkflowID() string {
	return "backfill-" + ulid.Make().String()
}

// AuditWorkflowID returns a fresh id for an AuditProtocolStats run
func AuditWorkflowID() string {
	return "audit-" + ulid.Make().String()
}
