package constants

import (
	"time"

	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/types"
	"github.com/dsc-protocol/dsc-indexer/internal/store"
)

const (
	DEFAULT_LIMIT  = store.DefaultListLimit
	MAX_LIMIT      = store.MaxListLimit
	DEFAULT_OFFSET = 0

	// DEFAULT_REST_ORDER lists the most recent records first on REST, GraphQL keeps ascending
	DEFAULT_REST_ORDER = types.OrderDesc

	MAX_BACKFILL_CHUNK_SIZE = 100_000

	BACKFILL_WORKFLOW_TIMEOUT = 24 * time.Hour
	AUDIT_WORKFLOW_TIMEOUT    = time.Hour
)
