package messaging

import (
	"context"
	"fmt"
	"strings"

	"github.com/dsc-protocol/dsc-indexer/internal/domain"
)

// SubjectPrefix is the root of every protocol event subject
const SubjectPrefix = "events"

// SubjectWildcard matches every protocol event subject
const SubjectWildcard = SubjectPrefix + ".>"

// EventHandler is called for every decoded protocol event, in chain order
type EventHandler func(event *domain.ProtocolEvent) error

// Publisher sends protocol events to the message broker
//
//go:generate mockgen -source=messaging.go -destination=../mocks/messaging.go -package=mocks -mock_names=Publisher=MockPublisher,Subscriber=MockSubscriber
type Publisher interface {
	// PublishEvent publishes a protocol event
	PublishEvent(ctx context.Context, event *domain.ProtocolEvent) error
	// Close closes the connection
	Close()
	// CloseChan is closed once the underlying connection is gone for good
	CloseChan() <-chan struct{}
}

// Subscriber streams protocol events from the chain
type Subscriber interface {
	// SubscribeEvents delivers events from fromBlock onwards and then follows the chain head.
	// It returns when ctx is cancelled, the subscription fails or handler returns an error
	SubscribeEvents(ctx context.Context, fromBlock uint64, handler EventHandler) error

	// GetLatestBlock returns the latest block number
	GetLatestBlock(ctx context.Context) (uint64, error)

	// Close closes the connection and cleans up resources
	Close()
}

// Subject returns the subject an event is published on: events.<chain>.<event_type>.
// with the CAIP-2 colon replaced by an underscore
func Subject(event *domain.ProtocolEvent) string {
	return fmt.Sprintf("%s.%s.%s", SubjectPrefix, strings.ReplaceAll(string(event.Chain), ":", "_"), event.EventType)
}
