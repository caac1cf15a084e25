package adapter

import (
	"context"

	"go.temporal.io/sdk/activity"
)

// Activity exposes the activity context helpers used by long running activities
//
//go:generate mockgen -source=temporal.go -destination=../mocks/temporal.go -package=mocks -mock_names=Activity=MockActivity
type Activity interface {
	// GetInfo returns the activity info
	GetInfo(ctx context.Context) activity.Info

	// RecordHeartbeat reports progress so the server can detect stalled activities
	RecordHeartbeat(ctx context.Context, details ...interface{})
}

type temporalActivity struct{}

// NewActivity returns the sdk backed activity helper
func NewActivity() Activity {
	return temporalActivity{}
}

func (temporalActivity) GetInfo(ctx context.Context) activity.Info {
	return activity.GetInfo(ctx)
}

func (temporalActivity) RecordHeartbeat(ctx context.Context, details ...interface{}) {
	activity.RecordHeartbeat(ctx, details...)
}
