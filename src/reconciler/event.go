package reconciler

import (
	"time"

	"heating-temp-receiver/src/notify"
	"heating-temp-receiver/src/store"

	"go.uber.org/zap"
)

// EventKind discriminates the shapes of incoming Lambda events after
// transport decoding.
type EventKind int

const (
	// ReadingBatch carries object references to uploaded reading files.
	ReadingBatch EventKind = iota
	// Heartbeat is a scheduled tick with no payload.
	Heartbeat
	// Unrecognized is anything else.
	Unrecognized
)

// ObjectRef names one uploaded reading batch in the object store.
type ObjectRef struct {
	Bucket string
	Key    string
}

// Event is the decoded invocation payload handed to Reconcile.
// Records is only populated for ReadingBatch.
type Event struct {
	Kind    EventKind
	Records []ObjectRef
}

// Env is the execution context for one invocation: the external
// collaborators, the bucket holding config and status, a clock, and a
// logger. There are no ambient singletons; everything the reconciler
// touches comes in here.
type Env struct {
	Store        store.ObjectStore
	Notifier     notify.Notifier
	LambdaBucket string
	Now          func() time.Time
	Log          *zap.Logger
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}
