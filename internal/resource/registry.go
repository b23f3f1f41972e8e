package resource

import (
	"time"

	"github.com/yungtweek/mockai/internal/mock"
	"github.com/yungtweek/mockai/internal/store"
)

// Registry owns every resource collection of a server instance. One registry
// is constructed per process (or per test) and handed to the handlers, so
// tests get isolated state instead of sharing process-wide maps.
type Registry struct {
	Uploads *store.Store[*Upload]
	Batches *store.Store[*Batch]
	Jobs    *store.Store[*FineTuningJob]
	Files   *store.Store[*File]

	BatchEvents *store.Log[*Event]
	JobEvents   *store.Log[*Event]

	// BatchCompletionDelay is how long a batch stays running before the
	// auto-success timer fires.
	BatchCompletionDelay time.Duration

	now func() int64
}

func NewRegistry(batchCompletionDelay time.Duration) *Registry {
	return &Registry{
		Uploads:              store.New[*Upload](),
		Batches:              store.New[*Batch](),
		Jobs:                 store.New[*FineTuningJob](),
		Files:                store.New[*File](),
		BatchEvents:          store.NewLog[*Event](),
		JobEvents:            store.NewLog[*Event](),
		BatchCompletionDelay: batchCompletionDelay,
		now:                  func() int64 { return time.Now().Unix() },
	}
}

func newEvent(object, message string, createdAt int64) *Event {
	return &Event{
		ID:        mock.NewID("evt_"),
		Object:    object,
		CreatedAt: createdAt,
		Level:     "info",
		Message:   message,
		Type:      "message",
	}
}
