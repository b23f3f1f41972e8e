package resource

import (
	"fmt"
	"time"

	"github.com/yungtweek/mockai/internal/mock"
)

type BatchOperationInput struct {
	Operation  string         `json:"operation"`
	Parameters map[string]any `json:"parameters"`
}

// CreateBatch validates the operation list, registers a running batch with its
// creation event and arms the auto-completion timer. Any structurally invalid
// operation aborts the whole creation.
func (r *Registry) CreateBatch(ops []BatchOperationInput) (*Batch, *Error) {
	if len(ops) == 0 {
		return nil, InvalidRequest("operations array is required and must not be empty", "operations")
	}
	for i, op := range ops {
		if op.Operation == "" || op.Parameters == nil {
			return nil, InvalidRequest(
				fmt.Sprintf("Invalid operation at index %d", i),
				fmt.Sprintf("operations[%d]", i),
			)
		}
	}

	now := r.now()
	b := &Batch{
		ID:              mock.NewID("batch_"),
		Object:          "batch",
		CreatedAt:       now,
		Status:          BatchRunning,
		TotalOperations: len(ops),
	}
	for _, op := range ops {
		b.Operations = append(b.Operations, &BatchOperation{
			Operation:  op.Operation,
			Parameters: op.Parameters,
			ID:         mock.NewID("op_"),
			Status:     OperationPending,
			CreatedAt:  now,
		})
	}

	r.Batches.Insert(b)
	// The creation event is back-dated so it sorts clearly before anything
	// the batch does afterwards.
	r.BatchEvents.Append(b.ID, newEvent("batch.event", "Batch processing job has been created", now-100))

	time.AfterFunc(r.BatchCompletionDelay, func() { r.completeBatch(b.ID) })

	return b, nil
}

// completeBatch is the timer half of the auto-completion race. The status
// check and the mutation run under the store lock, so whichever of cancel and
// the timer arrives second observes the terminal state and no-ops.
func (r *Registry) completeBatch(id string) {
	var completed bool
	_ = r.Batches.Update(id, func(b *Batch) error {
		if b.Status != BatchRunning {
			return nil
		}
		now := r.now()
		b.Status = BatchSucceeded
		b.FinishedAt = &now
		b.CompletedOperations = b.TotalOperations
		startedAt := b.CreatedAt + 1
		for _, op := range b.Operations {
			op.Status = OperationSucceeded
			op.StartedAt = &startedAt
			op.FinishedAt = &now
			op.Result = &OperationResult{Output: "Mock output for " + op.Operation}
		}
		completed = true
		return nil
	})
	if completed {
		r.BatchEvents.Append(id, newEvent("batch.event", "All operations completed successfully", r.now()))
	}
}

// CancelBatch moves a running batch and its still-pending operations to
// cancelled. Once cancelled, the auto-completion timer finds a terminal status
// and does nothing.
func (r *Registry) CancelBatch(id string) (*Batch, *Error) {
	var (
		cancelled *Batch
		opErr     *Error
	)
	if err := r.Batches.Update(id, func(b *Batch) error {
		if b.Status != BatchRunning {
			opErr = InvalidRequest(fmt.Sprintf("Batch is %s, cannot be cancelled", b.Status), "")
			return nil
		}
		now := r.now()
		b.Status = BatchCancelled
		b.FinishedAt = &now
		for _, op := range b.Operations {
			if op.Status == OperationPending {
				op.Status = OperationCancelled
				op.FinishedAt = &now
			}
		}
		cancelled = b
		return nil
	}); err != nil {
		return nil, NotFound("Batch not found")
	}
	if opErr != nil {
		return nil, opErr
	}

	r.BatchEvents.Append(id, newEvent("batch.event", "Batch processing cancelled", r.now()))
	return cancelled, nil
}

// ListBatchEvents pages through a batch's event log. The parent must exist
// even when it has no events.
func (r *Registry) ListBatchEvents(id, after string, limit int) ([]*Event, bool, *Error) {
	if _, ok := r.Batches.Get(id); !ok {
		return nil, false, NotFound("Batch not found")
	}
	events, hasMore := r.BatchEvents.List(id, after, limit)
	return events, hasMore, nil
}
