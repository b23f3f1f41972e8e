package resource

import (
	"fmt"

	"github.com/yungtweek/mockai/internal/mock"
)

type JobParams struct {
	Model           string `json:"model"`
	TrainingFile    string `json:"training_file"`
	Hyperparameters any    `json:"hyperparameters"`
	Suffix          string `json:"suffix"`
}

// CreateJob registers a running fine-tuning job with its creation event.
// Unlike batches, jobs never auto-succeed: they stay running until an explicit
// cancel. That asymmetry matches the emulated API.
func (r *Registry) CreateJob(p JobParams) (*FineTuningJob, *Error) {
	if p.Model == "" || p.TrainingFile == "" {
		param := "training_file"
		if p.Model == "" {
			param = "model"
		}
		return nil, InvalidRequest("model and training_file are required", param)
	}

	now := r.now()
	j := &FineTuningJob{
		ID:              mock.NewID("ftjob_"),
		Object:          "fine_tuning.job",
		Model:           p.Model,
		CreatedAt:       now,
		OrganizationID:  "org-123456",
		ResultFiles:     []string{},
		Status:          JobRunning,
		TrainingFile:    p.TrainingFile,
		Hyperparameters: p.Hyperparameters,
		Suffix:          p.Suffix,
	}

	r.Jobs.Insert(j)
	r.JobEvents.Append(j.ID, newEvent("fine_tuning.job.event", "Fine-tuning job has been created", now-100))

	return j, nil
}

// CancelJob moves a running job to cancelled; any terminal status is a
// conflict.
func (r *Registry) CancelJob(id string) (*FineTuningJob, *Error) {
	var (
		cancelled *FineTuningJob
		opErr     *Error
	)
	if err := r.Jobs.Update(id, func(j *FineTuningJob) error {
		switch j.Status {
		case JobSucceeded, JobFailed, JobCancelled:
			opErr = InvalidRequest(fmt.Sprintf("Fine-tuning job %s, cannot be cancelled", j.Status), "")
			return nil
		}
		now := r.now()
		j.Status = JobCancelled
		j.FinishedAt = &now
		cancelled = j
		return nil
	}); err != nil {
		return nil, NotFound("No fine-tuning job found")
	}
	if opErr != nil {
		return nil, opErr
	}
	return cancelled, nil
}

// ListJobEvents pages through a job's event log, requiring the parent to
// exist.
func (r *Registry) ListJobEvents(id, after string, limit int) ([]*Event, bool, *Error) {
	if _, ok := r.Jobs.Get(id); !ok {
		return nil, false, NotFound("No fine-tuning job found")
	}
	events, hasMore := r.JobEvents.List(id, after, limit)
	return events, hasMore, nil
}
