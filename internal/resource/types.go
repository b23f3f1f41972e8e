// Package resource holds the stateful entities of the mock server and their
// lifecycle state machines: uploads (pending -> completed|cancelled), batches
// (running -> succeeded|cancelled) and fine-tuning jobs (running ->
// succeeded|failed|cancelled). All transitions are synchronous HTTP-triggered
// operations except batch auto-completion, which fires on a timer.
package resource

// Upload statuses.
const (
	UploadPending   = "pending"
	UploadCompleted = "completed"
	UploadCancelled = "cancelled"
)

// Batch and batch-operation statuses.
const (
	BatchRunning   = "running"
	BatchSucceeded = "succeeded"
	BatchCancelled = "cancelled"

	OperationPending   = "pending"
	OperationSucceeded = "succeeded"
	OperationCancelled = "cancelled"
)

// Fine-tuning job statuses.
const (
	JobRunning   = "running"
	JobSucceeded = "succeeded"
	JobFailed    = "failed"
	JobCancelled = "cancelled"
)

type Upload struct {
	ID         string `json:"id"`
	Object     string `json:"object"`
	Bytes      int64  `json:"bytes"`
	CreatedAt  int64  `json:"created_at"`
	FinishedAt *int64 `json:"finished_at"`
	Filename   string `json:"filename"`
	Purpose    string `json:"purpose"`
	Status     string `json:"status"`
	ExpiresAt  int64  `json:"expires_at"`
	MimeType   string `json:"mime_type"`
	File       *File  `json:"file,omitempty"`

	// Parts are owned exclusively by their upload and never serialized.
	Parts         map[string]*Part `json:"-"`
	UploadedBytes int64            `json:"-"`
}

func (u *Upload) Key() string { return u.ID }

type Part struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	CreatedAt int64  `json:"created_at"`
	UploadID  string `json:"upload_id"`

	Size int64  `json:"-"`
	Data []byte `json:"-"`
}

type Batch struct {
	ID                  string            `json:"id"`
	Object              string            `json:"object"`
	CreatedAt           int64             `json:"created_at"`
	FinishedAt          *int64            `json:"finished_at"`
	Status              string            `json:"status"`
	Operations          []*BatchOperation `json:"operations"`
	TotalOperations     int               `json:"total_operations"`
	CompletedOperations int               `json:"completed_operations"`
	FailedOperations    int               `json:"failed_operations"`
	Error               any               `json:"error"`
}

func (b *Batch) Key() string { return b.ID }

type BatchOperation struct {
	Operation  string           `json:"operation"`
	Parameters map[string]any   `json:"parameters"`
	ID         string           `json:"id"`
	Status     string           `json:"status"`
	CreatedAt  int64            `json:"created_at"`
	StartedAt  *int64           `json:"started_at"`
	FinishedAt *int64           `json:"finished_at"`
	Error      any              `json:"error"`
	Result     *OperationResult `json:"result,omitempty"`
}

type OperationResult struct {
	Output string `json:"output"`
}

type FineTuningJob struct {
	ID              string   `json:"id"`
	Object          string   `json:"object"`
	Model           string   `json:"model"`
	CreatedAt       int64    `json:"created_at"`
	FinishedAt      *int64   `json:"finished_at"`
	FineTunedModel  any      `json:"fine_tuned_model"`
	OrganizationID  string   `json:"organization_id"`
	ResultFiles     []string `json:"result_files"`
	Status          string   `json:"status"`
	ValidationFile  any      `json:"validation_file"`
	TrainingFile    string   `json:"training_file"`
	Hyperparameters any      `json:"hyperparameters,omitempty"`
	Suffix          string   `json:"suffix,omitempty"`
	TrainedTokens   int      `json:"trained_tokens"`
	Error           any      `json:"error"`
}

func (j *FineTuningJob) Key() string { return j.ID }

type File struct {
	ID            string `json:"id"`
	Object        string `json:"object"`
	Bytes         int64  `json:"bytes"`
	CreatedAt     int64  `json:"created_at"`
	Filename      string `json:"filename"`
	Purpose       string `json:"purpose"`
	Status        string `json:"status"`
	StatusDetails any    `json:"status_details"`

	Content []byte `json:"-"`
}

func (f *File) Key() string { return f.ID }

// Event is one append-only lifecycle log entry, owned by exactly one batch or
// fine-tuning job.
type Event struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	CreatedAt int64  `json:"created_at"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	Type      string `json:"type"`
}

func (e *Event) Key() string { return e.ID }
