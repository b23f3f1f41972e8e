package resource

import (
	"fmt"

	"github.com/yungtweek/mockai/internal/mock"
)

const (
	// MaxUploadBytes caps the declared total size of an upload.
	MaxUploadBytes = int64(8) << 30 // 8 GiB
	// MaxPartBytes caps a single uploaded part.
	MaxPartBytes = int64(64) << 20 // 64 MiB

	uploadTTLSeconds = 3600
)

type UploadParams struct {
	Filename string `json:"filename"`
	Purpose  string `json:"purpose"`
	Bytes    int64  `json:"bytes"`
	MimeType string `json:"mime_type"`
}

// CreateUpload validates the declared metadata and registers a new pending
// upload. The expiry stamp is informational only; nothing enforces it.
func (r *Registry) CreateUpload(p UploadParams) (*Upload, *Error) {
	if p.Filename == "" || p.Purpose == "" || p.Bytes == 0 || p.MimeType == "" {
		param := "mime_type"
		switch {
		case p.Filename == "":
			param = "filename"
		case p.Purpose == "":
			param = "purpose"
		case p.Bytes == 0:
			param = "bytes"
		}
		return nil, InvalidRequest("Missing required fields", param)
	}
	if p.Bytes > MaxUploadBytes {
		return nil, InvalidRequest("Upload size cannot exceed 8GB", "bytes")
	}

	now := r.now()
	u := &Upload{
		ID:        mock.NewID("upload_"),
		Object:    "upload",
		Bytes:     p.Bytes,
		CreatedAt: now,
		Filename:  p.Filename,
		Purpose:   p.Purpose,
		Status:    UploadPending,
		ExpiresAt: now + uploadTTLSeconds,
		MimeType:  p.MimeType,
		Parts:     make(map[string]*Part),
	}
	r.Uploads.Insert(u)
	return u, nil
}

// AddUploadPart appends a part to a pending upload. The uploaded-byte counter
// may never exceed the declared total, and a single part may not exceed
// MaxPartBytes; violating calls leave the upload untouched.
func (r *Registry) AddUploadPart(uploadID string, data []byte) (*Part, *Error) {
	var part *Part
	if err := r.withUpload(uploadID, func(u *Upload) *Error {
		if u.Status != UploadPending {
			return InvalidRequest(fmt.Sprintf("Upload is %s, cannot add parts", u.Status), "")
		}
		if len(data) == 0 {
			return InvalidRequest("No data provided", "data")
		}
		size := int64(len(data))
		if size > MaxPartBytes {
			return InvalidRequest("Part size cannot exceed 64MB", "data")
		}
		if u.UploadedBytes+size > u.Bytes {
			return InvalidRequest("Total uploaded bytes would exceed specified size", "data")
		}

		part = &Part{
			ID:        mock.NewID("part_"),
			Object:    "upload.part",
			CreatedAt: r.now(),
			UploadID:  u.ID,
			Size:      size,
			Data:      data,
		}
		u.Parts[part.ID] = part
		u.UploadedBytes += size
		return nil
	}); err != nil {
		return nil, err
	}
	return part, nil
}

// CompleteUpload verifies the caller-supplied part list and the byte totals,
// synthesizes the resulting File and moves the upload to completed. A second
// complete on the same upload fails the status check; no file is
// re-synthesized.
func (r *Registry) CompleteUpload(uploadID string, partIDs []string) (*Upload, *Error) {
	var completed *Upload
	if err := r.withUpload(uploadID, func(u *Upload) *Error {
		if u.Status != UploadPending {
			return InvalidRequest(fmt.Sprintf("Upload is %s, cannot complete", u.Status), "")
		}
		if len(partIDs) == 0 {
			return InvalidRequest("part_ids must be a non-empty array", "part_ids")
		}
		for _, id := range partIDs {
			if _, ok := u.Parts[id]; !ok {
				return InvalidRequest(fmt.Sprintf("Part %s not found", id), "part_ids")
			}
		}
		if u.UploadedBytes != u.Bytes {
			return InvalidRequest("Total uploaded bytes does not match specified size", "")
		}

		now := r.now()
		u.File = &File{
			ID:        mock.NewID("file_"),
			Object:    "file",
			Bytes:     u.Bytes,
			CreatedAt: now,
			Filename:  u.Filename,
			Purpose:   u.Purpose,
		}
		u.Status = UploadCompleted
		u.FinishedAt = &now
		completed = u
		return nil
	}); err != nil {
		return nil, err
	}
	return completed, nil
}

// CancelUpload moves a pending upload to cancelled. Parts already added stay
// in place; the upload just stops accepting mutations.
func (r *Registry) CancelUpload(uploadID string) (*Upload, *Error) {
	var cancelled *Upload
	if err := r.withUpload(uploadID, func(u *Upload) *Error {
		if u.Status != UploadPending {
			return InvalidRequest(fmt.Sprintf("Upload is %s, cannot cancel", u.Status), "")
		}
		now := r.now()
		u.Status = UploadCancelled
		u.FinishedAt = &now
		cancelled = u
		return nil
	}); err != nil {
		return nil, err
	}
	return cancelled, nil
}

// withUpload runs fn against the upload under the store lock, translating a
// missing ID into the wire-level not-found error.
func (r *Registry) withUpload(id string, fn func(*Upload) *Error) *Error {
	var opErr *Error
	if err := r.Uploads.Update(id, func(u *Upload) error {
		opErr = fn(u)
		return nil
	}); err != nil {
		return NotFound("Upload not found")
	}
	return opErr
}
