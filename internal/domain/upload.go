package domain

import "time"

type UploadStatus string

const (
	StatusIdle      UploadStatus = "idle"
	StatusUploading UploadStatus = "uploading"
	StatusUploaded  UploadStatus = "uploaded"
	StatusError     UploadStatus = "error"
)

// CanStart reports whether an upload may begin from this status.
// Error is retryable; uploaded is terminal until restart.
func (s UploadStatus) CanStart() bool {
	return s == StatusIdle || s == StatusError || s == ""
}

type UploadResult struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// UploadReport holds per-platform outcomes of a fan-out upload.
type UploadReport struct {
	Results  map[Platform]UploadResult
	Failures map[Platform]error
}

func NewUploadReport() *UploadReport {
	return &UploadReport{
		Results:  make(map[Platform]UploadResult),
		Failures: make(map[Platform]error),
	}
}

// Publication is one successful upload kept in history.
type Publication struct {
	ID          string
	Platform    Platform
	ExternalID  string
	URL         string
	Title       string
	Username    string
	PublishedAt time.Time
}
