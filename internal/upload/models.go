package upload

import "time"

// FileDescriptor captures one incoming upload for the duration of a request.
type FileDescriptor struct {
	Filename    string
	ContentType string
	Size        int64
	Content     []byte
}

// Result is the payload returned for a successful upload.
type Result struct {
	Success     bool      `json:"success"`
	URL         string    `json:"url"`
	Filename    string    `json:"filename"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	UploadedAt  time.Time `json:"upload_timestamp"`

	Key string `json:"-"`
}
