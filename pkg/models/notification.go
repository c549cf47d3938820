package models

import "time"

// Blob-store actions that start plan processing. Anything else is ignored.
const (
	ActionPutObject               = "PutObject"
	ActionCompleteMultipartUpload = "CompleteMultipartUpload"
	ActionDeleteObject            = "DeleteObject"
)

// UploadNotification describes a blob-store write, as delivered to the
// orchestrator. The upload API produces these directly; an external bucket
// notification feed can produce the same shape.
type UploadNotification struct {
	Bucket    string    `json:"bucket"`
	ObjectKey string    `json:"objectKey"`
	Action    string    `json:"action"`
	Size      int64     `json:"size"`
	EventTime time.Time `json:"eventTime"`
}
