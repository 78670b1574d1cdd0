package models

import (
	"fmt"
	"time"
)

// Document represents one uploaded claim document
type Document struct {
	ID            string    `json:"id"`
	ClaimID       string    `json:"claim_id"`
	FieldLabel    string    `json:"field_label"` // grouping label shown in reports
	FileName      string    `json:"file_name"`
	ContentType   string    `json:"content_type"`
	SizeBytes     int64     `json:"size_bytes"`
	StoragePath   string    `json:"storage_path"`
	ExtractedText string    `json:"extracted_text,omitempty"`
	UploadedAt    time.Time `json:"uploaded_at"`
}

// HumanSize renders the document size for display (1.5 KB, 2.3 MB)
func (d Document) HumanSize() string {
	const unit = 1024
	if d.SizeBytes < unit {
		return fmt.Sprintf("%d B", d.SizeBytes)
	}
	div, exp := int64(unit), 0
	for n := d.SizeBytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(d.SizeBytes)/float64(div), "KMGTPE"[exp])
}
