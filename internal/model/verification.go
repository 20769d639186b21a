package model

import "time"

// Verification document categories.
const (
	CategoryDisabilityCertificate = "disability_certificate"
	CategoryBenefitCertificate    = "benefit_certificate"
)

// VerificationCategories is the closed set of accepted document categories.
var VerificationCategories = []string{
	CategoryDisabilityCertificate,
	CategoryBenefitCertificate,
}

// VerificationDocument records an uploaded identity document. A record is
// immutable once written; re-uploading a category creates a new record that
// supersedes the old one rather than mutating it.
type VerificationDocument struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Category    string    `json:"category"`
	StoragePath string    `json:"storage_path"`
	DownloadURL string    `json:"download_url"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}
