package ports

import (
	"context"
	"time"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// ObjectStore is a write-once object bucket, keyed by bucket and path.
type ObjectStore interface {
	// Put stores data under (bucket, key). Overwriting an existing object
	// fails with domain.ErrObjectExists.
	Put(ctx context.Context, bucket, key string, data []byte) error
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	// PublicURL returns the unauthenticated URL for the object.
	PublicURL(bucket, key string) string
}

// URLSigner mints and verifies time-limited access tokens for stored objects.
type URLSigner interface {
	Sign(bucket, key string, ttl time.Duration) (string, error)
	// Verify returns the bucket and key the token grants access to, or
	// domain.ErrInvalidSignedURL when the token is tampered with or expired.
	Verify(token string) (bucket, key string, err error)
}

// TextExtractor pulls plain text out of a stored document, dispatching on
// the file extension.
type TextExtractor interface {
	Text(filename string, data []byte) (string, error)
}

// ResumeExtractor turns raw resume text into structured fields. Implemented
// by the LLM client.
type ResumeExtractor interface {
	Extract(ctx context.Context, text string) (*domain.ParsedResume, error)
}

// UploadResumeInput carries one uploaded resume file.
type UploadResumeInput struct {
	Filename string
	Content  []byte
}

// UploadResumeResult describes where the resume was stored and how to reach it.
type UploadResumeResult struct {
	Bucket    string
	Path      string
	SignedURL string
	PublicURL string
	ExpiresAt time.Time
}

// ParseResumeInput is either pre-extracted text (DOCX handled client-side)
// or a reference to a stored file. Exactly one of Text or Path is set.
type ParseResumeInput struct {
	Text   string
	Bucket string
	Path   string
}

// ResumeService handles resume upload, storage, and parsing.
type ResumeService interface {
	Upload(ctx context.Context, input UploadResumeInput) (*UploadResumeResult, error)
	// Parse extracts structured contractor fields and categorized keywords.
	// An extraction that yields no usable fields returns domain.ErrEmptyDocument,
	// which callers surface as a soft failure.
	Parse(ctx context.Context, input ParseResumeInput) (*domain.ParsedResume, error)
	// Open resolves a signed token and returns the stored object.
	Open(ctx context.Context, token string) (filename string, data []byte, err error)
}
