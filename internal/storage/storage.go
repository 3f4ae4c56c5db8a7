// Package storage talks to the external media host. Portfolio binaries live
// in an S3-compatible bucket; the rest of the system only sees MediaStore.
package storage

import (
	"context"
	"io"
)

// UploadResult describes a stored media object.
type UploadResult struct {
	URL      string
	PublicID string
	Format   string
	Size     int64
}

// MediaStore stores and deletes media binaries for portfolio items.
type MediaStore interface {
	// Upload streams a binary to the media host under the given media kind
	// (image or video) and returns its public URL and id.
	Upload(ctx context.Context, file io.Reader, mediaType, filename string) (*UploadResult, error)
	// Delete removes a previously uploaded object. mediaType selects the
	// resource kind, matching the upload folder layout.
	Delete(ctx context.Context, publicID, mediaType string) error
}
