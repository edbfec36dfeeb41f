// Package media stores uploaded image attachments and returns the location
// string to record on the entity. Two strategies exist: local disk under the
// static upload dir, and cloudinary. One is selected at startup for the
// whole process.
//
// Only the file extension and size are checked. There is no MIME sniffing
// or content validation; that gap is intentional and documented.
package media

import (
	"context"
	"errors"
	"mime/multipart"
)

// MaxFileSize caps a single attachment at 10MB.
const MaxFileSize = 10 * 1024 * 1024

// MaxCommentImages caps the attachments accepted on a comment.
const MaxCommentImages = 10

var (
	// ErrUnsupportedFormat means the filename extension is not allowed.
	ErrUnsupportedFormat = errors.New("file format not supported, allowed formats: jpg, jpeg, png, gif")
	// ErrTooLarge means the attachment exceeds MaxFileSize.
	ErrTooLarge = errors.New("file too large, maximum size is 10MB")
)

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// Storage saves one attachment and returns its recorded location.
type Storage interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
}
