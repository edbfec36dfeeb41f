package media

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"
)

// Disk writes attachments under dir and records them as URL paths beneath
// prefix, which the router serves as static files.
type Disk struct {
	dir    string
	prefix string
	seq    uint64
}

// NewDisk creates the upload directory if needed.
func NewDisk(dir, prefix string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}
	return &Disk{dir: dir, prefix: strings.TrimRight(prefix, "/")}, nil
}

// Save validates extension and size, writes the bytes under a generated
// name and returns the static URL path. The client filename is discarded.
func (d *Disk) Save(_ context.Context, file *multipart.FileHeader) (string, error) {
	ext, err := extension(file.Filename)
	if err != nil {
		return "", err
	}
	if file.Size > MaxFileSize {
		return "", ErrTooLarge
	}

	// Timestamp plus a counter so two uploads in the same nanosecond tick
	// still get distinct names.
	name := fmt.Sprintf("%d_%d.%s", time.Now().UnixNano(), atomic.AddUint64(&d.seq, 1), ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("error reading upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(d.dir, name))
	if err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}

	return d.prefix + "/" + name, nil
}

func extension(filename string) (string, error) {
	parts := strings.Split(filename, ".")
	if len(parts) < 2 {
		return "", ErrUnsupportedFormat
	}
	ext := strings.ToLower(parts[len(parts)-1])
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedFormat
	}
	return ext, nil
}
