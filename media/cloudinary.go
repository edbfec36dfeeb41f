package media

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Cloudinary uploads attachments to a cloudinary folder and records the
// secure URL on the entity.
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinary builds the client from a CLOUDINARY_URL-style string.
func NewCloudinary(url, folder string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("error configuring cloudinary: %w", err)
	}
	return &Cloudinary{cld: cld, folder: folder}, nil
}

// Save validates extension and size, then uploads the file content.
func (m *Cloudinary) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if _, err := extension(file.Filename); err != nil {
		return "", err
	}
	if file.Size > MaxFileSize {
		return "", ErrTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("error reading upload: %w", err)
	}
	defer src.Close()

	result, err := m.cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: m.folder})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload error: %w", err)
	}
	return result.SecureURL, nil
}
