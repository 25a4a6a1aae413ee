package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService abstracts blob storage for customer-submitted photos.
type StorageService interface {
	// UploadPhoto stores a local file and returns its public URL.
	UploadPhoto(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeletePhoto removes a previously uploaded file by its public ID.
	DeletePhoto(ctx context.Context, publicID string) error
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld *cloudinary.Cloudinary
}
