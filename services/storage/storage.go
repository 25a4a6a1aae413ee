package storage

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var deliveryVersionRe = regexp.MustCompile(`^v\d+$`)

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary) StorageService {
	return &StorageServiceImpl{cld: cld}
}

// UploadPhoto uploads a file to Cloudinary into the specified folder and
// returns the delivery URL stored on the appointment.
func (s *StorageServiceImpl) UploadPhoto(ctx context.Context, localFilePath, destFolder string) (string, error) {
	uploadParams := uploader.UploadParams{
		Folder: destFolder,
	}
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploadParams)
	if err != nil {
		return "", fmt.Errorf("StorageServiceImpl: failed to upload file: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("StorageServiceImpl: no URL returned for upload")
	}
	return result.SecureURL, nil
}

// PublicIDFromURL derives the public ID from a Cloudinary delivery URL: the
// path after the "upload" segment, with the version prefix and file extension
// stripped. Returns "" for anything that does not look like a delivery URL.
func PublicIDFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, seg := range segments {
		if seg != "upload" || i+1 >= len(segments) {
			continue
		}
		rest := segments[i+1:]
		if len(rest) > 1 && deliveryVersionRe.MatchString(rest[0]) {
			rest = rest[1:]
		}
		id := strings.Join(rest, "/")
		return strings.TrimSuffix(id, path.Ext(id))
	}
	return ""
}

// DeletePhoto deletes a file from Cloudinary given its public ID.
func (s *StorageServiceImpl) DeletePhoto(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete file: %w", err)
	}
	return nil
}
