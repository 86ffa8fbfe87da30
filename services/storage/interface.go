package storage

import "context"

// StorageService manages catalog media (product and salon images).
type StorageService interface {
	// UploadImage stores a local file under the given folder and returns its
	// public URL.
	UploadImage(ctx context.Context, localFilePath, folder string) (string, error)
	// DeleteImage removes a previously uploaded asset by public ID.
	DeleteImage(ctx context.Context, publicID string) error
}
