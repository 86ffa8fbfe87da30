package utils

import (
	"fmt"

	"priisme/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Cloudinary builds the Cloudinary client from the configured URL.
func Cloudinary() (*cloudinary.Cloudinary, error) {
	if config.AppConfig.CloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary: CLOUDINARY_URL is not configured")
	}
	cld, err := cloudinary.NewFromURL(config.AppConfig.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: failed to initialize client: %w", err)
	}
	return cld, nil
}
