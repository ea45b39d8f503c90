package cloudinary

import (
	"context"
	"log/slog"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"vidtube-backend/pkg/config"
)

// Service wraps the media upload provider. A failed upload yields an empty
// URL, never an error — callers treat a missing URL as a validation failure.
type Service struct {
	client *cloudinary.Cloudinary
}

func NewService(cfg *config.Config) (*Service, error) {
	client, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, err
	}
	return &Service{client: client}, nil
}

// Upload sends the local file to the provider and returns its public URL.
// The local temp file is removed before returning; on failure the URL is
// empty.
func (s *Service) Upload(localFilePath string) string {
	if localFilePath == "" {
		return ""
	}
	defer os.Remove(localFilePath)

	resp, err := s.client.Upload.Upload(context.Background(), localFilePath, uploader.UploadParams{
		ResourceType: "auto",
	})
	if err != nil || resp == nil || resp.SecureURL == "" {
		slog.Warn("media upload failed", "path", localFilePath, "error", err)
		return ""
	}

	return resp.SecureURL
}
