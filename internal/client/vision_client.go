// Package client wraps the external service clients the registration portal
// depends on.
package client

import (
	"context"
	"fmt"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/somu559/sineorcitizenregMod/internal/config"
	"github.com/somu559/sineorcitizenregMod/internal/util"
)

// VisionClient wraps the Google Cloud Vision image annotator used for
// document text detection on ID photographs.
type VisionClient struct {
	client *vision.ImageAnnotatorClient
}

// NewVisionClient builds an annotator client from the service-account JSON
// carried in the configuration.
func NewVisionClient(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*VisionClient, error) {
	if cfg.Vision.CredentialsJSON == "" {
		return nil, fmt.Errorf("vision credentials not configured")
	}

	c, err := vision.NewImageAnnotatorClient(ctx,
		option.WithCredentialsJSON([]byte(cfg.Vision.CredentialsJSON)))
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}

	util.Info("Vision client initialized")

	return &VisionClient{client: c}, nil
}

// DetectDocumentText runs document text detection over one image and returns
// the full transcription. An empty string means nothing was recognized.
func (v *VisionClient) DetectDocumentText(ctx context.Context, image []byte) (string, error) {
	annotation, err := v.client.DetectDocumentText(ctx, &visionpb.Image{Content: image}, nil)
	if err != nil {
		return "", fmt.Errorf("document text detection: %w", err)
	}
	if annotation == nil {
		return "", nil
	}
	return annotation.GetText(), nil
}

// Close releases the underlying gRPC connection.
func (v *VisionClient) Close() error {
	return v.client.Close()
}
