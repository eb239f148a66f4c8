package service

import (
	"context"

	"github.com/somu559/sineorcitizenregMod/internal/models"
)

// RegistrationStore is the durable append-only collection backing the
// registration service.
type RegistrationStore interface {
	Insert(ctx context.Context, reg *models.Registration) error
	FindAll(ctx context.Context, limit int64) ([]*models.Registration, error)
}

// TextExtractor is the external OCR backend: image bytes in, full
// transcription out. An empty transcription means nothing was recognized.
type TextExtractor interface {
	DetectDocumentText(ctx context.Context, image []byte) (string, error)
}
