package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/somu559/sineorcitizenregMod/internal/extract"
	"github.com/somu559/sineorcitizenregMod/internal/models"
	"github.com/somu559/sineorcitizenregMod/internal/util"
)

// MaxImageBytes is the upload cap for ID photographs. Oversized payloads are
// rejected before the OCR backend is ever called.
const MaxImageBytes = 10 << 20 // 10 MiB

// ErrOCRNotConfigured reports that no OCR backend was wired at startup
// (missing Vision credentials).
var ErrOCRNotConfigured = errors.New("vision API not configured")

// OCRService is the gateway in front of the external OCR backend. Backend
// failures are folded into the structured OCRResponse so callers see a
// uniform shape; only a missing backend is reported as an outward error.
type OCRService struct {
	extractor TextExtractor
	logger    *zap.Logger
}

// NewOCRService creates the OCR gateway. extractor may be nil when no
// credentials were configured; every call then fails with
// ErrOCRNotConfigured.
func NewOCRService(extractor TextExtractor, logger *zap.Logger) *OCRService {
	return &OCRService{
		extractor: extractor,
		logger:    logger,
	}
}

// ExtractFromImage runs OCR over one ID photograph and parses the
// transcription into identity fields.
func (s *OCRService) ExtractFromImage(ctx context.Context, image []byte) (*models.OCRResponse, error) {
	if s.extractor == nil {
		return nil, ErrOCRNotConfigured
	}

	if len(image) > MaxImageBytes {
		return &models.OCRResponse{
			Error: fmt.Sprintf("File size exceeds %dMB limit", MaxImageBytes>>20),
		}, nil
	}

	text, err := s.extractor.DetectDocumentText(ctx, image)
	if err != nil {
		s.logger.Error("OCR extraction failed", util.ErrorField(err))
		return &models.OCRResponse{Error: err.Error()}, nil
	}

	if text == "" {
		return &models.OCRResponse{Error: "No text detected in the image"}, nil
	}

	fields := extract.ParseText(text)
	s.logger.Debug("OCR text parsed",
		util.String("id_type", fields.IDType),
		util.Bool("name_found", fields.FullName != ""),
		util.Bool("dob_found", fields.DateOfBirth != ""),
	)

	return &models.OCRResponse{
		Success:       true,
		ExtractedText: text,
		ParsedData:    fields,
	}, nil
}
