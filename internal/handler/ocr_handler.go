package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/somu559/sineorcitizenregMod/internal/service"
	"github.com/somu559/sineorcitizenregMod/internal/util"
)

// OCRHandler handles HTTP requests for ID-card text extraction.
type OCRHandler struct {
	service *service.OCRService
	logger  *zap.Logger
}

func NewOCRHandler(svc *service.OCRService, logger *zap.Logger) *OCRHandler {
	return &OCRHandler{
		service: svc,
		logger:  logger,
	}
}

// RegisterRoutes registers the OCR routes.
func (h *OCRHandler) RegisterRoutes(router chi.Router) {
	router.Post("/ocr/extract", h.ExtractText)
}

// ExtractText handles POST /api/ocr/extract. The image comes as the "file"
// part of a multipart form. OCR failures (including oversized uploads and
// empty transcriptions) are reported inside the 200 OCRResponse body; only a
// missing file part or an unconfigured backend surface as HTTP errors.
func (h *OCRHandler) ExtractText(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondWithError(w, http.StatusBadRequest, errorResponse{Error: "file is required"})
		return
	}
	defer file.Close()

	// Read at most one byte past the cap; the service turns the overflow
	// into a structured size rejection without calling the OCR backend.
	image, err := io.ReadAll(io.LimitReader(file, service.MaxImageBytes+1))
	if err != nil {
		h.respondWithError(w, http.StatusBadRequest, errorResponse{Error: "failed to read uploaded file"})
		return
	}

	resp, err := h.service.ExtractFromImage(ctx, image)
	if err != nil {
		if errors.Is(err, service.ErrOCRNotConfigured) {
			h.respondWithError(w, http.StatusInternalServerError, errorResponse{Error: "Vision API not configured"})
			return
		}
		h.respondWithError(w, http.StatusInternalServerError, errorResponse{Error: "OCR extraction failed"})
		return
	}

	h.respondWithJSON(w, http.StatusOK, resp)
	h.logger.Info("OCR extraction completed via HTTP",
		util.String("filename", header.Filename),
		util.Bool("success", resp.Success),
		util.Duration("duration", time.Since(startTime)),
	)
}

func (h *OCRHandler) respondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	writeJSON(w, statusCode, data, h.logger)
}

func (h *OCRHandler) respondWithError(w http.ResponseWriter, statusCode int, body errorResponse) {
	h.logger.Warn("HTTP error response",
		util.Int("status_code", statusCode),
		util.String("error", body.Error),
	)
	writeJSON(w, statusCode, body, h.logger)
}
