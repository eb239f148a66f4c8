// Package handler exposes the registration portal over HTTP.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/somu559/sineorcitizenregMod/internal/models"
	"github.com/somu559/sineorcitizenregMod/internal/service"
	"github.com/somu559/sineorcitizenregMod/internal/util"
)

// errorResponse is the JSON body for every failed request. Age is set only on
// eligibility rejections so clients can show the computed age.
type errorResponse struct {
	Error string `json:"error"`
	Age   *int   `json:"age,omitempty"`
}

// RegistrationHandler handles HTTP requests for registration operations.
type RegistrationHandler struct {
	service *service.RegistrationService
	logger  *zap.Logger
}

func NewRegistrationHandler(svc *service.RegistrationService, logger *zap.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		service: svc,
		logger:  logger,
	}
}

// RegisterRoutes registers the registration routes.
func (h *RegistrationHandler) RegisterRoutes(router chi.Router) {
	router.Post("/registration", h.CreateRegistration)
	router.Get("/registrations", h.ListRegistrations)
}

// CreateRegistration handles POST /api/registration. Eligibility rejections
// come back as 400 with the computed age; missing required fields as 422;
// store failures as 500.
func (h *RegistrationHandler) CreateRegistration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	var input models.RegistrationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondWithError(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	reg, err := h.service.Create(ctx, &input)
	if err != nil {
		var eligErr *service.EligibilityError
		switch {
		case errors.As(err, &eligErr):
			h.respondWithError(w, http.StatusBadRequest, errorResponse{Error: eligErr.Error(), Age: &eligErr.Age})
		case errors.Is(err, service.ErrInvalidInput):
			h.respondWithError(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		default:
			h.respondWithError(w, http.StatusInternalServerError, errorResponse{Error: "failed to create registration"})
		}
		return
	}

	h.respondWithJSON(w, http.StatusOK, reg)
	h.logger.Info("Registration created via HTTP",
		util.String("registration_id", reg.RegistrationID),
		util.Duration("duration", time.Since(startTime)),
	)
}

// ListRegistrations handles GET /api/registrations.
func (h *RegistrationHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	regs, err := h.service.List(r.Context())
	if err != nil {
		h.respondWithError(w, http.StatusInternalServerError, errorResponse{Error: "failed to fetch registrations"})
		return
	}

	h.respondWithJSON(w, http.StatusOK, regs)
}

func (h *RegistrationHandler) respondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	writeJSON(w, statusCode, data, h.logger)
}

func (h *RegistrationHandler) respondWithError(w http.ResponseWriter, statusCode int, body errorResponse) {
	h.logger.Warn("HTTP error response",
		util.Int("status_code", statusCode),
		util.String("error", body.Error),
	)
	writeJSON(w, statusCode, body, h.logger)
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", util.ErrorField(err))
	}
}
