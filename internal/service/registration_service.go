// Package service implements the business logic of the registration portal:
// the OCR gateway feeding the text parser, and the registration
// validator/builder that gates persisted records on the age-50 eligibility
// rule.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/somu559/sineorcitizenregMod/internal/models"
	"github.com/somu559/sineorcitizenregMod/internal/registration"
	"github.com/somu559/sineorcitizenregMod/internal/util"
)

// MaxListResults caps how many registrations a single list call returns.
const MaxListResults = 1000

// ErrInvalidInput marks a structurally invalid registration payload
// (missing required fields). It is rejected before any business logic runs.
var ErrInvalidInput = errors.New("invalid input")

// EligibilityError is the user-facing rejection for applicants under the
// minimum age. It carries the computed age so clients can show it; an
// unparseable date of birth is reported as age 0.
type EligibilityError struct {
	Age int
}

func (e *EligibilityError) Error() string {
	return fmt.Sprintf("age must be %d or above. Current age: %d", registration.MinimumAge, e.Age)
}

// RegistrationService validates, builds and persists registrations.
type RegistrationService struct {
	store  RegistrationStore
	logger *zap.Logger
	now    func() time.Time
}

// NewRegistrationService creates a registration service backed by the given
// store.
func NewRegistrationService(store RegistrationStore, logger *zap.Logger) *RegistrationService {
	return &RegistrationService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Create validates the input, derives the applicant's age, and persists a new
// registration. Exactly one durable insert happens per successful call; store
// failures are surfaced without retry.
func (s *RegistrationService) Create(ctx context.Context, input *models.RegistrationInput) (*models.Registration, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := s.now().UTC()

	age, err := registration.CalculateAge(input.DateOfBirth, now)
	if err != nil {
		// Unparseable dates count as age 0 and fall through to the
		// eligibility rejection below.
		age = 0
	}
	if age < registration.MinimumAge {
		return nil, &EligibilityError{Age: age}
	}

	reg := &models.Registration{
		RegistrationID: registration.NewRegistrationID(now),
		FullName:       input.FullName,
		DateOfBirth:    input.DateOfBirth,
		Age:            age,
		Address:        input.Address,
		IDNumber:       input.IDNumber,
		IDType:         input.IDType,
		ExtractedData:  input.ExtractedData,
		CreatedAt:      now,
	}

	if err := s.store.Insert(ctx, reg); err != nil {
		s.logger.Error("Failed to persist registration",
			util.String("registration_id", reg.RegistrationID),
			util.ErrorField(err),
		)
		return nil, fmt.Errorf("persist registration: %w", err)
	}

	s.logger.Info("Registration created",
		util.String("registration_id", reg.RegistrationID),
		util.String("id_type", reg.IDType),
		util.Int("age", reg.Age),
	)

	return reg, nil
}

// List returns all persisted registrations, capped at MaxListResults.
// Ordering is whatever the store yields; insertion order is not guaranteed.
func (s *RegistrationService) List(ctx context.Context) ([]*models.Registration, error) {
	regs, err := s.store.FindAll(ctx, MaxListResults)
	if err != nil {
		s.logger.Error("Failed to list registrations", util.ErrorField(err))
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	if regs == nil {
		regs = []*models.Registration{}
	}
	return regs, nil
}

func validateInput(input *models.RegistrationInput) error {
	var missing []string
	if input.FullName == "" {
		missing = append(missing, "full_name")
	}
	if input.DateOfBirth == "" {
		missing = append(missing, "date_of_birth")
	}
	if input.Address == "" {
		missing = append(missing, "address")
	}
	if input.IDNumber == "" {
		missing = append(missing, "id_number")
	}
	if input.IDType == "" {
		missing = append(missing, "id_type")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}
