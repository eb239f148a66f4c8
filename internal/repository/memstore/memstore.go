// Package memstore provides an in-memory registration store for tests and
// local development. It mirrors the Mongo store's semantics, including the
// unique registration_id constraint.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/somu559/sineorcitizenregMod/internal/models"
)

// ErrDuplicateID reports an insert whose registration_id already exists.
var ErrDuplicateID = errors.New("registration_id already exists")

// Store is a concurrency-safe in-memory implementation of
// service.RegistrationStore.
type Store struct {
	mu   sync.RWMutex
	regs []*models.Registration
	ids  map[string]struct{}
}

func New() *Store {
	return &Store{
		ids: make(map[string]struct{}),
	}
}

// Insert appends one registration, rejecting duplicate identifiers.
func (s *Store) Insert(_ context.Context, reg *models.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.ids[reg.RegistrationID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, reg.RegistrationID)
	}

	stored := *reg
	s.regs = append(s.regs, &stored)
	s.ids[reg.RegistrationID] = struct{}{}
	return nil
}

// FindAll returns up to limit stored registrations in insertion order.
func (s *Store) FindAll(_ context.Context, limit int64) ([]*models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := int64(len(s.regs))
	if limit > 0 && n > limit {
		n = limit
	}

	out := make([]*models.Registration, 0, n)
	for _, reg := range s.regs[:n] {
		copied := *reg
		out = append(out, &copied)
	}
	return out, nil
}
