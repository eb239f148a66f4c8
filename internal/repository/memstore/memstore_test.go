package memstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/somu559/sineorcitizenregMod/internal/models"
)

type MemStoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func (s *MemStoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

func TestMemStoreSuite(t *testing.T) {
	suite.Run(t, new(MemStoreSuite))
}

func (s *MemStoreSuite) newRegistration(id string) *models.Registration {
	return &models.Registration{
		RegistrationID: id,
		FullName:       "Rajesh Kumar Sharma",
		DateOfBirth:    "15/08/1970",
		Age:            55,
		Address:        "123 Main Street, New Delhi 110001",
		IDNumber:       "234567890123",
		IDType:         models.IDTypeAadhaar,
		CreatedAt:      time.Now().UTC(),
	}
}

func (s *MemStoreSuite) TestInsertAndFindAll() {
	reg := s.newRegistration("REG2025-AB12")
	s.Require().NoError(s.store.Insert(s.ctx, reg))

	found, err := s.store.FindAll(s.ctx, 1000)
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal(reg.RegistrationID, found[0].RegistrationID)
	s.Equal(reg.FullName, found[0].FullName)
}

func (s *MemStoreSuite) TestInsertRejectsDuplicateID() {
	s.Require().NoError(s.store.Insert(s.ctx, s.newRegistration("REG2025-AB12")))

	err := s.store.Insert(s.ctx, s.newRegistration("REG2025-AB12"))
	s.Require().ErrorIs(err, ErrDuplicateID)

	found, err := s.store.FindAll(s.ctx, 1000)
	s.Require().NoError(err)
	s.Len(found, 1)
}

func (s *MemStoreSuite) TestFindAllHonorsLimit() {
	for i := 0; i < 5; i++ {
		s.Require().NoError(s.store.Insert(s.ctx, s.newRegistration(fmt.Sprintf("REG2025-%04d", i))))
	}

	found, err := s.store.FindAll(s.ctx, 3)
	s.Require().NoError(err)
	s.Len(found, 3)
}

func (s *MemStoreSuite) TestFindAllReturnsCopies() {
	s.Require().NoError(s.store.Insert(s.ctx, s.newRegistration("REG2025-AB12")))

	found, err := s.store.FindAll(s.ctx, 1000)
	s.Require().NoError(err)
	found[0].FullName = "mutated"

	again, err := s.store.FindAll(s.ctx, 1000)
	s.Require().NoError(err)
	s.Equal("Rajesh Kumar Sharma", again[0].FullName)
}
