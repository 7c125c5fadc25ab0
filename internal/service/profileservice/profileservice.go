package profileservice

import (
	"github.com/nickmuds954-code/Nexus-trade/internal/domain"
)

type Ledger interface {
	Profile() domain.Profile
	UpdateProfile(name, email, mobile string) domain.Profile
}

// Service fronts the identity fields of the aggregate. Verification is a
// derived flag, not part of the financial core.
type Service struct {
	ledger Ledger
}

func New(ledger Ledger) *Service {
	return &Service{ledger: ledger}
}

func (s *Service) Get() domain.Profile {
	return s.ledger.Profile()
}

func (s *Service) Update(name, email, mobile string) domain.Profile {
	return s.ledger.UpdateProfile(name, email, mobile)
}
