package donor

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/sanjeevani/coordination-api/internal/model"
	"github.com/sanjeevani/coordination-api/internal/repository"
)

// MinDonationIntervalDays is the minimum gap between whole-blood donations.
const MinDonationIntervalDays = 56

// Service computes donor eligibility and manages donation history and
// opportunity registration.
type Service struct {
	donations     repository.DonationRepository
	opportunities repository.OpportunityRepository
	now           func() time.Time
}

func NewService(donations repository.DonationRepository, opportunities repository.OpportunityRepository) *Service {
	return &Service{
		donations:     donations,
		opportunities: opportunities,
		now:           time.Now,
	}
}

// WithClock overrides the service clock. Tests pin "today" with this.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Eligibility derives a donor's standing from their last donation date:
// eligible once MinDonationIntervalDays have passed, with the remaining
// wait rounded up to whole days and clamped at zero.
func (s *Service) Eligibility(lastDonation time.Time) *model.Eligibility {
	eligibleOn := lastDonation.AddDate(0, 0, MinDonationIntervalDays)
	now := s.now()

	days := int(math.Ceil(eligibleOn.Sub(now).Hours() / 24))
	if days < 0 {
		days = 0
	}

	return &model.Eligibility{
		LastDonation:  lastDonation,
		EligibleOn:    eligibleOn,
		Eligible:      !now.Before(eligibleOn),
		DaysRemaining: days,
	}
}

// History returns a donor's recorded donations.
func (s *Service) History(ctx context.Context, donorID uuid.UUID) ([]*model.DonationRecord, error) {
	return s.donations.ListByDonor(ctx, donorID)
}

// LastDonation returns the most recent donation date for the donor, or the
// zero time when there is none.
func (s *Service) LastDonation(ctx context.Context, donorID uuid.UUID) (time.Time, error) {
	records, err := s.donations.ListByDonor(ctx, donorID)
	if err != nil {
		return time.Time{}, err
	}
	var last time.Time
	for _, rec := range records {
		if rec.Date.After(last) {
			last = rec.Date
		}
	}
	return last, nil
}

func (s *Service) Opportunities(ctx context.Context) ([]*model.DonationOpportunity, error) {
	return s.opportunities.List(ctx)
}

// RegisterForDonation records the donor against an opportunity. Registering
// twice is a no-op.
func (s *Service) RegisterForDonation(ctx context.Context, oppID, donorID uuid.UUID) (*model.DonationOpportunity, error) {
	opp, err := s.opportunities.Get(ctx, oppID)
	if err != nil {
		return nil, err
	}

	for _, id := range opp.RegisteredDonors {
		if id == donorID {
			return opp, nil
		}
	}

	opp.RegisteredDonors = append(opp.RegisteredDonors, donorID)
	if err := s.opportunities.Update(ctx, opp); err != nil {
		return nil, err
	}
	return opp, nil
}
