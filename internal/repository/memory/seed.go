package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sanjeevani/coordination-api/internal/model"
	"github.com/sanjeevani/coordination-api/internal/repository"
)

// Fixed identifiers for the demo accounts so seeded history can reference
// them across restarts.
var (
	SeedHospitalID = uuid.MustParse("6f1a2d3e-0001-4a5b-8c9d-000000000001")
	SeedDonorID    = uuid.MustParse("6f1a2d3e-0002-4a5b-8c9d-000000000002")
	SeedPatientID  = uuid.MustParse("6f1a2d3e-0003-4a5b-8c9d-000000000003")
)

type seedAccount struct {
	id         uuid.UUID
	name       string
	email      string
	role       string
	bloodGroup string
	city       string
	phone      string
	password   string
}

var seedAccounts = []seedAccount{
	{SeedHospitalID, "Dr. Rajesh Sharma", "hospital@sanjeevani.com", model.RoleHospital, "", "Mumbai", "+91 9876543210", "hospital123"},
	{SeedDonorID, "Priya Patel", "donor@sanjeevani.com", model.RoleDonor, "O+", "Delhi", "+91 9876543211", "donor123"},
	{SeedPatientID, "Amit Kumar", "patient@sanjeevani.com", model.RolePatient, "B+", "Bangalore", "+91 9876543212", "patient123"},
}

// SeedDirectory loads the three fixed demo accounts into the directory.
// Passwords are hashed at seed time; plaintext never leaves this file.
func SeedDirectory(ctx context.Context, dir repository.UserDirectory) error {
	for _, acc := range seedAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		entry := &model.DirectoryEntry{
			User: model.User{
				ID:         acc.id,
				Name:       acc.name,
				Email:      acc.email,
				Role:       acc.role,
				BloodGroup: acc.bloodGroup,
				City:       acc.city,
				Phone:      acc.phone,
			},
			PasswordHash: string(hash),
		}
		if err := dir.Create(ctx, entry); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", acc.email, err)
		}
	}
	return nil
}

// SeedDonorData loads the demo donor's donation history and the two sample
// opportunities shown on the donor portal.
func SeedDonorData(ctx context.Context, donations repository.DonationRepository, opps repository.OpportunityRepository) error {
	history := []struct {
		date     string
		typ      string
		amount   string
		location string
	}{
		{"2023-11-15", model.StockTypeBlood, "450ml", "City Hospital"},
		{"2023-09-20", model.StockTypePlatelets, "1 unit", "Blood Bank Center"},
		{"2023-07-25", model.StockTypeBlood, "450ml", "Mobile Camp"},
		{"2023-05-30", model.StockTypeBlood, "450ml", "City Hospital"},
	}
	for _, h := range history {
		date, err := time.Parse(model.DateLayout, h.date)
		if err != nil {
			return fmt.Errorf("bad seed donation date %q: %w", h.date, err)
		}
		rec := &model.DonationRecord{
			ID:       uuid.New(),
			DonorID:  SeedDonorID,
			Date:     date,
			Type:     h.typ,
			Amount:   h.amount,
			Location: h.location,
		}
		if err := donations.Create(ctx, rec); err != nil {
			return fmt.Errorf("failed to seed donation record: %w", err)
		}
	}

	seedOpps := []*model.DonationOpportunity{
		{
			ID:       uuid.New(),
			Name:     "Blood Drive at City Mall",
			Date:     "2024-02-20",
			Time:     "10:00 AM - 4:00 PM",
			Location: "City Mall, Main Street",
			Distance: "2.5 km",
			Urgent:   false,
			Type:     model.StockTypeBlood,
		},
		{
			ID:       uuid.New(),
			Name:     "Emergency: B+ Blood Needed",
			Date:     "2024-02-16",
			Time:     "ASAP",
			Location: "City Hospital",
			Distance: "1.2 km",
			Urgent:   true,
			Type:     model.StockTypeBlood,
		},
	}
	for _, opp := range seedOpps {
		if err := opps.Create(ctx, opp); err != nil {
			return fmt.Errorf("failed to seed opportunity: %w", err)
		}
	}
	return nil
}
