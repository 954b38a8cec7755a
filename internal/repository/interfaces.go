package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/sanjeevani/coordination-api/internal/model"
)

// All repository interfaces in one file
type (
	// UserDirectory holds credential directory entries. Entries persist
	// independently of any session.
	UserDirectory interface {
		Create(ctx context.Context, entry *model.DirectoryEntry) error
		GetByEmail(ctx context.Context, email string) (*model.DirectoryEntry, error)
		List(ctx context.Context) ([]*model.DirectoryEntry, error)
	}

	// StockRepository handles blood product stock records
	StockRepository interface {
		Create(ctx context.Context, item *model.StockItem) error
		Get(ctx context.Context, id uuid.UUID) (*model.StockItem, error)
		Update(ctx context.Context, item *model.StockItem) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.StockItem, error)
	}

	// OrganRepository handles organ availability records
	OrganRepository interface {
		Create(ctx context.Context, organ *model.OrganRecord) error
		Get(ctx context.Context, id uuid.UUID) (*model.OrganRecord, error)
		Update(ctx context.Context, organ *model.OrganRecord) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.OrganRecord, error)
	}

	// RequestRepository handles medical requests
	RequestRepository interface {
		Create(ctx context.Context, req *model.MedicalRequest) error
		Get(ctx context.Context, id uuid.UUID) (*model.MedicalRequest, error)
		Update(ctx context.Context, req *model.MedicalRequest) error
		List(ctx context.Context) ([]*model.MedicalRequest, error)
		ListByContact(ctx context.Context, contact string) ([]*model.MedicalRequest, error)
	}

	// OpportunityRepository handles donation opportunities
	OpportunityRepository interface {
		Create(ctx context.Context, opp *model.DonationOpportunity) error
		Get(ctx context.Context, id uuid.UUID) (*model.DonationOpportunity, error)
		Update(ctx context.Context, opp *model.DonationOpportunity) error
		List(ctx context.Context) ([]*model.DonationOpportunity, error)
	}

	// DonationRepository handles donor donation history
	DonationRepository interface {
		Create(ctx context.Context, rec *model.DonationRecord) error
		ListByDonor(ctx context.Context, donorID uuid.UUID) ([]*model.DonationRecord, error)
	}
)
