package identity

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/sanjeevani/coordination-api/internal/model"
	"github.com/sanjeevani/coordination-api/internal/repository"
	"github.com/sanjeevani/coordination-api/pkg/errors"
)

// RegistrationPolicy decides whether a registration may proceed. The service
// takes whichever policy it is constructed with, so deployments can tighten
// or relax registration without touching session handling.
type RegistrationPolicy interface {
	Validate(ctx context.Context, req *model.RegisterRequest) error
}

// DefaultPolicy requires well-formed fields and a unique email.
type DefaultPolicy struct {
	directory repository.UserDirectory
	validate  *validator.Validate
}

func NewDefaultPolicy(directory repository.UserDirectory) *DefaultPolicy {
	return &DefaultPolicy{
		directory: directory,
		validate:  validator.New(),
	}
}

func (p *DefaultPolicy) Validate(ctx context.Context, req *model.RegisterRequest) error {
	if err := p.validate.Struct(req); err != nil {
		return errors.Validation("invalid registration", err)
	}
	if req.BloodGroup != "" && !model.ValidBloodGroup(req.BloodGroup) {
		return errors.Validation("unknown blood group", nil)
	}
	if existing, _ := p.directory.GetByEmail(ctx, req.Email); existing != nil {
		return errors.Conflict("email already registered", nil)
	}
	return nil
}

// OpenPolicy accepts any registration unconditionally.
type OpenPolicy struct{}

func (OpenPolicy) Validate(ctx context.Context, req *model.RegisterRequest) error {
	return nil
}
