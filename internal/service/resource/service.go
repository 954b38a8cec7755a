package resource

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sanjeevani/coordination-api/internal/model"
	"github.com/sanjeevani/coordination-api/internal/repository"
	"github.com/sanjeevani/coordination-api/pkg/errors"
)

// Alerter receives emergency submissions for fan-out. The notifier is
// cosmetic, so a nil Alerter is fine.
type Alerter interface {
	EmergencyCreated(req *model.MedicalRequest)
}

// Service owns the three coordination collections. Every input is
// re-validated here regardless of what the transport already checked;
// UI-side constraints are not a trust boundary.
type Service struct {
	stock    repository.StockRepository
	organs   repository.OrganRepository
	requests repository.RequestRepository
	alerter  Alerter
	validate *validator.Validate
}

func NewService(stock repository.StockRepository, organs repository.OrganRepository,
	requests repository.RequestRepository, alerter Alerter) *Service {
	return &Service{
		stock:    stock,
		organs:   organs,
		requests: requests,
		alerter:  alerter,
		validate: validator.New(),
	}
}

// --- stock ---

func (s *Service) AddStock(ctx context.Context, req *model.CreateStockRequest) (*model.StockItem, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, errors.Validation("invalid stock item", err)
	}
	if !model.ValidBloodGroup(req.BloodGroup) {
		return nil, errors.Validation(fmt.Sprintf("unknown blood group %q", req.BloodGroup), nil)
	}
	expiry, err := time.Parse(model.DateLayout, req.ExpiryDate)
	if err != nil {
		return nil, errors.Validation("invalid expiry date", err)
	}

	item := &model.StockItem{
		Base:       model.NewBase(),
		Type:       req.Type,
		BloodGroup: req.BloodGroup,
		Quantity:   req.Quantity,
		ExpiryDate: expiry,
		HospitalID: req.HospitalID,
	}
	if err := s.stock.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add stock: %w", err)
	}
	return item, nil
}

// UpdateStock merges the provided fields into the matching record. A missing
// id is reported as not found rather than silently ignored.
func (s *Service) UpdateStock(ctx context.Context, id uuid.UUID, req *model.UpdateStockRequest) (*model.StockItem, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, errors.Validation("invalid stock update", err)
	}
	if req.BloodGroup != nil && !model.ValidBloodGroup(*req.BloodGroup) {
		return nil, errors.Validation(fmt.Sprintf("unknown blood group %q", *req.BloodGroup), nil)
	}

	item, err := s.stock.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		item.Type = *req.Type
	}
	if req.BloodGroup != nil {
		item.BloodGroup = *req.BloodGroup
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.ExpiryDate != nil {
		expiry, err := time.Parse(model.DateLayout, *req.ExpiryDate)
		if err != nil {
			return nil, errors.Validation("invalid expiry date", err)
		}
		item.ExpiryDate = expiry
	}
	if req.HospitalID != nil {
		item.HospitalID = *req.HospitalID
	}
	item.UpdatedAt = time.Now()

	if err := s.stock.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteStock removes the matching record. Deleting an absent id succeeds.
func (s *Service) DeleteStock(ctx context.Context, id uuid.UUID) error {
	if err := s.stock.Delete(ctx, id); err != nil && !errors.IsNotFound(err) {
		return err
	}
	return nil
}

func (s *Service) ListStock(ctx context.Context) ([]*model.StockItem, error) {
	return s.stock.List(ctx)
}

// TotalStockUnits sums quantity over all current stock records.
func (s *Service) TotalStockUnits(ctx context.Context) (int, error) {
	items, err := s.stock.List(ctx)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total, nil
}

// --- organs ---

func (s *Service) AddOrgan(ctx context.Context, req *model.CreateOrganRequest) (*model.OrganRecord, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, errors.Validation("invalid organ record", err)
	}

	organ := &model.OrganRecord{
		Base:       model.NewBase(),
		Type:       req.Type,
		Available:  req.Available,
		Urgency:    req.Urgency,
		HospitalID: req.HospitalID,
	}
	if err := s.organs.Create(ctx, organ); err != nil {
		return nil, fmt.Errorf("failed to add organ record: %w", err)
	}
	return organ, nil
}

func (s *Service) UpdateOrgan(ctx context.Context, id uuid.UUID, req *model.UpdateOrganRequest) (*model.OrganRecord, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, errors.Validation("invalid organ update", err)
	}

	organ, err := s.organs.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		organ.Type = *req.Type
	}
	if req.Available != nil {
		organ.Available = *req.Available
	}
	if req.Urgency != nil {
		organ.Urgency = *req.Urgency
	}
	if req.HospitalID != nil {
		organ.HospitalID = *req.HospitalID
	}
	organ.UpdatedAt = time.Now()

	if err := s.organs.Update(ctx, organ); err != nil {
		return nil, err
	}
	return organ, nil
}

func (s *Service) DeleteOrgan(ctx context.Context, id uuid.UUID) error {
	if err := s.organs.Delete(ctx, id); err != nil && !errors.IsNotFound(err) {
		return err
	}
	return nil
}

func (s *Service) ListOrgans(ctx context.Context) ([]*model.OrganRecord, error) {
	return s.organs.List(ctx)
}

// --- requests ---

// AddRequest records a medical request. Status always starts Pending and
// CreatedAt is assigned here, never by the caller.
func (s *Service) AddRequest(ctx context.Context, req *model.CreateRequestRequest) (*model.MedicalRequest, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, errors.Validation("invalid medical request", err)
	}
	if req.BloodGroup != "" && !model.ValidBloodGroup(req.BloodGroup) {
		return nil, errors.Validation(fmt.Sprintf("unknown blood group %q", req.BloodGroup), nil)
	}

	request := &model.MedicalRequest{
		Base:          model.NewBase(),
		PatientName:   req.PatientName,
		Requirement:   req.Requirement,
		BloodGroup:    req.BloodGroup,
		OrganType:     req.OrganType,
		Quantity:      req.Quantity,
		Urgency:       req.Urgency,
		Status:        model.RequestStatusPending,
		Location:      req.Location,
		ContactNumber: req.ContactNumber,
		HospitalID:    req.HospitalID,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to add request: %w", err)
	}
	return request, nil
}

// SubmitEmergency records an emergency request. Urgency is forced to High
// and the staged notification fan-out is kicked off.
func (s *Service) SubmitEmergency(ctx context.Context, req *model.EmergencyRequestRequest) (*model.MedicalRequest, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, errors.Validation("invalid emergency request", err)
	}
	if req.BloodGroup != "" && !model.ValidBloodGroup(req.BloodGroup) {
		return nil, errors.Validation(fmt.Sprintf("unknown blood group %q", req.BloodGroup), nil)
	}

	request := &model.MedicalRequest{
		Base:          model.NewBase(),
		PatientName:   req.PatientName,
		Requirement:   req.Requirement,
		BloodGroup:    req.BloodGroup,
		OrganType:     req.OrganType,
		Quantity:      req.Quantity,
		Urgency:       model.UrgencyHigh,
		Status:        model.RequestStatusPending,
		Location:      req.Location,
		ContactNumber: req.ContactNumber,
		HospitalName:  req.HospitalName,
		Notes:         req.Notes,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to add emergency request: %w", err)
	}

	if s.alerter != nil {
		s.alerter.EmergencyCreated(request)
	}
	return request, nil
}

// UpdateRequestStatus moves a request through its lifecycle. Only forward
// transitions are accepted.
func (s *Service) UpdateRequestStatus(ctx context.Context, id uuid.UUID, status string) (*model.MedicalRequest, error) {
	if !model.ValidRequestStatus(status) {
		return nil, errors.Validation(fmt.Sprintf("unknown status %q", status), nil)
	}

	request, err := s.requests.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !model.CanTransition(request.Status, status) {
		return nil, errors.Validation(
			fmt.Sprintf("cannot move request from %s to %s", request.Status, status), nil)
	}

	request.Status = status
	request.UpdatedAt = time.Now()
	if err := s.requests.Update(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *Service) ListRequests(ctx context.Context) ([]*model.MedicalRequest, error) {
	return s.requests.List(ctx)
}

// RequestsForContact returns the requests whose contact number matches the
// given phone, the portal's informal "my requests" association.
func (s *Service) RequestsForContact(ctx context.Context, contact string) ([]*model.MedicalRequest, error) {
	return s.requests.ListByContact(ctx, contact)
}

// Stats computes the dashboard counters from current state.
func (s *Service) Stats(ctx context.Context) (*model.DashboardStats, error) {
	total, err := s.TotalStockUnits(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &model.DashboardStats{TotalStockUnits: total}
	for _, req := range requests {
		switch req.Status {
		case model.RequestStatusPending:
			stats.PendingRequests++
		case model.RequestStatusCompleted:
			stats.CompletedRequests++
		}
	}
	return stats, nil
}
