package service

import (
	"context"

	"audit-service/internal/domain"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

type AuditRequestRepository interface {
	Create(ctx context.Context, input domain.InsertAuditRequest) (*domain.AuditRequest, error)
	GetByID(ctx context.Context, id int) (*domain.AuditRequest, error)
	GetAll(ctx context.Context) ([]domain.AuditRequest, error)
	UpdateContactStatus(ctx context.Context, id int, isContacted bool) (*domain.AuditRequest, error)
}

type AuditRequestServiceInterface interface {
	CreateAuditRequest(ctx context.Context, input domain.InsertAuditRequest) (*domain.AuditRequest, error)
	GetAuditRequest(ctx context.Context, id int) (*domain.AuditRequest, error)
	GetAllAuditRequests(ctx context.Context) ([]domain.AuditRequest, error)
	UpdateAuditRequestContactStatus(ctx context.Context, id int, isContacted bool) (*domain.AuditRequest, error)
}

// AuditRequestService is the only owner of the audit request store.
// It re-validates every submission before the repository is touched;
// the client-side form runs the same rules but is never trusted.
type AuditRequestService struct {
	auditRequestRepo AuditRequestRepository
	validate         *validator.Validate
	leads            *LeadNotifier
}

func NewAuditRequestService(auditRequestRepo AuditRequestRepository, validate *validator.Validate, leads *LeadNotifier) *AuditRequestService {
	return &AuditRequestService{
		auditRequestRepo: auditRequestRepo,
		validate:         validate,
		leads:            leads,
	}
}

func (s *AuditRequestService) CreateAuditRequest(ctx context.Context, input domain.InsertAuditRequest) (*domain.AuditRequest, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	auditRequest, err := s.auditRequestRepo.Create(ctx, input)
	if err != nil {
		log.WithError(err).WithField("email", input.Email).Error("Failed to create audit request")
		return nil, err
	}

	log.WithFields(log.Fields{
		"audit_request_id": auditRequest.ID,
		"email":            auditRequest.Email,
	}).Info("Audit request successfully created")

	// Lead events are best effort: a broker hiccup must not lose the
	// submission that is already stored.
	if err := s.leads.RecordLeadCreated(ctx, auditRequest); err != nil {
		log.WithError(err).WithField("audit_request_id", auditRequest.ID).Warn("Failed to publish lead created event")
	}

	return auditRequest, nil
}

func (s *AuditRequestService) GetAuditRequest(ctx context.Context, id int) (*domain.AuditRequest, error) {
	auditRequest, err := s.auditRequestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return auditRequest, nil
}

func (s *AuditRequestService) GetAllAuditRequests(ctx context.Context) ([]domain.AuditRequest, error) {
	auditRequests, err := s.auditRequestRepo.GetAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list audit requests")
		return nil, err
	}
	return auditRequests, nil
}

func (s *AuditRequestService) UpdateAuditRequestContactStatus(ctx context.Context, id int, isContacted bool) (*domain.AuditRequest, error) {
	auditRequest, err := s.auditRequestRepo.UpdateContactStatus(ctx, id, isContacted)
	if err != nil {
		if err != domain.ErrAuditRequestNotFound {
			log.WithError(err).WithField("audit_request_id", id).Error("Failed to update contact status")
		}
		return nil, err
	}

	if err := s.leads.RecordLeadContacted(ctx, auditRequest); err != nil {
		log.WithError(err).WithField("audit_request_id", auditRequest.ID).Warn("Failed to publish lead contacted event")
	}

	return auditRequest, nil
}
