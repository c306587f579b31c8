package services

import (
	"context"
	"fmt"

	"github.com/gufrankhursheed/job-platform-frontend/internal/client/api"
	"github.com/gufrankhursheed/job-platform-frontend/internal/client/models"
	"github.com/gufrankhursheed/job-platform-frontend/internal/client/store"
	"github.com/gufrankhursheed/job-platform-frontend/internal/logging"
)

// ApplicationService covers the candidate's applications and the
// recruiter's view of applicants.
type ApplicationService interface {
	LoadAppliedJobs(ctx context.Context, candidateID string) error
	Apply(ctx context.Context, jobID string) error
	List(ctx context.Context, candidateID, status string, page, limit int) ([]models.Application, models.Pagination, error)

	SetStatus(ctx context.Context, applicationID, status string) error
	LoadTotalApplicants(ctx context.Context) error
	JobApplicantCounts(ctx context.Context) (map[string]int, error)
}

type applicationService struct {
	client api.Client
	store  *store.Store
	log    logging.Logger
}

func NewApplicationService(client api.Client, st *store.Store, log logging.Logger) ApplicationService {
	return &applicationService{client: client, store: st, log: log}
}

// LoadAppliedJobs replaces the applied set from a full refetch. The count
// comes from the pagination envelope: the set holds the fetched page's job
// ids, the count is the server's total.
func (s *applicationService) LoadAppliedJobs(ctx context.Context, candidateID string) error {
	apps, pagination, err := s.client.CandidateApplications(ctx, candidateID, "", 0, 0)
	if err != nil {
		s.log.Warn(ctx, "applied jobs refetch failed, keeping cached set", "error", err)
		return err
	}

	ids := make([]string, 0, len(apps))
	for _, a := range apps {
		if id := a.ResolvedJobID(); id != "" {
			ids = append(ids, id)
		}
	}
	s.store.SetAppliedJobs(ids, pagination.TotalItems)
	return nil
}

// Apply submits an application and records it on success. The applied set
// only grows, so the mutation is confirm-then-record rather than
// optimistic: a rejected apply never needs a compensating shrink.
// Double submits are no-ops both here and in the store.
func (s *applicationService) Apply(ctx context.Context, jobID string) error {
	if s.store.HasApplied(jobID) {
		return nil
	}

	if _, err := s.client.Apply(ctx, jobID); err != nil {
		return fmt.Errorf("apply: %w", err)
	}

	s.store.AddAppliedJob(jobID)
	return nil
}

func (s *applicationService) List(ctx context.Context, candidateID, status string, page, limit int) ([]models.Application, models.Pagination, error) {
	return s.client.CandidateApplications(ctx, candidateID, status, page, limit)
}

func (s *applicationService) SetStatus(ctx context.Context, applicationID, status string) error {
	if err := s.client.SetApplicationStatus(ctx, applicationID, status); err != nil {
		return fmt.Errorf("set application status: %w", err)
	}
	return nil
}

func (s *applicationService) LoadTotalApplicants(ctx context.Context) error {
	n, err := s.client.TotalApplicants(ctx)
	if err != nil {
		s.log.Warn(ctx, "total applicants fetch failed", "error", err)
		return err
	}
	s.store.SetTotalApplicants(n)
	return nil
}

func (s *applicationService) JobApplicantCounts(ctx context.Context) (map[string]int, error) {
	return s.client.JobApplicantCounts(ctx)
}
