package services

import (
	"context"
	"fmt"

	"github.com/gufrankhursheed/job-platform-frontend/internal/client/api"
	"github.com/gufrankhursheed/job-platform-frontend/internal/client/models"
	"github.com/gufrankhursheed/job-platform-frontend/internal/client/store"
	"github.com/gufrankhursheed/job-platform-frontend/internal/logging"
)

// InterviewService covers scheduling and both roles' interview views.
type InterviewService interface {
	Schedule(ctx context.Context, draft models.InterviewDraft) (models.Interview, error)
	SetStatus(ctx context.Context, interviewID, status string) error
	CandidateList(ctx context.Context, candidateID string, page, limit int) ([]models.Interview, models.Pagination, error)
	LoadCandidateCount(ctx context.Context, candidateID string) error
	LoadRecruiterUpcomingCount(ctx context.Context) error
}

type interviewService struct {
	client api.Client
	store  *store.Store
	log    logging.Logger
}

func NewInterviewService(client api.Client, st *store.Store, log logging.Logger) InterviewService {
	return &interviewService{client: client, store: st, log: log}
}

// Schedule validates the draft locally before it reaches the network;
// invalid drafts are blocked at submission and never sent.
func (s *interviewService) Schedule(ctx context.Context, draft models.InterviewDraft) (models.Interview, error) {
	if err := draft.Validate(); err != nil {
		return models.Interview{}, err
	}

	iv, err := s.client.ScheduleInterview(ctx, draft)
	if err != nil {
		return models.Interview{}, fmt.Errorf("schedule interview: %w", err)
	}
	return iv, nil
}

func (s *interviewService) SetStatus(ctx context.Context, interviewID, status string) error {
	if err := s.client.SetInterviewStatus(ctx, interviewID, status); err != nil {
		return fmt.Errorf("set interview status: %w", err)
	}
	return nil
}

func (s *interviewService) CandidateList(ctx context.Context, candidateID string, page, limit int) ([]models.Interview, models.Pagination, error) {
	return s.client.CandidateInterviews(ctx, candidateID, page, limit)
}

func (s *interviewService) LoadCandidateCount(ctx context.Context, candidateID string) error {
	_, pagination, err := s.client.CandidateInterviews(ctx, candidateID, 1, 1)
	if err != nil {
		s.log.Warn(ctx, "candidate interview count fetch failed", "error", err)
		return err
	}
	s.store.SetCandidateInterviewsCount(pagination.TotalItems)
	return nil
}

func (s *interviewService) LoadRecruiterUpcomingCount(ctx context.Context) error {
	n, err := s.client.RecruiterUpcomingInterviewCount(ctx)
	if err != nil {
		s.log.Warn(ctx, "recruiter interview count fetch failed", "error", err)
		return err
	}
	s.store.SetRecruiterInterviewsCount(n)
	return nil
}
