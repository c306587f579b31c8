package services

import (
	"context"
	"fmt"

	"github.com/gufrankhursheed/job-platform-frontend/internal/client/api"
	"github.com/gufrankhursheed/job-platform-frontend/internal/client/models"
	"github.com/gufrankhursheed/job-platform-frontend/internal/client/store"
	"github.com/gufrankhursheed/job-platform-frontend/internal/logging"
)

// JobService covers browsing, bookmarking and the recruiter's posting
// collection.
type JobService interface {
	Browse(ctx context.Context, filter models.JobFilter) ([]models.Job, models.Pagination, error)
	Details(ctx context.Context, jobID string) (models.Job, error)

	LoadSavedJobs(ctx context.Context) error
	SavedJobs(ctx context.Context, page, limit int) ([]models.Job, models.Pagination, error)
	Save(ctx context.Context, jobID string) error
	Unsave(ctx context.Context, jobID string) error

	LoadRecruiterJobs(ctx context.Context, employerID string) error
	Create(ctx context.Context, draft models.JobDraft) (models.Job, error)
	SetStatus(ctx context.Context, jobID string, status models.JobStatus) error
	Delete(ctx context.Context, jobID string) error
}

type jobService struct {
	client api.Client
	store  *store.Store
	log    logging.Logger
}

func NewJobService(client api.Client, st *store.Store, log logging.Logger) JobService {
	return &jobService{client: client, store: st, log: log}
}

// Browse is uncached: job listings are fetched per view.
func (s *jobService) Browse(ctx context.Context, filter models.JobFilter) ([]models.Job, models.Pagination, error) {
	return s.client.SearchJobs(ctx, filter)
}

func (s *jobService) Details(ctx context.Context, jobID string) (models.Job, error) {
	return s.client.Job(ctx, jobID)
}

// LoadSavedJobs refetches the saved set wholesale. On failure the prior
// cached state is retained; callers surface this only as a loading miss.
func (s *jobService) LoadSavedJobs(ctx context.Context) error {
	jobs, _, err := s.client.SavedJobs(ctx, 0, 0)
	if err != nil {
		s.log.Warn(ctx, "saved jobs refetch failed, keeping cached set", "error", err)
		return err
	}
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	s.store.SetSavedJobs(ids)
	return nil
}

func (s *jobService) SavedJobs(ctx context.Context, page, limit int) ([]models.Job, models.Pagination, error) {
	return s.client.SavedJobs(ctx, page, limit)
}

// Save bookmarks a job optimistically; the bookmark is rolled back if the
// server rejects it.
func (s *jobService) Save(ctx context.Context, jobID string) error {
	if s.store.IsSaved(jobID) {
		return nil
	}
	s.store.AddSavedJob(jobID)

	if err := s.client.SaveJob(ctx, jobID); err != nil {
		s.store.RemoveSavedJob(jobID)
		return fmt.Errorf("save job: %w", err)
	}
	return nil
}

func (s *jobService) Unsave(ctx context.Context, jobID string) error {
	if !s.store.IsSaved(jobID) {
		return nil
	}
	s.store.RemoveSavedJob(jobID)

	if err := s.client.UnsaveJob(ctx, jobID); err != nil {
		s.store.AddSavedJob(jobID)
		return fmt.Errorf("unsave job: %w", err)
	}
	return nil
}

// LoadRecruiterJobs refetches the recruiter's collection; partitions and
// the total are re-derived by the store in the same step.
func (s *jobService) LoadRecruiterJobs(ctx context.Context, employerID string) error {
	jobs, err := s.client.EmployerJobs(ctx, employerID)
	if err != nil {
		s.log.Warn(ctx, "recruiter jobs refetch failed, keeping cached collection", "error", err)
		return err
	}
	s.store.SetRecruiterJobs(jobs)
	return nil
}

// Create posts the draft and records the server's job row on success.
// Creation is confirm-then-add: the cache never holds a posting the server
// did not acknowledge.
func (s *jobService) Create(ctx context.Context, draft models.JobDraft) (models.Job, error) {
	if err := draft.Validate(); err != nil {
		return models.Job{}, err
	}

	job, err := s.client.CreateJob(ctx, draft)
	if err != nil {
		return models.Job{}, fmt.Errorf("create job: %w", err)
	}

	s.store.AddJob(job)
	return job, nil
}

// SetStatus flips a posting open/closed optimistically and restores the
// previous status if the server rejects the change.
func (s *jobService) SetStatus(ctx context.Context, jobID string, status models.JobStatus) error {
	prev, cached := s.store.RecruiterJob(jobID)
	s.store.SetJobStatus(jobID, status)

	if err := s.client.SetJobStatus(ctx, jobID, status); err != nil {
		if cached {
			s.store.SetJobStatus(jobID, prev.Status)
		}
		return fmt.Errorf("set job status: %w", err)
	}
	return nil
}

// Delete removes a posting optimistically; on failure the cached row is
// reinserted (at the tail, ordering is not preserved across a rollback).
func (s *jobService) Delete(ctx context.Context, jobID string) error {
	prev, cached := s.store.RecruiterJob(jobID)
	s.store.RemoveJob(jobID)

	if err := s.client.DeleteJob(ctx, jobID); err != nil {
		if cached {
			s.store.AddJob(prev)
		}
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}
