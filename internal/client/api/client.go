package api

import (
	"context"

	"github.com/gufrankhursheed/job-platform-frontend/internal/client/models"
)

// Client is the typed surface of the backend REST API. Services depend on
// this interface; tests substitute fakes.
type Client interface {
	// Auth.
	Login(ctx context.Context, email, password string) (models.UserSummary, error)
	Register(ctx context.Context, name, email, password string, role models.Role) error
	CurrentUser(ctx context.Context) (models.UserSummary, error)
	Logout(ctx context.Context) error

	// Jobs.
	SearchJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, models.Pagination, error)
	Job(ctx context.Context, jobID string) (models.Job, error)
	CreateJob(ctx context.Context, draft models.JobDraft) (models.Job, error)
	SetJobStatus(ctx context.Context, jobID string, status models.JobStatus) error
	DeleteJob(ctx context.Context, jobID string) error
	EmployerJobs(ctx context.Context, employerID string) ([]models.Job, error)
	SaveJob(ctx context.Context, jobID string) error
	UnsaveJob(ctx context.Context, jobID string) error
	SavedJobs(ctx context.Context, page, limit int) ([]models.Job, models.Pagination, error)

	// Applications.
	Apply(ctx context.Context, jobID string) (models.Application, error)
	CandidateApplications(ctx context.Context, candidateID, status string, page, limit int) ([]models.Application, models.Pagination, error)
	SetApplicationStatus(ctx context.Context, applicationID, status string) error
	TotalApplicants(ctx context.Context) (int, error)
	JobApplicantCounts(ctx context.Context) (map[string]int, error)

	// Interviews.
	ScheduleInterview(ctx context.Context, draft models.InterviewDraft) (models.Interview, error)
	SetInterviewStatus(ctx context.Context, interviewID, status string) error
	CandidateInterviews(ctx context.Context, candidateID string, page, limit int) ([]models.Interview, models.Pagination, error)
	RecruiterUpcomingInterviewCount(ctx context.Context) (int, error)

	// Chat.
	UnreadCount(ctx context.Context) (int, error)
}
