package services

import (
	"context"

	"github.com/gufrankhursheed/job-platform-frontend/internal/client/models"
)

/*************
 * Fake API client
 *************/

type fakeClient struct {
	// inputs captured
	lastLoginEmail    string
	lastRegisterRole  models.Role
	lastSaveJobID     string
	lastUnsaveJobID   string
	lastApplyJobID    string
	lastEmployerID    string
	lastCreateDraft   models.JobDraft
	lastStatusJobID   string
	lastStatus        models.JobStatus
	lastDeleteJobID   string
	lastAppStatusID   string
	lastAppStatus     string
	lastInterviewDraft models.InterviewDraft
	logoutCalled      bool

	// outputs preset
	loginUser models.UserSummary
	loginErr  error

	registerErr error

	currentUser    models.UserSummary
	currentUserErr error

	logoutErr error

	savedJobs       []models.Job
	savedPagination models.Pagination
	savedErr        error

	saveErr   error
	unsaveErr error

	employerJobs    []models.Job
	employerJobsErr error

	createdJob models.Job
	createErr  error

	setStatusErr error
	deleteErr    error

	application models.Application
	applyErr    error

	candidateApps       []models.Application
	candidatePagination models.Pagination
	candidateAppsErr    error

	appStatusErr error

	totalApplicants    int
	totalApplicantsErr error

	jobCounts    map[string]int
	jobCountsErr error

	interview    models.Interview
	scheduleErr  error
	ivStatusErr  error
	interviews   []models.Interview
	ivPagination models.Pagination
	interviewsErr error

	upcomingCount    int
	upcomingCountErr error

	unread    int
	unreadErr error
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (models.UserSummary, error) {
	f.lastLoginEmail = email
	return f.loginUser, f.loginErr
}

func (f *fakeClient) Register(ctx context.Context, name, email, password string, role models.Role) error {
	f.lastRegisterRole = role
	return f.registerErr
}

func (f *fakeClient) CurrentUser(ctx context.Context) (models.UserSummary, error) {
	return f.currentUser, f.currentUserErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

func (f *fakeClient) SearchJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, models.Pagination, error) {
	return nil, models.Pagination{}, nil
}

func (f *fakeClient) Job(ctx context.Context, jobID string) (models.Job, error) {
	return models.Job{}, nil
}

func (f *fakeClient) CreateJob(ctx context.Context, draft models.JobDraft) (models.Job, error) {
	f.lastCreateDraft = draft
	return f.createdJob, f.createErr
}

func (f *fakeClient) SetJobStatus(ctx context.Context, jobID string, status models.JobStatus) error {
	f.lastStatusJobID = jobID
	f.lastStatus = status
	return f.setStatusErr
}

func (f *fakeClient) DeleteJob(ctx context.Context, jobID string) error {
	f.lastDeleteJobID = jobID
	return f.deleteErr
}

func (f *fakeClient) EmployerJobs(ctx context.Context, employerID string) ([]models.Job, error) {
	f.lastEmployerID = employerID
	return f.employerJobs, f.employerJobsErr
}

func (f *fakeClient) SaveJob(ctx context.Context, jobID string) error {
	f.lastSaveJobID = jobID
	return f.saveErr
}

func (f *fakeClient) UnsaveJob(ctx context.Context, jobID string) error {
	f.lastUnsaveJobID = jobID
	return f.unsaveErr
}

func (f *fakeClient) SavedJobs(ctx context.Context, page, limit int) ([]models.Job, models.Pagination, error) {
	return f.savedJobs, f.savedPagination, f.savedErr
}

func (f *fakeClient) Apply(ctx context.Context, jobID string) (models.Application, error) {
	f.lastApplyJobID = jobID
	return f.application, f.applyErr
}

func (f *fakeClient) CandidateApplications(ctx context.Context, candidateID, status string, page, limit int) ([]models.Application, models.Pagination, error) {
	return f.candidateApps, f.candidatePagination, f.candidateAppsErr
}

func (f *fakeClient) SetApplicationStatus(ctx context.Context, applicationID, status string) error {
	f.lastAppStatusID = applicationID
	f.lastAppStatus = status
	return f.appStatusErr
}

func (f *fakeClient) TotalApplicants(ctx context.Context) (int, error) {
	return f.totalApplicants, f.totalApplicantsErr
}

func (f *fakeClient) JobApplicantCounts(ctx context.Context) (map[string]int, error) {
	return f.jobCounts, f.jobCountsErr
}

func (f *fakeClient) ScheduleInterview(ctx context.Context, draft models.InterviewDraft) (models.Interview, error) {
	f.lastInterviewDraft = draft
	return f.interview, f.scheduleErr
}

func (f *fakeClient) SetInterviewStatus(ctx context.Context, interviewID, status string) error {
	return f.ivStatusErr
}

func (f *fakeClient) CandidateInterviews(ctx context.Context, candidateID string, page, limit int) ([]models.Interview, models.Pagination, error) {
	return f.interviews, f.ivPagination, f.interviewsErr
}

func (f *fakeClient) RecruiterUpcomingInterviewCount(ctx context.Context) (int, error) {
	return f.upcomingCount, f.upcomingCountErr
}

func (f *fakeClient) UnreadCount(ctx context.Context) (int, error) {
	return f.unread, f.unreadErr
}
