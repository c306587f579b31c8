package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gufrankhursheed/job-platform-frontend/internal/client/models"
)

// RESTClient implements Client over the session Gateway. Every response is
// decoded into an explicit envelope and validated before it is handed to
// callers; loosely shaped payloads never leave this package.
type RESTClient struct {
	gw *Gateway
}

func NewRESTClient(gw *Gateway) *RESTClient {
	return &RESTClient{gw: gw}
}

var _ Client = (*RESTClient)(nil)

// do executes one call and decodes a JSON body into out (when non-nil).
// Error statuses are mapped onto the package sentinels; the backend's
// {message} body, when present, is preserved in *Error.
func (c *RESTClient) do(ctx context.Context, method, endpoint string, body, out any) error {
	resp, err := c.gw.Do(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var e struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)

		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%s: %w", endpoint, ErrUnauthorized)
		case http.StatusNotFound:
			return fmt.Errorf("%s: %w", endpoint, ErrNotFound)
		default:
			return &Error{Status: resp.StatusCode, Message: e.Message}
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

func (c *RESTClient) Login(ctx context.Context, email, password string) (models.UserSummary, error) {
	req := map[string]string{"email": email, "password": password}
	var env struct {
		User models.UserSummary `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "auth/login", req, &env); err != nil {
		return models.UserSummary{}, err
	}
	if err := env.User.Validate(); err != nil {
		return models.UserSummary{}, fmt.Errorf("login response: %w", err)
	}
	return env.User, nil
}

func (c *RESTClient) Register(ctx context.Context, name, email, password string, role models.Role) error {
	req := map[string]string{"name": name, "email": email, "password": password, "role": string(role)}
	return c.do(ctx, http.MethodPost, "auth/register", req, nil)
}

func (c *RESTClient) CurrentUser(ctx context.Context) (models.UserSummary, error) {
	var user models.UserSummary
	if err := c.do(ctx, http.MethodGet, "auth/getCurrentUser", nil, &user); err != nil {
		return models.UserSummary{}, err
	}
	if err := user.Validate(); err != nil {
		return models.UserSummary{}, fmt.Errorf("getCurrentUser response: %w", err)
	}
	return user, nil
}

func (c *RESTClient) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "auth/logout", nil, nil)
	c.gw.ClearCookies()
	return err
}

func (c *RESTClient) SearchJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, models.Pagination, error) {
	q := url.Values{}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.Location != "" {
		q.Set("location", filter.Location)
	}
	if filter.Remote {
		q.Set("remote", "true")
	}
	if filter.Page > 0 {
		q.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}

	endpoint := "job"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var env struct {
		Jobs       []models.Job      `json:"jobs"`
		Pagination models.Pagination `json:"pagination"`
	}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &env); err != nil {
		return nil, models.Pagination{}, err
	}
	if err := validateJobs(env.Jobs); err != nil {
		return nil, models.Pagination{}, err
	}
	return env.Jobs, env.Pagination, nil
}

func (c *RESTClient) Job(ctx context.Context, jobID string) (models.Job, error) {
	var env struct {
		Job models.Job `json:"job"`
	}
	if err := c.do(ctx, http.MethodGet, "job/"+jobID, nil, &env); err != nil {
		return models.Job{}, err
	}
	if err := env.Job.Validate(); err != nil {
		return models.Job{}, fmt.Errorf("job response: %w", err)
	}
	return env.Job, nil
}

func (c *RESTClient) CreateJob(ctx context.Context, draft models.JobDraft) (models.Job, error) {
	var env struct {
		Job models.Job `json:"job"`
	}
	if err := c.do(ctx, http.MethodPost, "job/create", draft, &env); err != nil {
		return models.Job{}, err
	}
	if err := env.Job.Validate(); err != nil {
		return models.Job{}, fmt.Errorf("create job response: %w", err)
	}
	return env.Job, nil
}

func (c *RESTClient) SetJobStatus(ctx context.Context, jobID string, status models.JobStatus) error {
	return c.do(ctx, http.MethodPatch, "job/"+jobID, map[string]string{"status": string(status)}, nil)
}

func (c *RESTClient) DeleteJob(ctx context.Context, jobID string) error {
	return c.do(ctx, http.MethodDelete, "job/"+jobID, nil, nil)
}

func (c *RESTClient) EmployerJobs(ctx context.Context, employerID string) ([]models.Job, error) {
	var env struct {
		Jobs []models.Job `json:"jobs"`
	}
	if err := c.do(ctx, http.MethodGet, "job/employer/"+employerID, nil, &env); err != nil {
		return nil, err
	}
	if err := validateJobs(env.Jobs); err != nil {
		return nil, err
	}
	return env.Jobs, nil
}

func (c *RESTClient) SaveJob(ctx context.Context, jobID string) error {
	return c.do(ctx, http.MethodPost, "job/save", map[string]string{"jobId": jobID}, nil)
}

func (c *RESTClient) UnsaveJob(ctx context.Context, jobID string) error {
	return c.do(ctx, http.MethodPost, "job/unsave", map[string]string{"jobId": jobID}, nil)
}

func (c *RESTClient) SavedJobs(ctx context.Context, page, limit int) ([]models.Job, models.Pagination, error) {
	endpoint := "job/saved"
	if page > 0 || limit > 0 {
		endpoint += fmt.Sprintf("?page=%d&limit=%d", page, limit)
	}
	var env struct {
		SavedJobs  []models.Job      `json:"savedJobs"`
		Pagination models.Pagination `json:"pagination"`
	}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &env); err != nil {
		return nil, models.Pagination{}, err
	}
	if err := validateJobs(env.SavedJobs); err != nil {
		return nil, models.Pagination{}, err
	}
	return env.SavedJobs, env.Pagination, nil
}

func (c *RESTClient) Apply(ctx context.Context, jobID string) (models.Application, error) {
	var env struct {
		Application models.Application `json:"application"`
	}
	if err := c.do(ctx, http.MethodPost, "application/apply", map[string]string{"jobId": jobID}, &env); err != nil {
		return models.Application{}, err
	}
	if err := env.Application.Validate(); err != nil {
		return models.Application{}, fmt.Errorf("apply response: %w", err)
	}
	return env.Application, nil
}

func (c *RESTClient) CandidateApplications(ctx context.Context, candidateID, status string, page, limit int) ([]models.Application, models.Pagination, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	endpoint := "application/candidate/" + candidateID
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var env struct {
		Applications []models.Application `json:"applications"`
		Pagination   models.Pagination    `json:"pagination"`
	}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &env); err != nil {
		return nil, models.Pagination{}, err
	}
	for _, a := range env.Applications {
		if err := a.Validate(); err != nil {
			return nil, models.Pagination{}, fmt.Errorf("applications response: %w", err)
		}
	}
	return env.Applications, env.Pagination, nil
}

func (c *RESTClient) SetApplicationStatus(ctx context.Context, applicationID, status string) error {
	return c.do(ctx, http.MethodPatch, "application/"+applicationID+"/status", map[string]string{"status": status}, nil)
}

func (c *RESTClient) TotalApplicants(ctx context.Context) (int, error) {
	var env struct {
		TotalApplicants int `json:"totalApplicants"`
	}
	if err := c.do(ctx, http.MethodGet, "application/recruiter/total-applicants", nil, &env); err != nil {
		return 0, err
	}
	return env.TotalApplicants, nil
}

func (c *RESTClient) JobApplicantCounts(ctx context.Context) (map[string]int, error) {
	var env struct {
		Counts map[string]int `json:"counts"`
	}
	if err := c.do(ctx, http.MethodGet, "application/recruiter/job-counts", nil, &env); err != nil {
		return nil, err
	}
	return env.Counts, nil
}

func (c *RESTClient) ScheduleInterview(ctx context.Context, draft models.InterviewDraft) (models.Interview, error) {
	var env struct {
		Interview models.Interview `json:"interview"`
	}
	if err := c.do(ctx, http.MethodPost, "interview", draft, &env); err != nil {
		return models.Interview{}, err
	}
	return env.Interview, nil
}

func (c *RESTClient) SetInterviewStatus(ctx context.Context, interviewID, status string) error {
	return c.do(ctx, http.MethodPatch, "interview/"+interviewID+"/status", map[string]string{"status": status}, nil)
}

func (c *RESTClient) CandidateInterviews(ctx context.Context, candidateID string, page, limit int) ([]models.Interview, models.Pagination, error) {
	endpoint := "interview/candidate/" + candidateID
	if page > 0 || limit > 0 {
		endpoint += fmt.Sprintf("?page=%d&limit=%d", page, limit)
	}
	var env struct {
		Interviews []models.Interview `json:"interviews"`
		Pagination models.Pagination  `json:"pagination"`
	}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &env); err != nil {
		return nil, models.Pagination{}, err
	}
	return env.Interviews, env.Pagination, nil
}

func (c *RESTClient) RecruiterUpcomingInterviewCount(ctx context.Context) (int, error) {
	var env struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "interview/recruiter/upcoming/count", nil, &env); err != nil {
		return 0, err
	}
	return env.Count, nil
}

func (c *RESTClient) UnreadCount(ctx context.Context) (int, error) {
	var env struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "chat/unreadCount", nil, &env); err != nil {
		return 0, err
	}
	return env.Count, nil
}

func validateJobs(jobs []models.Job) error {
	for _, j := range jobs {
		if err := j.Validate(); err != nil {
			return fmt.Errorf("jobs response: %w", err)
		}
	}
	return nil
}
