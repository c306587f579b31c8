// Package models defines the job-platform domain types shared by the API
// client, the cache store and the CLI.
package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownRole      = errors.New("unknown role")
	ErrUnknownJobStatus = errors.New("unknown job status")
)

// Role classifies an account: candidates browse and apply, recruiters post
// and hire.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCandidate, RoleRecruiter:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// UserSummary is the session identity the server discloses to the client.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u UserSummary) Validate() error {
	if u.ID == "" {
		return errors.New("user id is empty")
	}
	if u.Email == "" {
		return errors.New("user email is empty")
	}
	if _, err := ParseRole(string(u.Role)); err != nil {
		return err
	}
	return nil
}

// JobStatus is a posting's lifecycle state.
type JobStatus string

const (
	JobOpen   JobStatus = "open"
	JobClosed JobStatus = "closed"
)

func ParseJobStatus(s string) (JobStatus, error) {
	switch JobStatus(s) {
	case JobOpen, JobClosed:
		return JobStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownJobStatus, s)
	}
}

// Job is a posting as the server returns it.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"companyName"`
	Location    string    `json:"location"`
	Remote      bool      `json:"remote"`
	Category    string    `json:"category"`
	SalaryRange string    `json:"salaryRange"`
	Description string    `json:"description"`
	EmployerID  string    `json:"employerId"`
	Status      JobStatus `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (j Job) Validate() error {
	if j.ID == "" {
		return errors.New("job id is empty")
	}
	if j.Title == "" {
		return errors.New("job title is empty")
	}
	if _, err := ParseJobStatus(string(j.Status)); err != nil {
		return err
	}
	return nil
}

// JobDraft is the recruiter's input for a new posting.
type JobDraft struct {
	Title       string `json:"title"`
	CompanyName string `json:"companyName"`
	Location    string `json:"location"`
	Remote      bool   `json:"remote"`
	Category    string `json:"category"`
	SalaryRange string `json:"salaryRange"`
	Description string `json:"description"`
}

func (d JobDraft) Validate() error {
	if d.Title == "" {
		return errors.New("job title is required")
	}
	if d.CompanyName == "" {
		return errors.New("company name is required")
	}
	return nil
}

// JobFilter narrows a job search. Zero-valued fields are omitted from the
// request.
type JobFilter struct {
	Search   string
	Category string
	Location string
	Remote   bool
	Page     int
	Limit    int
}

// Application links a candidate to a job. Some endpoints embed the full
// job row, others only carry its id.
type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"jobId"`
	CandidateID string    `json:"candidateId"`
	Status      string    `json:"status"`
	Job         *Job      `json:"job,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (a Application) Validate() error {
	if a.ID == "" {
		return errors.New("application id is empty")
	}
	if a.Job != nil {
		return a.Job.Validate()
	}
	return nil
}

// ResolvedJobID prefers the embedded job row over the flat id field.
// Returns "" when the application carries no job reference at all.
func (a Application) ResolvedJobID() string {
	if a.Job != nil && a.Job.ID != "" {
		return a.Job.ID
	}
	return a.JobID
}

// Interview is a scheduled meeting between a recruiter and a candidate.
type Interview struct {
	ID              string    `json:"id"`
	JobID           string    `json:"jobId"`
	CandidateID     string    `json:"candidateId"`
	ApplicationID   string    `json:"applicationId"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
}

// InterviewDraft is the recruiter's input for scheduling an interview.
type InterviewDraft struct {
	CandidateID     string    `json:"candidateId"`
	JobID           string    `json:"jobId"`
	ApplicationID   string    `json:"applicationId"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int       `json:"durationMinutes"`
	Notes           string    `json:"notes"`
}

func (d InterviewDraft) Validate() error {
	if d.CandidateID == "" {
		return errors.New("candidate id is required")
	}
	if d.JobID == "" {
		return errors.New("job id is required")
	}
	if !d.ScheduledAt.After(time.Now()) {
		return errors.New("interview time must be in the future")
	}
	if d.DurationMinutes <= 0 {
		return errors.New("interview duration must be positive")
	}
	return nil
}

// Pagination is the paging envelope the server attaches to list responses.
type Pagination struct {
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	TotalItems  int `json:"totalItems"`
}
