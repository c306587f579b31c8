package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gufrankhursheed/job-platform-frontend/internal/client/models"
)

var errNotRecruiter = errors.New("command requires a recruiter session")

func (a *App) requireRecruiter() (models.UserSummary, error) {
	user, ok := a.store.User()
	if !ok || user.Role != models.RoleRecruiter {
		printlnFn("Please login as a recruiter first.")
		return models.UserSummary{}, errNotRecruiter
	}
	return user, nil
}

func (a *App) ListMyJobs(ctx context.Context) error {
	user, err := a.requireRecruiter()
	if err != nil {
		return err
	}

	if err := a.jobs.LoadRecruiterJobs(ctx, user.ID); err != nil {
		printlnFn("Could not load your jobs, showing cached data.")
	}

	printlnFn(fmt.Sprintf("Active (%d):", len(a.store.ActiveJobs())))
	for _, j := range a.store.ActiveJobs() {
		printlnFn("  " + formatJobLine(j, false, false))
	}
	printlnFn(fmt.Sprintf("Closed (%d):", len(a.store.ClosedJobs())))
	for _, j := range a.store.ClosedJobs() {
		printlnFn("  " + formatJobLine(j, false, false))
	}
	printlnFn(fmt.Sprintf("Total posted: %d", a.store.TotalJobsPosted()))
	return nil
}

func (a *App) PostJob(ctx context.Context) error {
	if _, err := a.requireRecruiter(); err != nil {
		return err
	}

	title, err := GetSimpleText(a.reader, "Job title", a.out)
	if err != nil {
		return err
	}
	company, err := GetSimpleText(a.reader, "Company name", a.out)
	if err != nil {
		return err
	}
	location, err := GetSimpleText(a.reader, "Location", a.out)
	if err != nil {
		return err
	}
	remote, err := GetYesNo(a.reader, "Remote?", a.out)
	if err != nil {
		return err
	}
	category, err := GetSimpleText(a.reader, "Category", a.out)
	if err != nil {
		return err
	}
	salary, err := GetSimpleText(a.reader, "Salary range (optional)", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	draft := models.JobDraft{
		Title:       title,
		CompanyName: company,
		Location:    location,
		Remote:      remote,
		Category:    category,
		SalaryRange: salary,
		Description: description,
	}

	job, err := a.jobs.Create(ctx, draft)
	if err != nil {
		printlnFn("Posting failed:", err.Error())
		return err
	}

	printlnFn("Posted job", job.ID)
	printlnFn(fmt.Sprintf("Total posted: %d", a.store.TotalJobsPosted()))
	return nil
}

// SetJobState backs both the close and reopen commands.
func (a *App) SetJobState(ctx context.Context, args []string, status models.JobStatus) error {
	if _, err := a.requireRecruiter(); err != nil {
		return err
	}
	if len(args) == 0 {
		printlnFn("Usage: close <id> / reopen <id>")
		return nil
	}

	if err := a.jobs.SetStatus(ctx, args[0], status); err != nil {
		printlnFn("Status change failed:", err.Error())
		return err
	}
	printlnFn("Job is now", string(status)+".")
	return nil
}

func (a *App) RemovePostedJob(ctx context.Context, args []string) error {
	if _, err := a.requireRecruiter(); err != nil {
		return err
	}
	if len(args) == 0 {
		printlnFn("Usage: remove <id>")
		return nil
	}

	ok, err := GetYesNo(a.reader, "Delete job "+args[0]+"?", a.out)
	if err != nil || !ok {
		return err
	}

	if err := a.jobs.Delete(ctx, args[0]); err != nil {
		printlnFn("Delete failed:", err.Error())
		return err
	}
	printlnFn("Deleted.")
	return nil
}

// ShowApplicants prints per-job applicant counts next to each posting.
func (a *App) ShowApplicants(ctx context.Context) error {
	user, err := a.requireRecruiter()
	if err != nil {
		return err
	}

	if a.store.TotalJobsPosted() == 0 {
		_ = a.jobs.LoadRecruiterJobs(ctx, user.ID)
	}

	counts, err := a.applications.JobApplicantCounts(ctx)
	if err != nil {
		a.log.Error(ctx, "applicant counts fetch failed", "error", err)
		printlnFn("Could not load applicant counts.")
		return err
	}

	for _, j := range a.store.RecruiterJobs() {
		printlnFn(fmt.Sprintf("%s  %s — %d applicants", j.ID, j.Title, counts[j.ID]))
	}
	return nil
}

func (a *App) ScheduleInterview(ctx context.Context) error {
	if _, err := a.requireRecruiter(); err != nil {
		return err
	}

	candidateID, err := GetSimpleText(a.reader, "Candidate id", a.out)
	if err != nil {
		return err
	}
	jobID, err := GetSimpleText(a.reader, "Job id", a.out)
	if err != nil {
		return err
	}
	applicationID, err := GetSimpleText(a.reader, "Application id", a.out)
	if err != nil {
		return err
	}
	when, err := GetSimpleText(a.reader, "When (e.g. 2026-09-03T14:00:00Z)", a.out)
	if err != nil {
		return err
	}
	scheduledAt, err := time.Parse(time.RFC3339, when)
	if err != nil {
		printlnFn("Invalid time:", err.Error())
		return err
	}
	durationInput, err := GetSimpleText(a.reader, "Duration (minutes)", a.out)
	if err != nil {
		return err
	}
	duration, err := strconv.Atoi(durationInput)
	if err != nil {
		printlnFn("Invalid duration:", err.Error())
		return err
	}
	notes, err := GetSimpleText(a.reader, "Notes (optional)", a.out)
	if err != nil {
		return err
	}

	draft := models.InterviewDraft{
		CandidateID:     candidateID,
		JobID:           jobID,
		ApplicationID:   applicationID,
		ScheduledAt:     scheduledAt,
		DurationMinutes: duration,
		Notes:           notes,
	}

	iv, err := a.interviews.Schedule(ctx, draft)
	if err != nil {
		printlnFn("Scheduling failed:", err.Error())
		return err
	}
	printlnFn("Scheduled interview", iv.ID)
	return nil
}

// RecruiterDashboard refreshes the recruiter counts and renders the stats
// grid; fetch failures degrade to cached values.
func (a *App) RecruiterDashboard(ctx context.Context) error {
	user, err := a.requireRecruiter()
	if err != nil {
		return err
	}

	_ = a.jobs.LoadRecruiterJobs(ctx, user.ID)
	_ = a.applications.LoadTotalApplicants(ctx)
	_ = a.interviews.LoadRecruiterUpcomingCount(ctx)
	_ = a.chat.RefreshUnreadCount(ctx)

	printlnFn("Jobs posted:  ", a.store.TotalJobsPosted())
	printlnFn("Active jobs:  ", len(a.store.ActiveJobs()))
	printlnFn("Applicants:   ", a.store.TotalApplicants())
	printlnFn("Interviews:   ", a.store.RecruiterInterviewsCount())
	printlnFn("Unread:       ", a.store.UnreadCount())
	return nil
}
