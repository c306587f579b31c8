package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gufrankhursheed/job-platform-frontend/internal/client/models"
)

var errNotCandidate = errors.New("command requires a candidate session")

func (a *App) requireCandidate() (models.UserSummary, error) {
	user, ok := a.store.User()
	if !ok || user.Role != models.RoleCandidate {
		printlnFn("Please login as a candidate first.")
		return models.UserSummary{}, errNotCandidate
	}
	return user, nil
}

// BrowseJobs lists open postings. Remaining args are used as the search
// query; filters beyond that are prompted only when searching
// interactively would be tedious, so flags stay out of the REPL.
func (a *App) BrowseJobs(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first.")
		return nil
	}

	filter := models.JobFilter{Search: strings.Join(args, " "), Limit: 20}

	jobs, pagination, err := a.jobs.Browse(ctx, filter)
	if err != nil {
		a.log.Error(ctx, "job browse failed", "error", err)
		printlnFn("Could not load jobs.")
		return err
	}

	for _, j := range jobs {
		printlnFn(formatJobLine(j, a.store.HasApplied(j.ID), a.store.IsSaved(j.ID)))
	}
	printlnFn(fmt.Sprintf("Page %d of %d (%d jobs)", pagination.CurrentPage, pagination.TotalPages, pagination.TotalItems))
	return nil
}

func (a *App) ShowJob(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: job <id>")
		return nil
	}

	job, err := a.jobs.Details(ctx, args[0])
	if err != nil {
		printlnFn("Could not load job:", err.Error())
		return err
	}

	printlnFn(job.Title)
	printlnFn(job.CompanyName, "—", job.Location, workMode(job.Remote))
	if job.SalaryRange != "" {
		printlnFn("Salary:", job.SalaryRange)
	}
	if job.Description != "" {
		printlnFn(job.Description)
	}
	if a.store.HasApplied(job.ID) {
		printlnFn("[applied]")
	}
	if a.store.IsSaved(job.ID) {
		printlnFn("[saved]")
	}
	return nil
}

func (a *App) ApplyToJob(ctx context.Context, args []string) error {
	if _, err := a.requireCandidate(); err != nil {
		return err
	}
	if len(args) == 0 {
		printlnFn("Usage: apply <id>")
		return nil
	}
	jobID := args[0]

	if a.store.HasApplied(jobID) {
		printlnFn("Already applied.")
		return nil
	}

	if err := a.applications.Apply(ctx, jobID); err != nil {
		printlnFn("Apply failed:", err.Error())
		return err
	}
	printlnFn("Application submitted.")
	return nil
}

// ToggleSaved bookmarks or un-bookmarks a job depending on its current
// cached state.
func (a *App) ToggleSaved(ctx context.Context, args []string) error {
	if _, err := a.requireCandidate(); err != nil {
		return err
	}
	if len(args) == 0 {
		printlnFn("Usage: save <id> / unsave <id>")
		return nil
	}
	jobID := args[0]

	if a.store.IsSaved(jobID) {
		if err := a.jobs.Unsave(ctx, jobID); err != nil {
			printlnFn("Unsave failed:", err.Error())
			return err
		}
		printlnFn("Removed from saved jobs.")
	} else {
		if err := a.jobs.Save(ctx, jobID); err != nil {
			printlnFn("Save failed:", err.Error())
			return err
		}
		printlnFn("Saved.")
	}
	printlnFn(fmt.Sprintf("%d saved jobs", a.store.SavedJobsCount()))
	return nil
}

func (a *App) ListSavedJobs(ctx context.Context) error {
	if _, err := a.requireCandidate(); err != nil {
		return err
	}

	jobs, pagination, err := a.jobs.SavedJobs(ctx, 1, 20)
	if err != nil {
		a.log.Error(ctx, "saved jobs fetch failed", "error", err)
		printlnFn("Could not load saved jobs.")
		return err
	}

	for _, j := range jobs {
		printlnFn(formatJobLine(j, a.store.HasApplied(j.ID), true))
	}
	printlnFn(fmt.Sprintf("%d saved jobs", pagination.TotalItems))
	return nil
}

func (a *App) ListApplications(ctx context.Context) error {
	user, err := a.requireCandidate()
	if err != nil {
		return err
	}

	apps, pagination, err := a.applications.List(ctx, user.ID, "", 1, 20)
	if err != nil {
		a.log.Error(ctx, "applications fetch failed", "error", err)
		printlnFn("Could not load applications.")
		return err
	}

	for _, app := range apps {
		title := app.ResolvedJobID()
		if app.Job != nil {
			title = app.Job.Title + " @ " + app.Job.CompanyName
		}
		printlnFn(fmt.Sprintf("%s — %s (%s)", app.ID, title, app.Status))
	}
	printlnFn(fmt.Sprintf("%d applications", pagination.TotalItems))
	return nil
}

func (a *App) ListInterviews(ctx context.Context) error {
	user, err := a.requireCandidate()
	if err != nil {
		return err
	}

	interviews, pagination, err := a.interviews.CandidateList(ctx, user.ID, 1, 20)
	if err != nil {
		a.log.Error(ctx, "interviews fetch failed", "error", err)
		printlnFn("Could not load interviews.")
		return err
	}

	for _, iv := range interviews {
		printlnFn(fmt.Sprintf("%s — %s, %d min (%s)", iv.ID,
			iv.ScheduledAt.Format(time.RFC1123), iv.DurationMinutes, iv.Status))
	}
	printlnFn(fmt.Sprintf("%d interviews", pagination.TotalItems))
	return nil
}

// CandidateDashboard refreshes every candidate-facing count and renders
// the stats grid. Individual fetch failures degrade to the cached (or
// zero) value instead of failing the whole view.
func (a *App) CandidateDashboard(ctx context.Context) error {
	user, err := a.requireCandidate()
	if err != nil {
		return err
	}

	_ = a.applications.LoadAppliedJobs(ctx, user.ID)
	_ = a.jobs.LoadSavedJobs(ctx)
	_ = a.interviews.LoadCandidateCount(ctx, user.ID)
	_ = a.chat.RefreshUnreadCount(ctx)

	printlnFn("Applications: ", a.store.ApplicationsCount())
	printlnFn("Saved jobs:   ", a.store.SavedJobsCount())
	printlnFn("Interviews:   ", a.store.CandidateInterviewsCount())
	printlnFn("Unread:       ", a.store.UnreadCount())
	return nil
}

func formatJobLine(j models.Job, applied, saved bool) string {
	line := fmt.Sprintf("%s  %s @ %s, %s %s", j.ID, j.Title, j.CompanyName, j.Location, workMode(j.Remote))
	if j.Status == models.JobClosed {
		line += " [closed]"
	}
	if applied {
		line += " [applied]"
	}
	if saved {
		line += " [saved]"
	}
	return line
}

func workMode(remote bool) string {
	if remote {
		return "(remote)"
	}
	return "(onsite)"
}
