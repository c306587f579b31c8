package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/gufrankhursheed/job-platform-frontend/internal/client/models"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL needs. App satisfies
// it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	role() (models.Role, bool)
	expiredNotice() bool

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error

	BrowseJobs(ctx context.Context, args []string) error
	ShowJob(ctx context.Context, args []string) error
	ApplyToJob(ctx context.Context, args []string) error
	ToggleSaved(ctx context.Context, args []string) error
	ListSavedJobs(ctx context.Context) error
	ListApplications(ctx context.Context) error
	ListInterviews(ctx context.Context) error
	CandidateDashboard(ctx context.Context) error

	ListMyJobs(ctx context.Context) error
	PostJob(ctx context.Context) error
	SetJobState(ctx context.Context, args []string, status models.JobStatus) error
	RemovePostedJob(ctx context.Context, args []string) error
	ShowApplicants(ctx context.Context) error
	ScheduleInterview(ctx context.Context) error
	RecruiterDashboard(ctx context.Context) error
}

// runREPL reads one line at a time, dispatching the first token as the
// command. Commands are role-scoped: candidates and recruiters see
// different sets, and anything session-bound is refused while logged out.
// Handlers report their own errors; the loop only does I/O. Exits on EOF
// or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("Job platform client (type 'help' for commands)")

	for {
		if a.expiredNotice() {
			printlnFn("Session expired, please login again.")
		}

		printlnFn(fmt.Sprintf("jp> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printHelp(a)

		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "jobs":
			_ = a.BrowseJobs(ctx, args)
		case "job":
			_ = a.ShowJob(ctx, args)
		case "apply":
			_ = a.ApplyToJob(ctx, args)
		case "save", "unsave":
			_ = a.ToggleSaved(ctx, args)
		case "saved":
			_ = a.ListSavedJobs(ctx)
		case "applications":
			_ = a.ListApplications(ctx)
		case "interviews":
			_ = a.ListInterviews(ctx)

		case "myjobs":
			_ = a.ListMyJobs(ctx)
		case "post":
			_ = a.PostJob(ctx)
		case "close":
			_ = a.SetJobState(ctx, args, models.JobClosed)
		case "reopen":
			_ = a.SetJobState(ctx, args, models.JobOpen)
		case "remove":
			_ = a.RemovePostedJob(ctx, args)
		case "applicants":
			_ = a.ShowApplicants(ctx)
		case "schedule":
			_ = a.ScheduleInterview(ctx)

		case "dashboard":
			if role, ok := a.role(); ok && role == models.RoleRecruiter {
				_ = a.RecruiterDashboard(ctx)
			} else {
				_ = a.CandidateDashboard(ctx)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	role, ok := a.role()
	switch {
	case !ok:
		printlnFn("Available commands: login, register, exit")
	case role == models.RoleRecruiter:
		printlnFn("Available commands: myjobs, post, close <id>, reopen <id>, remove <id>, applicants, schedule, interviews, dashboard, whoami, logout, exit")
	default:
		printlnFn("Available commands: jobs [search terms], job <id>, apply <id>, save <id>, unsave <id>, saved, applications, interviews, dashboard, whoami, logout, exit")
	}
}
