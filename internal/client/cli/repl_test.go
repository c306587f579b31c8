package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/gufrankhursheed/job-platform-frontend/internal/client/models"
)

type fakeExec struct {
	loggedIn bool
	userRole models.Role
	expired  bool

	calls      []string
	lastStatus models.JobStatus
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) role() (models.Role, bool) {
	if !f.loggedIn {
		return "", false
	}
	return f.userRole, true
}
func (f *fakeExec) expiredNotice() bool {
	was := f.expired
	f.expired = false
	return was
}

func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func (f *fakeExec) BrowseJobs(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "jobs")
	return nil
}
func (f *fakeExec) ShowJob(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "job")
	return nil
}
func (f *fakeExec) ApplyToJob(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "apply")
	return nil
}
func (f *fakeExec) ToggleSaved(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "toggle")
	return nil
}
func (f *fakeExec) ListSavedJobs(ctx context.Context) error {
	f.calls = append(f.calls, "saved")
	return nil
}
func (f *fakeExec) ListApplications(ctx context.Context) error {
	f.calls = append(f.calls, "applications")
	return nil
}
func (f *fakeExec) ListInterviews(ctx context.Context) error {
	f.calls = append(f.calls, "interviews")
	return nil
}
func (f *fakeExec) CandidateDashboard(ctx context.Context) error {
	f.calls = append(f.calls, "dashboard:candidate")
	return nil
}

func (f *fakeExec) ListMyJobs(ctx context.Context) error {
	f.calls = append(f.calls, "myjobs")
	return nil
}
func (f *fakeExec) PostJob(ctx context.Context) error {
	f.calls = append(f.calls, "post")
	return nil
}
func (f *fakeExec) SetJobState(ctx context.Context, args []string, status models.JobStatus) error {
	f.calls = append(f.calls, "setstate")
	f.lastStatus = status
	return nil
}
func (f *fakeExec) RemovePostedJob(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "remove")
	return nil
}
func (f *fakeExec) ShowApplicants(ctx context.Context) error {
	f.calls = append(f.calls, "applicants")
	return nil
}
func (f *fakeExec) ScheduleInterview(ctx context.Context) error {
	f.calls = append(f.calls, "schedule")
	return nil
}
func (f *fakeExec) RecruiterDashboard(ctx context.Context) error {
	f.calls = append(f.calls, "dashboard:recruiter")
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_CandidateFlow(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"jobs golang remote",
		"job 7",
		"apply 7",
		"save 7",
		"saved",
		"applications",
		"dashboard",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{userRole: models.RoleCandidate}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "jobs", "job", "apply", "toggle", "saved", "applications", "dashboard:candidate"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_RecruiterDashboardRouting(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("dashboard\nexit\n")
	exec := &fakeExec{loggedIn: true, userRole: models.RoleRecruiter}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "dashboard:recruiter" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_CloseAndReopenCarryStatus(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("close 3\nexit\n")
	exec := &fakeExec{loggedIn: true, userRole: models.RoleRecruiter}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))
	if exec.lastStatus != models.JobClosed {
		t.Fatalf("close: got status %q", exec.lastStatus)
	}

	input = strings.NewReader("reopen 3\nexit\n")
	exec = &fakeExec{loggedIn: true, userRole: models.RoleRecruiter}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))
	if exec.lastStatus != models.JobOpen {
		t.Fatalf("reopen: got status %q", exec.lastStatus)
	}
}

func TestRunREPL_ExpiredNoticePrintedOnce(t *testing.T) {
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	input := strings.NewReader("whoami\nexit\n")
	exec := &fakeExec{loggedIn: true, userRole: models.RoleCandidate, expired: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	notices := 0
	for _, l := range lines {
		if l == "Session expired, please login again." {
			notices++
		}
	}
	if notices != 1 {
		t.Fatalf("expected the expiry notice exactly once, got %d", notices)
	}
}

func TestRunREPL_EmptyLineAndQuit(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("\n   \nquit\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
