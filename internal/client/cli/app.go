package cli

import (
	"bufio"
	"context"
	"os"
	"strconv"
	"sync/atomic"

	"github.com/gufrankhursheed/job-platform-frontend/internal/client/api"
	"github.com/gufrankhursheed/job-platform-frontend/internal/client/config"
	"github.com/gufrankhursheed/job-platform-frontend/internal/client/models"
	"github.com/gufrankhursheed/job-platform-frontend/internal/client/realtime"
	"github.com/gufrankhursheed/job-platform-frontend/internal/client/services"
	"github.com/gufrankhursheed/job-platform-frontend/internal/client/store"
	"github.com/gufrankhursheed/job-platform-frontend/internal/logging"
)

// App wires the gateway, store, services and realtime listener behind the
// interactive prompt.
type App struct {
	config  *config.Config
	store   *store.Store
	gateway *api.Gateway
	log     logging.Logger

	auth         services.AuthService
	jobs         services.JobService
	applications services.ApplicationService
	interviews   services.InterviewService
	chat         services.ChatService
	listener     *realtime.Listener

	reader *bufio.Reader
	out    *os.File

	// sessionExpired is flipped by the gateway's expired hook; the REPL
	// notices it on its next iteration and reports the forced logout.
	// This is the terminal client's stand-in for a redirect to /login.
	sessionExpired atomic.Bool
}

func NewApp(c *config.Config) (*App, error) {
	log := logging.NewDefault()
	st := store.New()

	app := &App{
		config: c,
		store:  st,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	gw, err := api.NewGateway(c.APIBaseURL, c.RequestTimeout, log, func() {
		st.Reset()
		app.sessionExpired.Store(true)
	})
	if err != nil {
		return nil, err
	}
	app.gateway = gw

	client := api.NewRESTClient(gw)
	app.auth = services.NewAuthService(client, st, log)
	app.jobs = services.NewJobService(client, st, log)
	app.applications = services.NewApplicationService(client, st, log)
	app.interviews = services.NewInterviewService(client, st, log)
	app.chat = services.NewChatService(client, st, log)
	app.listener = realtime.NewListener(c.SocketURL, c.APIBaseURL, gw.SessionToken, st, log, c.ReconnectMaxDelay)

	return app, nil
}

// Run probes for a restorable session, starts the realtime listener, and
// hands control to the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if user, ok := a.auth.Restore(ctx); ok {
		printlnFn("Welcome back,", user.Email)
	}

	go a.listener.Run(ctx)

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// expiredNotice reports and clears the forced-logout flag set by the
// gateway hook.
func (a *App) expiredNotice() bool {
	return a.sessionExpired.Swap(false)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.store.User()
	return ok
}

func (a *App) role() (models.Role, bool) {
	user, ok := a.store.User()
	if !ok {
		return "", false
	}
	return user.Role, true
}

// status renders the prompt suffix, e.g. "(ann@x.io candidate, 2 unread)".
func (a *App) status() string {
	user, ok := a.store.User()
	if !ok {
		return ""
	}
	s := user.Email + " " + string(user.Role)
	if n := a.store.UnreadCount(); n > 0 {
		s += ", " + strconv.Itoa(n) + " unread"
	}
	return "(" + s + ")"
}
