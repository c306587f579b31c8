package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/gufrankhursheed/job-platform-frontend/internal/logging"
)

// RefreshEndpoint is the one endpoint the gateway never tries to heal:
// a 401 from it means the session is gone for good.
const RefreshEndpoint = "auth/refreshAccessToken"

// AccessTokenCookieName is the http-only cookie the backend issues on login.
const AccessTokenCookieName = "accessToken"

// Gateway is the single choke point for every backend call. It owns the
// session cookie jar and the access-token-refresh-and-retry protocol:
// a 401 triggers exactly one silent refresh, the original request is retried
// exactly once, and an unrecoverable session escalates to the expired hook.
//
// Concurrent callers hitting 401 at the same time share one in-flight
// refresh call instead of issuing duplicates.
type Gateway struct {
	baseURL string
	httpc   *http.Client
	log     logging.Logger

	// expired is invoked once per unrecoverable refresh failure. The CLI
	// installs a hook that clears the store and drops back to the login
	// prompt, which is this client's equivalent of navigating to /login.
	expired func()

	refresh singleflight.Group
}

// NewGateway builds a gateway for the given API base URL. The expired hook
// may be nil. A cookie jar is always installed so the http-only session
// cookies issued by the backend ride along on every call.
func NewGateway(baseURL string, timeout time.Duration, log logging.Logger, expired func()) (*Gateway, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Jar: jar, Timeout: timeout},
		log:     log,
		expired: expired,
	}, nil
}

// Do executes an authenticated JSON request against a relative endpoint.
// A non-nil body is marshalled to JSON. Non-2xx responses other than the
// 401-refresh path are returned unchanged; interpreting them is the
// caller's job. The returned response body must be closed by the caller.
func (g *Gateway) Do(ctx context.Context, method, endpoint string, body any) (*http.Response, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
	}

	resp, err := g.send(ctx, method, endpoint, payload)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized || endpoint == RefreshEndpoint {
		return resp, nil
	}

	// Session may have expired mid-flight. Heal it once and retry once;
	// whatever the retry returns is final.
	resp.Body.Close()

	if err := g.refreshSession(ctx); err != nil {
		g.log.Warn(ctx, "session refresh failed, forcing logout", "error", err)
		if g.expired != nil {
			g.expired()
		}
		return nil, fmt.Errorf("session expired: %w", ErrUnauthorized)
	}

	return g.send(ctx, method, endpoint, payload)
}

func (g *Gateway) send(ctx context.Context, method, endpoint string, payload []byte) (*http.Response, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+"/"+strings.TrimLeft(endpoint, "/"), reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := g.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

// refreshSession performs the silent token refresh. Concurrent callers
// attach to the same in-flight call via the singleflight group.
func (g *Gateway) refreshSession(ctx context.Context) error {
	_, err, _ := g.refresh.Do("refresh", func() (any, error) {
		resp, err := g.send(ctx, http.MethodPost, RefreshEndpoint, nil)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("refresh rejected: status %d", resp.StatusCode)
		}
		return nil, nil
	})
	return err
}

// SessionToken returns the raw access-token cookie currently held in the
// jar, or false when logged out. The realtime channel uses it for its
// handshake.
func (g *Gateway) SessionToken() (string, bool) {
	u, err := url.Parse(g.baseURL + "/")
	if err != nil {
		return "", false
	}
	for _, c := range g.httpc.Jar.Cookies(u) {
		if c.Name == AccessTokenCookieName {
			return c.Value, true
		}
	}
	return "", false
}

// SessionClaims reports the unverified claims of the access-token cookie,
// or false if no token is present or it does not parse as a JWT.
// Verification is the server's job; the client only peeks for display and
// expiry hints.
func (g *Gateway) SessionClaims() (jwt.MapClaims, bool) {
	token, ok := g.SessionToken()
	if !ok {
		return nil, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, false
	}
	return claims, true
}

// ClearCookies drops all session cookies, e.g. on logout.
func (g *Gateway) ClearCookies() {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return
	}
	g.httpc.Jar = jar
}
