// Package store holds the client-side cache of server state: denormalized
// snapshots (id sets, partitioned lists, counts) that views render from
// without waiting on the network.
//
// The store is an explicit container created at startup and injected into
// services and views; it is never a package-level singleton. Reset returns
// it to the logged-out zero state.
//
// Every exported mutation is a single critical section, and derived fields
// (counts, partitions) are always recomputed from canonical data inside the
// same mutation, so they can never drift from their source.
package store

import (
	"sync"

	"github.com/gufrankhursheed/job-platform-frontend/internal/client/models"
)

type Store struct {
	mu sync.RWMutex

	// Session.
	user        *models.UserSummary
	authLoading bool
	authErr     string

	// Candidate caches.
	appliedJobs       map[string]struct{}
	applicationsCount int
	savedJobs         map[string]struct{}
	savedJobsCount    int

	// Recruiter caches. recruiterJobs is canonical; activeJobs, closedJobs
	// and totalJobsPosted are derived from it and only ever rebuilt whole.
	recruiterJobs   []models.Job
	activeJobs      []models.Job
	closedJobs      []models.Job
	totalJobsPosted int

	// Scalar counts.
	totalApplicants          int
	candidateInterviewsCount int
	recruiterInterviewsCount int
	unreadMessages           int
}

func New() *Store {
	s := &Store{}
	s.reset()
	return s
}

// Reset wipes all cached state, e.g. on logout or session expiry.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Store) reset() {
	s.user = nil
	s.authLoading = false
	s.authErr = ""
	s.appliedJobs = make(map[string]struct{})
	s.applicationsCount = 0
	s.savedJobs = make(map[string]struct{})
	s.savedJobsCount = 0
	s.recruiterJobs = nil
	s.activeJobs = nil
	s.closedJobs = nil
	s.totalJobsPosted = 0
	s.totalApplicants = 0
	s.candidateInterviewsCount = 0
	s.recruiterInterviewsCount = 0
	s.unreadMessages = 0
}
