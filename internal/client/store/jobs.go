package store

import "github.com/gufrankhursheed/job-platform-frontend/internal/client/models"

// Saved jobs. The count is never incremented or decremented on its own:
// each mutation recomputes it from the set so the two cannot diverge.

// SetSavedJobs replaces the saved set wholesale from a full refetch.
func (s *Store) SetSavedJobs(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.savedJobs = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.savedJobs[id] = struct{}{}
	}
	s.savedJobsCount = len(s.savedJobs)
}

func (s *Store) AddSavedJob(jobID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.savedJobs[jobID] = struct{}{}
	s.savedJobsCount = len(s.savedJobs)
}

// RemoveSavedJob is safe to call for an absent id.
func (s *Store) RemoveSavedJob(jobID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.savedJobs, jobID)
	s.savedJobsCount = len(s.savedJobs)
}

func (s *Store) IsSaved(jobID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.savedJobs[jobID]
	return ok
}

func (s *Store) SavedJobIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.savedJobs))
	for id := range s.savedJobs {
		ids = append(ids, id)
	}
	return ids
}

func (s *Store) SavedJobsCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.savedJobsCount
}

// Recruiter job collection. recruiterJobs is the canonical ordered list;
// the open/closed partitions and the total are rebuilt from it after every
// mutation, never patched in place.

func (s *Store) SetRecruiterJobs(jobs []models.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recruiterJobs = append([]models.Job(nil), jobs...)
	s.repartition()
}

// AddJob appends a newly created posting to the canonical list.
func (s *Store) AddJob(job models.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recruiterJobs = append(s.recruiterJobs, job)
	s.repartition()
}

// UpdateJob replaces the matching posting. Unknown ids are ignored: the row
// may have been removed by a concurrent action.
func (s *Store) UpdateJob(job models.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recruiterJobs {
		if s.recruiterJobs[i].ID == job.ID {
			s.recruiterJobs[i] = job
			break
		}
	}
	s.repartition()
}

// SetJobStatus flips one posting's status in place. A missing id is a
// silent no-op, not an error.
func (s *Store) SetJobStatus(jobID string, status models.JobStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recruiterJobs {
		if s.recruiterJobs[i].ID == jobID {
			s.recruiterJobs[i].Status = status
			break
		}
	}
	s.repartition()
}

// RemoveJob drops a posting from the canonical list. Absent ids are a no-op.
func (s *Store) RemoveJob(jobID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.recruiterJobs[:0]
	for _, j := range s.recruiterJobs {
		if j.ID != jobID {
			kept = append(kept, j)
		}
	}
	s.recruiterJobs = kept
	s.repartition()
}

// RecruiterJob looks up one posting from the canonical list.
func (s *Store) RecruiterJob(jobID string) (models.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, j := range s.recruiterJobs {
		if j.ID == jobID {
			return j, true
		}
	}
	return models.Job{}, false
}

func (s *Store) RecruiterJobs() []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Job(nil), s.recruiterJobs...)
}

func (s *Store) ActiveJobs() []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Job(nil), s.activeJobs...)
}

func (s *Store) ClosedJobs() []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Job(nil), s.closedJobs...)
}

func (s *Store) TotalJobsPosted() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalJobsPosted
}

// repartition rebuilds the derived views from the canonical list.
// Callers must hold the write lock.
func (s *Store) repartition() {
	s.activeJobs = s.activeJobs[:0]
	s.closedJobs = s.closedJobs[:0]
	for _, j := range s.recruiterJobs {
		if j.Status == models.JobOpen {
			s.activeJobs = append(s.activeJobs, j)
		} else {
			s.closedJobs = append(s.closedJobs, j)
		}
	}
	s.totalJobsPosted = len(s.recruiterJobs)
}
