package store

// SetAppliedJobs replaces the applied-job set and its count wholesale from
// a full refetch. This is the only way the set ever shrinks: there is no
// withdraw-application flow, so individual mutations only grow it.
func (s *Store) SetAppliedJobs(ids []string, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appliedJobs = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.appliedJobs[id] = struct{}{}
	}
	if count < 0 {
		count = 0
	}
	s.applicationsCount = count
}

// AddAppliedJob records a successful application. Re-adding a present id is
// a no-op so a double submit cannot inflate the count.
func (s *Store) AddAppliedJob(jobID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.appliedJobs[jobID]; ok {
		return
	}
	s.appliedJobs[jobID] = struct{}{}
	s.applicationsCount++
}

// HasApplied reports membership; job detail views use it for button state.
func (s *Store) HasApplied(jobID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.appliedJobs[jobID]
	return ok
}

func (s *Store) AppliedJobIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.appliedJobs))
	for id := range s.appliedJobs {
		ids = append(ids, id)
	}
	return ids
}

func (s *Store) ApplicationsCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applicationsCount
}
