package store

// Scalar dashboard counts. Each is independently fetched or incremented;
// none may go negative.

func (s *Store) SetTotalApplicants(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalApplicants = clampNonNegative(n)
}

func (s *Store) TotalApplicants() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalApplicants
}

func (s *Store) SetCandidateInterviewsCount(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidateInterviewsCount = clampNonNegative(n)
}

func (s *Store) CandidateInterviewsCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.candidateInterviewsCount
}

func (s *Store) SetRecruiterInterviewsCount(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recruiterInterviewsCount = clampNonNegative(n)
}

func (s *Store) RecruiterInterviewsCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recruiterInterviewsCount
}

func (s *Store) SetUnreadCount(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unreadMessages = clampNonNegative(n)
}

// IncrementUnread bumps the unread counter for a socket-pushed message.
func (s *Store) IncrementUnread() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unreadMessages++
}

func (s *Store) ClearUnread() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unreadMessages = 0
}

func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unreadMessages
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
