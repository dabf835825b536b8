package state

// CelebrationState is the transient completion banner. Each Show starts a
// new generation; timers carry the generation they were started for so a
// stale timer cannot dismiss a newer banner.
type CelebrationState struct {
	show       bool
	message    string
	generation int
	onClose    func()
}

// NewCelebrationState creates a hidden banner.
func NewCelebrationState() *CelebrationState {
	return &CelebrationState{}
}

// Show displays message and returns the generation to dismiss it with.
// A banner already showing is closed first. onClose runs exactly once,
// when this banner goes away.
func (s *CelebrationState) Show(message string, onClose func()) int {
	if s.show {
		s.close()
	}
	s.generation++
	s.show = true
	s.message = message
	s.onClose = onClose
	return s.generation
}

// Dismiss closes the banner if generation is the one showing.
func (s *CelebrationState) Dismiss(generation int) bool {
	if !s.show || generation != s.generation {
		return false
	}
	s.close()
	return true
}

// DismissCurrent closes whatever banner is showing.
func (s *CelebrationState) DismissCurrent() bool {
	return s.Dismiss(s.generation)
}

func (s *CelebrationState) close() {
	s.show = false
	s.message = ""
	onClose := s.onClose
	s.onClose = nil
	if onClose != nil {
		onClose()
	}
}

// Showing reports whether the banner is up.
func (s *CelebrationState) Showing() bool {
	return s.show
}

// Message returns the banner text.
func (s *CelebrationState) Message() string {
	return s.message
}

// Generation returns the generation of the latest Show.
func (s *CelebrationState) Generation() int {
	return s.generation
}
