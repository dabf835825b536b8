package state

import "testing"

// TestCelebrationState_OnCloseOnce ensures onClose runs exactly once however
// the banner is dismissed.
func TestCelebrationState_OnCloseOnce(t *testing.T) {
	s := NewCelebrationState()
	calls := 0

	gen := s.Show("Congratulations! You've completed: Learn Spanish", func() { calls++ })
	if !s.Showing() {
		t.Fatal("Showing() = false after Show")
	}

	if !s.Dismiss(gen) {
		t.Error("Dismiss(current) = false, want true")
	}
	if s.Dismiss(gen) {
		t.Error("second Dismiss = true, want false")
	}
	if s.DismissCurrent() {
		t.Error("DismissCurrent after close = true, want false")
	}

	if calls != 1 {
		t.Errorf("onClose called %d times, want 1", calls)
	}
	if s.Message() != "" {
		t.Errorf("Message() after dismiss = %q, want empty", s.Message())
	}
}

// TestCelebrationState_StaleTimer ensures a timer from an earlier banner
// cannot close a newer one.
func TestCelebrationState_StaleTimer(t *testing.T) {
	s := NewCelebrationState()
	var closed []string

	first := s.Show("first", func() { closed = append(closed, "first") })
	second := s.Show("second", func() { closed = append(closed, "second") })

	if first == second {
		t.Fatal("generations should differ")
	}
	if len(closed) != 1 || closed[0] != "first" {
		t.Errorf("replacing a banner should close it, closed = %v", closed)
	}

	if s.Dismiss(first) {
		t.Error("stale Dismiss = true, want false")
	}
	if !s.Showing() || s.Message() != "second" {
		t.Errorf("second banner should still show, got %q", s.Message())
	}

	s.Dismiss(second)
	if len(closed) != 2 {
		t.Errorf("closed = %v, want both", closed)
	}
}

func TestCelebrationState_NilOnClose(t *testing.T) {
	s := NewCelebrationState()
	gen := s.Show("msg", nil)
	if !s.Dismiss(gen) {
		t.Error("Dismiss with nil onClose = false")
	}
}
