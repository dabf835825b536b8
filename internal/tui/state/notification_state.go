package state

// NotificationLevel is the kind of notice shown beside the tabs.
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelSuccess
	LevelError
)

// Notification is one notice.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the notice shown inline with the tabs. A newer
// notice replaces the one before it; the next board or task key clears it.
type NotificationState struct {
	current Notification
	showing bool
}

// NewNotificationState creates an empty NotificationState.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add replaces the current notice.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.current = Notification{Level: level, Message: message}
	s.showing = true
}

// Clear hides the current notice.
func (s *NotificationState) Clear() {
	s.current = Notification{}
	s.showing = false
}

// HasAny reports whether a notice is showing.
func (s *NotificationState) HasAny() bool {
	return s.showing
}

// Latest returns the notice being shown.
func (s *NotificationState) Latest() (Notification, bool) {
	return s.current, s.showing
}
