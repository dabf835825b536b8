package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode  Mode = iota // Default navigation mode
	AddMenuMode             // Choosing the kind of item to add
	EditMode                // Inline editing of one item field
	GrabMode                // Keyboard drag of the selected item
	SearchMode              // Image search overlay
	HelpMode                // Displaying help screen
	TaskAddMode             // Entering the title of a new task
	QueryMode               // Typing a list query on Resources or Insights
)

// Screen is one of the top-level tabs
type Screen int

const (
	BoardScreen Screen = iota
	TasksScreen
	AssistantScreen
	ResourcesScreen
	InsightsScreen
)

// Screens lists the tabs in display order
var Screens = []Screen{BoardScreen, TasksScreen, AssistantScreen, ResourcesScreen, InsightsScreen}

// Title returns the tab label for the screen
func (s Screen) Title() string {
	switch s {
	case TasksScreen:
		return "Tasks"
	case AssistantScreen:
		return "Nano"
	case ResourcesScreen:
		return "Resources"
	case InsightsScreen:
		return "Insights"
	default:
		return "Dream Board"
	}
}

// UIState manages the user interface state.
// This includes the selected board item, terminal dimensions, the active
// screen and the current interaction mode.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// screen is the active tab
	screen Screen

	// selectedItem is the id of the board item keyboard actions apply to
	selectedItem string
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:   NormalMode,
		screen: BoardScreen,
	}
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Screen returns the active tab.
func (s *UIState) Screen() Screen {
	return s.screen
}

// SetScreen switches tabs and drops back to normal mode.
func (s *UIState) SetScreen(screen Screen) {
	s.screen = screen
	s.mode = NormalMode
}

// NextScreen advances to the following tab, wrapping around.
func (s *UIState) NextScreen() {
	s.SetScreen(Screens[(int(s.screen)+1)%len(Screens)])
}

// SelectedItem returns the id of the selected board item, or "".
func (s *UIState) SelectedItem() string {
	return s.selectedItem
}

// SetSelectedItem changes the selected board item.
func (s *UIState) SetSelectedItem(id string) {
	s.selectedItem = id
}
