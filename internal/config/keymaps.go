package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Board items
	AddItem    string `yaml:"add_item"`
	RemoveItem string `yaml:"remove_item"`
	NextItem   string `yaml:"next_item"`
	PrevItem   string `yaml:"prev_item"`
	GrabItem   string `yaml:"grab_item"`
	Increment  string `yaml:"increment"`
	Decrement  string `yaml:"decrement"`
	EditItem   string `yaml:"edit_item"`
	EditTarget string `yaml:"edit_target"`
	Search     string `yaml:"search"`

	// Keyboard drag (while grabbed)
	NudgeLeft  string `yaml:"nudge_left"`
	NudgeRight string `yaml:"nudge_right"`
	NudgeUp    string `yaml:"nudge_up"`
	NudgeDown  string `yaml:"nudge_down"`

	// Tasks
	AddTask        string `yaml:"add_task"`
	DeleteTask     string `yaml:"delete_task"`
	CycleStatus    string `yaml:"cycle_status"`
	FilterStatus   string `yaml:"filter_status"`
	FilterPriority string `yaml:"filter_priority"`
	NextTask       string `yaml:"next_task"`
	PrevTask       string `yaml:"prev_task"`

	// Resources and insights
	FilterType       string `yaml:"filter_type"`
	FilterTimeframe  string `yaml:"filter_timeframe"`
	FilterDifficulty string `yaml:"filter_difficulty"`
	FilterCategory   string `yaml:"filter_category"`

	// Other
	SwitchScreen string `yaml:"switch_screen"`
	ToggleTheme  string `yaml:"toggle_theme"`
	ShowHelp     string `yaml:"show_help"`
	Quit         string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Board items
		AddItem:    "a",
		RemoveItem: "d",
		NextItem:   "j",
		PrevItem:   "k",
		GrabItem:   "m",
		Increment:  "+",
		Decrement:  "-",
		EditItem:   "e",
		EditTarget: "t",
		Search:     "/",

		// Keyboard drag
		NudgeLeft:  "h",
		NudgeRight: "l",
		NudgeUp:    "k",
		NudgeDown:  "j",

		// Tasks
		AddTask:        "a",
		DeleteTask:     "d",
		CycleStatus:    "s",
		FilterStatus:   "f",
		FilterPriority: "F",
		NextTask:       "j",
		PrevTask:       "k",

		// Resources and insights
		FilterType:       "f",
		FilterTimeframe:  "F",
		FilterDifficulty: "D",
		FilterCategory:   "f",

		// Other
		SwitchScreen: "tab",
		ToggleTheme:  "T",
		ShowHelp:     "?",
		Quit:         "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddItem == "" {
		k.AddItem = defaults.AddItem
	}
	if k.RemoveItem == "" {
		k.RemoveItem = defaults.RemoveItem
	}
	if k.NextItem == "" {
		k.NextItem = defaults.NextItem
	}
	if k.PrevItem == "" {
		k.PrevItem = defaults.PrevItem
	}
	if k.GrabItem == "" {
		k.GrabItem = defaults.GrabItem
	}
	if k.Increment == "" {
		k.Increment = defaults.Increment
	}
	if k.Decrement == "" {
		k.Decrement = defaults.Decrement
	}
	if k.EditItem == "" {
		k.EditItem = defaults.EditItem
	}
	if k.EditTarget == "" {
		k.EditTarget = defaults.EditTarget
	}
	if k.Search == "" {
		k.Search = defaults.Search
	}
	if k.NudgeLeft == "" {
		k.NudgeLeft = defaults.NudgeLeft
	}
	if k.NudgeRight == "" {
		k.NudgeRight = defaults.NudgeRight
	}
	if k.NudgeUp == "" {
		k.NudgeUp = defaults.NudgeUp
	}
	if k.NudgeDown == "" {
		k.NudgeDown = defaults.NudgeDown
	}
	if k.AddTask == "" {
		k.AddTask = defaults.AddTask
	}
	if k.DeleteTask == "" {
		k.DeleteTask = defaults.DeleteTask
	}
	if k.CycleStatus == "" {
		k.CycleStatus = defaults.CycleStatus
	}
	if k.FilterStatus == "" {
		k.FilterStatus = defaults.FilterStatus
	}
	if k.FilterPriority == "" {
		k.FilterPriority = defaults.FilterPriority
	}
	if k.NextTask == "" {
		k.NextTask = defaults.NextTask
	}
	if k.PrevTask == "" {
		k.PrevTask = defaults.PrevTask
	}
	if k.FilterType == "" {
		k.FilterType = defaults.FilterType
	}
	if k.FilterTimeframe == "" {
		k.FilterTimeframe = defaults.FilterTimeframe
	}
	if k.FilterDifficulty == "" {
		k.FilterDifficulty = defaults.FilterDifficulty
	}
	if k.FilterCategory == "" {
		k.FilterCategory = defaults.FilterCategory
	}
	if k.SwitchScreen == "" {
		k.SwitchScreen = defaults.SwitchScreen
	}
	if k.ToggleTheme == "" {
		k.ToggleTheme = defaults.ToggleTheme
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
