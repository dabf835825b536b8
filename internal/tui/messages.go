package tui

import (
	"github.com/thenoetrevino/dreamscape/internal/config"
)

// CelebrationTimeoutMsg auto-dismisses the banner it was scheduled for
type CelebrationTimeoutMsg struct {
	Generation int
}

// ConfigReloadedMsg carries a configuration re-read from disk
type ConfigReloadedMsg struct {
	Config *config.Config
}

// SearchResultsMsg delivers image search results for Query
type SearchResultsMsg struct {
	Query   string
	Results []string
	Err     error
}

// AssistantReplyMsg is delivered after the thinking delay for Text
type AssistantReplyMsg struct {
	Text string
}
