package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/thenoetrevino/dreamscape/internal/tui/components"
	"github.com/thenoetrevino/dreamscape/internal/tui/layers"
)

// helpPage keeps the glamour output for the help overlay. The page is only
// rebuilt when the width, style or key mappings change.
type helpPage struct {
	width    int
	style    string
	source   string
	rendered string
}

func (p *helpPage) render(source string, width int, style string) string {
	if p.rendered != "" && p.width == width && p.style == style && p.source == source {
		return p.rendered
	}

	out := source
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		var rendered string
		if rendered, err = r.Render(source); err == nil {
			out = strings.TrimSpace(rendered)
		}
	}
	if err != nil {
		slog.Debug("help render failed, showing raw markdown", "error", err)
	}

	*p = helpPage{width: width, style: style, source: source, rendered: out}
	return out
}

// helpStyle picks the glamour style matching the active color preset
func helpStyle(m *Model) string {
	if m.Config.ColorScheme.Preset == "monochrome" {
		return styles.NoTTYStyle
	}
	return styles.DarkStyle
}

func renderHelp(m *Model) string {
	width := layers.OverlayWidth(m.UiState.Width())
	body := m.help.render(generateHelpText(m), width-6, helpStyle(m))
	return components.OverlayBoxStyle.Width(width).Render(body)
}

// generateHelpText creates help markdown based on current key mappings
func generateHelpText(m *Model) string {
	km := m.Config.KeyMappings
	return fmt.Sprintf(`# Dreamscape

## Board
- %[1]s add an item (image, quote, progress, goal)
- %[2]s delete the selected item
- %[3]s / %[4]s select next / previous item
- %[5]s grab the selected item, then %[6]s %[7]s %[8]s %[9]s to move it
- %[10]s / %[11]s step progress up / down
- %[12]s edit the quote or label, %[13]s edit a goal target
- %[14]s search for images
- drag a card with the mouse to move it

## Tasks
- %[15]s add a task, %[16]s delete it
- %[17]s cycle status
- %[18]s / %[19]s cycle status / priority filter

## Resources and Insights
- %[14]s filter by title (enter keeps it, esc clears it)
- %[24]s / %[25]s / %[26]s cycle resource type / timeframe / difficulty
- %[27]s cycle insight category
- %[3]s / %[4]s move the cursor

## Everywhere
- %[20]s switch screen
- %[23]s switch color theme
- %[21]s toggle this help
- %[22]s quit
`,
		km.AddItem, km.RemoveItem, km.NextItem, km.PrevItem,
		km.GrabItem, km.NudgeLeft, km.NudgeDown, km.NudgeUp, km.NudgeRight,
		km.Increment, km.Decrement, km.EditItem, km.EditTarget, km.Search,
		km.AddTask, km.DeleteTask, km.CycleStatus, km.FilterStatus, km.FilterPriority,
		km.SwitchScreen, km.ShowHelp, km.Quit, km.ToggleTheme,
		km.FilterType, km.FilterTimeframe, km.FilterDifficulty, km.FilterCategory,
	)
}
