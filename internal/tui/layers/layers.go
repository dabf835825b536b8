// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
//
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := (screenWidth - contentWidth) / 2
	y := (screenHeight - contentHeight) / 2

	x = max(x, 0)
	y = max(y, 0)

	return lipgloss.NewLayer(content).X(x).Y(y).Z(ZOverlay)
}

// CreateTopCenteredLayer places content horizontally centered just below the
// header, above every other layer
func CreateTopCenteredLayer(content string, screenWidth int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(HeaderHeight).Z(ZCelebration)
}

// OverlayWidth determines a modal width from the screen width
func OverlayWidth(screenWidth int) int {
	width := min(max(screenWidth/OverlayWidthDivisor, OverlayMinWidth), OverlayMaxWidth)
	return min(width, max(screenWidth-2, 1))
}
