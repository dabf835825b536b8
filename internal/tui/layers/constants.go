package layers

const (
	HeaderHeight    = 3 // tab bar rows above the board
	StatusBarHeight = 1

	// Z order, lowest first. Board cards use their paint index above ZCards.
	ZBase        = 0
	ZCards       = 10
	ZOverlay     = 1000
	ZCelebration = 2000

	OverlayWidthDivisor = 2
	OverlayMinWidth     = 40
	OverlayMaxWidth     = 72
)
