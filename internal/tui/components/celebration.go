package components

// RenderCelebration renders the completion banner
func RenderCelebration(message string) string {
	if message == "" {
		return ""
	}
	return CelebrationBoxStyle.Render("🎉 " + message + "\n\n" + "press enter to dismiss")
}
