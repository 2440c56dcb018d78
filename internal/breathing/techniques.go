package breathing

// Technique describes a breathing pattern. The driver does not use these;
// they are reference material shown beside the timer.
type Technique struct {
	Name        string
	Description string
	Icon        string
	Benefit     string
}

// Sound is a background sound the user can toggle. No audio is played.
type Sound struct {
	Name string
	Icon string
}

var Techniques = []Technique{
	{
		Name:        "4-7-8 Breathing",
		Description: "Inhale for 4 seconds, hold for 7 seconds, exhale for 8 seconds. Repeat 4 times.",
		Icon:        "🌙",
		Benefit:     "Great for relaxation and sleep",
	},
	{
		Name:        "Box Breathing",
		Description: "Inhale for 4 seconds, hold for 4 seconds, exhale for 4 seconds, hold for 4 seconds.",
		Icon:        "📦",
		Benefit:     "Helps with focus and stress relief",
	},
	{
		Name:        "Equal Breathing",
		Description: "Inhale and exhale for equal counts (e.g., 5 seconds each).",
		Icon:        "⚖️",
		Benefit:     "Balances the nervous system",
	},
}

var Sounds = []Sound{
	{Name: "Ocean Waves", Icon: "🌊"},
	{Name: "Forest Rain", Icon: "🌲"},
	{Name: "White Noise", Icon: "🔊"},
	{Name: "Tibetan Bowl", Icon: "🎵"},
}
