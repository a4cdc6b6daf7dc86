package domain

// NeutralLabel is the dominant label before any example was added.
const NeutralLabel = "neutral"

const (
	LabelHappy = "happy"
	LabelSad   = "sad"
	LabelRobot = "robot"
)

// Style selects the reply template for a dominant label.
type Style int

const (
	StyleFallback Style = iota
	StyleHappy
	StyleSad
	StyleRobot
)

// StyleOf maps a label to its reply style. Unknown labels fall back.
func StyleOf(label string) Style {
	switch label {
	case LabelHappy:
		return StyleHappy
	case LabelSad:
		return StyleSad
	case LabelRobot:
		return StyleRobot
	default:
		return StyleFallback
	}
}

func (s Style) String() string {
	switch s {
	case StyleHappy:
		return LabelHappy
	case StyleSad:
		return LabelSad
	case StyleRobot:
		return LabelRobot
	default:
		return "fallback"
	}
}
