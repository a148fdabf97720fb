package quiz

import "fmt"

// Screen is one of the three mutually exclusive top-level views.
type Screen int

const (
	ScreenStart Screen = iota
	ScreenGame
	ScreenEnd
)

// Screens lists every screen in display order.
var Screens = []Screen{ScreenStart, ScreenGame, ScreenEnd}

func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenGame:
		return "game"
	case ScreenEnd:
		return "end"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// MarshalText lets screens appear by name in JSON.
func (s Screen) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// CardState is the nested state of the card while the game screen is active.
type CardState int

const (
	QuestionShown CardState = iota
	AnswerShown
	Transitioning
)

func (c CardState) String() string {
	switch c {
	case QuestionShown:
		return "question"
	case AnswerShown:
		return "answer"
	case Transitioning:
		return "transitioning"
	default:
		return fmt.Sprintf("card(%d)", int(c))
	}
}

func (c CardState) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
