package quiz

import (
	"html/template"
	"time"
)

// Surface is the rendering side of the widget. Implementations must make
// ActivateScreen exclusive: the named screen becomes the only active one.
type Surface interface {
	ActivateScreen(Screen)
	SetCardText(question string, answer template.HTML)
	SetFlipped(bool)
	SetProgressText(string)
	// SetInputEnabled toggles whether the card itself accepts clicks.
	SetInputEnabled(bool)
}

// Scheduler runs f once after d. There is no cancellation.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// TimerScheduler schedules on the runtime timer heap.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}
