// Package view is an in-memory rendering surface. It remembers what a real
// widget would be showing and broadcasts every change to subscribers.
package view

import (
	"html/template"
	"sync"

	"github.com/vytor/flipdeck/internal/quiz"
)

// State is what the widget shows at one version.
type State struct {
	Version      uint64        `json:"version"`
	Screen       quiz.Screen   `json:"screen"`
	Question     string        `json:"question"`
	AnswerHTML   template.HTML `json:"answer_html"`
	Flipped      bool          `json:"flipped"`
	Progress     string        `json:"progress"`
	InputEnabled bool          `json:"input_enabled"`
}

// IsActive reports whether s is the active screen. Used by templates.
func (st State) IsActive(s string) bool {
	return st.Screen.String() == s
}

const subscriberBuffer = 16

// View implements quiz.Surface.
type View struct {
	mu     sync.Mutex
	state  State
	subs   map[chan State]struct{}
	closed bool
}

var _ quiz.Surface = (*View)(nil)

// New returns a view on the start screen with card input enabled.
func New() *View {
	return &View{
		state: State{Screen: quiz.ScreenStart, InputEnabled: true},
		subs:  make(map[chan State]struct{}),
	}
}

func (v *View) ActivateScreen(s quiz.Screen) {
	v.update(func(st *State) { st.Screen = s })
}

func (v *View) SetCardText(question string, answer template.HTML) {
	v.update(func(st *State) {
		st.Question = question
		st.AnswerHTML = answer
	})
}

func (v *View) SetFlipped(flipped bool) {
	v.update(func(st *State) { st.Flipped = flipped })
}

func (v *View) SetProgressText(p string) {
	v.update(func(st *State) { st.Progress = p })
}

func (v *View) SetInputEnabled(enabled bool) {
	v.update(func(st *State) { st.InputEnabled = enabled })
}

// State returns the current state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Subscribe returns a channel that receives the current state immediately
// and then every later change. Slow readers miss intermediate states but
// never block the controller. Call the returned func to unsubscribe.
func (v *View) Subscribe() (<-chan State, func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	ch := make(chan State, subscriberBuffer)
	if v.closed {
		close(ch)
		return ch, func() {}
	}
	ch <- v.state
	v.subs[ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			if _, ok := v.subs[ch]; ok {
				delete(v.subs, ch)
				close(ch)
			}
		})
	}
}

// Subscribers returns the number of live subscriptions.
func (v *View) Subscribers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}

// Close ends every subscription. Later updates are still recorded.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	for ch := range v.subs {
		delete(v.subs, ch)
		close(ch)
	}
}

func (v *View) update(fn func(*State)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	fn(&v.state)
	v.state.Version++
	for ch := range v.subs {
		select {
		case ch <- v.state:
		default:
		}
	}
}
