package quiz

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/vytor/flipdeck/internal/flashcard"
	"github.com/vytor/flipdeck/internal/logger"
	"github.com/vytor/flipdeck/internal/models"
)

const (
	DefaultSessionSize = 4
	// DefaultFlipDelay is about a third of the 600ms flip animation, so the
	// content swap lands while the card is edge-on.
	DefaultFlipDelay = 100 * time.Millisecond
)

// Options tunes a Controller. Zero values fall back to the defaults.
type Options struct {
	SessionSize int
	FlipDelay   time.Duration
	Scheduler   Scheduler
	Rand        *rand.Rand
	Logger      *logger.Logger
}

// Snapshot is a copy of the controller state at one instant.
type Snapshot struct {
	Screen        Screen       `json:"screen"`
	Card          CardState    `json:"card"`
	Index         int          `json:"index"`
	Total         int          `json:"total"`
	Transitioning bool         `json:"transitioning"`
	Revealed      bool         `json:"revealed"`
	Progress      string       `json:"progress"`
	Current       *models.Card `json:"current,omitempty"`
}

// Controller owns one player's session and is the only writer of its state.
// All methods are safe for concurrent use; the scheduled half of an advance
// takes the same lock as the input handlers.
type Controller struct {
	mu sync.Mutex

	deck    []models.Card
	surface Surface
	sched   Scheduler
	rng     *rand.Rand
	size    int
	delay   time.Duration
	log     *logger.Logger

	screen        Screen
	session       []models.Card
	index         int
	transitioning bool
	revealed      bool
}

// New builds a controller on the start screen. deck is copied.
func New(deck []models.Card, surface Surface, opts Options) *Controller {
	if opts.SessionSize <= 0 {
		opts.SessionSize = DefaultSessionSize
	}
	if opts.FlipDelay <= 0 {
		opts.FlipDelay = DefaultFlipDelay
	}
	if opts.Scheduler == nil {
		opts.Scheduler = TimerScheduler{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = logger.Default()
	}

	c := &Controller{
		deck:    append([]models.Card(nil), deck...),
		surface: surface,
		sched:   opts.Scheduler,
		rng:     opts.Rand,
		size:    opts.SessionSize,
		delay:   opts.FlipDelay,
		log:     opts.Logger.WithPrefix("quiz"),
		screen:  ScreenStart,
	}
	c.surface.ActivateScreen(ScreenStart)
	return c
}

// PrimaryAction starts a fresh session from the start or end screen.
// It reports false when ignored.
func (c *Controller) PrimaryAction() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen == ScreenGame {
		c.log.Debug("primary action ignored: game in progress")
		return false
	}

	session := flashcard.Sample(c.deck, c.size, c.rng)
	if len(session) == 0 {
		c.log.Warn("primary action ignored: deck is empty")
		return false
	}

	c.session = session
	c.index = 0
	c.transitioning = false
	c.revealed = false

	c.surface.SetProgressText(c.progress())
	c.showCurrent()
	c.activate(ScreenGame)

	c.log.Debug("session started with %d cards", len(session))
	return true
}

// ReturnAction goes back to the start screen from the end screen.
func (c *Controller) ReturnAction() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != ScreenEnd {
		c.log.Debug("return action ignored on %s screen", c.screen)
		return false
	}
	c.activate(ScreenStart)
	return true
}

// CardAction flips the current card, or advances once the answer is showing.
// Input that arrives mid-transition is dropped without side effects.
func (c *Controller) CardAction() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != ScreenGame || c.transitioning {
		return false
	}

	if !c.revealed {
		c.revealed = true
		c.surface.SetFlipped(true)
		return true
	}

	c.index++
	if c.index >= len(c.session) {
		c.log.Debug("session finished after %d cards", len(c.session))
		c.activate(ScreenEnd)
		return true
	}

	c.transitioning = true
	c.revealed = false
	c.surface.SetInputEnabled(false)
	c.surface.SetFlipped(false)
	c.sched.AfterFunc(c.delay, c.completeAdvance)
	return true
}

// completeAdvance is the delayed second half of an advance.
func (c *Controller) completeAdvance() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.transitioning {
		return
	}

	c.surface.SetProgressText(c.progress())
	c.showCurrent()
	c.transitioning = false
	c.log.Debug("advanced to card %d of %d", c.index+1, len(c.session))
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		Screen:        c.screen,
		Index:         c.index,
		Total:         len(c.session),
		Transitioning: c.transitioning,
		Revealed:      c.revealed,
	}
	switch {
	case c.transitioning:
		s.Card = Transitioning
	case c.revealed:
		s.Card = AnswerShown
	default:
		s.Card = QuestionShown
	}
	if c.index < len(c.session) {
		card := c.session[c.index]
		s.Current = &card
		s.Progress = c.progress()
	}
	return s
}

// Session returns a copy of the cards drawn for the current pass.
func (c *Controller) Session() []models.Card {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Card(nil), c.session...)
}

func (c *Controller) activate(s Screen) {
	c.screen = s
	c.surface.ActivateScreen(s)
}

func (c *Controller) showCurrent() {
	card := c.session[c.index]
	c.surface.SetCardText(card.Question, flashcard.RenderAnswer(card.Answer))
	c.surface.SetFlipped(false)
	c.surface.SetInputEnabled(true)
}

func (c *Controller) progress() string {
	return fmt.Sprintf("%d / %d", c.index+1, len(c.session))
}
