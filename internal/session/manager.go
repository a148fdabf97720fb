package session

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vytor/flipdeck/internal/logger"
	"github.com/vytor/flipdeck/internal/models"
	"github.com/vytor/flipdeck/internal/quiz"
	"github.com/vytor/flipdeck/internal/view"
)

var ErrSessionNotFound = errors.New("session not found")

// Entry is one player's live controller and the surface it draws on.
type Entry struct {
	ID         string
	Controller *quiz.Controller
	View       *view.View
	CreatedAt  time.Time

	lastSeen time.Time
}

// Config tunes a Manager.
type Config struct {
	SessionSize int
	FlipDelay   time.Duration
	TTL         time.Duration
	Scheduler   quiz.Scheduler
	Now         func() time.Time
	Logger      *logger.Logger
}

// Manager keeps live sessions keyed by uuid and evicts idle ones.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Entry

	deck []models.Card
	cfg  Config
	log  *logger.Logger
}

func NewManager(deck []models.Card, cfg Config) *Manager {
	if cfg.TTL <= 0 {
		cfg.TTL = time.Hour
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}
	return &Manager{
		sessions: make(map[string]*Entry),
		deck:     append([]models.Card(nil), deck...),
		cfg:      cfg,
		log:      cfg.Logger.WithPrefix("sessions"),
	}
}

// Create starts a new controller on the start screen.
func (m *Manager) Create() *Entry {
	id := uuid.NewString()
	now := m.cfg.Now()

	v := view.New()
	c := quiz.New(m.deck, v, quiz.Options{
		SessionSize: m.cfg.SessionSize,
		FlipDelay:   m.cfg.FlipDelay,
		Scheduler:   m.cfg.Scheduler,
		Rand:        rand.New(rand.NewSource(now.UnixNano() ^ int64(uuid.New().ID()))),
		Logger:      m.cfg.Logger.WithField("session_id", id),
	})

	e := &Entry{ID: id, Controller: c, View: v, CreatedAt: now, lastSeen: now}

	m.mu.Lock()
	m.sessions[id] = e
	m.mu.Unlock()

	m.log.Debug("session created: id=%s", id)
	return e
}

// Get returns the session and marks it as recently used.
func (m *Manager) Get(id string) (*Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = m.cfg.Now()
	return e, true
}

// GetOrCreate returns the session for id, or a fresh one when id is unknown.
// created reports whether a new session was made.
func (m *Manager) GetOrCreate(id string) (e *Entry, created bool) {
	if id != "" {
		if e, ok := m.Get(id); ok {
			return e, false
		}
	}
	return m.Create(), true
}

// Remove drops a session and closes its subscriptions.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	e, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	e.View.Close()
	m.log.Debug("session removed: id=%s", id)
	return nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep evicts sessions idle for longer than the TTL and returns how many.
// Sessions with an open event stream are kept.
func (m *Manager) Sweep() int {
	cutoff := m.cfg.Now().Add(-m.cfg.TTL)

	m.mu.Lock()
	var stale []*Entry
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) && e.View.Subscribers() == 0 {
			stale = append(stale, e)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, e := range stale {
		e.View.Close()
	}
	if len(stale) > 0 {
		m.log.Info("evicted %d idle sessions", len(stale))
	}
	return len(stale)
}

// Run sweeps every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.log.Debug("session sweeper started: interval=%s ttl=%s", interval, m.cfg.TTL)
	for {
		select {
		case <-ctx.Done():
			m.log.Debug("session sweeper stopped")
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}
