package session

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/DedS3t/monopoly-engine/app/game"
	"github.com/DedS3t/monopoly-engine/pkg"
	"github.com/DedS3t/monopoly-engine/platform/board"
	"github.com/sirupsen/logrus"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExists   = errors.New("session already exists")
)

// Default is the process-wide registry shared by the HTTP controllers and
// the socket server.
var Default = NewManager()

// Session is one live game behind its own mutex. The engine itself is
// single-threaded; every call from HTTP handlers or socket events goes
// through Do so a game only ever executes one operation at a time.
type Session struct {
	CreatedAt time.Time

	mu   sync.Mutex
	game *game.Game
}

// Do runs fn with exclusive access to the session's game.
func (s *Session) Do(fn func(g *game.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.game)
}

// Manager tracks the live game sessions of this process. There is no
// cross-game shared state, so the registry lock only guards the map.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create opens a new game session. An empty id gets a generated short
// code, a zero seed a clock seed; tests pass both explicitly for
// deterministic replay.
func (m *Manager) Create(id string, seed int64) (*Session, string, error) {
	if id == "" {
		id = pkg.RandString(8)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.sessions[id]; exists {
		return nil, "", ErrSessionExists
	}

	rng := rand.New(rand.NewSource(seed))
	b, err := board.New(rng)
	if err != nil {
		return nil, "", err
	}
	s := &Session{
		CreatedAt: time.Now(),
		game:      game.NewGame(id, b, game.NewDice(rng)),
	}
	m.sessions[id] = s
	logrus.WithFields(logrus.Fields{"game": id, "seed": seed}).Info("session created")
	return s, id, nil
}

// Get looks up a live session.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete drops a session; the game and all of its state go with it.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	logrus.WithField("game", id).Info("session closed")
}

// Len reports how many games are live.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
