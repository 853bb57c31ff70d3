package spectate

import (
	"encoding/json"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jungle-runner/internal/games/runner"
)

const (
	// DefaultMinInterval caps each session's feed at 15 frames per second.
	DefaultMinInterval = time.Second / 15

	subscriberBuffer = 4
)

// subscriber is one websocket viewer. send is closed exactly once, by the hub.
type subscriber struct {
	send   chan []byte
	closed bool
}

// feed is the per-session broadcast state.
type feed struct {
	latest      []byte
	lastPublish time.Time
	subscribers map[*subscriber]struct{}
}

// Hub fans session snapshots out to spectators. Publish never blocks: slow
// viewers drop frames instead of stalling the game loop.
type Hub struct {
	mu          sync.Mutex
	feeds       map[string]*feed
	minInterval time.Duration
	now         func() time.Time
	logger      *log.Logger
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithMinInterval sets the minimum time between two frames of one session.
func WithMinInterval(d time.Duration) HubOption {
	return func(h *Hub) { h.minInterval = d }
}

// WithHubLogger sets the hub's logger.
func WithHubLogger(l *log.Logger) HubOption {
	return func(h *Hub) { h.logger = l }
}

// NewHub creates an empty hub.
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		feeds:       make(map[string]*feed),
		minInterval: DefaultMinInterval,
		now:         time.Now,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Publish records the latest snapshot of a session and forwards it to its
// spectators, at most once per minimum interval.
func (h *Hub) Publish(sessionID string, snap runner.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, ok := h.feeds[sessionID]
	if !ok {
		f = &feed{subscribers: make(map[*subscriber]struct{})}
		h.feeds[sessionID] = f
		h.logger.Debug("session live", "session", sessionID)
	}

	now := h.now()
	if f.latest != nil && now.Sub(f.lastPublish) < h.minInterval {
		return
	}

	data, err := json.Marshal(FrameFromSnapshot(sessionID, snap))
	if err != nil {
		h.logger.Warn("cannot encode frame", "session", sessionID, "error", err)
		return
	}
	f.latest = data
	f.lastPublish = now

	for sub := range f.subscribers {
		select {
		case sub.send <- data:
		default:
			// Viewer is behind; it will catch up on a later frame.
		}
	}
}

// End retires a session and disconnects its spectators.
func (h *Hub) End(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, ok := h.feeds[sessionID]
	if !ok {
		return
	}
	for sub := range f.subscribers {
		h.closeLocked(sub)
	}
	delete(h.feeds, sessionID)
	h.logger.Debug("session ended", "session", sessionID)
}

// Close retires every session.
func (h *Hub) Close() {
	for _, id := range h.Sessions() {
		h.End(id)
	}
}

// Sessions lists the live session ids in sorted order.
func (h *Hub) Sessions() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	ids := make([]string, 0, len(h.feeds))
	for id := range h.feeds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// subscribe registers a viewer and primes it with the latest frame.
// Returns false if the session is unknown.
func (h *Hub) subscribe(sessionID string) (*subscriber, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, ok := h.feeds[sessionID]
	if !ok {
		return nil, false
	}

	sub := &subscriber{send: make(chan []byte, subscriberBuffer)}
	if f.latest != nil {
		sub.send <- f.latest
	}
	f.subscribers[sub] = struct{}{}
	return sub, true
}

// unsubscribe removes a viewer that went away on its own.
func (h *Hub) unsubscribe(sessionID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if f, ok := h.feeds[sessionID]; ok {
		delete(f.subscribers, sub)
	}
	h.closeLocked(sub)
}

func (h *Hub) closeLocked(sub *subscriber) {
	if sub.closed {
		return
	}
	sub.closed = true
	close(sub.send)
}

// spectators returns the number of viewers of a session.
func (h *Hub) spectators(sessionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	if f, ok := h.feeds[sessionID]; ok {
		return len(f.subscribers)
	}
	return 0
}
