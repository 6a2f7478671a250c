package appstate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Listener is called after every state change with the new snapshot and the
// action that produced it. Listeners run on the dispatching goroutine, outside
// the store lock, in subscription order.
type Listener func(State, Action)

// Config tunes a Store.
type Config struct {
	// DefaultDuration applies to notifications that set no Duration.
	DefaultDuration time.Duration
	// Clock defaults to the wall clock.
	Clock Clock
}

type pendingTimer struct {
	timer Timer
	gen   uint64
}

// Store is the single owner of State. It is safe for concurrent use.
// Preference writes are serialized and always persist the latest snapshot,
// so the stored value never lags behind a later dispatch.
type Store struct {
	mu       sync.Mutex
	saveMu   sync.Mutex
	state    State
	clock    Clock
	duration time.Duration
	prefs    *PreferenceStore
	logger   *zap.Logger

	timers  map[string]pendingTimer
	gen     uint64
	subs    []subscription
	nextSub int
	closed  bool
}

type subscription struct {
	id int
	fn Listener
}

// NewStore creates a store in the initial state with preferences loaded from
// prefs. A nil prefs keeps preferences in memory only.
func NewStore(ctx context.Context, cfg Config, prefs *PreferenceStore, logger *zap.Logger) *Store {
	if cfg.DefaultDuration <= 0 {
		cfg.DefaultDuration = DefaultNotificationDuration
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock()
	}
	state := Initial()
	if prefs != nil {
		state.Preferences = prefs.Load(ctx)
	}
	return &Store{
		state:    state,
		clock:    cfg.Clock,
		duration: cfg.DefaultDuration,
		prefs:    prefs,
		logger:   logger,
		timers:   make(map[string]pendingTimer),
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			subs := make([]subscription, 0, len(s.subs))
			for _, sub := range s.subs {
				if sub.id != id {
					subs = append(subs, sub)
				}
			}
			s.subs = subs
		})
	}
}

// Dispatch applies action. When it changes the preferences they are
// persisted; a persistence failure is returned but the in-memory change is
// kept.
func (s *Store) Dispatch(ctx context.Context, action Action) error {
	if add, ok := action.(AddNotification); ok {
		action = AddNotification{Notification: s.fill(add.Notification)}
	}

	s.mu.Lock()
	before := s.state
	next, listeners, changed := s.apply(action)
	s.mu.Unlock()

	if !changed {
		return nil
	}
	s.logger.Debug("State updated", zap.String("action", Name(action)))
	s.publish(listeners, next, action)

	if s.prefs != nil && before.Preferences != next.Preferences {
		if err := s.savePreferences(ctx); err != nil {
			s.logger.Warn("Failed to persist preferences", zap.Error(err))
			return err
		}
	}
	return nil
}

func (s *Store) savePreferences(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	return s.prefs.Save(ctx, s.State().Preferences)
}

// Notify shows n, filling in an id and timestamp when unset, and returns the
// notification id.
func (s *Store) Notify(ctx context.Context, n Notification) (string, error) {
	n = s.fill(n)
	if err := s.Dispatch(ctx, AddNotification{Notification: n}); err != nil {
		return n.ID, err
	}
	return n.ID, nil
}

// Dismiss removes a notification and cancels its expiry. Unknown ids are
// ignored.
func (s *Store) Dismiss(ctx context.Context, id string) error {
	return s.Dispatch(ctx, RemoveNotification{ID: id})
}

// UpdatePreferences merges patch into the preferences and persists them.
func (s *Store) UpdatePreferences(ctx context.Context, patch PreferencesPatch) error {
	if err := s.Dispatch(ctx, SetPreferences{Patch: patch}); err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}
	return nil
}

// Close cancels every pending expiry. Later dispatches still apply but no new
// timers are started.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.stopAllLocked()
}

// Pending reports how many notifications are waiting to expire.
func (s *Store) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *Store) fill(n Notification) Notification {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = s.clock.Now()
	}
	return n
}

// apply reduces action into the state and maintains expiry timers. It reports
// false for a removal of an unknown notification, which leaves the state
// untouched. Caller holds mu.
func (s *Store) apply(action Action) (State, []Listener, bool) {
	switch a := action.(type) {
	case RemoveNotification:
		s.stopLocked(a.ID)
		if _, ok := s.state.Notification(a.ID); !ok {
			return s.state, nil, false
		}
	case AddNotification:
		s.stopLocked(a.Notification.ID)
		if !a.Notification.Sticky && !s.closed {
			s.scheduleLocked(a.Notification)
		}
	case Reset:
		s.stopAllLocked()
	}

	s.state = Reduce(s.state, action)

	listeners := make([]Listener, len(s.subs))
	for i, sub := range s.subs {
		listeners[i] = sub.fn
	}
	return s.state, listeners, true
}

func (s *Store) scheduleLocked(n Notification) {
	d := n.Duration
	if d <= 0 {
		d = s.duration
	}
	s.gen++
	gen := s.gen
	id := n.ID
	t := s.clock.AfterFunc(d, func() { s.expire(id, gen) })
	s.timers[id] = pendingTimer{timer: t, gen: gen}
}

func (s *Store) stopLocked(id string) {
	if p, ok := s.timers[id]; ok {
		p.timer.Stop()
		delete(s.timers, id)
	}
}

func (s *Store) stopAllLocked() {
	for id, p := range s.timers {
		p.timer.Stop()
		delete(s.timers, id)
	}
}

// expire removes a notification whose timer fired, unless the timer was
// superseded or cancelled in the meantime.
func (s *Store) expire(id string, gen uint64) {
	s.mu.Lock()
	p, ok := s.timers[id]
	if !ok || p.gen != gen {
		s.mu.Unlock()
		return
	}
	delete(s.timers, id)
	action := RemoveNotification{ID: id}
	next, listeners, changed := s.apply(action)
	s.mu.Unlock()

	if changed {
		s.logger.Debug("Notification expired", zap.String("id", id))
		s.publish(listeners, next, action)
	}
}

func (s *Store) publish(listeners []Listener, state State, action Action) {
	for _, fn := range listeners {
		fn(state, action)
	}
}
