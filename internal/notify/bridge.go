package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ratulalahy/med-debt-collector/internal/appstate"
)

// Event is the wire form of a shared notification.
type Event struct {
	Origin       string                `json:"origin"`
	Notification appstate.Notification `json:"notification"`
}

// Bridge publishes every notification added to a store and injects
// notifications published by other origins.
type Bridge struct {
	origin string
	topic  string
	qos    byte
	logger *zap.Logger

	mu      sync.Mutex
	inbound map[string]struct{}
}

func NewBridge(origin, topic string, qos byte, logger *zap.Logger) *Bridge {
	return &Bridge{
		origin:  origin,
		topic:   topic,
		qos:     qos,
		logger:  logger,
		inbound: make(map[string]struct{}),
	}
}

// Attach subscribes the bridge to s and returns the unsubscribe func.
// Publish failures are logged only; the local notification stands.
func (b *Bridge) Attach(s *appstate.Store, pub Publisher) func() {
	return s.Subscribe(func(_ appstate.State, action appstate.Action) {
		add, ok := action.(appstate.AddNotification)
		if !ok {
			return
		}
		n := add.Notification
		if b.takeInbound(n.ID) {
			return
		}
		payload, err := json.Marshal(Event{Origin: b.origin, Notification: n})
		if err != nil {
			b.logger.Error("Failed to encode notification", zap.String("id", n.ID), zap.Error(err))
			return
		}
		if err := pub.Publish(b.topic, b.qos, false, payload); err != nil {
			b.logger.Warn("Failed to publish notification", zap.String("id", n.ID), zap.Error(err))
			return
		}
		b.logger.Debug("Published notification",
			zap.String("id", n.ID),
			zap.String("topic", b.topic),
		)
	})
}

// Listen subscribes to the topic and shows notifications from other
// origins in s.
func (b *Bridge) Listen(ctx context.Context, s *appstate.Store, sub Subscriber) error {
	return sub.Subscribe(b.topic, b.qos, func(topic string, payload []byte) error {
		var ev Event
		if err := json.Unmarshal(payload, &ev); err != nil {
			return fmt.Errorf("failed to decode notification on %s: %w", topic, err)
		}
		if ev.Origin == b.origin {
			return nil
		}
		if ev.Notification.ID == "" {
			return fmt.Errorf("notification from %s has no id", ev.Origin)
		}

		b.markInbound(ev.Notification.ID)
		if _, err := s.Notify(ctx, ev.Notification); err != nil {
			return err
		}
		b.logger.Debug("Received notification",
			zap.String("id", ev.Notification.ID),
			zap.String("origin", ev.Origin),
		)
		return nil
	})
}

func (b *Bridge) markInbound(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inbound[id] = struct{}{}
}

// takeInbound reports whether id arrived from the broker, forgetting it.
func (b *Bridge) takeInbound(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.inbound[id]; ok {
		delete(b.inbound, id)
		return true
	}
	return false
}
