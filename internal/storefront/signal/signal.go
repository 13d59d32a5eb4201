// Package signal is a small in-process pub/sub hub used to push state change
// notifications out to connected event stream clients.
package signal

import "sync"

// Topics published by the services.
const (
	TopicCart     = "cart"
	TopicWishlist = "wishlist"
	TopicSession  = "session"
)

// Hub fans out topic notifications to subscribers. Sends never block: a
// subscriber that is not draining its channel misses notifications rather
// than stalling the publisher.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan string]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan string]struct{})}
}

// Subscribe registers a listener for the given topics and returns the
// notification channel plus a cancel func that must be called when done.
func (h *Hub) Subscribe(topics ...string) (<-chan string, func()) {
	ch := make(chan string, 8)

	h.mu.Lock()
	for _, topic := range topics {
		set, ok := h.subs[topic]
		if !ok {
			set = make(map[chan string]struct{})
			h.subs[topic] = set
		}
		set[ch] = struct{}{}
	}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		for _, topic := range topics {
			delete(h.subs[topic], ch)
		}
		h.mu.Unlock()
	}

	return ch, cancel
}

// Publish notifies every subscriber of the topic, dropping the notification
// for any subscriber whose buffer is full.
func (h *Hub) Publish(topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs[topic] {
		select {
		case ch <- topic:
		default:
		}
	}
}
