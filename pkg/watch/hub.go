package watch

import (
	"context"
	"sync"
)

// Hub fans full-snapshot updates out to per-topic subscribers. Every
// emission replaces the previous state entirely, so delivery is idempotent
// and a slow subscriber may skip intermediate snapshots: when its buffer is
// full the stale snapshot is replaced by the newest one.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan any
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[int]chan any)}
}

// Subscribe returns a channel of snapshots for topic. The channel closes
// when ctx is done.
func (h *Hub) Subscribe(ctx context.Context, topic string) <-chan any {
	ch := make(chan any, 1)

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[int]chan any)
	}
	h.subs[topic][id] = ch
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		if subs, ok := h.subs[topic]; ok {
			delete(subs, id)
			if len(subs) == 0 {
				delete(h.subs, topic)
			}
		}
		h.mu.Unlock()
		close(ch)
	}()
	return ch
}

// Publish delivers a snapshot to every subscriber of topic.
func (h *Hub) Publish(topic string, snapshot any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs[topic] {
		select {
		case ch <- snapshot:
		default:
			// drop the stale snapshot, keep the newest
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}
