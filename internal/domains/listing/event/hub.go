package event

import (
	"sync"

	"github.com/rs/zerolog/log"
)

const subscriberBuffer = 16

// Hub fans listing changes out to the open change streams of their owner.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan ListingChanged]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan ListingChanged]struct{}),
	}
}

// Subscribe registers a stream for ownerID. The returned func must be called once the stream ends.
func (h *Hub) Subscribe(ownerID string) (<-chan ListingChanged, func()) {
	ch := make(chan ListingChanged, subscriberBuffer)

	h.mu.Lock()
	if h.subscribers[ownerID] == nil {
		h.subscribers[ownerID] = make(map[chan ListingChanged]struct{})
	}
	h.subscribers[ownerID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once

	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			delete(h.subscribers[ownerID], ch)
			if len(h.subscribers[ownerID]) == 0 {
				delete(h.subscribers, ownerID)
			}

			close(ch)
		})
	}
}

// Broadcast delivers change to every stream of its owner. Slow streams miss the change.
func (h *Hub) Broadcast(change ListingChanged) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers[change.OwnerID] {
		select {
		case ch <- change:
		default:
			log.Warn().Str("owner_id", change.OwnerID).Str("listing_id", change.ListingID).Msg("dropping listing change for slow subscriber")
		}
	}
}

func (h *Hub) Subscribers(ownerID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers[ownerID])
}
