// Package broadcast fans recorded assessments out to live stream subscribers.
package broadcast

import (
	"sync"
	"sync/atomic"

	"github.com/mr1hm/go-route-safety/internal/models"
)

// SubscriberBuffer is how many undelivered records a subscriber may lag behind.
const SubscriberBuffer = 100

type Broadcaster struct {
	subscribers map[uint64]chan *models.AssessmentRecord
	nextID      atomic.Uint64
	mu          sync.RWMutex
	closed      bool
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[uint64]chan *models.AssessmentRecord),
	}
}

// Subscribe returns an already closed channel once the broadcaster is closed.
func (b *Broadcaster) Subscribe() (uint64, <-chan *models.AssessmentRecord) {
	id := b.nextID.Add(1)
	ch := make(chan *models.AssessmentRecord, SubscriberBuffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(ch)
		return id, ch
	}
	b.subscribers[id] = ch
	return id, ch
}

func (b *Broadcaster) Unsubscribe(id uint64) {
	b.mu.Lock()
	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
	b.mu.Unlock()
}

// Broadcast never blocks; a subscriber with a full buffer misses the record.
func (b *Broadcaster) Broadcast(r *models.AssessmentRecord) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- r:
		default:
		}
	}
}

func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close closes all subscriber channels so open streams end.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for id, ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, id)
	}
}
