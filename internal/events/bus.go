package events

import "sync"

// Payloads typés : pas d'événements globaux non typés, chaque zone de
// l'interface (badge navbar, pages de listing) relance ses propres
// requêtes à réception.
type Event interface {
	UserID() int
}

type CartChanged struct {
	User  int `json:"user_id"`
	Count int `json:"count"`
}

func (e CartChanged) UserID() int { return e.User }

type WishlistChanged struct {
	User      int    `json:"user_id"`
	ProductID int    `json:"product_id"`
	Action    string `json:"action"` // "added" ou "removed"
	Count     int    `json:"count"`
}

func (e WishlistChanged) UserID() int { return e.User }

// Bus est un bus de notification in-process, fan-out par utilisateur.
// Un abonné lent perd des événements plutôt que de bloquer l'émetteur :
// les événements sont des invalidations, pas des données.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]map[chan Event]struct{}
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]map[chan Event]struct{})}
}

func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs[e.UserID()] {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribe renvoie un canal d'événements pour cet utilisateur et la
// fonction de désabonnement associée.
func (b *Bus) Subscribe(userID int) (<-chan Event, func()) {
	ch := make(chan Event, 8)

	b.mu.Lock()
	if b.subs[userID] == nil {
		b.subs[userID] = make(map[chan Event]struct{})
	}
	b.subs[userID][ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if set, ok := b.subs[userID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(b.subs, userID)
			}
		}
		b.mu.Unlock()
	}
	return ch, cancel
}
