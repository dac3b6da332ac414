package events

import (
	"sync"
	"time"
)

// BalanceChanged событие изменения баланса игрока.
// Заменяет пользовательские события браузера, на которые подписывались страницы
type BalanceChanged struct {
	Timestamp time.Time `json:"ts"`
	PlayerID  string    `json:"player_id"`
	Balance   int       `json:"balance"`
	Delta     int       `json:"delta"`
	Reason    string    `json:"reason"`
}

type subscriber struct {
	playerID string
	ch       chan BalanceChanged
}

// BalanceBroadcaster раздает события подписчикам игрока через буферизованные каналы
type BalanceBroadcaster struct {
	mu     sync.RWMutex
	subs   map[chan BalanceChanged]subscriber
	buffer int
}

func NewBalanceBroadcaster(buffer int) *BalanceBroadcaster {
	if buffer < 1 {
		buffer = 64
	}
	return &BalanceBroadcaster{
		subs:   make(map[chan BalanceChanged]subscriber),
		buffer: buffer,
	}
}

// Publish отправляет событие подписчикам игрока, медленные читатели пропускают событие
func (b *BalanceBroadcaster) Publish(e BalanceChanged) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch, s := range b.subs {
		if s.playerID != e.PlayerID {
			continue
		}
		select {
		case ch <- e:
		default:
			// drop slow consumer
		}
	}
}

// Subscribe канал событий игрока до вызова Unsubscribe
func (b *BalanceBroadcaster) Subscribe(playerID string) chan BalanceChanged {
	ch := make(chan BalanceChanged, b.buffer)
	b.mu.Lock()
	b.subs[ch] = subscriber{playerID: playerID, ch: ch}
	b.mu.Unlock()
	return ch
}

// Unsubscribe удаляет и закрывает канал
func (b *BalanceBroadcaster) Unsubscribe(ch chan BalanceChanged) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}
