package ratelimit

import (
	"sync"
	"time"
)

// Clock интерфейс для получения текущего времени (для тестирования)
type Clock interface {
	Now() time.Time
}

// RealClock реальные часы для production
type RealClock struct{}

// Now возвращает текущее время
func (RealClock) Now() time.Time {
	return time.Now()
}

// Limiter ограничитель частоты запросов со скользящим окном
// Хранит по каждому ключу клиента времена запросов внутри окна.
// Создается один раз на процесс и передается явно - без глобального состояния.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	clock   Clock
	clients map[string][]time.Time
}

// New создает limiter, разрешающий limit запросов на ключ в пределах window
func New(limit int, window time.Duration, clock Clock) *Limiter {
	if clock == nil {
		clock = RealClock{}
	}
	return &Limiter{
		limit:   limit,
		window:  window,
		clock:   clock,
		clients: make(map[string][]time.Time),
	}
}

// Allow возвращает true, если запрос с ключом key укладывается в лимит,
// и регистрирует его. Запросы старше окна отбрасываются при каждом вызове.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	cutoff := now.Add(-l.window)

	kept := l.clients[key][:0]
	for _, t := range l.clients[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= l.limit {
		l.clients[key] = kept
		return false
	}

	l.clients[key] = append(kept, now)
	return true
}

// Reset сбрасывает накопленное состояние по всем ключам
func (l *Limiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clients = make(map[string][]time.Time)
}
