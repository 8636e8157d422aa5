package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock управляемые часы для тестов
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)}
}

func TestLimiter_AllowWithinLimit(t *testing.T) {
	clock := newFakeClock()
	l := New(3, time.Minute, clock)

	assert.True(t, l.Allow("client-1"))
	assert.True(t, l.Allow("client-1"))
	assert.True(t, l.Allow("client-1"))
	assert.False(t, l.Allow("client-1"))
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	clock := newFakeClock()
	l := New(1, time.Minute, clock)

	assert.True(t, l.Allow("client-1"))
	assert.False(t, l.Allow("client-1"))

	assert.True(t, l.Allow("client-2"))
}

func TestLimiter_WindowSlides(t *testing.T) {
	clock := newFakeClock()
	l := New(2, time.Minute, clock)

	assert.True(t, l.Allow("client-1"))

	clock.Advance(30 * time.Second)
	assert.True(t, l.Allow("client-1"))
	assert.False(t, l.Allow("client-1"))

	// Первый запрос выпадает из окна, второй еще внутри
	clock.Advance(31 * time.Second)
	assert.True(t, l.Allow("client-1"))
	assert.False(t, l.Allow("client-1"))

	// Окно полностью очищается
	clock.Advance(2 * time.Minute)
	assert.True(t, l.Allow("client-1"))
	assert.True(t, l.Allow("client-1"))
}

func TestLimiter_RejectedRequestIsNotCounted(t *testing.T) {
	clock := newFakeClock()
	l := New(1, time.Minute, clock)

	assert.True(t, l.Allow("client-1"))

	// Отклоненные запросы не продлевают блокировку
	for i := 0; i < 5; i++ {
		clock.Advance(time.Second)
		assert.False(t, l.Allow("client-1"))
	}

	clock.Advance(time.Minute)
	assert.True(t, l.Allow("client-1"))
}

func TestLimiter_Reset(t *testing.T) {
	clock := newFakeClock()
	l := New(1, time.Minute, clock)

	assert.True(t, l.Allow("client-1"))
	assert.False(t, l.Allow("client-1"))

	l.Reset()
	assert.True(t, l.Allow("client-1"))
}
