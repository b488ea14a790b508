package ratelimiter

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMapLimiter_PerKeyBurst(t *testing.T) {
	l := New(1, 2, time.Minute)
	now := time.Unix(1_700_000_000, 0)

	assert.True(t, l.Allow("10.0.0.1", now))
	assert.True(t, l.Allow("10.0.0.1", now))
	assert.False(t, l.Allow("10.0.0.1", now))
	assert.True(t, l.Allow("10.0.0.2", now), "other keys have their own bucket")
	assert.True(t, l.Allow("10.0.0.1", now.Add(time.Second)), "bucket refills")
}

func TestMapLimiter_InvalidArgsAllowEverything(t *testing.T) {
	var l *MapLimiter = New(0, 0, 0)
	assert.Nil(t, l)
	assert.True(t, l.Allow("k", time.Now()))
	assert.Equal(t, 0, l.Len())
}

func TestMapLimiter_EvictsIdleKeys(t *testing.T) {
	l := New(100, 100, time.Second)
	start := time.Unix(1_700_000_000, 0)
	l.Allow("stale", start)

	later := start.Add(time.Minute)
	for i := 0; i < evictEvery; i++ {
		l.Allow(fmt.Sprintf("k%d", i%3), later)
	}
	assert.Equal(t, 3, l.Len())
}
