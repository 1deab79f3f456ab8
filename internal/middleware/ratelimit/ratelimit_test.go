package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowWithinBudget(t *testing.T) {
	rl := New(Config{MaxRequestsPerMinute: 3})
	defer rl.Stop()

	now := time.Now()
	assert.True(t, rl.allow("10.0.0.1", now))
	assert.True(t, rl.allow("10.0.0.1", now))
	assert.True(t, rl.allow("10.0.0.1", now))
	assert.False(t, rl.allow("10.0.0.1", now))
}

func TestAllowResetsAfterWindow(t *testing.T) {
	rl := New(Config{MaxRequestsPerMinute: 1})
	defer rl.Stop()

	now := time.Now()
	assert.True(t, rl.allow("10.0.0.2", now))
	assert.False(t, rl.allow("10.0.0.2", now))
	assert.True(t, rl.allow("10.0.0.2", now.Add(time.Minute)))
}

func TestAllowIsPerClient(t *testing.T) {
	rl := New(Config{MaxRequestsPerMinute: 1})
	defer rl.Stop()

	now := time.Now()
	assert.True(t, rl.allow("10.0.0.3", now))
	assert.True(t, rl.allow("10.0.0.4", now))
}
