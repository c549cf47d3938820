package queue

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plandeck/plandeck/pkg/config"
)

func TestRetryBackoffDoublesAndCaps(t *testing.T) {
	cfg := &config.QueueConfig{
		RetryBackoffBase: 2 * time.Second,
		RetryBackoffMax:  60 * time.Second,
	}

	assert.Equal(t, 2*time.Second, retryBackoff(cfg, 1))
	assert.Equal(t, 4*time.Second, retryBackoff(cfg, 2))
	assert.Equal(t, 8*time.Second, retryBackoff(cfg, 3))
	assert.Equal(t, 16*time.Second, retryBackoff(cfg, 4))
	assert.Equal(t, 32*time.Second, retryBackoff(cfg, 5))
	assert.Equal(t, 60*time.Second, retryBackoff(cfg, 6))
	assert.Equal(t, 60*time.Second, retryBackoff(cfg, 20))
}

func TestRetryBackoffZeroAttempts(t *testing.T) {
	cfg := &config.QueueConfig{
		RetryBackoffBase: 2 * time.Second,
		RetryBackoffMax:  60 * time.Second,
	}
	// First delivery counts as attempt 1; anything lower still gets base.
	assert.Equal(t, 2*time.Second, retryBackoff(cfg, 0))
}

func TestOutcomeConstructors(t *testing.T) {
	assert.Equal(t, Outcome{}, Ack())

	err := errors.New("layout detector returned 500")
	absorbed := AckFailure(err)
	assert.False(t, absorbed.Retry)
	assert.Equal(t, err, absorbed.Err)

	retried := Retry(err)
	assert.True(t, retried.Retry)
	assert.Equal(t, err, retried.Err)
}

func TestPollIntervalWithinJitterBounds(t *testing.T) {
	w := &Worker{config: &config.QueueConfig{
		PollInterval:       time.Second,
		PollIntervalJitter: 500 * time.Millisecond,
	}}

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}
}

func TestPollIntervalNoJitter(t *testing.T) {
	w := &Worker{config: &config.QueueConfig{PollInterval: time.Second}}
	assert.Equal(t, time.Second, w.pollInterval())
}
