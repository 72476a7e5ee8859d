package apiclient

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errProbe = errors.New("probe failed")

func TestCircuitBreakerRecovery(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := NewCircuitBreaker("api", 2, 30*time.Second)
	cb.now = func() time.Time { return now }

	fail := func() error { return errProbe }
	ok := func() error { return nil }

	assert.Equal(t, errProbe, cb.Call(fail))
	assert.Equal(t, errProbe, cb.Call(fail))
	assert.Equal(t, StateOpen, cb.State())

	// still open inside the timeout
	assert.ErrorIs(t, cb.Call(ok), ErrCircuitOpen)

	now = now.Add(31 * time.Second)
	assert.NoError(t, cb.Call(ok))
	assert.Equal(t, StateHalfOpen, cb.State())

	assert.NoError(t, cb.Call(ok))
	assert.NoError(t, cb.Call(ok))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreakerHalfOpenFailureReopens(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := NewCircuitBreaker("api", 1, time.Second)
	cb.now = func() time.Time { return now }

	_ = cb.Call(func() error { return errProbe })
	assert.Equal(t, StateOpen, cb.State())

	now = now.Add(2 * time.Second)
	assert.Equal(t, errProbe, cb.Call(func() error { return errProbe }))
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreakerSuccessResetsFailures(t *testing.T) {
	cb := NewCircuitBreaker("api", 2, time.Minute)

	_ = cb.Call(func() error { return errProbe })
	_ = cb.Call(func() error { return nil })
	_ = cb.Call(func() error { return errProbe })

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, 1, cb.Stats()["failures"])
}
