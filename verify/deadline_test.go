package verify_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/abstree/verify"
)

func TestStopwatchExpiresEventually(t *testing.T) {
	sw := verify.NewStopwatch(-time.Hour) // already in the past
	expired := false
	for i := 0; i < 300; i++ {
		if sw.Expired() {
			expired = true
			break
		}
	}
	assert.True(t, expired)
}

func TestStopwatchNotExpiredWithAmpleBudget(t *testing.T) {
	sw := verify.NewStopwatch(time.Hour)
	for i := 0; i < 300; i++ {
		assert.False(t, sw.Expired())
	}
}
