package face

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateStore(t *testing.T) {
	t.Run("begin enters awaiting capture", func(t *testing.T) {
		gates := NewGateStore()
		gates.Begin("s1")

		state, ok := gates.State("s1")
		require.True(t, ok)
		assert.Equal(t, GateAwaitingCapture, state)
	})

	t.Run("accept arms a single-use vote pass", func(t *testing.T) {
		gates := NewGateStore()
		gates.Begin("s1")
		gates.Advance("s1", GateExtracting)
		gates.Advance("s1", GateComparing)
		gates.Accept("s1")

		state, _ := gates.State("s1")
		assert.Equal(t, GateAccepted, state)

		assert.True(t, gates.ConsumeVotePass("s1"))
		assert.False(t, gates.ConsumeVotePass("s1"), "pass must be single use")
	})

	t.Run("reject returns to awaiting capture and disarms", func(t *testing.T) {
		gates := NewGateStore()
		gates.Begin("s1")
		gates.Accept("s1")
		gates.Reject("s1")

		state, _ := gates.State("s1")
		assert.Equal(t, GateAwaitingCapture, state)
		assert.False(t, gates.ConsumeVotePass("s1"))
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		gates := NewGateStore()
		gates.Begin("s1")
		gates.Begin("s2")
		gates.Accept("s1")

		assert.False(t, gates.ConsumeVotePass("s2"))
		assert.True(t, gates.ConsumeVotePass("s1"))

		state, _ := gates.State("s2")
		assert.Equal(t, GateAwaitingCapture, state)
	})

	t.Run("unknown session has no pass", func(t *testing.T) {
		gates := NewGateStore()
		assert.False(t, gates.ConsumeVotePass("missing"))

		_, ok := gates.State("missing")
		assert.False(t, ok)
	})

	t.Run("drop discards the gate", func(t *testing.T) {
		gates := NewGateStore()
		gates.Begin("s1")
		gates.Accept("s1")
		gates.Drop("s1")

		assert.False(t, gates.ConsumeVotePass("s1"))
	})

	t.Run("relogin resets an accepted gate", func(t *testing.T) {
		gates := NewGateStore()
		gates.Begin("s1")
		gates.Accept("s1")
		gates.Begin("s1")

		state, _ := gates.State("s1")
		assert.Equal(t, GateAwaitingCapture, state)
		assert.False(t, gates.ConsumeVotePass("s1"))
	})
}
