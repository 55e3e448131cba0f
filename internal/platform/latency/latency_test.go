package latency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	t.Run("waits at least the configured duration", func(t *testing.T) {
		start := time.Now()
		Fixed(20 * time.Millisecond)()
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("non-positive duration does not wait", func(t *testing.T) {
		start := time.Now()
		Fixed(0)()
		Fixed(-time.Second)()
		assert.Less(t, time.Since(start), 10*time.Millisecond)
	})
}
