package shutdown

import (
	"sync"
	"testing"
	"time"

	"remote-launcher/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestShutdownReverseOrderAndCancelsContext(t *testing.T) {
	m := NewManager(logger.NewNop())
	var mu sync.Mutex
	var order []string
	record := func(name string) Func {
		return func() {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
		}
	}
	m.Register("first", record("first"))
	m.Register("second", record("second"))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"second", "first"}, order)
	assert.Error(t, m.Context().Err())
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownStepTimeout(t *testing.T) {
	m := NewManager(logger.NewNop())
	m.SetStepTimeout(10 * time.Millisecond)
	block := make(chan struct{})
	defer close(block)
	ran := false
	m.Register("after", Func(func() { ran = true }))
	m.Register("stuck", Func(func() { <-block }))

	start := time.Now()
	m.Shutdown()

	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, ran)
}

func TestListenStop(t *testing.T) {
	m := NewManager(logger.NewNop())
	stop := m.Listen()
	stop()
	stop()
	assert.NoError(t, m.Context().Err())
}
