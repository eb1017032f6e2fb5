package monitoring

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoroutineMonitor_Sample(t *testing.T) {
	gm := NewGoroutineMonitor(zerolog.Nop(), time.Hour, 1_000_000)
	base := gm.GetMetrics()
	assert.Equal(t, base.Baseline, base.Current)

	release := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-release
		}()
	}

	m := gm.Sample()
	assert.GreaterOrEqual(t, m.Current, base.Baseline+10)
	assert.Equal(t, m.Current, m.Peak)
	assert.Equal(t, m.Current-m.Baseline, m.Growth)

	close(release)
	wg.Wait()

	// the peak survives the drop
	assert.GreaterOrEqual(t, gm.GetMetrics().Peak, base.Baseline+10)
}

func TestGoroutineMonitor_Alert(t *testing.T) {
	var buf bytes.Buffer
	gm := NewGoroutineMonitor(zerolog.New(&buf).Level(zerolog.WarnLevel), time.Hour, 1)

	gm.Sample()
	gm.Sample()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "the cooldown suppresses the second alert")
	assert.Contains(t, lines[0], "possible leak")
}

func TestGoroutineMonitor_Components(t *testing.T) {
	gm := NewGoroutineMonitor(zerolog.Nop(), time.Hour, 1000)
	gm.RegisterComponent("batch_evaluator", 4)

	m := gm.GetMetrics()
	assert.Equal(t, map[string]int{"batch_evaluator": 4}, m.ComponentCounts)

	m.ComponentCounts["batch_evaluator"] = 99
	assert.Equal(t, 4, gm.GetMetrics().ComponentCounts["batch_evaluator"])
}

func TestGoroutineMonitor_StartStop(t *testing.T) {
	gm := NewGoroutineMonitor(zerolog.Nop(), time.Millisecond, 1000)
	gm.Start(context.Background())
	time.Sleep(10 * time.Millisecond)

	gm.Stop()
	gm.Stop()
}

func TestGoroutineMonitor_StopsWithContext(t *testing.T) {
	gm := NewGoroutineMonitor(zerolog.Nop(), time.Millisecond, 1000)
	ctx, cancel := context.WithCancel(context.Background())
	gm.Start(ctx)
	cancel()

	select {
	case <-gm.done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not exit after cancellation")
	}
}
