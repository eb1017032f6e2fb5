package monitoring

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// GoroutineMonitor samples the goroutine count on an interval and warns
// when it crosses a threshold. The demo runs it next to the batch
// evaluator to catch worker leaks across many decisions.
type GoroutineMonitor struct {
	mu              sync.RWMutex
	logger          zerolog.Logger
	baseline        int
	current         int
	peak            int
	checkInterval   time.Duration
	alertThreshold  int
	lastAlert       time.Time
	alertCooldown   time.Duration
	componentCounts map[string]int

	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

// NewGoroutineMonitor creates a monitor with the current count as its baseline
func NewGoroutineMonitor(logger zerolog.Logger, interval time.Duration, alertThreshold int) *GoroutineMonitor {
	baseline := runtime.NumGoroutine()
	return &GoroutineMonitor{
		logger:          logger.With().Str("component", "GoroutineMonitor").Logger(),
		baseline:        baseline,
		current:         baseline,
		peak:            baseline,
		checkInterval:   interval,
		alertThreshold:  alertThreshold,
		alertCooldown:   time.Minute,
		componentCounts: make(map[string]int),
		stopChan:        make(chan struct{}),
		done:            make(chan struct{}),
	}
}

// Start begins sampling until ctx is done or Stop is called
func (gm *GoroutineMonitor) Start(ctx context.Context) {
	go gm.monitor(ctx)
	gm.logger.Info().
		Int("baseline", gm.baseline).
		Dur("interval", gm.checkInterval).
		Msg("Started goroutine monitoring")
}

// Stop ends sampling and waits for the loop to exit. It is safe to call
// more than once, but only after Start.
func (gm *GoroutineMonitor) Stop() {
	gm.stopOnce.Do(func() { close(gm.stopChan) })
	<-gm.done
}

func (gm *GoroutineMonitor) monitor(ctx context.Context) {
	defer close(gm.done)
	defer func() {
		if r := recover(); r != nil {
			gm.logger.Error().
				Interface("panic", r).
				Msg("Goroutine monitor panicked")
		}
	}()

	ticker := time.NewTicker(gm.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			gm.Sample()
		case <-gm.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Sample records the current goroutine count and alerts if it is too high
func (gm *GoroutineMonitor) Sample() GoroutineMetrics {
	current := runtime.NumGoroutine()

	gm.mu.Lock()
	gm.current = current
	if current > gm.peak {
		gm.peak = current
	}

	growth := current - gm.baseline
	growthRate := 0.0
	if gm.baseline > 0 {
		growthRate = float64(growth) / float64(gm.baseline) * 100
	}

	shouldAlert := current > gm.alertThreshold &&
		time.Since(gm.lastAlert) > gm.alertCooldown
	if shouldAlert {
		gm.lastAlert = time.Now()
	}
	metrics := gm.metricsLocked()
	gm.mu.Unlock()

	gm.logger.Debug().
		Int("current", current).
		Int("baseline", metrics.Baseline).
		Int("peak", metrics.Peak).
		Float64("growth_rate", growthRate).
		Msg("Goroutine metrics")

	if shouldAlert {
		gm.logger.Warn().
			Int("current", current).
			Int("threshold", gm.alertThreshold).
			Float64("growth_rate", growthRate).
			Msg("High goroutine count detected - possible leak")
	}
	return metrics
}

// RegisterComponent records how many goroutines a component is expected to run
func (gm *GoroutineMonitor) RegisterComponent(name string, count int) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	gm.componentCounts[name] = count
}

// GetMetrics returns the most recent sample
func (gm *GoroutineMonitor) GetMetrics() GoroutineMetrics {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return gm.metricsLocked()
}

func (gm *GoroutineMonitor) metricsLocked() GoroutineMetrics {
	return GoroutineMetrics{
		Current:         gm.current,
		Baseline:        gm.baseline,
		Peak:            gm.peak,
		Growth:          gm.current - gm.baseline,
		ComponentCounts: copyMap(gm.componentCounts),
	}
}

// GoroutineMetrics contains goroutine statistics
type GoroutineMetrics struct {
	Current         int            `json:"current"`
	Baseline        int            `json:"baseline"`
	Peak            int            `json:"peak"`
	Growth          int            `json:"growth"`
	ComponentCounts map[string]int `json:"component_counts"`
}

func copyMap(m map[string]int) map[string]int {
	result := make(map[string]int, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}
