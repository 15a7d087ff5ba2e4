package profiler

import (
	"log"
	"runtime"
	"sync"
	"time"
)

// Profiler measures frame rate and memory statistics. The last measured FPS
// is available to the HUD; the full report goes to the log when logging is on.
type Profiler struct {
	mu             sync.Mutex
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	logging        bool
	fps            float64
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler.
// Update interval defaults to 1 second and logging is on.
//
// Parameters:
//   - options: functional options applied after the defaults
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
		logging:        true,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithUpdateInterval sets how often FPS is measured. Values <= 0 are ignored.
func WithUpdateInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithLogging enables or disables the periodic log report.
func WithLogging(enabled bool) ProfilerOption {
	return func(p *Profiler) {
		p.logging = enabled
	}
}

// SetLogging enables or disables the periodic log report.
func (p *Profiler) SetLogging(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.logging = enabled
}

// FPS returns the frame rate measured over the last completed interval, or 0
// before the first interval completes.
func (p *Profiler) FPS() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fps
}

// Tick should be called once per frame to track frame timing.
// When the update interval has elapsed, FPS is recomputed and, if logging is
// on, FPS, heap usage, allocation rate, GC count/pause times and total memory
// are logged.
//
// Returns:
//   - bool: true if a new measurement was taken this tick
func (p *Profiler) Tick() bool {
	return p.tickAt(time.Now())
}

func (p *Profiler) tickAt(now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	p.fps = float64(p.frameCount) / elapsed.Seconds()
	p.frameCount = 0
	p.lastTime = now

	if p.logging {
		p.report(elapsed)
	}
	return true
}

// report logs memory statistics for the interval that just ended.
func (p *Profiler) report(elapsed time.Duration) {
	runtime.ReadMemStats(&p.memStats)
	// Alloc is live heap; Sys is the process footprint obtained from the OS.
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	log.Printf("[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		p.fps, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
}
