package profiler

import (
	"log"
	"runtime"
	"time"
)

// Stats is one reporting window of frame timing and memory figures.
type Stats struct {
	FPS          float64
	FrameMin     time.Duration
	FrameMax     time.Duration
	HeapMB       float64
	AllocRateMB  float64
	GCCount      uint32
	LastPauseUs  uint64
	MaxPauseUs   uint64
	SysMB        float64
	FramesInSpan int
}

// Profiler tracks frame rate, frame time spread, and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	lastFrame      time.Time
	frameMin       time.Duration
	frameMax       time.Duration
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Stats
}

// ProfilerOption configures a Profiler.
type ProfilerOption func(*Profiler)

// WithUpdateInterval sets how often statistics are logged. Values <= 0 keep the default (1s).
//
// Parameters:
//   - interval: the reporting window
//
// Returns:
//   - ProfilerOption: option function to apply
func WithUpdateInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options for the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	now := time.Now()
	p := &Profiler{
		lastTime:       now,
		lastFrame:      now,
		updateInterval: time.Second,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Tick should be called once per rendered frame with the current time.
// Logs FPS, frame time spread, heap usage, allocation rate, GC count/pause times and total
// memory when the update interval has elapsed.
//
// Parameters:
//   - now: the time the frame finished
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(now time.Time) bool {
	p.frameCount++
	frame := now.Sub(p.lastFrame)
	p.lastFrame = now
	if p.frameCount == 1 || frame < p.frameMin {
		p.frameMin = frame
	}
	if frame > p.frameMax {
		p.frameMax = frame
	}

	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	s := Stats{
		FPS:          float64(p.frameCount) / elapsed.Seconds(),
		FrameMin:     p.frameMin,
		FrameMax:     p.frameMax,
		HeapMB:       float64(p.memStats.Alloc) / 1024 / 1024,
		SysMB:        float64(p.memStats.Sys) / 1024 / 1024,
		AllocRateMB:  float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:      p.memStats.NumGC,
		FramesInSpan: p.frameCount,
	}

	if s.GCCount > 0 {
		// PauseNs is a circular buffer of the last 256 pauses
		s.LastPauseUs = p.memStats.PauseNs[(s.GCCount-1)%256] / 1000
		startIdx := p.lastGCCount
		if s.GCCount-startIdx > 256 {
			startIdx = s.GCCount - 256
		}
		for i := startIdx; i < s.GCCount; i++ {
			s.MaxPauseUs = max(s.MaxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	log.Printf("[Profiler] FPS: %.2f | Frame: %.2f-%.2f ms | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		s.FPS, ms(s.FrameMin), ms(s.FrameMax), s.HeapMB, s.AllocRateMB, s.GCCount, s.LastPauseUs, s.MaxPauseUs, s.SysMB)

	p.last = s
	p.frameCount = 0
	p.frameMin = 0
	p.frameMax = 0
	p.lastTime = now
	p.lastGCCount = s.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the statistics from the most recent reporting window.
//
// Returns:
//   - Stats: zero until the first window completes
func (p *Profiler) Last() Stats {
	return p.last
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
