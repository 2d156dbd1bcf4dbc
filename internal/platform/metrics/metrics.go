package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   uint64
	clientErrors    uint64
	serverErrors    uint64
	rateLimited     uint64
	rejectedWrites  uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	switch {
	case status >= 500:
		atomic.AddUint64(&c.serverErrors, 1)
	case status == 429:
		atomic.AddUint64(&c.rateLimited, 1)
	case status >= 400:
		atomic.AddUint64(&c.clientErrors, 1)
		// 400s are almost all validation rejections on the clock and
		// entry write endpoints.
		if status == 400 {
			atomic.AddUint64(&c.rejectedWrites, 1)
		}
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	clientErrs := atomic.LoadUint64(&c.clientErrors)
	serverErrs := atomic.LoadUint64(&c.serverErrors)
	limited := atomic.LoadUint64(&c.rateLimited)
	rejected := atomic.LoadUint64(&c.rejectedWrites)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":     total,
		"clientErrorsTotal": clientErrs,
		"serverErrorsTotal": serverErrs,
		"rateLimitedTotal":  limited,
		"rejectedTotal":     rejected,
		"avgDurationMs":     avg,
		"totalDurationMs":   totalMs,
	}
}
