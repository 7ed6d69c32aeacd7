package metrics

import (
	"sync/atomic"
	"time"
)

// Collector tracks request outcomes and interpreter hit rates with
// atomic counters; no locking on the hot path.
type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	rateLimited     uint64
	totalDurationMs uint64

	utterances     uint64
	unknownIntents uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) RecordRequest(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// RecordUtterance counts one chat turn; unknown marks turns that fell
// through to the help text, a rough quality signal for the rule
// vocabulary.
func (c *Collector) RecordUtterance(unknown bool) {
	atomic.AddUint64(&c.utterances, 1)
	if unknown {
		atomic.AddUint64(&c.unknownIntents, 1)
	}
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":       total,
		"errorsTotal":         atomic.LoadUint64(&c.errorRequests),
		"rateLimitedTotal":    atomic.LoadUint64(&c.rateLimited),
		"avgDurationMs":       avg,
		"utterancesTotal":     atomic.LoadUint64(&c.utterances),
		"unknownIntentsTotal": atomic.LoadUint64(&c.unknownIntents),
	}
}
