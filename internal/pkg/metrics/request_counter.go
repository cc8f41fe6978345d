package metrics

import (
	"sync"

	"go.uber.org/zap"
)

// RequestCounter counts handled requests. The value is informational and
// only ever logged.
type RequestCounter struct {
	mu    sync.Mutex
	count uint64
	log   *zap.Logger
}

func NewRequestCounter(log *zap.Logger) *RequestCounter {
	if log == nil {
		log = zap.NewNop()
	}
	return &RequestCounter{log: log}
}

// Inc bumps the counter for route and returns the new total.
func (r *RequestCounter) Inc(route string) uint64 {
	r.mu.Lock()
	r.count++
	n := r.count
	r.mu.Unlock()

	r.log.Debug("request", zap.String("route", route), zap.Uint64("connections", n))
	return n
}

func (r *RequestCounter) Count() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
