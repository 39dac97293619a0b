package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Checker is implemented by component-level health probes (store,
// notification sink). IsHealthy must be cheap; probing happens on the
// Start loop, not on read.
type Checker interface {
	Name() string
	IsHealthy() bool
	Start(ctx context.Context, interval time.Duration)
}

// ServiceChecker folds component checkers into one service-level flag.
type ServiceChecker struct {
	healthy atomic.Int32
	deps    []Checker
	log     zerolog.Logger
}

func NewServiceChecker(log zerolog.Logger, deps ...Checker) *ServiceChecker {
	s := &ServiceChecker{deps: deps, log: log}
	s.healthy.Store(0)
	return s
}

// IsHealthy returns the cached service health.
func (s *ServiceChecker) IsHealthy() bool { return s.healthy.Load() == 1 }

// Start re-evaluates dependency health on the given interval and logs
// transitions.
func (s *ServiceChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := int32(0)
	eval := func() {
		all := true
		for _, c := range s.deps {
			if !c.IsHealthy() {
				all = false
			}
		}
		if all {
			s.healthy.Store(1)
		} else {
			s.healthy.Store(0)
		}
		cur := s.healthy.Load()
		if cur != prev {
			if cur == 1 {
				s.log.Info().Msg("service health: UP")
			} else {
				s.log.Error().Stack().Msg("service health: DOWN")
			}
			prev = cur
		}
	}

	eval()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			eval()
		}
	}
}
