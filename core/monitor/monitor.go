// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package monitor

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultInterval is the refresh period of the dashboard.
const DefaultInterval = 3 * time.Second

var ErrInvalidInterval = errors.New("monitor: interval must be positive")

// Monitor owns a metric set and refreshes it on a ticker while Run is active.
type Monitor struct {
	mu      sync.RWMutex
	metrics []SecurityMetric
	src     Source
}

// New creates a Monitor seeded with Defaults. A nil src uses GlobalSource.
func New(src Source) *Monitor {
	if src == nil {
		src = GlobalSource
	}
	return &Monitor{metrics: Defaults(), src: src}
}

// Snapshot returns a copy of the current metrics.
func (m *Monitor) Snapshot() []SecurityMetric {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]SecurityMetric, len(m.metrics))
	copy(out, m.metrics)
	return out
}

// Tick performs one refresh and returns the new snapshot.
func (m *Monitor) Tick() []SecurityMetric {
	m.mu.Lock()
	m.metrics = Refresh(m.metrics, m.src)
	m.mu.Unlock()
	return m.Snapshot()
}

// Run refreshes every interval and passes each snapshot to fn until ctx is
// done or fn returns false. The ticker is released before Run returns.
func (m *Monitor) Run(ctx context.Context, interval time.Duration, fn func([]SecurityMetric) bool) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !fn(m.Tick()) {
				return nil
			}
		}
	}
}
