// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package monitor

import (
	"math/rand/v2"
)

// Bounds of every metric value.
const (
	MinValue = 75.0
	MaxValue = 100.0
)

type Status string

const (
	StatusSecure   Status = "secure"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// SecurityMetric is a named score. Metrics have no identity beyond Name.
type SecurityMetric struct {
	Name   string  `json:"name" yaml:"name"`
	Value  float64 `json:"value" yaml:"value"`
	Status Status  `json:"status" yaml:"status"`
	Trend  Trend   `json:"trend" yaml:"trend"`
}

// Defaults returns the four dashboard metrics in their initial state.
func Defaults() []SecurityMetric {
	return []SecurityMetric{
		{Name: "Quantum Resistance", Value: 98, Status: StatusSecure, Trend: TrendUp},
		{Name: "Key Integrity", Value: 100, Status: StatusSecure, Trend: TrendStable},
		{Name: "Network Security", Value: 95, Status: StatusSecure, Trend: TrendUp},
		{Name: "Threat Detection", Value: 89, Status: StatusWarning, Trend: TrendDown},
	}
}

// Source is the randomness Refresh draws from. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// GlobalSource draws from the math/rand/v2 top-level generator.
var GlobalSource Source = globalSource{}

// Refresh returns a perturbed copy of metrics. Each value moves by at most
// ±1, stays within [MinValue, MaxValue], and gets a random up/down trend.
// Status is left untouched.
func Refresh(metrics []SecurityMetric, src Source) []SecurityMetric {
	out := make([]SecurityMetric, len(metrics))
	for i, m := range metrics {
		m.Value = clamp(m.Value + (src.Float64()-0.5)*2)
		if src.Float64() > 0.5 {
			m.Trend = TrendUp
		} else {
			m.Trend = TrendDown
		}
		out[i] = m
	}
	return out
}

func clamp(v float64) float64 {
	return min(max(MinValue, v), MaxValue)
}
