// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package monitor

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"
)

// fixedSource always returns the same value.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func TestDefaults(t *testing.T) {
	d := Defaults()
	if len(d) != 4 {
		t.Fatalf("expected 4 metrics, got %d", len(d))
	}
	want := []string{"Quantum Resistance", "Key Integrity", "Network Security", "Threat Detection"}
	for i, name := range want {
		if d[i].Name != name {
			t.Fatalf("metric %d name = %q, want %q", i, d[i].Name, name)
		}
	}
	if d[3].Status != StatusWarning {
		t.Fatalf("Threat Detection should start as warning")
	}
}

func TestRefresh_StaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	metrics := Defaults()
	for i := 0; i < 10000; i++ {
		metrics = Refresh(metrics, rng)
		for _, m := range metrics {
			if m.Value < MinValue || m.Value > MaxValue {
				t.Fatalf("tick %d: %s out of range: %v", i, m.Name, m.Value)
			}
			if m.Trend != TrendUp && m.Trend != TrendDown {
				t.Fatalf("tick %d: unexpected trend %q", i, m.Trend)
			}
		}
	}
}

func TestRefresh_ClampsAtBounds(t *testing.T) {
	top := Refresh([]SecurityMetric{{Name: "x", Value: 100}}, fixedSource(1))
	if top[0].Value != MaxValue {
		t.Fatalf("expected clamp to %v, got %v", MaxValue, top[0].Value)
	}
	if top[0].Trend != TrendUp {
		t.Fatalf("expected trend up, got %q", top[0].Trend)
	}
	bottom := Refresh([]SecurityMetric{{Name: "x", Value: 75}}, fixedSource(0))
	if bottom[0].Value != MinValue {
		t.Fatalf("expected clamp to %v, got %v", MinValue, bottom[0].Value)
	}
	if bottom[0].Trend != TrendDown {
		t.Fatalf("expected trend down, got %q", bottom[0].Trend)
	}
}

func TestRefresh_DoesNotMutateInput(t *testing.T) {
	in := Defaults()
	_ = Refresh(in, fixedSource(1))
	if in[0].Value != 98 {
		t.Fatalf("input slice was mutated: %v", in[0].Value)
	}
}

func TestRefresh_KeepsStatusAndNames(t *testing.T) {
	in := Defaults()
	out := Refresh(in, fixedSource(0.75))
	for i := range in {
		if out[i].Name != in[i].Name || out[i].Status != in[i].Status {
			t.Fatalf("metric %d changed identity: %+v -> %+v", i, in[i], out[i])
		}
	}
}

func TestRun_StopsWhenCallbackDeclines(t *testing.T) {
	m := New(rand.New(rand.NewPCG(3, 4)))
	ticks := 0
	err := m.Run(context.Background(), time.Millisecond, func([]SecurityMetric) bool {
		ticks++
		return ticks < 3
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if ticks != 3 {
		t.Fatalf("expected 3 ticks, got %d", ticks)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	m := New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := m.Run(ctx, time.Hour, func([]SecurityMetric) bool { return true })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRun_InvalidInterval(t *testing.T) {
	if err := New(nil).Run(context.Background(), 0, nil); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
}
