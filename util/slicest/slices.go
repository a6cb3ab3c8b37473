// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest contains small generic slice helpers used by the TUI
// models.
package slicest

// Map applies fn to every element of s.
func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns a new slice with the elements of s for which keep
// reports true. s is left untouched.
func Filter[T any, S ~[]T](s S, keep func(T) bool) S {
	out := make(S, 0, len(s))
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
