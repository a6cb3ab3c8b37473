// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Quantum PKI.
//
// Usage:
//
//	go run . [flags]
//	./qpki [flags]
//
// This launches the qpki CLI. See --help for options.
package main

import (
	"os"

	"github.com/quantumpki/qpki/ui/cli"
)

func main() {
	// cobra prints the error itself
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
