// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

// Command qpki is the installable form of the Quantum PKI CLI:
//
//	go install github.com/quantumpki/qpki/cmd/qpki@latest
package main

import (
	"os"

	"github.com/quantumpki/qpki/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
