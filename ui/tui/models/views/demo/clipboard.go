// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package demo

import (
	"errors"

	"github.com/atotto/clipboard"
)

// Clipboard receives copied keys and ciphertexts.
type Clipboard interface {
	WriteAll(text string) error
}

var ErrClipboardDisabled = errors.New("clipboard access is disabled")

// SystemClipboard writes to the clipboard of the desktop session.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// DisabledClipboard rejects every write.
type DisabledClipboard struct{}

func (DisabledClipboard) WriteAll(string) error {
	return ErrClipboardDisabled
}
