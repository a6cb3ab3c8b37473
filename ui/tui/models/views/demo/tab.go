// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package demo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quantumpki/qpki/internal/i18n"
)

type Tab int

const (
	TabKeygen Tab = iota
	TabEncryption
	TabAuth
	TabMonitor
)

var ErrUnknownTab = errors.New("unknown demo tab")

var tabNames = []string{"keygen", "encryption", "auth", "monitor"}

// TabNames lists the identifiers accepted by ParseTab.
func TabNames() []string {
	return append([]string(nil), tabNames...)
}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return fmt.Sprintf("Tab(%d)", int(t))
	}
	return tabNames[t]
}

// Title is the localized label of the tab trigger.
func (t Tab) Title() string {
	return i18n.T("demo.tab." + t.String())
}

func ParseTab(s string) (Tab, error) {
	for i, name := range tabNames {
		if strings.EqualFold(s, name) {
			return Tab(i), nil
		}
	}
	return TabKeygen, fmt.Errorf("%w %q (want one of %s)", ErrUnknownTab, s, strings.Join(tabNames, ", "))
}
