// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.

package mockcrypto

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/quantumpki/qpki/core/keys"
)

// Marker separates the message from its timestamp inside the encoded payload.
const Marker = "_QUANTUM_ENCRYPTED_"

var (
	ErrEmptyMessage        = errors.New("mockcrypto: message is empty")
	ErrEmptyCiphertext     = errors.New("mockcrypto: ciphertext is empty")
	ErrNoKeyPair           = errors.New("mockcrypto: no key pair")
	ErrMalformedCiphertext = errors.New("mockcrypto: malformed ciphertext")
)

// Encrypt encodes message together with a marker tagged with now.
func Encrypt(message string, kp *keys.KeyPair, now time.Time) (string, error) {
	if message == "" {
		return "", ErrEmptyMessage
	}
	if kp == nil {
		return "", ErrNoKeyPair
	}
	payload := message + Marker + strconv.FormatInt(now.UnixMilli(), 10)
	return base64.StdEncoding.EncodeToString([]byte(payload)), nil
}

// Decrypt reverses Encrypt. Input that was not produced by Encrypt yields an
// error wrapping ErrMalformedCiphertext.
func Decrypt(ciphertext string, kp *keys.KeyPair) (string, error) {
	ciphertext = strings.TrimSpace(ciphertext)
	if ciphertext == "" {
		return "", ErrEmptyCiphertext
	}
	if kp == nil {
		return "", ErrNoKeyPair
	}
	message, _, err := open(ciphertext)
	return message, err
}

// Timestamp extracts the encryption time recorded in ciphertext.
func Timestamp(ciphertext string) (time.Time, error) {
	_, ms, err := open(strings.TrimSpace(ciphertext))
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}

// open splits a decoded payload into message and unix millis. The payload is
// treated as raw bytes so any message Encrypt accepted comes back unchanged.
func open(ciphertext string) (string, int64, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
	}

	// the message itself may contain the marker, the timestamp never does
	payload := string(raw)
	i := strings.LastIndex(payload, Marker)
	if i < 0 {
		return "", 0, fmt.Errorf("%w: marker not found", ErrMalformedCiphertext)
	}
	stamp := payload[i+len(Marker):]
	if !isDigits(stamp) {
		return "", 0, fmt.Errorf("%w: bad timestamp", ErrMalformedCiphertext)
	}
	ms, err := strconv.ParseInt(stamp, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: bad timestamp", ErrMalformedCiphertext)
	}
	return payload[:i], ms, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
