// Copyright (c) 2026 Quantum PKI Team
// Quantum PKI - quantum-safe key registration prototype
// This source code is licensed under the MIT license found in the LICENSE file.
// Package mockcrypto implements the reversible text encoding that stands in
// for quantum-safe encryption in the prototype. Nothing here is secure: the
// "ciphertext" is base64 of the message plus a timestamp-tagged marker.
package mockcrypto
