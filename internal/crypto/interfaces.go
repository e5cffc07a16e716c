// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// Sealer protects values that leave the process boundary, such as tenant
// records written to the shared Redis cache. Sealed blobs are authenticated:
// a blob produced with a different key, or tampered with in transit, fails
// to open.
type Sealer interface {
	// Seal serializes v to JSON and encrypts it. The result has the layout
	// nonce || ciphertext.
	Seal(v any) ([]byte, error)

	// Open decrypts a blob produced by Seal and unmarshals the JSON into
	// target, which must be a non-nil pointer.
	Open(blob []byte, target any) error
}
