// SPDX-License-Identifier: EPL-2.0

// Package boundary carries audio buffers across host boundaries as
// text, for embeddings that cannot pass raw bytes.
//
// Buffers travel as standard base64 with padding. The package mirrors
// the three root operations in string form:
//
//	cfg := audmix.NewConfig(0.6, 0.8, 120, 120, 8000)
//	mixed := boundary.Mix(callText, whisperText, cfg)
//
// # Degraded input
//
// Malformed text never produces an error. Decode substitutes an empty
// buffer, so every operation fed garbage behaves exactly as if it had
// been handed empty audio. Hosts must not rely on boundary validation
// for correctness signaling.
package boundary
