// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

// Package booking implements the reservation engine: a time-bounded,
// cookie-authenticated state machine over events, pending reservations,
// and fulfilled reservations.
//
// The package is organized around the engine's collaborators:
//
//   - catalog.go: immutable event catalogue with mutable ticket counters
//   - minter.go: monotonic base-36 ticket code minter
//   - cookie.go: deterministic reservation cookie derivation
//   - errors.go: the engine's error taxonomy
//   - engine.go: orchestration, expiry reclamation, and the state machine
//
// A reservation moves through exactly one of two lifecycles:
//
//	(none) --Reserve--> pending --Redeem (valid cookie, before deadline)--> redeemed
//	                      |
//	                      +--expiry sweep (past deadline, never redeemed)--> reclaimed
//
// Redeemed reservations are terminal: their tickets stay subtracted
// from the event forever and repeated redemption returns the same
// codes. Reclaimed reservations return their tickets to the event and
// disappear from the store.
//
// All engine state sits behind one mutex. The UDP dispatcher is a
// single goroutine, but the admin socket reads statistics concurrently,
// so the exclusion is real, not ceremonial.
package booking
