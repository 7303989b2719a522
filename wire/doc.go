// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire implements the datagram wire format: fixed-layout
// big-endian messages, length-prefixed descriptions, and
// variable-length ticket lists.
//
// One datagram carries exactly one message and the first byte names
// its kind. Requests flow client to server, replies server to client:
//
//	GET_EVENTS       (1)  ->  EVENTS       (2)
//	GET_RESERVATION  (3)  ->  RESERVATION  (4) or BAD_REQUEST (255)
//	GET_TICKETS      (5)  ->  TICKETS      (6) or BAD_REQUEST (255)
//
// Every reply must fit a single UDP payload; encoders enforce the
// budget rather than trusting callers. The EVENTS encoder emits a
// prefix of the catalogue, stopping before the first event that would
// overflow the datagram. There is no pagination.
//
// Decoders are strict: a datagram whose length does not match its
// message id's layout exactly is rejected, and the caller drops it
// silently with no reply and no state change.
package wire
