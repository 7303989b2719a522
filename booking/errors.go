// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import "fmt"

// ErrorKind classifies engine failures. Every kind maps to a
// BAD_REQUEST reply on the wire; the distinction matters for logging
// and tests, not for the client.
type ErrorKind int

const (
	// KindEventNotFound: reserve named an event id outside the catalogue.
	KindEventNotFound ErrorKind = iota + 1

	// KindInvalidTicketCount: reserve asked for zero tickets.
	KindInvalidTicketCount

	// KindTooManyTickets: the tickets reply could not fit in one datagram.
	KindTooManyTickets

	// KindTicketShortage: the event has fewer tickets available than asked.
	KindTicketShortage

	// KindReservationNotFound: redeem named an unknown (or already
	// reclaimed) reservation id.
	KindReservationNotFound

	// KindInvalidCookie: redeem presented a cookie that does not match.
	KindInvalidCookie

	// KindIDSpaceExhausted: the 32-bit reservation id space wrapped.
	KindIDSpaceExhausted
)

func (k ErrorKind) String() string {
	switch k {
	case KindEventNotFound:
		return "event not found"
	case KindInvalidTicketCount:
		return "invalid ticket count"
	case KindTooManyTickets:
		return "too many tickets for one datagram"
	case KindTicketShortage:
		return "ticket shortage"
	case KindReservationNotFound:
		return "reservation not found"
	case KindInvalidCookie:
		return "invalid cookie"
	case KindIDSpaceExhausted:
		return "reservation id space exhausted"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// Error is the engine's failure value. RequestID carries the event id
// (reserve failures) or reservation id (redeem failures) that the
// BAD_REQUEST reply echoes back to the client.
type Error struct {
	Kind      ErrorKind
	RequestID uint32
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (request id %d)", e.Kind, e.RequestID)
}

func reserveError(kind ErrorKind, eventID uint32) *Error {
	return &Error{Kind: kind, RequestID: eventID}
}

func redeemError(kind ErrorKind, reservationID uint32) *Error {
	return &Error{Kind: kind, RequestID: reservationID}
}
