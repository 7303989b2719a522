// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/boxoffice-foundation/boxoffice/booking"
)

// Message id constants. Odd ids are requests, even ids are replies,
// and 255 is the error reply.
const (
	MessageGetEvents      byte = 1
	MessageEvents         byte = 2
	MessageGetReservation byte = 3
	MessageReservation    byte = 4
	MessageGetTickets     byte = 5
	MessageTickets        byte = 6
	MessageBadRequest     byte = 255
)

// Fixed request sizes. The largest legal request is GET_TICKETS.
const (
	getEventsLength      = 1
	getReservationLength = 1 + 4 + 2
	getTicketsLength     = 1 + 4 + booking.CookieLength

	// MaxRequestLength bounds every legal request datagram.
	MaxRequestLength = getTicketsLength
)

// ErrMalformed marks a datagram whose bytes do not match any legal
// message layout. Malformed datagrams are dropped without a reply.
var ErrMalformed = errors.New("malformed datagram")

// ErrUnknownMessage marks a datagram with an unrecognized message id.
// Like malformed datagrams, these are dropped without a reply.
var ErrUnknownMessage = errors.New("unknown message id")

// Request is one decoded client request: GetEvents, GetReservation,
// or GetTickets.
type Request interface {
	isRequest()
}

// GetEvents asks for the event catalogue.
type GetEvents struct{}

// GetReservation asks to hold TicketCount tickets of event EventID.
type GetReservation struct {
	EventID     uint32
	TicketCount uint16
}

// GetTickets asks to redeem a reservation with its cookie.
type GetTickets struct {
	ReservationID uint32
	Cookie        booking.Cookie
}

func (GetEvents) isRequest()      {}
func (GetReservation) isRequest() {}
func (GetTickets) isRequest()     {}

// DecodeRequest parses one request datagram. The length must match
// the message id's layout exactly; trailing bytes are as fatal as
// missing ones.
func DecodeRequest(datagram []byte) (Request, error) {
	if len(datagram) == 0 {
		return nil, fmt.Errorf("empty datagram: %w", ErrMalformed)
	}
	switch datagram[0] {
	case MessageGetEvents:
		if len(datagram) != getEventsLength {
			return nil, fmt.Errorf("GET_EVENTS length %d: %w", len(datagram), ErrMalformed)
		}
		return GetEvents{}, nil

	case MessageGetReservation:
		if len(datagram) != getReservationLength {
			return nil, fmt.Errorf("GET_RESERVATION length %d: %w", len(datagram), ErrMalformed)
		}
		return GetReservation{
			EventID:     binary.BigEndian.Uint32(datagram[1:5]),
			TicketCount: binary.BigEndian.Uint16(datagram[5:7]),
		}, nil

	case MessageGetTickets:
		if len(datagram) != getTicketsLength {
			return nil, fmt.Errorf("GET_TICKETS length %d: %w", len(datagram), ErrMalformed)
		}
		request := GetTickets{
			ReservationID: binary.BigEndian.Uint32(datagram[1:5]),
		}
		copy(request.Cookie[:], datagram[5:])
		return request, nil

	default:
		return nil, fmt.Errorf("message id %d: %w", datagram[0], ErrUnknownMessage)
	}
}

// EncodeGetEvents encodes a GET_EVENTS request.
func EncodeGetEvents() []byte {
	return []byte{MessageGetEvents}
}

// EncodeGetReservation encodes a GET_RESERVATION request.
func EncodeGetReservation(eventID uint32, ticketCount uint16) []byte {
	datagram := make([]byte, getReservationLength)
	datagram[0] = MessageGetReservation
	binary.BigEndian.PutUint32(datagram[1:5], eventID)
	binary.BigEndian.PutUint16(datagram[5:7], ticketCount)
	return datagram
}

// EncodeGetTickets encodes a GET_TICKETS request.
func EncodeGetTickets(reservationID uint32, cookie booking.Cookie) []byte {
	datagram := make([]byte, getTicketsLength)
	datagram[0] = MessageGetTickets
	binary.BigEndian.PutUint32(datagram[1:5], reservationID)
	copy(datagram[5:], cookie[:])
	return datagram
}
