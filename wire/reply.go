// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/boxoffice-foundation/boxoffice/booking"
)

// Per-message fixed sizes on the reply side.
const (
	// eventRecordHeaderLength is the fixed part of one EVENTS record:
	// event id (4), available tickets (2), description length (1).
	eventRecordHeaderLength = 4 + 2 + 1

	reservationReplyLength = 1 + 4 + 4 + 2 + booking.CookieLength + 8
	ticketsHeaderLength    = 1 + 4 + 2
	badRequestLength       = 1 + 4
)

// Reply is one decoded server reply: EventsReply, ReservationReply,
// TicketsReply, or BadRequestReply.
type Reply interface {
	isReply()
}

// EventsReply carries a prefix of the event catalogue.
type EventsReply struct {
	Events []booking.EventView
}

// ReservationReply confirms a hold on tickets. The cookie authorizes
// the later GET_TICKETS; the ticket codes themselves are not here.
type ReservationReply struct {
	ReservationID uint32
	EventID       uint32
	TicketCount   uint16
	Cookie        booking.Cookie
	ExpiresAt     uint64
}

// TicketsReply carries the minted ticket codes for a redeemed
// reservation.
type TicketsReply struct {
	ReservationID uint32
	Tickets       []booking.TicketCode
}

// BadRequestReply reports a failed request, echoing the event id or
// reservation id the client sent.
type BadRequestReply struct {
	RequestID uint32
}

func (EventsReply) isReply()      {}
func (ReservationReply) isReply() {}
func (TicketsReply) isReply()     {}
func (BadRequestReply) isReply()  {}

// EncodeEvents encodes an EVENTS reply from the catalogue snapshot.
// Events are emitted in order and encoding stops before the first
// event that would push the datagram past the payload budget; the
// client receives a prefix.
func EncodeEvents(events []booking.EventView) []byte {
	datagram := make([]byte, 1, maxEventsLength(events))
	datagram[0] = MessageEvents
	for _, event := range events {
		recordLength := eventRecordHeaderLength + len(event.Description)
		if len(datagram)+recordLength > booking.MaxDatagramPayload {
			break
		}
		var header [eventRecordHeaderLength]byte
		binary.BigEndian.PutUint32(header[0:4], event.ID)
		binary.BigEndian.PutUint16(header[4:6], event.AvailableTickets)
		header[6] = byte(len(event.Description))
		datagram = append(datagram, header[:]...)
		datagram = append(datagram, event.Description...)
	}
	return datagram
}

func maxEventsLength(events []booking.EventView) int {
	length := 1
	for _, event := range events {
		length += eventRecordHeaderLength + len(event.Description)
		if length >= booking.MaxDatagramPayload {
			return booking.MaxDatagramPayload
		}
	}
	return length
}

// EncodeReservation encodes a RESERVATION reply.
func EncodeReservation(view booking.ReservationView) []byte {
	datagram := make([]byte, reservationReplyLength)
	datagram[0] = MessageReservation
	binary.BigEndian.PutUint32(datagram[1:5], view.ReservationID)
	binary.BigEndian.PutUint32(datagram[5:9], view.EventID)
	binary.BigEndian.PutUint16(datagram[9:11], view.TicketCount)
	copy(datagram[11:11+booking.CookieLength], view.Cookie[:])
	binary.BigEndian.PutUint64(datagram[11+booking.CookieLength:], view.ExpiresAt)
	return datagram
}

// EncodeTickets encodes a TICKETS reply. The engine caps reservations
// at booking.MaxTicketCount, so a legal code list always fits; the
// budget is still checked here because the codec, not its callers,
// owns the MTU guarantee.
func EncodeTickets(reservationID uint32, tickets []booking.TicketCode) ([]byte, error) {
	length := ticketsHeaderLength + len(tickets)*booking.TicketLength
	if length > booking.MaxDatagramPayload {
		return nil, fmt.Errorf("TICKETS reply with %d codes exceeds datagram payload", len(tickets))
	}
	datagram := make([]byte, ticketsHeaderLength, length)
	datagram[0] = MessageTickets
	binary.BigEndian.PutUint32(datagram[1:5], reservationID)
	binary.BigEndian.PutUint16(datagram[5:7], uint16(len(tickets)))
	for _, ticket := range tickets {
		datagram = append(datagram, ticket[:]...)
	}
	return datagram, nil
}

// EncodeBadRequest encodes a BAD_REQUEST reply echoing the offending
// event id or reservation id.
func EncodeBadRequest(requestID uint32) []byte {
	datagram := make([]byte, badRequestLength)
	datagram[0] = MessageBadRequest
	binary.BigEndian.PutUint32(datagram[1:5], requestID)
	return datagram
}

// DecodeReply parses one reply datagram. Used by the client binary
// and by round-trip tests; the server never decodes replies.
func DecodeReply(datagram []byte) (Reply, error) {
	if len(datagram) == 0 {
		return nil, fmt.Errorf("empty datagram: %w", ErrMalformed)
	}
	switch datagram[0] {
	case MessageEvents:
		return decodeEventsReply(datagram[1:])

	case MessageReservation:
		if len(datagram) != reservationReplyLength {
			return nil, fmt.Errorf("RESERVATION length %d: %w", len(datagram), ErrMalformed)
		}
		reply := ReservationReply{
			ReservationID: binary.BigEndian.Uint32(datagram[1:5]),
			EventID:       binary.BigEndian.Uint32(datagram[5:9]),
			TicketCount:   binary.BigEndian.Uint16(datagram[9:11]),
			ExpiresAt:     binary.BigEndian.Uint64(datagram[11+booking.CookieLength:]),
		}
		copy(reply.Cookie[:], datagram[11:11+booking.CookieLength])
		return reply, nil

	case MessageTickets:
		if len(datagram) < ticketsHeaderLength {
			return nil, fmt.Errorf("TICKETS length %d: %w", len(datagram), ErrMalformed)
		}
		count := int(binary.BigEndian.Uint16(datagram[5:7]))
		if len(datagram) != ticketsHeaderLength+count*booking.TicketLength {
			return nil, fmt.Errorf("TICKETS length %d for %d codes: %w", len(datagram), count, ErrMalformed)
		}
		reply := TicketsReply{
			ReservationID: binary.BigEndian.Uint32(datagram[1:5]),
			Tickets:       make([]booking.TicketCode, count),
		}
		for i := range reply.Tickets {
			offset := ticketsHeaderLength + i*booking.TicketLength
			copy(reply.Tickets[i][:], datagram[offset:offset+booking.TicketLength])
		}
		return reply, nil

	case MessageBadRequest:
		if len(datagram) != badRequestLength {
			return nil, fmt.Errorf("BAD_REQUEST length %d: %w", len(datagram), ErrMalformed)
		}
		return BadRequestReply{RequestID: binary.BigEndian.Uint32(datagram[1:5])}, nil

	default:
		return nil, fmt.Errorf("message id %d: %w", datagram[0], ErrUnknownMessage)
	}
}

func decodeEventsReply(body []byte) (EventsReply, error) {
	var reply EventsReply
	for len(body) > 0 {
		if len(body) < eventRecordHeaderLength {
			return EventsReply{}, fmt.Errorf("truncated event record: %w", ErrMalformed)
		}
		descriptionLength := int(body[6])
		if len(body) < eventRecordHeaderLength+descriptionLength {
			return EventsReply{}, fmt.Errorf("truncated event description: %w", ErrMalformed)
		}
		reply.Events = append(reply.Events, booking.EventView{
			ID:               binary.BigEndian.Uint32(body[0:4]),
			AvailableTickets: binary.BigEndian.Uint16(body[4:6]),
			Description:      string(body[eventRecordHeaderLength : eventRecordHeaderLength+descriptionLength]),
		})
		body = body[eventRecordHeaderLength+descriptionLength:]
	}
	return reply, nil
}
