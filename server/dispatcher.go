// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"errors"
	"log/slog"

	"github.com/boxoffice-foundation/boxoffice/booking"
	"github.com/boxoffice-foundation/boxoffice/wire"
)

// Dispatcher turns one request datagram into at most one reply
// datagram. Malformed datagrams and unknown message ids produce no
// reply and no state change; engine failures produce BAD_REQUEST.
type Dispatcher struct {
	engine *booking.Engine
	logger *slog.Logger
}

// NewDispatcher builds a dispatcher over the engine.
func NewDispatcher(engine *booking.Engine, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{engine: engine, logger: logger}
}

// Handle processes one datagram and returns the reply to send, or nil
// when the datagram must be dropped silently.
func (d *Dispatcher) Handle(datagram []byte) []byte {
	request, err := wire.DecodeRequest(datagram)
	if err != nil {
		d.logger.Debug("dropping datagram", "length", len(datagram), "error", err)
		return nil
	}

	switch request := request.(type) {
	case wire.GetEvents:
		return wire.EncodeEvents(d.engine.ListEvents())

	case wire.GetReservation:
		view, err := d.engine.Reserve(request.EventID, request.TicketCount)
		if err != nil {
			return d.badRequest(err)
		}
		return wire.EncodeReservation(view)

	case wire.GetTickets:
		tickets, err := d.engine.Redeem(request.ReservationID, request.Cookie)
		if err != nil {
			return d.badRequest(err)
		}
		reply, err := wire.EncodeTickets(request.ReservationID, tickets)
		if err != nil {
			// Unreachable: Reserve capped the count below the
			// datagram budget. Dropping beats sending a mangled reply.
			d.logger.Error("tickets reply did not fit a datagram",
				"reservation_id", request.ReservationID,
				"error", err,
			)
			return nil
		}
		return reply

	default:
		return nil
	}
}

func (d *Dispatcher) badRequest(err error) []byte {
	var engineErr *booking.Error
	if !errors.As(err, &engineErr) {
		d.logger.Error("engine returned a non-engine error", "error", err)
		return nil
	}
	d.logger.Debug("rejecting request",
		"kind", engineErr.Kind.String(),
		"request_id", engineErr.RequestID,
	)
	return wire.EncodeBadRequest(engineErr.RequestID)
}
