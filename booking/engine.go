// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"crypto/subtle"
	"log/slog"
	"sync"

	"github.com/boxoffice-foundation/boxoffice/lib/clock"
)

// MaxDatagramPayload is the largest UDP payload the protocol uses,
// for both requests and replies: 65535 minus the IPv4 and UDP headers.
const MaxDatagramPayload = 65507

// ticketsReplyHeaderLength is the fixed prefix of a TICKETS reply:
// message id (1), reservation id (4), ticket count (2).
const ticketsReplyHeaderLength = 1 + 4 + 2

// MaxTicketCount is the largest ticket count a single reservation may
// hold: any more and the TICKETS reply could not fit in one datagram.
const MaxTicketCount = (MaxDatagramPayload - ticketsReplyHeaderLength) / TicketLength

// ReservationView is the engine's answer to a successful Reserve. The
// ticket codes are deliberately absent; they are only released by
// Redeem.
type ReservationView struct {
	ReservationID uint32
	EventID       uint32
	TicketCount   uint16
	Cookie        Cookie
	ExpiresAt     uint64
}

// Stats is a point-in-time snapshot of engine counters for the admin
// socket.
type Stats struct {
	Events               int
	PendingReservations  int
	RedeemedReservations uint64
	TicketsMinted        uint64
	NextReservationID    uint32
}

// Engine orchestrates the catalogue, the reservation store, the expiry
// queue, the ticket minter, and cookie derivation. It is the single
// serialization point for all reservation state.
type Engine struct {
	mu sync.Mutex

	clock   clock.Clock
	logger  *slog.Logger
	timeout uint64

	catalog      *Catalog
	reservations map[uint32]*reservation
	expiry       expiryQueue
	minter       Minter

	nextReservationID uint32

	redeemedCount uint64
	mintedTickets uint64
}

// NewEngine builds an engine over the given catalogue. The timeout is
// the reservation deadline window in seconds; it is constant for the
// engine's lifetime (the expiry queue's ordering depends on that).
func NewEngine(catalog *Catalog, timeout uint32, clk clock.Clock, logger *slog.Logger) *Engine {
	return &Engine{
		clock:             clk,
		logger:            logger,
		timeout:           uint64(timeout),
		catalog:           catalog,
		reservations:      make(map[uint32]*reservation),
		minter:            NewMinter(),
		nextReservationID: MinReservationID,
	}
}

// ListEvents returns a snapshot of all events in id order. The sweep
// runs first so reclaimed tickets are visible immediately; the caller
// truncates to the datagram budget.
func (e *Engine) ListEvents() []EventView {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sweep()
	return e.catalog.views()
}

// Reserve holds ticketCount tickets of the given event and returns the
// reservation. The checks run in a fixed order so each failure mode
// maps to one error kind.
func (e *Engine) Reserve(eventID uint32, ticketCount uint16) (ReservationView, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sweep()

	if ticketCount == 0 {
		return ReservationView{}, reserveError(KindInvalidTicketCount, eventID)
	}
	if ticketCount > MaxTicketCount {
		return ReservationView{}, reserveError(KindTooManyTickets, eventID)
	}
	ev := e.catalog.lookup(eventID)
	if ev == nil {
		return ReservationView{}, reserveError(KindEventNotFound, eventID)
	}
	if ev.available < ticketCount {
		return ReservationView{}, reserveError(KindTicketShortage, eventID)
	}
	if e.nextReservationID+1 < MinReservationID {
		return ReservationView{}, reserveError(KindIDSpaceExhausted, eventID)
	}

	reservationID := e.nextReservationID
	e.nextReservationID++

	ev.available -= ticketCount
	expiresAt := e.now() + e.timeout

	record := &reservation{
		eventID:     eventID,
		ticketCount: ticketCount,
		cookie:      NewCookie(reservationID),
		expiresAt:   expiresAt,
		ticketBase:  e.minter.ReserveBlock(ticketCount),
	}
	e.reservations[reservationID] = record
	e.expiry.push(expiryEntry{reservationID: reservationID, expiresAt: expiresAt})
	e.mintedTickets += uint64(ticketCount)

	e.logger.Debug("reservation created",
		"reservation_id", reservationID,
		"event_id", eventID,
		"ticket_count", ticketCount,
		"expires_at", expiresAt,
	)

	return ReservationView{
		ReservationID: reservationID,
		EventID:       eventID,
		TicketCount:   ticketCount,
		Cookie:        record.cookie,
		ExpiresAt:     expiresAt,
	}, nil
}

// Redeem exchanges a reservation id and its cookie for the ticket
// codes. Redeeming is idempotent: a datagram client may never see the
// first reply, so every redeem of the same reservation returns the
// same codes and the reservation is never reclaimed afterwards.
func (e *Engine) Redeem(reservationID uint32, presented Cookie) ([]TicketCode, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sweep()

	record, ok := e.reservations[reservationID]
	if !ok {
		return nil, redeemError(KindReservationNotFound, reservationID)
	}
	// All 48 bytes are inspected regardless of where the first
	// mismatch sits, so response timing reveals nothing about prefix
	// matches.
	if subtle.ConstantTimeCompare(presented[:], record.cookie[:]) != 1 {
		return nil, redeemError(KindInvalidCookie, reservationID)
	}

	if !record.redeemed {
		record.redeemed = true
		e.redeemedCount++
		e.logger.Debug("reservation redeemed",
			"reservation_id", reservationID,
			"event_id", record.eventID,
			"ticket_count", record.ticketCount,
		)
	}

	return ticketBlock(record.ticketBase, record.ticketCount), nil
}

// Stats returns a snapshot of engine counters. The sweep runs first so
// the pending count never includes dead reservations.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sweep()

	pending := 0
	for _, record := range e.reservations {
		if !record.redeemed {
			pending++
		}
	}
	return Stats{
		Events:               e.catalog.Len(),
		PendingReservations:  pending,
		RedeemedReservations: e.redeemedCount,
		TicketsMinted:        e.mintedTickets,
		NextReservationID:    e.nextReservationID,
	}
}

func (e *Engine) now() uint64 {
	return uint64(e.clock.Now().Unix())
}

// sweep reclaims expired, unredeemed reservations. The queue is
// non-decreasing in expiresAt, so the walk stops at the first live
// entry. Entries for redeemed reservations are dropped without
// touching the reservation: redeemed is terminal.
func (e *Engine) sweep() {
	now := e.now()
	for !e.expiry.empty() {
		entry := e.expiry.front()
		if entry.expiresAt >= now {
			return
		}
		e.expiry.pop()

		record, ok := e.reservations[entry.reservationID]
		if !ok || record.redeemed {
			continue
		}
		if ev := e.catalog.lookup(record.eventID); ev != nil {
			ev.available += record.ticketCount
		}
		delete(e.reservations, entry.reservationID)
		e.logger.Debug("reservation expired",
			"reservation_id", entry.reservationID,
			"event_id", record.eventID,
			"ticket_count", record.ticketCount,
		)
	}
}
