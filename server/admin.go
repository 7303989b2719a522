// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	"github.com/boxoffice-foundation/boxoffice/booking"
	"github.com/boxoffice-foundation/boxoffice/eventfile"
	"github.com/boxoffice-foundation/boxoffice/lib/clock"
	"github.com/boxoffice-foundation/boxoffice/lib/codec"
)

// adminReadTimeout is how long the server waits for a client to send
// its request. A well-behaved client sends it immediately after
// connecting.
const adminReadTimeout = 30 * time.Second

// adminWriteTimeout is how long the server waits for the response to
// be written.
const adminWriteTimeout = 10 * time.Second

// AdminRequest is the wire form of one admin socket request. Each
// connection carries exactly one request-response cycle.
type AdminRequest struct {
	Action string `cbor:"action"`
}

// AdminResponse is the envelope for all admin responses.
type AdminResponse struct {
	OK    bool             `cbor:"ok"`
	Error string           `cbor:"error,omitempty"`
	Data  codec.RawMessage `cbor:"data,omitempty"`
}

// StatusData answers the "status" action.
type StatusData struct {
	UptimeSeconds        uint64 `cbor:"uptime_seconds"`
	Events               int    `cbor:"events"`
	PendingReservations  int    `cbor:"pending_reservations"`
	RedeemedReservations uint64 `cbor:"redeemed_reservations"`
	TicketsMinted        uint64 `cbor:"tickets_minted"`
	NextReservationID    uint32 `cbor:"next_reservation_id"`
	CatalogDigest        string `cbor:"catalog_digest"`
}

// EventData is one catalogue entry in the "events" action's answer.
// Unlike the UDP EVENTS reply, the admin answer is never truncated to
// a datagram budget.
type EventData struct {
	ID               uint32 `cbor:"id"`
	Description      string `cbor:"description"`
	AvailableTickets uint16 `cbor:"available_tickets"`
}

// AdminServer serves a read-only CBOR request-response protocol on a
// Unix socket: one request per connection, then the connection
// closes. No admin action mutates engine state.
type AdminServer struct {
	socketPath string
	engine     *booking.Engine
	digest     eventfile.Digest
	startedAt  time.Time
	clock      clock.Clock
	logger     *slog.Logger

	// activeConnections tracks in-flight handlers so Serve can drain
	// them before returning.
	activeConnections sync.WaitGroup
}

// NewAdminServer creates an admin server for the engine. The digest
// identifies the loaded event file.
func NewAdminServer(socketPath string, engine *booking.Engine, digest eventfile.Digest, clk clock.Clock, logger *slog.Logger) *AdminServer {
	return &AdminServer{
		socketPath: socketPath,
		engine:     engine,
		digest:     digest,
		startedAt:  clk.Now(),
		clock:      clk,
		logger:     logger,
	}
}

// Serve accepts connections until ctx is cancelled, then waits for
// active handlers to finish. Any stale socket file at the configured
// path is removed before listening, and the socket file is removed on
// return.
func (s *AdminServer) Serve(ctx context.Context) error {
	if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale socket %s: %w", s.socketPath, err)
	}

	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.socketPath, err)
	}
	defer func() {
		listener.Close()
		os.Remove(s.socketPath)
	}()

	// Unblock Accept when the context is cancelled.
	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	s.logger.Info("admin socket listening", "path", s.socketPath)

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			s.logger.Error("admin accept failed", "error", err)
			continue
		}

		s.activeConnections.Add(1)
		go func() {
			defer s.activeConnections.Done()
			s.handleConnection(conn)
		}()
	}

	s.activeConnections.Wait()
	return nil
}

func (s *AdminServer) handleConnection(conn net.Conn) {
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(adminReadTimeout))
	var request AdminRequest
	if err := codec.NewDecoder(conn).Decode(&request); err != nil {
		s.logger.Warn("admin request decode failed", "error", err)
		return
	}

	data, err := s.dispatch(request.Action)
	response := AdminResponse{OK: err == nil}
	if err != nil {
		response.Error = err.Error()
	} else if data != nil {
		encoded, err := codec.Marshal(data)
		if err != nil {
			s.logger.Error("admin response encode failed", "action", request.Action, "error", err)
			return
		}
		response.Data = encoded
	}

	conn.SetWriteDeadline(time.Now().Add(adminWriteTimeout))
	if err := codec.NewEncoder(conn).Encode(response); err != nil {
		s.logger.Warn("admin response write failed", "error", err)
	}
}

func (s *AdminServer) dispatch(action string) (any, error) {
	switch action {
	case "status":
		stats := s.engine.Stats()
		return StatusData{
			UptimeSeconds:        uint64(s.clock.Now().Sub(s.startedAt) / time.Second),
			Events:               stats.Events,
			PendingReservations:  stats.PendingReservations,
			RedeemedReservations: stats.RedeemedReservations,
			TicketsMinted:        stats.TicketsMinted,
			NextReservationID:    stats.NextReservationID,
			CatalogDigest:        s.digest.String(),
		}, nil

	case "events":
		views := s.engine.ListEvents()
		events := make([]EventData, len(views))
		for i, view := range views {
			events[i] = EventData{
				ID:               view.ID,
				Description:      view.Description,
				AvailableTickets: view.AvailableTickets,
			}
		}
		return events, nil

	default:
		return nil, fmt.Errorf("unknown action %q", action)
	}
}
