// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/boxoffice-foundation/boxoffice/booking"
)

// ListenAndServe binds an IPv4 UDP socket on port and pumps datagrams
// through the dispatcher until ctx is cancelled. Each request gets at
// most one reply, sent only to the request's source address. Send
// failures are logged and ignored; the server never terminates over a
// socket error.
func ListenAndServe(ctx context.Context, port uint16, dispatcher *Dispatcher, logger *slog.Logger) error {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{Port: int(port)})
	if err != nil {
		return fmt.Errorf("binding UDP port %d: %w", port, err)
	}
	defer conn.Close()

	// Unblock ReadFromUDP when the context is cancelled.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	logger.Info("listening", "addr", conn.LocalAddr().String())

	buffer := make([]byte, booking.MaxDatagramPayload)
	for {
		length, addr, err := conn.ReadFromUDP(buffer)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			logger.Warn("receive failed", "error", err)
			continue
		}

		reply := dispatcher.Handle(buffer[:length])
		if reply == nil {
			continue
		}
		if _, err := conn.WriteToUDP(reply, addr); err != nil {
			logger.Warn("send failed", "addr", addr.String(), "error", err)
		}
	}
}
