// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/boxoffice-foundation/boxoffice/booking"
	"github.com/boxoffice-foundation/boxoffice/lib/version"
	"github.com/boxoffice-foundation/boxoffice/wire"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		serverAddr  string
		wait        time.Duration
		listEvents  bool
		reserveID   uint32
		ticketCount uint16
		redeemID    uint32
		cookieText  string
		showVersion bool
	)

	flagSet := pflag.NewFlagSet("boxoffice-client", pflag.ContinueOnError)
	flagSet.StringVar(&serverAddr, "server", "127.0.0.1:2022", "server address")
	flagSet.DurationVar(&wait, "wait", 2*time.Second, "how long to wait for the reply")
	flagSet.BoolVar(&listEvents, "events", false, "list the event catalogue")
	flagSet.Uint32Var(&reserveID, "reserve", 0, "reserve tickets for this event id")
	flagSet.Uint16Var(&ticketCount, "count", 1, "how many tickets to reserve")
	flagSet.Uint32Var(&redeemID, "redeem", 0, "redeem this reservation id")
	flagSet.StringVar(&cookieText, "cookie", "", "reservation cookie from --reserve")
	flagSet.BoolVar(&showVersion, "version", false, "print version information and exit")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		return err
	}
	if showVersion {
		fmt.Println(version.Info())
		return nil
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", flagSet.Arg(0))
	}

	request, err := buildRequest(flagSet, listEvents, reserveID, ticketCount, redeemID, cookieText)
	if err != nil {
		return err
	}

	reply, err := exchange(serverAddr, wait, request)
	if err != nil {
		return err
	}
	return printReply(reply)
}

// buildRequest turns the parsed flags into a request datagram. Exactly
// one of the three action flags must be set.
func buildRequest(flagSet *pflag.FlagSet, listEvents bool, reserveID uint32, ticketCount uint16, redeemID uint32, cookieText string) ([]byte, error) {
	actions := 0
	for _, name := range []string{"events", "reserve", "redeem"} {
		if flagSet.Changed(name) {
			actions++
		}
	}
	if actions != 1 {
		return nil, fmt.Errorf("exactly one of --events, --reserve, or --redeem is required")
	}

	switch {
	case listEvents:
		return wire.EncodeGetEvents(), nil

	case flagSet.Changed("reserve"):
		if ticketCount == 0 {
			return nil, fmt.Errorf("--count must be at least 1")
		}
		return wire.EncodeGetReservation(reserveID, ticketCount), nil

	default:
		if len(cookieText) != booking.CookieLength {
			return nil, fmt.Errorf("--cookie must be exactly %d characters, got %d", booking.CookieLength, len(cookieText))
		}
		var cookie booking.Cookie
		copy(cookie[:], cookieText)
		return wire.EncodeGetTickets(redeemID, cookie), nil
	}
}

// exchange sends the request and reads one reply datagram. The server
// is silent on malformed input, so a timeout is the only signal a
// request was dropped.
func exchange(serverAddr string, wait time.Duration, request []byte) (wire.Reply, error) {
	addr, err := net.ResolveUDPAddr("udp4", serverAddr)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", serverAddr, err)
	}
	conn, err := net.DialUDP("udp4", nil, addr)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", serverAddr, err)
	}
	defer conn.Close()

	if _, err := conn.Write(request); err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	conn.SetReadDeadline(time.Now().Add(wait))
	buffer := make([]byte, booking.MaxDatagramPayload)
	length, err := conn.Read(buffer)
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return nil, fmt.Errorf("no reply from %s within %s", serverAddr, wait)
		}
		return nil, fmt.Errorf("reading reply: %w", err)
	}
	return wire.DecodeReply(buffer[:length])
}

func printReply(reply wire.Reply) error {
	switch reply := reply.(type) {
	case wire.EventsReply:
		for _, event := range reply.Events {
			fmt.Printf("%d\t%d\t%s\n", event.ID, event.AvailableTickets, event.Description)
		}
		return nil

	case wire.ReservationReply:
		fmt.Printf("reservation %d: %d ticket(s) for event %d\n", reply.ReservationID, reply.TicketCount, reply.EventID)
		fmt.Printf("cookie: %s\n", string(reply.Cookie[:]))
		fmt.Printf("expires at: %s\n", time.Unix(int64(reply.ExpiresAt), 0).UTC().Format(time.RFC3339))
		return nil

	case wire.TicketsReply:
		fmt.Printf("reservation %d redeemed, %d ticket(s):\n", reply.ReservationID, len(reply.Tickets))
		for _, ticket := range reply.Tickets {
			fmt.Println(ticket.String())
		}
		return nil

	case wire.BadRequestReply:
		return fmt.Errorf("server rejected request for id %d", reply.RequestID)

	default:
		return fmt.Errorf("unexpected reply type %T", reply)
	}
}
