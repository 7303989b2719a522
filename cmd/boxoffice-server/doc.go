// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

// Boxoffice-server is a connectionless ticket-reservation server. It
// loads an event catalogue from a description file, holds all state in
// memory, and answers a compact binary request/reply protocol over
// IPv4 UDP: clients list events, reserve tickets against a short
// deadline, and redeem the reservation with its cookie to receive
// uniquely minted ticket codes.
//
// # Usage
//
//	boxoffice-server -f <event-file> [-p <port>] [-t <timeout>]
//	                 [--config <file>] [--admin-socket <path>]
//	                 [--log-level <level>]
//
// The event file is pairs of lines: a description (1 to 80 bytes)
// followed by a decimal ticket count. Parsing stops at the first
// malformed pair.
//
// The optional YAML config file supplies defaults for port, timeout,
// admin socket path, and log level; explicit flags win. Unknown flags,
// repeated flags, stray positional arguments, or a missing -f are
// fatal at startup.
//
// # Admin socket
//
// When --admin-socket is set, the server answers a read-only CBOR
// request-response protocol on that Unix socket: "status" reports
// engine counters and the catalogue digest, "events" reports the full
// catalogue without the UDP reply's datagram truncation.
package main
