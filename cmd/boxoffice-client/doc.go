// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

// Boxoffice-client is a command line client for the boxoffice UDP
// protocol. It sends exactly one request per invocation and prints the
// reply as text.
//
// # Usage
//
//	boxoffice-client [--server <host:port>] [--wait <duration>] --events
//	boxoffice-client [--server <host:port>] [--wait <duration>] --reserve <event-id> --count <n>
//	boxoffice-client [--server <host:port>] [--wait <duration>] --redeem <reservation-id> --cookie <cookie>
//
// Exactly one of --events, --reserve, or --redeem must be given. The
// cookie is the 48-character string printed by a successful --reserve.
//
// The exit status is 0 on a successful reply, 1 on a BAD_REQUEST reply,
// a timeout, or any local error.
package main
