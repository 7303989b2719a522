// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

// Package server pumps datagrams between the network and the
// reservation engine.
//
//   - dispatcher.go: classifies one inbound datagram, drives the
//     engine, and produces at most one reply
//   - server.go: the IPv4 UDP read loop; replies go only to the
//     source address of the request they answer
//   - admin.go: read-only CBOR status API on a Unix socket
//
// The UDP loop is a single goroutine: one request is decoded, handled,
// and answered to completion before the next is read. The engine's own
// mutex covers the admin socket's concurrent reads.
package server
