// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

package eventfile

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/boxoffice-foundation/boxoffice/booking"
)

// Digest is a 32-byte BLAKE3 digest of the loaded catalogue. The
// server logs it at startup and reports it over the admin socket, so
// an operator can confirm which event file a running server loaded.
type Digest [32]byte

// String returns the digest as lowercase hex.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// catalogDomainKey is the BLAKE3 keyed-hash domain key for catalogue
// digests: the ASCII domain name zero-padded to 32 bytes. Readable
// ASCII keeps the key inspectable in hex dumps without weakening the
// keyed mode, which treats it as an opaque 32-byte value.
var catalogDomainKey = [32]byte{
	'b', 'o', 'x', 'o', 'f', 'f', 'i', 'c', 'e', '.',
	'c', 'a', 't', 'a', 'l', 'o', 'g', 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// DigestSeeds computes the catalogue digest over a canonical byte
// form of the seeds: per event, a one-byte description length, the
// description bytes, and the big-endian uint16 ticket count. The
// canonical form, not the raw file bytes, is hashed so that the
// digest identifies what the server actually loaded (a malformed tail
// the parser discarded does not change it).
func DigestSeeds(seeds []booking.EventSeed) Digest {
	hasher, err := blake3.NewKeyed(catalogDomainKey[:])
	if err != nil {
		panic("eventfile: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	var scratch [3]byte
	for _, seed := range seeds {
		scratch[0] = byte(len(seed.Description))
		binary.BigEndian.PutUint16(scratch[1:3], seed.Tickets)
		hasher.Write(scratch[:1])
		hasher.Write([]byte(seed.Description))
		hasher.Write(scratch[1:3])
	}
	var digest Digest
	hasher.Sum(digest[:0])
	return digest
}
