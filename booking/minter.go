// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

package booking

// TicketLength is the fixed length of every ticket code.
const TicketLength = 7

// ticketAlphabetSize is the radix of ticket codes: '0'..'9' then
// 'A'..'Z'.
const ticketAlphabetSize = 36

// TicketCode is a 7-character base-36 ticket code. Digit order is
// little-endian: position 0 is the least significant digit, so the
// code after "0000000" is "1000000".
type TicketCode [TicketLength]byte

// String returns the code as a string.
func (t TicketCode) String() string { return string(t[:]) }

// Next returns the code t + 1 in base-36. Overflow past "ZZZZZZZ"
// wraps silently; the counter space (36^7, roughly 78 billion) is
// treated as inexhaustible.
func (t TicketCode) Next() TicketCode {
	return t.add(1)
}

func (t TicketCode) add(delta uint32) TicketCode {
	carry := uint64(delta)
	for i := 0; i < TicketLength && carry > 0; i++ {
		value := uint64(digitValue(t[i])) + carry
		t[i] = digitChar(byte(value % ticketAlphabetSize))
		carry = value / ticketAlphabetSize
	}
	return t
}

func digitValue(c byte) byte {
	if c <= '9' {
		return c - '0'
	}
	return c - 'A' + 10
}

func digitChar(v byte) byte {
	if v < 10 {
		return v + '0'
	}
	return v - 10 + 'A'
}

// Minter hands out contiguous blocks of ticket codes from a monotonic
// base-36 counter starting at "0000000". Every code issued over the
// process lifetime is unique because the counter only moves forward.
type Minter struct {
	counter TicketCode
}

// NewMinter returns a minter with its counter at "0000000".
func NewMinter() Minter {
	var counter TicketCode
	for i := range counter {
		counter[i] = '0'
	}
	return Minter{counter: counter}
}

// ReserveBlock claims the next n codes and returns the first of them.
// The block [base, base+n) belongs to the caller; the following
// ReserveBlock starts at base+n.
func (m *Minter) ReserveBlock(n uint16) TicketCode {
	base := m.counter
	m.counter = m.counter.add(uint32(n))
	return base
}

// ticketBlock materializes the n codes starting at base, in issue
// order. Redeem reconstructs a reservation's codes from its recorded
// base instead of storing them.
func ticketBlock(base TicketCode, n uint16) []TicketCode {
	codes := make([]TicketCode, n)
	for i := range codes {
		codes[i] = base
		base = base.Next()
	}
	return codes
}
