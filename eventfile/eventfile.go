// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

// Package eventfile reads the event description file that seeds the
// catalogue.
//
// The format is pairs of lines: a description (1 to 80 bytes of
// arbitrary content, no embedded newline by construction) followed by
// a decimal ticket count that fits a uint16. Parsing stops at EOF or
// at the first malformed pair; events read before the malformed pair
// are kept. A trailing description with no count line is ignored.
package eventfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/boxoffice-foundation/boxoffice/booking"
)

// Parse reads event seeds from r until EOF or the first malformed
// pair.
func Parse(r io.Reader) []booking.EventSeed {
	var seeds []booking.EventSeed
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		description := scanner.Text()
		if len(description) == 0 || len(description) > booking.MaxDescriptionLength {
			break
		}
		if !scanner.Scan() {
			break
		}
		tickets, err := strconv.ParseUint(scanner.Text(), 10, 16)
		if err != nil {
			break
		}
		seeds = append(seeds, booking.EventSeed{
			Description: description,
			Tickets:     uint16(tickets),
		})
	}
	return seeds
}

// Load reads the event file at path and returns the seeds together
// with the catalogue digest identifying the loaded contents.
func Load(path string) ([]booking.EventSeed, Digest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Digest{}, fmt.Errorf("opening event file: %w", err)
	}
	defer file.Close()

	seeds := Parse(file)
	return seeds, DigestSeeds(seeds), nil
}
