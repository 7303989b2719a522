// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

package eventfile

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/boxoffice-foundation/boxoffice/booking"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []booking.EventSeed
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "single pair",
			input: "The Tempest\n100\n",
			want:  []booking.EventSeed{{Description: "The Tempest", Tickets: 100}},
		},
		{
			name:  "several pairs",
			input: "A\n1\nB\n2\nC\n3\n",
			want: []booking.EventSeed{
				{Description: "A", Tickets: 1},
				{Description: "B", Tickets: 2},
				{Description: "C", Tickets: 3},
			},
		},
		{
			name:  "zero tickets is legal",
			input: "Sold Out\n0\n",
			want:  []booking.EventSeed{{Description: "Sold Out", Tickets: 0}},
		},
		{
			name:  "no trailing newline",
			input: "A\n1",
			want:  []booking.EventSeed{{Description: "A", Tickets: 1}},
		},
		{
			name:  "stops at empty description",
			input: "A\n1\n\n2\nB\n3\n",
			want:  []booking.EventSeed{{Description: "A", Tickets: 1}},
		},
		{
			name:  "stops at oversized description",
			input: "A\n1\n" + strings.Repeat("x", booking.MaxDescriptionLength+1) + "\n2\n",
			want:  []booking.EventSeed{{Description: "A", Tickets: 1}},
		},
		{
			name:  "description at the length cap is legal",
			input: strings.Repeat("x", booking.MaxDescriptionLength) + "\n7\n",
			want:  []booking.EventSeed{{Description: strings.Repeat("x", booking.MaxDescriptionLength), Tickets: 7}},
		},
		{
			name:  "stops at non-numeric count",
			input: "A\n1\nB\nmany\nC\n3\n",
			want:  []booking.EventSeed{{Description: "A", Tickets: 1}},
		},
		{
			name:  "stops at count past uint16",
			input: "A\n1\nB\n65536\n",
			want:  []booking.EventSeed{{Description: "A", Tickets: 1}},
		},
		{
			name:  "stops at negative count",
			input: "A\n-1\n",
			want:  nil,
		},
		{
			name:  "trailing description without count is dropped",
			input: "A\n1\nDangling\n",
			want:  []booking.EventSeed{{Description: "A", Tickets: 1}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := Parse(strings.NewReader(test.input))
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("Parse = %#v, want %#v", got, test.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "events")
	if err := os.WriteFile(path, []byte("Opening Night\n40\nMatinee\n12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	seeds, digest, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []booking.EventSeed{
		{Description: "Opening Night", Tickets: 40},
		{Description: "Matinee", Tickets: 12},
	}
	if !reflect.DeepEqual(seeds, want) {
		t.Errorf("Load seeds = %#v, want %#v", seeds, want)
	}
	if digest != DigestSeeds(want) {
		t.Error("Load digest does not match DigestSeeds over the same seeds")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, _, err := Load(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("Load succeeded on a missing file")
	}
}

func TestDigestSeeds(t *testing.T) {
	t.Parallel()

	base := []booking.EventSeed{
		{Description: "A", Tickets: 1},
		{Description: "B", Tickets: 2},
	}

	if DigestSeeds(base) != DigestSeeds(base) {
		t.Error("digest is not deterministic")
	}
	if DigestSeeds(base) == DigestSeeds(nil) {
		t.Error("digest ignores the seeds entirely")
	}

	reordered := []booking.EventSeed{base[1], base[0]}
	if DigestSeeds(base) == DigestSeeds(reordered) {
		t.Error("digest is insensitive to seed order")
	}

	retickets := []booking.EventSeed{
		{Description: "A", Tickets: 1},
		{Description: "B", Tickets: 3},
	}
	if DigestSeeds(base) == DigestSeeds(retickets) {
		t.Error("digest is insensitive to ticket counts")
	}

	// The per-seed length prefix keeps boundaries unambiguous: the
	// same bytes split differently must not collide.
	joined := []booking.EventSeed{{Description: "AB", Tickets: 1}}
	split := []booking.EventSeed{{Description: "A", Tickets: 1}, {Description: "B", Tickets: 1}}
	if DigestSeeds(joined) == DigestSeeds(split) {
		t.Error("digest collides across seed boundaries")
	}
}

func TestDigestString(t *testing.T) {
	t.Parallel()

	digest := DigestSeeds([]booking.EventSeed{{Description: "A", Tickets: 1}})
	text := digest.String()
	if len(text) != 64 {
		t.Fatalf("digest string length = %d, want 64", len(text))
	}
	for _, c := range text {
		if !strings.ContainsRune("0123456789abcdef", c) {
			t.Fatalf("digest string %q contains non-hex character %q", text, c)
		}
	}
}
