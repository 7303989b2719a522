// Copyright 2026 The Boxoffice Authors
// SPDX-License-Identifier: Apache-2.0

package booking

// MaxDescriptionLength is the longest event description the wire
// format can carry: the length prefix is a single byte and the file
// format caps descriptions at 80 bytes.
const MaxDescriptionLength = 80

// EventSeed is one catalogue entry as read from the event description
// file: a description and the initial ticket allotment.
type EventSeed struct {
	Description string
	Tickets     uint16
}

// event is a single bookable item. The id is the event's position in
// load order; description and the initial allotment never change after
// construction. available is the only mutable field and is mutated
// exclusively by the engine.
type event struct {
	id          uint32
	description string
	available   uint16
}

// Catalog is the ordered set of events loaded at startup. Events are
// never added or removed after construction.
type Catalog struct {
	events []event
}

// NewCatalog builds a catalogue from seeds in load order. Event ids
// are assigned sequentially from 0.
func NewCatalog(seeds []EventSeed) *Catalog {
	catalog := &Catalog{events: make([]event, len(seeds))}
	for i, seed := range seeds {
		catalog.events[i] = event{
			id:          uint32(i),
			description: seed.Description,
			available:   seed.Tickets,
		}
	}
	return catalog
}

// Len returns the number of events.
func (c *Catalog) Len() int { return len(c.events) }

// lookup returns the event with the given id, or nil if the id is out
// of range.
func (c *Catalog) lookup(eventID uint32) *event {
	if uint64(eventID) >= uint64(len(c.events)) {
		return nil
	}
	return &c.events[eventID]
}

// EventView is a read-only snapshot of one event.
type EventView struct {
	ID               uint32
	Description      string
	AvailableTickets uint16
}

// views returns snapshots of all events in id order.
func (c *Catalog) views() []EventView {
	views := make([]EventView, len(c.events))
	for i := range c.events {
		views[i] = EventView{
			ID:               c.events[i].id,
			Description:      c.events[i].description,
			AvailableTickets: c.events[i].available,
		}
	}
	return views
}
