package mida

import (
	"sort"
	"strings"
)

// noteEvent is one attack or release at an absolute tick.
type noteEvent struct {
	tick   uint32
	key    uint8
	attack bool
}

// MelodyAudicle renders one non-percussion track as a sixteenth-note
// timeline of held notes. It returns "" when the track has no note
// events or nothing survives trailing-rest trimming.
func MelodyAudicle(track Track, resolution int) string {
	var events []noteEvent
	var abs uint32
	for _, ev := range track {
		abs += ev.Delta
		switch m := ev.Msg.(type) {
		case NoteOn:
			// A zero-velocity note-on is a release in disguise.
			events = append(events, noteEvent{tick: abs, key: m.Key, attack: m.Velocity > 0})
		case NoteOff:
			events = append(events, noteEvent{tick: abs, key: m.Key})
		case Channelled, Meta:
			// no note content
		}
	}
	if len(events) == 0 {
		return ""
	}

	var totalTicks uint32
	for _, e := range events {
		if e.tick > totalTicks {
			totalTicks = e.tick
		}
	}
	slotTicks := uint32(resolution / 4)
	slots := slotCount(totalTicks, slotTicks)

	// Sweep the grid with a held-note accumulator. Each slot consumes
	// every remaining event before its end boundary, in original
	// message order, then snapshots the held set. Order matters: an
	// attack and release of the same key at the same tick cancel or
	// persist depending on which came first in the track.
	held := make(map[uint8]struct{})
	timeline := make([]map[uint8]struct{}, 0, slots)
	next := 0
	for slot := 0; slot < slots; slot++ {
		end := uint32(slot)*slotTicks + slotTicks
		for next < len(events) && events[next].tick < end {
			e := events[next]
			if e.attack {
				held[e.key] = struct{}{}
			} else {
				delete(held, e.key)
			}
			next++
		}
		snapshot := make(map[uint8]struct{}, len(held))
		for k := range held {
			snapshot[k] = struct{}{}
		}
		timeline = append(timeline, snapshot)
	}

	tokens := make([]string, 0, slots)
	prev := map[uint8]struct{}{}
	for _, notes := range timeline {
		switch {
		case len(notes) == 0:
			tokens = append(tokens, ".")
		case sameKeys(notes, prev):
			tokens = append(tokens, "-")
		default:
			keys := make([]int, 0, len(notes))
			for k := range notes {
				keys = append(keys, int(k))
			}
			sort.Ints(keys)
			names := make([]string, len(keys))
			for i, k := range keys {
				names[i] = NoteName(uint8(k))
			}
			tokens = append(tokens, strings.Join(names, "~"))
		}
		prev = notes
	}

	tokens = trimTrailing(tokens, ".")
	if len(tokens) == 0 {
		return ""
	}
	return "*" + strings.Join(tokens, " ") + "*"
}

func sameKeys(a, b map[uint8]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
