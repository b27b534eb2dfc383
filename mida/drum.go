package mida

import (
	"sort"
	"strings"
)

// drumHit is one pooled percussion attack.
type drumHit struct {
	tick     uint32
	velocity uint8
}

// DrumAudicles renders one audicle per distinct percussion key heard
// anywhere in the song, in ascending key order. Hits are pooled across
// every track: percussion identity is the message's own channel, not
// the track's classification. Slots are eighth notes.
func DrumAudicles(song *Song) []string {
	hits := make(map[uint8][]drumHit)
	var totalTicks uint32
	for _, track := range song.Tracks {
		var abs uint32
		for _, ev := range track {
			abs += ev.Delta
			on, ok := ev.Msg.(NoteOn)
			if !ok || on.Channel != PercussionChannel || on.Velocity == 0 {
				continue
			}
			hits[on.Key] = append(hits[on.Key], drumHit{tick: abs, velocity: on.Velocity})
			if abs > totalTicks {
				totalTicks = abs
			}
		}
	}
	if len(hits) == 0 {
		return nil
	}

	slotTicks := uint32(song.Resolution / 2)
	slots := slotCount(totalTicks, slotTicks)

	keys := make([]int, 0, len(hits))
	for k := range hits {
		keys = append(keys, int(k))
	}
	sort.Ints(keys)

	var audicles []string
	for _, key := range keys {
		timeline := make([][]uint8, slots)
		for _, h := range hits[uint8(key)] {
			slot := h.tick / slotTicks
			timeline[slot] = append(timeline[slot], h.velocity)
		}

		tokens := make([]string, 0, slots)
		for _, velocities := range timeline {
			switch len(velocities) {
			case 0:
				tokens = append(tokens, "_")
			case 1:
				tokens = append(tokens, Accent(velocities[0]))
			default:
				// Simultaneous hits become a brace group, in the order
				// the events were recorded.
				group := make([]string, len(velocities))
				for i, v := range velocities {
					group[i] = Accent(v)
				}
				tokens = append(tokens, "{"+strings.Join(group, " ")+"}")
			}
		}

		tokens = trimTrailing(tokens, "_")
		if len(tokens) == 0 {
			continue
		}
		audicles = append(audicles, "("+strings.Join(tokens, " ")+")")
	}
	return audicles
}
