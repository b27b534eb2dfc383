// Package mida encodes a parsed MIDI performance as MIDA, a compact
// textual notation. Drum hits are pooled from the percussion channel
// into per-key eighth-note timelines; every other track becomes a
// sixteenth-note timeline of held notes. The whole package is pure:
// identical input always yields byte-identical output.
package mida

import "strings"

// Document layout markers.
const (
	headerLine = "`~#"
	quoteLine  = "‘"
	emptyDoc   = "// No tracks found."
)

// Encode converts a song into a complete MIDA document.
func Encode(song *Song) string {
	drums := DrumAudicles(song)
	var melodies []string
	for _, track := range song.Tracks {
		if track.IsPercussion() {
			continue
		}
		if a := MelodyAudicle(track, song.Resolution); a != "" {
			melodies = append(melodies, a)
		}
	}
	return Document(drums, melodies)
}

// Document assembles drum and melodic audicles into the final text.
// With two or more audicles the lines get the header and quote-marker
// envelope; with none, a placeholder comment. A lone drum audicle
// appears twice: the assembly keeps the drum block and then restates
// the single line (longstanding quirk, kept for output compatibility).
func Document(drums, melodies []string) string {
	lines := append([]string{}, drums...)
	switch total := len(drums) + len(melodies); {
	case total == 0:
		lines = []string{emptyDoc}
	case total == 1:
		if len(melodies) == 1 {
			lines = append(lines, melodies[0])
		} else {
			lines = append(lines, drums[0])
		}
	default:
		lines = append([]string{headerLine, quoteLine}, lines...)
		lines = append(lines, melodies...)
		lines = append(lines, quoteLine)
	}
	return strings.Join(lines, "\n")
}
