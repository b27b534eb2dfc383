package mida

import "strconv"

// noteNames maps a pitch class to its letter name, sharps only.
var noteNames = [12]string{
	"C", "C#", "D", "D#", "E", "F",
	"F#", "G", "G#", "A", "A#", "B",
}

// NoteName renders a MIDI key as letter+octave, with middle C (60)
// being "C4". Keys below 12 land in octave -1. Key must be 0-127.
func NoteName(key uint8) string {
	octave := int(key)/12 - 1
	return noteNames[key%12] + strconv.Itoa(octave)
}
