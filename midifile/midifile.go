// Package midifile reads Standard MIDI Files and reduces them to the
// event model the mida encoder consumes.
package midifile

import (
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/Mirror-Prismals/TrackMIDA/mida"
)

// Load reads a Standard MIDI File from disk.
func Load(path string) (*mida.Song, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open midi file: %w", err)
	}
	defer f.Close()

	data, err := smf.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("read midi file %s: %w", path, err)
	}
	return FromSMF(data)
}

// FromSMF converts a parsed SMF to a Song. Only metric time formats
// (pulses per quarter note) are supported; SMPTE timing is rejected
// before the encoder can divide by it.
func FromSMF(data *smf.SMF) (*mida.Song, error) {
	ticks, ok := data.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, fmt.Errorf("unsupported time format %v", data.TimeFormat)
	}
	resolution := int(ticks)
	if resolution <= 0 {
		return nil, fmt.Errorf("invalid resolution %d", resolution)
	}

	song := &mida.Song{Resolution: resolution}
	for _, tr := range data.Tracks {
		track := make(mida.Track, 0, len(tr))
		for _, ev := range tr {
			track = append(track, mida.TrackEvent{Delta: ev.Delta, Msg: reduce(ev.Message)})
		}
		song.Tracks = append(song.Tracks, track)
	}
	return song, nil
}

// reduce maps an SMF message onto the encoder's tagged variants. A
// zero-velocity note-on stays a NoteOn so the encoder applies its own
// release rule.
func reduce(msg smf.Message) mida.Message {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteOn(&ch, &key, &vel):
		return mida.NoteOn{Channel: ch, Key: key, Velocity: vel}
	case msg.GetNoteOff(&ch, &key, &vel):
		return mida.NoteOff{Channel: ch, Key: key}
	case msg.GetChannel(&ch):
		return mida.Channelled{Channel: ch}
	default:
		return mida.Meta{}
	}
}
