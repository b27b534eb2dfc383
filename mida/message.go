package mida

// PercussionChannel is the reserved MIDI channel for drums (the tenth
// of sixteen, zero-based).
const PercussionChannel = 9

// Message is a single MIDI message reduced to the kinds the encoder
// distinguishes. Only channel-voice variants carry a channel.
type Message interface {
	message()
}

// NoteOn is a note-on message. A velocity of zero is kept as-is; the
// melodic encoder treats it as a release, per MIDI convention.
type NoteOn struct {
	Channel  uint8
	Key      uint8
	Velocity uint8
}

// NoteOff is a note-off message.
type NoteOff struct {
	Channel uint8
	Key     uint8
}

// Channelled is any other channel-voice message (control change,
// program change, pitch bend...). Its channel still counts for track
// classification.
type Channelled struct {
	Channel uint8
}

// Meta is any message without a channel (meta events, sysex).
type Meta struct{}

func (NoteOn) message()     {}
func (NoteOff) message()    {}
func (Channelled) message() {}
func (Meta) message()       {}

// TrackEvent pairs a message with its delta time in ticks.
type TrackEvent struct {
	Delta uint32
	Msg   Message
}

// Track is an ordered sequence of timed messages. Message order is
// significant: same-tick events are applied in the order they appear.
type Track []TrackEvent

// Song is a parsed MIDI performance. Resolution is pulses per quarter
// note and must be positive; the midifile boundary enforces that.
type Song struct {
	Resolution int
	Tracks     []Track
}

// IsPercussion reports whether any message in the track sits on the
// percussion channel, regardless of message kind.
func (t Track) IsPercussion() bool {
	for _, ev := range t {
		switch m := ev.Msg.(type) {
		case NoteOn:
			if m.Channel == PercussionChannel {
				return true
			}
		case NoteOff:
			if m.Channel == PercussionChannel {
				return true
			}
		case Channelled:
			if m.Channel == PercussionChannel {
				return true
			}
		case Meta:
			// no channel
		}
	}
	return false
}
