package mida

import "testing"

func TestIsPercussionNoteMessages(t *testing.T) {
	track := Track{
		{Delta: 0, Msg: NoteOn{Channel: 9, Key: 38, Velocity: 100}},
		{Delta: 120, Msg: NoteOff{Channel: 9, Key: 38}},
	}
	if !track.IsPercussion() {
		t.Fatal("expected channel 9 note track to classify as percussion")
	}
}

func TestIsPercussionNonNoteMessage(t *testing.T) {
	// Any channel-bearing message counts, not just notes.
	track := Track{
		{Delta: 0, Msg: Meta{}},
		{Delta: 0, Msg: Channelled{Channel: 9}},
	}
	if !track.IsPercussion() {
		t.Fatal("expected channel 9 control message to classify track as percussion")
	}
}

func TestIsPercussionOtherChannels(t *testing.T) {
	track := Track{
		{Delta: 0, Msg: NoteOn{Channel: 0, Key: 60, Velocity: 90}},
		{Delta: 0, Msg: Channelled{Channel: 10}},
		{Delta: 480, Msg: NoteOff{Channel: 0, Key: 60}},
	}
	if track.IsPercussion() {
		t.Fatal("track without channel 9 messages classified as percussion")
	}
}

func TestIsPercussionEmptyTrack(t *testing.T) {
	if (Track{}).IsPercussion() {
		t.Fatal("empty track classified as percussion")
	}
	onlyMeta := Track{{Delta: 0, Msg: Meta{}}}
	if onlyMeta.IsPercussion() {
		t.Fatal("meta-only track classified as percussion")
	}
}
