package mida

import (
	"reflect"
	"testing"
)

func drumSong(tracks ...Track) *Song {
	return &Song{Resolution: 480, Tracks: tracks}
}

func TestDrumAudiclesSingleHit(t *testing.T) {
	song := drumSong(Track{
		{Delta: 0, Msg: NoteOn{Channel: 9, Key: 38, Velocity: 80}},
	})
	got := DrumAudicles(song)
	want := []string{"(*|)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDrumAudiclesRestsBetweenHits(t *testing.T) {
	// Resolution 480 gives eighth-note slots of 240 ticks.
	song := drumSong(Track{
		{Delta: 0, Msg: NoteOn{Channel: 9, Key: 38, Velocity: 80}},
		{Delta: 480, Msg: NoteOn{Channel: 9, Key: 38, Velocity: 120}},
	})
	got := DrumAudicles(song)
	want := []string{"(*| _ ^|)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDrumAudiclesBraceGroupKeepsRecordedOrder(t *testing.T) {
	song := drumSong(Track{
		{Delta: 0, Msg: NoteOn{Channel: 9, Key: 38, Velocity: 120}},
		{Delta: 0, Msg: NoteOn{Channel: 9, Key: 38, Velocity: 30}},
	})
	got := DrumAudicles(song)
	want := []string{"({^| v|})"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDrumAudiclesAscendingKeyOrder(t *testing.T) {
	// Hi-hat recorded before the snare; output is still sorted by key.
	song := drumSong(Track{
		{Delta: 0, Msg: NoteOn{Channel: 9, Key: 42, Velocity: 80}},
		{Delta: 0, Msg: NoteOn{Channel: 9, Key: 38, Velocity: 80}},
	})
	got := DrumAudicles(song)
	want := []string{"(*|)", "(*|)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	// Distinguishable ordering: different accents per key.
	song = drumSong(Track{
		{Delta: 0, Msg: NoteOn{Channel: 9, Key: 42, Velocity: 120}},
		{Delta: 0, Msg: NoteOn{Channel: 9, Key: 38, Velocity: 30}},
	})
	got = DrumAudicles(song)
	want = []string{"(v|)", "(^|)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDrumAudiclesPoolAcrossTracks(t *testing.T) {
	// A channel 9 hit buried in a melodic track still counts.
	melodic := Track{
		{Delta: 0, Msg: NoteOn{Channel: 0, Key: 60, Velocity: 90}},
		{Delta: 240, Msg: NoteOn{Channel: 9, Key: 38, Velocity: 80}},
		{Delta: 240, Msg: NoteOff{Channel: 0, Key: 60}},
	}
	drums := Track{
		{Delta: 0, Msg: NoteOn{Channel: 9, Key: 38, Velocity: 80}},
	}
	got := DrumAudicles(drumSong(melodic, drums))
	want := []string{"(*| *|)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDrumAudiclesIgnoreZeroVelocityAndOtherChannels(t *testing.T) {
	song := drumSong(Track{
		{Delta: 0, Msg: NoteOn{Channel: 9, Key: 38, Velocity: 0}},
		{Delta: 0, Msg: NoteOn{Channel: 0, Key: 38, Velocity: 80}},
		{Delta: 0, Msg: NoteOff{Channel: 9, Key: 38}},
	})
	if got := DrumAudicles(song); got != nil {
		t.Fatalf("expected no drum audicles, got %v", got)
	}
}

func TestDrumAudiclesTrailingRestTrim(t *testing.T) {
	// Key 38 hits only at tick 0; key 42 stretches the grid to five
	// slots. The 38 line must not carry the trailing rests.
	song := drumSong(Track{
		{Delta: 0, Msg: NoteOn{Channel: 9, Key: 38, Velocity: 80}},
		{Delta: 960, Msg: NoteOn{Channel: 9, Key: 42, Velocity: 80}},
	})
	got := DrumAudicles(song)
	want := []string{"(*|)", "(_ _ _ _ *|)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
