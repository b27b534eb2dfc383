package mida

// slotCount returns how many fixed-width slots cover totalTicks, plus
// one trailing slot so the last event always has room.
func slotCount(totalTicks, slotTicks uint32) int {
	return int((totalTicks+slotTicks-1)/slotTicks) + 1
}

// trimTrailing drops trailing rest tokens from a rendered timeline.
// Appending silent slots to a grid never changes its audicle.
func trimTrailing(tokens []string, rest string) []string {
	for len(tokens) > 0 && tokens[len(tokens)-1] == rest {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}
