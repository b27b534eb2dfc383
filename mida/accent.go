package mida

// Accent tokens classify a drum hit by loudness.
const (
	AccentHard   = "^|" // velocity 110 and up
	AccentSoft   = "v|" // velocity 40 and below
	AccentNormal = "*|"
)

// Accent maps a note-on velocity to its accent token. Both thresholds
// are inclusive: 110 is hard, 40 is soft.
func Accent(velocity uint8) string {
	switch {
	case velocity >= 110:
		return AccentHard
	case velocity <= 40:
		return AccentSoft
	default:
		return AccentNormal
	}
}
