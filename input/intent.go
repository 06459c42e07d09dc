package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit      // Esc, q, Ctrl+C
	IntentMoveLeft  // Left arrow, a, h
	IntentMoveRight // Right arrow, d, l
	IntentFire      // Space, Enter
)

var intentNames = [...]string{
	IntentNone:      "none",
	IntentQuit:      "quit",
	IntentMoveLeft:  "left",
	IntentMoveRight: "right",
	IntentFire:      "fire",
}

func (i IntentType) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}
