package core

// Cue names a sound played at a game transition
type Cue string

const (
	CueStartup Cue = "startup" // Process start
	CueMove    Cue = "move"    // Swarm bounce and descent
	CuePew     Cue = "pew"     // Shot fired
	CueExplode Cue = "explode" // Shot hit an invader
	CueWin     Cue = "win"     // Swarm destroyed
	CueLose    Cue = "lose"    // Swarm reached bottom or player quit
)

// Cues lists every cue in load order
var Cues = []Cue{CueStartup, CueMove, CuePew, CueExplode, CueWin, CueLose}
