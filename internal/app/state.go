package app

// State is a step of the orchestrator lifecycle.
type State int

const (
	StateIdle State = iota
	StateParsing
	StateValidating
	StateHelpDisplay
	StateVersionDisplay
	StateRunning
	StateTerminated
)

var stateNames = [...]string{
	StateIdle:           "idle",
	StateParsing:        "parsing",
	StateValidating:     "validating",
	StateHelpDisplay:    "help",
	StateVersionDisplay: "version",
	StateRunning:        "running",
	StateTerminated:     "terminated",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
