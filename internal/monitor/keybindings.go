package monitor

// Key bindings as constants for consistency.
const (
	KeyQuit    = "q"
	KeyQuitAlt = "ctrl+c"
	KeyPause   = "p"
	KeyReadNow = "r"
)
