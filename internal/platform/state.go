package platform

// State is a lifecycle state of FBPlatform.
type State int

const (
	Uninitialized State = iota
	Started
	Running
	GraphicsReady
	Stopped
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Started:
		return "started"
	case Running:
		return "running"
	case GraphicsReady:
		return "graphics-ready"
	case Stopped:
		return "stopped"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}
