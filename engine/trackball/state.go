package trackball

// State is the interaction state of a Trackball.
type State int

const (
	// StateResting means no drag is active and no momentum is being integrated.
	StateResting State = iota
	// StateCoasting means the drag was released and angular velocity keeps rotating the orientation.
	StateCoasting
	// StateDraggingInit is the combined spin+tilt drag entered by StartDrag.
	StateDraggingInit
	// StateDraggingSpin is a spin-only drag. No transition currently enters it.
	StateDraggingSpin
	// StateDraggingTilt is a tilt-only drag. No transition currently enters it.
	StateDraggingTilt
)

// String returns the state name.
//
// Returns:
//   - string: the human-readable state name
func (s State) String() string {
	switch s {
	case StateResting:
		return "Resting"
	case StateCoasting:
		return "Coasting"
	case StateDraggingInit:
		return "DraggingInit"
	case StateDraggingSpin:
		return "DraggingSpin"
	case StateDraggingTilt:
		return "DraggingTilt"
	default:
		return "Unknown"
	}
}

// Dragging reports whether the state is one of the dragging variants.
//
// Returns:
//   - bool: true for DraggingInit, DraggingSpin and DraggingTilt
func (s State) Dragging() bool {
	return s == StateDraggingInit || s == StateDraggingSpin || s == StateDraggingTilt
}
