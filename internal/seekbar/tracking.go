package seekbar

// TrackingState is the state of a single-pointer drag.
type TrackingState int

const (
	Idle TrackingState = iota
	Tracking
)

func (s TrackingState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Tracking:
		return "tracking"
	default:
		return "unknown"
	}
}

// Tracker converts pointer positions into values. Any press inside the box
// starts a drag; there is no hit test against the ring or the handle.
type Tracker struct {
	state TrackingState
}

func (t *Tracker) State() TrackingState {
	return t.state
}

// Begin starts tracking when p lies inside the box.
func (t *Tracker) Begin(p Point, size Size) bool {
	if !size.Contains(p) {
		return false
	}
	t.state = Tracking
	return true
}

// Move returns the value under p. ok is false when no drag is in progress.
// Positions outside the box are still converted; the model clamps them.
func (t *Tracker) Move(p Point, m *Model, geo Geometry) (value float64, ok bool) {
	if t.state != Tracking {
		return 0, false
	}
	return m.ValueForAngleFraction(m.AdjustedAngle(geo.AngleTo(p))), true
}

// End finishes the drag. The last committed value stays.
func (t *Tracker) End() {
	t.state = Idle
}

// Cancel abandons the drag without producing a value.
func (t *Tracker) Cancel() {
	t.state = Idle
}
