package gesture

// Kind identifies a gesture variant.
type Kind uint8

const (
	KindDrag      Kind = iota // single pointer moving relative to its origin
	KindWheel                 // normalized wheel scroll
	KindPinch                 // change in spread and centroid of two or more pointers
	KindTap                   // reserved
	KindPress                 // reserved
	KindLongPress             // reserved
	KindRotate                // reserved
	KindPan                   // reserved
)

var kindNames = [...]string{
	KindDrag:      "drag",
	KindWheel:     "wheel",
	KindPinch:     "pinch",
	KindTap:       "tap",
	KindPress:     "press",
	KindLongPress: "longpress",
	KindRotate:    "rotate",
	KindPan:       "pan",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Gesture is the closed set of gesture variants: Drag, Wheel, Pinch, Tap,
// Press, LongPress, Rotate and Pan. Match on it with a type switch.
type Gesture interface {
	Kind() Kind
	isGesture()
}

// DragPhase is the phase of a drag session.
type DragPhase uint8

const (
	PhasePressing  DragPhase = iota // reserved; never emitted
	PhaseDragging                   // pointer moved while its session is open
	PhaseCompleted                  // reserved; never emitted
)

func (p DragPhase) String() string {
	switch p {
	case PhasePressing:
		return "pressing"
	case PhaseDragging:
		return "dragging"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Drag reports one move of a pointer inside its drag session.
type Drag struct {
	Phase     DragPhase
	PointerID int
	// Current is the move that produced this gesture.
	Current PointerEvent
	// Absolute is ndc(Current) - ndc(session start).
	Absolute Vec2
	// Relative is ndc(Current) - ndc(previous sample in the session).
	Relative Vec2
}

// Wheel reports one wheel event as a fraction of the surface size.
type Wheel struct {
	DX, DY    float64
	Modifiers KeyModifiers
}

// Pinch reports the change between two consecutive centroid samples.
type Pinch struct {
	DZ, DX, DY float64
}

// Tap is reserved for a future detector.
type Tap struct{}

// Press is reserved for a future detector.
type Press struct{}

// LongPress is reserved for a future detector.
type LongPress struct{}

// Rotate is reserved for a future detector.
type Rotate struct{}

// Pan is reserved for a future detector.
type Pan struct{}

func (Drag) Kind() Kind      { return KindDrag }
func (Wheel) Kind() Kind     { return KindWheel }
func (Pinch) Kind() Kind     { return KindPinch }
func (Tap) Kind() Kind       { return KindTap }
func (Press) Kind() Kind     { return KindPress }
func (LongPress) Kind() Kind { return KindLongPress }
func (Rotate) Kind() Kind    { return KindRotate }
func (Pan) Kind() Kind       { return KindPan }

func (Drag) isGesture()      {}
func (Wheel) isGesture()     {}
func (Pinch) isGesture()     {}
func (Tap) isGesture()       {}
func (Press) isGesture()     {}
func (LongPress) isGesture() {}
func (Rotate) isGesture()    {}
func (Pan) isGesture()       {}

// Event pairs a gesture with the number of active pointers at the time it
// was delivered.
type Event struct {
	Gesture        Gesture
	ActivePointers int
	// Replayed is set when the event re-delivers the latest gesture because
	// the active pointer count changed. Consumers that accumulate deltas
	// should skip replayed events.
	Replayed bool
}
