package gesture

// Vec2 is a 2D vector used for positions, deltas, and centroids throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. A surface reports its bounding
// rectangle as a Rect in client coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContactTag identifies the kind of a raw contact event.
type ContactTag uint8

const (
	TagStart       ContactTag = iota // contact pressed
	TagMove                          // contact moved
	TagEnd                           // contact released
	TagCancel                        // platform cancelled the contact
	TagExitBounds                    // contact left the surface bounds
	TagExitElement                   // contact left the surface element entirely
)

// numContactTags is the number of ContactTag values.
const numContactTags = int(TagExitElement) + 1

var contactTagNames = [numContactTags]string{
	"start", "move", "end", "cancel", "exit-bounds", "exit-element",
}

func (t ContactTag) String() string {
	if int(t) < numContactTags {
		return contactTagNames[t]
	}
	return "unknown"
}

// Terminal reports whether the tag ends a contact.
func (t ContactTag) Terminal() bool {
	switch t {
	case TagEnd, TagCancel, TagExitBounds, TagExitElement:
		return true
	}
	return false
}

// Source identifies the device that produced a contact.
type Source uint8

const (
	SourceMouse Source = iota // mouse or trackpad cursor
	SourceTouch               // finger on a touch screen
	SourcePen                 // stylus
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// DeltaMode is the unit a platform reports wheel deltas in.
type DeltaMode uint8

const (
	DeltaPixel DeltaMode = iota // deltas are in pixels
	DeltaLine                   // deltas are in lines
	DeltaPage                   // deltas are in pages
)
