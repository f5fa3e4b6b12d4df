package gesture

// Coordinates holds a contact point in the two spaces the engine works with.
type Coordinates struct {
	// Pixel is relative to the surface's top-left corner.
	Pixel Vec2
	// NDC is in [-1, 1] on both axes with Y pointing up.
	NDC Vec2
}

// MapCoordinates maps a client-space point onto a surface with the given
// bounding rectangle. A zero-width or zero-height rectangle produces
// non-finite NDC values.
func MapCoordinates(bounds Rect, p Vec2) Coordinates {
	x := p.X - bounds.X
	y := p.Y - bounds.Y
	return Coordinates{
		Pixel: Vec2{X: x, Y: y},
		NDC: Vec2{
			X: x/bounds.Width*2 - 1,
			Y: y/bounds.Height*-2 + 1,
		},
	}
}

// Difference returns ndc(a) - ndc(b) for two client-space points.
func Difference(bounds Rect, a, b Vec2) Vec2 {
	return MapCoordinates(bounds, a).NDC.Sub(MapCoordinates(bounds, b).NDC)
}
