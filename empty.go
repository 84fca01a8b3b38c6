package optionalbox

// Nothing is the tag type for deliberate absence. Its only useful value is
// Empty.
type Nothing struct{}

// Empty marks a deliberately absent value. None constructs a box from it,
// Clear assigns it, and Equal compares against it.
var Empty Nothing

// Equal reports whether the box equals the Empty marker, i.e. holds no
// item. Negate it for the not-equal comparison; boxes are not comparable to
// each other or to bare items.
func (me *Box[T]) Equal(Nothing) bool {
	return !me.exists
}
