package overlay

// Point is a screen cell, 0-based from the top-left corner.
type Point struct {
	X, Y int
}

// Rect is a screen-cell rectangle spanning [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Region is a containment-testable handle to a rendered surface.
type Region interface {
	Contains(p Point) bool
}

// RegionFunc resolves a region from the live layout every time it is
// queried. It returns ok == false while the surface has not been laid out,
// in which case the region contains nothing.
type RegionFunc func() (rects []Rect, ok bool)

// Contains implements Region.
func (f RegionFunc) Contains(p Point) bool {
	if f == nil {
		return false
	}
	rects, ok := f()
	if !ok {
		return false
	}
	for _, r := range rects {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

type occluded struct {
	base, above Region
}

// Occluded returns a region covering base minus the cells of above. A press
// lands on the topmost surface, so a panel drawn over another one hides the
// lower panel's cells from containment checks.
func Occluded(base, above Region) Region {
	return occluded{base: base, above: above}
}

func (o occluded) Contains(p Point) bool {
	if o.base == nil || !o.base.Contains(p) {
		return false
	}
	return o.above == nil || !o.above.Contains(p)
}
