package physics

// Vec is a point or displacement in scene units. +x points right, +y up.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Vec
}

// Box returns the w×h box centred on c.
func Box(c Vec, w, h float64) AABB {
	return AABB{
		Min: Vec{c.X - w/2, c.Y - h/2},
		Max: Vec{c.X + w/2, c.Y + h/2},
	}
}

// Intersects reports whether the boxes overlap with positive area. Touching
// edges do not count.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X &&
		a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

func (a AABB) Center() Vec {
	return Vec{(a.Min.X + a.Max.X) / 2, (a.Min.Y + a.Max.Y) / 2}
}
